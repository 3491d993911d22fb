package contentstream

import (
	"bytes"

	"github.com/finforge/ledgerline/internal/filters"
)

var (
	streamMarker    = []byte("stream")
	endstreamMarker = []byte("endstream")
)

// FindStreams scans raw PDF bytes for stream ... endstream segments and
// returns the inflated payload of every segment that decompresses as deflate
// data, in order of occurrence. Segments that fail to inflate (uncompressed
// streams, other filters, corrupt data) are skipped; the scan itself never
// fails.
func FindStreams(pdf []byte) [][]byte {
	var streams [][]byte

	pos := 0
	for {
		idx := bytes.Index(pdf[pos:], streamMarker)
		if idx < 0 {
			return streams
		}

		start := pos + idx + len(streamMarker)
		pos = start

		// The keyword must be followed by an end-of-line sequence; anything
		// else (including the tail of "endstream") is not a stream start.
		if start < len(pdf) && pdf[start] == '\r' {
			start++
		}
		if start >= len(pdf) || pdf[start] != '\n' {
			continue
		}
		start++

		end := bytes.Index(pdf[start:], endstreamMarker)
		if end < 0 {
			continue
		}

		data, err := filters.FlateDecode(pdf[start : start+end])
		if err != nil {
			continue
		}
		streams = append(streams, data)
	}
}
