// Package filters implements the stream decompression filters used by the
// extraction pipeline. Only FlateDecode is supported: content streams in the
// statements this module targets are always deflate-compressed, and blocks
// using any other filter are simply skipped by the scanner.
package filters

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// FlateDecode decompresses Flate (zlib/deflate) compressed data.
func FlateDecode(data []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib reader: %w", err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}

	return buf.Bytes(), nil
}
