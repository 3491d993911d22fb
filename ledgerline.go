// Package ledgerline reconstructs bank-statement transactions directly from
// the low-level content streams of a PDF. It is a fallback path: when a
// structured statement parser fails to recognize a document's layout, ledgerline
// re-derives the transaction table from positioned text, without any external
// PDF rendering dependency.
//
// Basic usage:
//
//	txns, err := ledgerline.Open("statement.pdf").Transactions()
//	if err != nil {
//	    // handle error
//	}
//	if len(txns) == 0 {
//	    // layout not recognized - fall back further
//	}
//
// The lower-level stages (contentstream, core, text, layout, statement) are
// also available as packages for callers that need intermediate results.
package ledgerline

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/finforge/ledgerline/layout"
	"github.com/finforge/ledgerline/statement"
	"github.com/finforge/ledgerline/text"
)

// Extractor provides fluent access to the extraction pipeline over one
// document. Configure it with chained option methods, then call a terminal
// operation (Fragments, Rows, Text, Transactions, IsStatement).
//
// An Extractor holds no shared mutable state: separate instances may run
// concurrently over different documents.
type Extractor struct {
	filename string
	data     []byte
	loaded   bool
	err      error

	options ExtractOptions
}

// Open prepares an extractor for a PDF file on disk. The file is read at the
// first terminal operation; read errors surface there.
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes prepares an extractor over raw PDF bytes already in memory.
// Decryption, if the document needs it, must have happened upstream.
func FromBytes(data []byte) *Extractor {
	return &Extractor{
		data:    data,
		loaded:  true,
		options: defaultOptions(),
	}
}

// YTolerance sets the vertical tolerance used when clustering fragments into
// rows. The default is layout.DefaultYTolerance.
func (e *Extractor) YTolerance(tol float64) *Extractor {
	e.options.yTolerance = tol
	return e
}

// Logger sets a logger for debug detail from the statement parser. Logging
// is disabled by default.
func (e *Extractor) Logger(log zerolog.Logger) *Extractor {
	e.options.logger = log
	return e
}

// load reads the backing file if the extractor was built with Open.
func (e *Extractor) load() error {
	if e.err != nil {
		return e.err
	}
	if e.loaded {
		return nil
	}

	data, err := os.ReadFile(e.filename)
	if err != nil {
		e.err = fmt.Errorf("reading %s: %w", e.filename, err)
		return e.err
	}
	e.data = data
	e.loaded = true
	return nil
}

// Fragments returns every positioned text fragment extracted from the
// document's content streams, in stream order.
func (e *Extractor) Fragments() ([]text.Fragment, error) {
	if err := e.load(); err != nil {
		return nil, err
	}
	return text.ExtractFragments(e.data), nil
}

// Rows returns the document's text grouped into visual rows, top-to-bottom.
func (e *Extractor) Rows() ([]layout.Row, error) {
	fragments, err := e.Fragments()
	if err != nil {
		return nil, err
	}
	return layout.GroupRows(fragments, e.options.yTolerance), nil
}

// Text returns the document's text as one string: rows top-to-bottom, one
// per line, fragments space-joined left-to-right.
func (e *Extractor) Text() (string, error) {
	rows, err := e.Rows()
	if err != nil {
		return "", err
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = row.Text()
	}
	return strings.Join(lines, "\n"), nil
}

// Transactions parses the document as a bank statement and returns its
// transactions in chronological order. An empty result with a nil error
// means the layout was not recognized; the error is only ever an I/O
// failure loading the document.
func (e *Extractor) Transactions() ([]statement.Transaction, error) {
	if err := e.load(); err != nil {
		return nil, err
	}
	return e.parser().Parse(e.data), nil
}

// IsStatement reports whether the document carries the identifying marker of
// the supported bank profile. Callers use it to decide whether to invoke the
// full table parse at all.
func (e *Extractor) IsStatement() (bool, error) {
	if err := e.load(); err != nil {
		return false, err
	}
	return e.parser().Detect(e.data), nil
}

func (e *Extractor) parser() statement.Parser {
	return statement.NewHLBParserWithConfig(statement.Config{
		YTolerance: e.options.yTolerance,
		Logger:     e.options.logger,
	})
}
