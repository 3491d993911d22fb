package ledgerline

import (
	"github.com/rs/zerolog"

	"github.com/finforge/ledgerline/layout"
)

// ExtractOptions holds configuration for the extraction pipeline.
type ExtractOptions struct {
	// Row clustering tolerance in PDF user-space units.
	yTolerance float64

	// Debug logger for the statement parser; Nop unless set.
	logger zerolog.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		yTolerance: layout.DefaultYTolerance,
		logger:     zerolog.Nop(),
	}
}
