// Package statement reconstructs transaction records from the positioned
// text of a bank statement PDF. Parsers here are geometry driven: they
// locate a column header row, derive column bands from the header label
// positions, and fold the rows beneath it into transactions. They are meant
// as a fallback path when structured parsing of a statement fails, so every
// parser degrades to an empty result instead of returning errors for
// unrecognized layouts.
package statement

import (
	"time"

	"github.com/shopspring/decimal"
)

// Polarity states whether a transaction increases or decreases the balance.
type Polarity string

const (
	Credit Polarity = "credit"
	Debit  Polarity = "debit"
)

// Transaction is one reconstructed statement line. Amount is signed
// redundantly with Polarity: credits are positive, debits negative.
// Transactions are immutable once returned.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Polarity    Polarity
}

// ISODate returns the transaction date in ISO-8601 form (YYYY-MM-DD).
func (t Transaction) ISODate() string {
	return t.Date.Format("2006-01-02")
}

// Parser extracts transactions for one bank's statement layout.
type Parser interface {
	// Name returns the parser's bank profile name.
	Name() string

	// Detect reports whether the document carries the bank's identifying
	// marker, letting callers decide whether to run the full parse.
	Detect(pdf []byte) bool

	// Parse returns the statement's transactions in chronological order.
	// An empty result means the layout was not recognized; Parse never
	// fails on malformed input.
	Parse(pdf []byte) []Transaction
}
