package statement

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/finforge/ledgerline/layout"
	"github.com/finforge/ledgerline/text"
)

// hlbMarker identifies a Hong Leong Bank PrimeBiz current account statement.
const hlbMarker = "HLB PRIMEBIZ CURRENT ACCOUNT"

const (
	// descLeftBleed widens the description band to the left of its header
	// label; description text can start slightly left of the label due to
	// font metrics.
	descLeftBleed = 20.0

	// columnGutter is subtracted from each amount column's anchor to form
	// the left edge of its value band.
	columnGutter = 2.0

	// headerMargin keeps the header row itself out of the candidate rows.
	headerMargin = 1.0

	hlbDateFormat = "02-01-2006"
)

var (
	hlbDatePattern   = regexp.MustCompile(`\b\d{2}-\d{2}-\d{4}\b`)
	hlbAmountPattern = regexp.MustCompile(`^\d{1,3}(?:,\d{3})*\.\d{2}$`)
)

// hlbStopPhrases mark the end of the transaction table; rows at or below a
// stop phrase are never folded into the output.
var hlbStopPhrases = []string{
	"Rebate Summary",
	"Closing Balance",
	"Total Withdrawals",
	"Total Deposits",
}

// columnAnchors records the header label x-coordinate of each statement
// column. Anchors are non-decreasing in this order.
type columnAnchors struct {
	date       float64
	desc       float64
	deposit    float64
	withdrawal float64
	balance    float64
}

// Config holds the tunable parts of the HLB parser.
type Config struct {
	// YTolerance is the row-clustering tolerance in PDF units.
	YTolerance float64

	// Logger receives debug detail about header detection and discarded
	// rows. Disabled by default.
	Logger zerolog.Logger
}

// DefaultConfig returns the configuration used by NewHLBParser.
func DefaultConfig() Config {
	return Config{
		YTolerance: layout.DefaultYTolerance,
		Logger:     zerolog.Nop(),
	}
}

// HLBParser parses Hong Leong Bank PrimeBiz current account statements.
type HLBParser struct {
	cfg Config
}

// NewHLBParser creates a parser with default configuration.
func NewHLBParser() *HLBParser {
	return NewHLBParserWithConfig(DefaultConfig())
}

// NewHLBParserWithConfig creates a parser with the given configuration.
func NewHLBParserWithConfig(cfg Config) *HLBParser {
	if cfg.YTolerance <= 0 {
		cfg.YTolerance = layout.DefaultYTolerance
	}
	return &HLBParser{cfg: cfg}
}

// Name returns the bank profile name.
func (p *HLBParser) Name() string { return "hlb-primebiz" }

// Detect reports whether the document's extracted text contains the HLB
// PrimeBiz marker.
func (p *HLBParser) Detect(pdf []byte) bool {
	return containsMarker(text.ExtractFragments(pdf))
}

// Parse extracts the statement's transactions. The result is in
// chronological order as printed; an empty result signals an unrecognized
// layout (missing marker, missing header row, or no extractable text).
func (p *HLBParser) Parse(pdf []byte) []Transaction {
	fragments := text.ExtractFragments(pdf)
	if len(fragments) == 0 || !containsMarker(fragments) {
		return nil
	}

	rows := layout.GroupRows(fragments, p.cfg.YTolerance)

	headerY, anchors, ok := findHeader(rows)
	if !ok {
		p.cfg.Logger.Debug().Msg("hlb: no transaction header row found")
		return nil
	}
	p.cfg.Logger.Debug().
		Float64("y", headerY).
		Float64("desc", anchors.desc).
		Float64("deposit", anchors.deposit).
		Msg("hlb: header located")

	descLeft := anchors.desc - descLeftBleed
	descRight := anchors.deposit - columnGutter

	return p.foldRows(candidateRows(rows, headerY), anchors, descLeft, descRight)
}

// rawLine is the transient accumulation state for one dated statement row
// and its continuation lines. At most one rawLine is open at a time.
type rawLine struct {
	date        time.Time
	description string
	deposit     string
	withdrawal  string
}

// foldRows walks candidate rows in print order, folding continuation lines
// into the open transaction and finalizing it when the next dated row starts
// or the table ends.
func (p *HLBParser) foldRows(rows []layout.Row, anchors columnAnchors, descLeft, descRight float64) []Transaction {
	var (
		lines []rawLine
		open  *rawLine
	)

	for _, row := range rows {
		line := row.Text()
		if containsStopPhrase(line) {
			p.cfg.Logger.Debug().Str("row", line).Msg("hlb: stop phrase, table ends")
			break
		}

		date, dated := rowDate(row, descLeft)
		desc := rowDescription(row, descLeft, descRight)
		deposit, withdrawal := rowAmounts(row, anchors)

		if dated {
			if open != nil {
				lines = append(lines, *open)
			}
			open = &rawLine{date: date, description: desc, deposit: deposit, withdrawal: withdrawal}
			continue
		}

		// Undated rows with description text continue the open transaction.
		if open != nil && desc != "" {
			open.description = strings.TrimSpace(open.description + " " + desc)
		}
	}
	if open != nil {
		lines = append(lines, *open)
	}

	return p.finalize(lines)
}

// finalize applies the validity filter and polarity assignment.
func (p *HLBParser) finalize(lines []rawLine) []Transaction {
	var txns []Transaction
	for _, l := range lines {
		if l.deposit != "" && l.withdrawal != "" {
			p.cfg.Logger.Debug().
				Str("description", l.description).
				Msg("hlb: row with both deposit and withdrawal discarded")
			continue
		}

		var (
			amount   decimal.Decimal
			polarity Polarity
		)
		switch {
		case l.deposit != "":
			v, err := parseAmount(l.deposit)
			if err != nil {
				continue
			}
			amount, polarity = v, Credit
		case l.withdrawal != "":
			v, err := parseAmount(l.withdrawal)
			if err != nil {
				continue
			}
			amount, polarity = v.Neg(), Debit
		default:
			continue
		}

		txns = append(txns, Transaction{
			Date:        l.date,
			Description: l.description,
			Amount:      amount,
			Polarity:    polarity,
		})
	}
	return txns
}

// findHeader scans rows top-to-bottom for one whose fragment texts cover the
// full header label set, and returns its key and the label anchors.
func findHeader(rows []layout.Row) (float64, columnAnchors, bool) {
	for _, row := range rows {
		byText := make(map[string]float64, len(row.Fragments))
		for _, f := range row.Fragments {
			byText[f.Text] = f.X
		}

		date, ok1 := byText["Date"]
		desc, ok2 := byText["Transaction Description"]
		deposit, ok3 := byText["Deposit"]
		withdrawal, ok4 := byText["Withdrawal"]
		balance, ok5 := byText["Balance"]
		if ok1 && ok2 && ok3 && ok4 && ok5 {
			return row.Y, columnAnchors{
				date:       date,
				desc:       desc,
				deposit:    deposit,
				withdrawal: withdrawal,
				balance:    balance,
			}, true
		}
	}
	return 0, columnAnchors{}, false
}

// candidateRows returns the rows strictly below the header on the page,
// ordered top-to-bottom (descending y): the order transactions are printed,
// earliest first.
func candidateRows(rows []layout.Row, headerY float64) []layout.Row {
	var out []layout.Row
	for _, row := range rows {
		if row.Y < headerY-headerMargin {
			out = append(out, row)
		}
	}
	// GroupRows already yields descending-y order; sorting again keeps the
	// print-order requirement independent of upstream ordering.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Y > out[j].Y })
	return out
}

// rowDate looks for a DD-MM-YYYY token in any fragment positioned at or left
// of the description band.
func rowDate(row layout.Row, descLeft float64) (time.Time, bool) {
	for _, f := range row.Fragments {
		if f.X > descLeft {
			continue
		}
		m := hlbDatePattern.FindString(f.Text)
		if m == "" {
			continue
		}
		d, err := time.Parse(hlbDateFormat, m)
		if err != nil {
			// Matches the date shape but is not a calendar date; treat the
			// row as undated rather than emitting a bogus transaction.
			continue
		}
		return d, true
	}
	return time.Time{}, false
}

// rowDescription joins the texts of fragments inside the description band.
func rowDescription(row layout.Row, descLeft, descRight float64) string {
	var parts []string
	for _, f := range row.Fragments {
		if f.X >= descLeft && f.X < descRight {
			parts = append(parts, f.Text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// rowAmounts classifies currency-shaped fragments into the deposit or
// withdrawal band by x position. Classification depends only on the anchors,
// never on row order.
func rowAmounts(row layout.Row, anchors columnAnchors) (deposit, withdrawal string) {
	for _, f := range row.Fragments {
		t := strings.TrimSpace(f.Text)
		if !hlbAmountPattern.MatchString(t) {
			continue
		}

		switch {
		case f.X >= anchors.deposit-columnGutter && f.X < anchors.withdrawal-columnGutter:
			deposit = t
		case f.X >= anchors.withdrawal-columnGutter && f.X < anchors.balance-columnGutter:
			withdrawal = t
		}
	}
	return deposit, withdrawal
}

func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
}

func containsMarker(fragments []text.Fragment) bool {
	for _, f := range fragments {
		if strings.Contains(f.Text, hlbMarker) {
			return true
		}
	}
	return false
}

func containsStopPhrase(line string) bool {
	for _, phrase := range hlbStopPhrases {
		if strings.Contains(line, phrase) {
			return true
		}
	}
	return false
}
