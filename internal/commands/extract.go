package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/finforge/ledgerline"
	"github.com/finforge/ledgerline/internal/logger"
	"github.com/finforge/ledgerline/statement"
)

// transactionRow is the flat export shape shared by the CSV and JSON output.
type transactionRow struct {
	Date        string `csv:"date" json:"date"`
	Description string `csv:"description" json:"description"`
	Amount      string `csv:"amount" json:"amount"`
	Polarity    string `csv:"polarity" json:"polarity"`
}

func newExtractCommand() *cobra.Command {
	var format string
	var outPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "extract <statement.pdf>",
		Short: "Extract transactions from a statement PDF as CSV or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zerolog.Nop()
			if verbose {
				log = logger.New()
			}

			txns, err := ledgerline.Open(args[0]).Logger(log).Transactions()
			if err != nil {
				return err
			}
			if len(txns) == 0 {
				return fmt.Errorf("%s: statement layout not recognized", args[0])
			}

			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outPath, err)
				}
				defer f.Close()
				out = f
			}

			return writeTransactions(out, txns, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv or json")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log parser debug detail to stderr")

	return cmd
}

func writeTransactions(w io.Writer, txns []statement.Transaction, format string) error {
	rows := make([]transactionRow, len(txns))
	for i, t := range txns {
		rows[i] = transactionRow{
			Date:        t.ISODate(),
			Description: t.Description,
			Amount:      t.Amount.StringFixed(2),
			Polarity:    string(t.Polarity),
		}
	}

	switch format {
	case "csv":
		if err := gocsv.Marshal(&rows, w); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want csv or json)", format)
	}
}
