package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finforge/ledgerline"
	"github.com/finforge/ledgerline/layout"
)

func newRowsCommand() *cobra.Command {
	var yTolerance float64

	cmd := &cobra.Command{
		Use:   "rows <document.pdf>",
		Short: "Dump the document's text grouped into visual rows (debugging aid)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := ledgerline.Open(args[0]).YTolerance(yTolerance).Rows()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, row := range rows {
				fmt.Fprintf(out, "y=%8.2f  %s\n", row.Y, row.Text())
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&yTolerance, "y-tolerance", layout.DefaultYTolerance, "row clustering tolerance in PDF units")

	return cmd
}
