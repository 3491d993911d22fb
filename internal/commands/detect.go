package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finforge/ledgerline"
)

func newDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <statement.pdf>",
		Short: "Check whether a PDF is a supported bank statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := ledgerline.Open(args[0]).IsStatement()
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%s: not a supported statement", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: supported statement\n", args[0])
			return nil
		},
	}
}
