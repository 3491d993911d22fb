// Package commands wires the ledgerline CLI verbs.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finforge/ledgerline/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ledgerline",
		Short:   "Extract bank-statement transactions from PDF content streams",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newExtractCommand())
	rootCmd.AddCommand(newDetectCommand())
	rootCmd.AddCommand(newRowsCommand())

	return rootCmd
}
