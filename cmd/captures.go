package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/themepark/internal/syntax"
)

var capturesCmd = &cobra.Command{
	Use:   "captures [name ...]",
	Short: "Map tree-sitter capture names to syntax specifiers",
	Long: `Print the syntax specifier each tree-sitter highlight capture maps to.

With no arguments, the whole table is printed. Unknown capture names map
to text.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			names = syntax.CaptureNames()
		}
		out := cmd.OutOrStdout()
		for _, name := range names {
			fmt.Fprintf(out, "%s\t%s\n", name, syntax.ForCaptureOr(name, syntax.Text))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(capturesCmd)
}
