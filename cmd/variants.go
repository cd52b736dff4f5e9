package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var variantsCmd = &cobra.Command{
	Use:   "variants <theme>",
	Short: "Show the variants a theme supports",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := findTheme(cmd, args[0])
		if err != nil {
			return err
		}
		for _, v := range entry.Styler.SupportedVariants().Variants() {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(variantsCmd)
}
