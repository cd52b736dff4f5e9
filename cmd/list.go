package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zjrosen/themepark/internal/catalog"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered themes",
	Long: `List every theme found in the configured theme directories, plus the
built-in constant theme (key "builtin").

Xcode themes named "<name> (Light)" and "<name> (Dark)" in the same folder
are listed once as a single theme supporting both schemes.

Examples:
  themepark list
  themepark list --json | jq '.[].key'`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

type listItem struct {
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	ID             string   `json:"id"`
	Format         string   `json:"format"`
	TypeIdentifier string   `json:"typeIdentifier,omitempty"`
	Variants       []string `json:"variants"`
	Paths          []string `json:"paths,omitempty"`
}

func toListItem(e catalog.Entry) listItem {
	item := listItem{
		Key:            e.Key,
		Name:           e.DisplayName,
		ID:             e.ID.String(),
		Format:         string(e.Format),
		TypeIdentifier: e.Format.TypeIdentifier(),
		Paths:          e.Paths,
	}
	for _, v := range e.Styler.SupportedVariants().Variants() {
		item.Variants = append(item.Variants, v.String())
	}
	return item
}

func runList(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog(cmd, nil)
	if err != nil {
		return err
	}

	items := make([]listItem, 0, cat.Len())
	for _, e := range cat.All() {
		items = append(items, toListItem(e))
	}

	out := cmd.OutOrStdout()
	if listJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME\tFORMAT\tVARIANTS")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", item.Key, item.Name, item.Format, strings.Join(item.Variants, ", "))
	}
	return w.Flush()
}
