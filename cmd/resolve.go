package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/themepark/internal/render"
	"github.com/zjrosen/themepark/internal/theme"
)

var (
	resolveVariant variantFlags
	resolveJSON    bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <theme> [key|query ...]",
	Short: "Resolve style keys against a theme",
	Long: `Answer style queries against a theme and print the resulting color and
font for each.

A key is an editor key such as editor.background or a syntax key such as
syntax.keyword.control. A full query has the form
key|state|scheme|contrast and carries its own variant; --scheme and
--contrast apply to bare keys. With no keys, every key is resolved.

Examples:
  themepark resolve builtin editor.background syntax.comment
  themepark resolve "Solarized (Dark)" --scheme dark
  themepark resolve blackboard 'syntax.keyword|active|dark|increased'
  themepark resolve blackboard --json | jq '.[0].hex'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveVariant.register(resolveCmd, "light")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(resolveCmd)
}

type resolvedStyle struct {
	Query string `json:"query"`
	Color string `json:"color"`
	Hex   string `json:"hex"`
	Font  string `json:"font,omitempty"`
}

// parseQueries reads the key or query arguments. Bare keys use v.
func parseQueries(args []string, v theme.Variant) ([]theme.Query, bool, error) {
	if len(args) == 0 {
		keys := theme.AllKeys()
		out := make([]theme.Query, len(keys))
		for i, k := range keys {
			out[i] = theme.NewQuery(k, v)
		}
		return out, false, nil
	}

	var (
		out      []theme.Query
		explicit bool
	)
	for _, arg := range args {
		if strings.Contains(arg, "|") {
			q, err := theme.ParseQuery(arg)
			if err != nil {
				return nil, false, err
			}
			out = append(out, q)
			explicit = true
			continue
		}
		k, err := theme.ParseKey(arg)
		if err != nil {
			return nil, false, err
		}
		out = append(out, theme.NewQuery(k, v))
	}
	return out, explicit, nil
}

func runResolve(cmd *cobra.Command, args []string) error {
	v, err := resolveVariant.variant()
	if err != nil {
		return err
	}
	queries, explicit, err := parseQueries(args[1:], v)
	if err != nil {
		return err
	}

	entry, err := findTheme(cmd, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if resolveJSON {
		styles := make([]resolvedStyle, 0, len(queries))
		for _, q := range queries {
			st := entry.Styler.Style(q)
			rs := resolvedStyle{Query: q.String(), Color: st.Color.String(), Hex: st.Color.Hex()}
			if st.Font != nil {
				rs.Font = st.Font.String()
			}
			styles = append(styles, rs)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(styles)
	}

	r := render.New(out)
	if !explicit {
		keys := make([]theme.Key, len(queries))
		for i, q := range queries {
			keys[i] = q.Key
		}
		_, err = fmt.Fprint(out, r.Swatches(entry.Styler, theme.NewContext(v), keys))
		return err
	}
	for _, q := range queries {
		fmt.Fprintf(out, "%s\n", q)
		if _, err := fmt.Fprint(out, r.Swatches(entry.Styler, q.Context, []theme.Key{q.Key})); err != nil {
			return err
		}
	}
	return nil
}
