package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zjrosen/themepark/internal/highlight"
	"github.com/zjrosen/themepark/internal/log"
	"github.com/zjrosen/themepark/internal/render"
	"github.com/zjrosen/themepark/internal/theme"
)

var (
	previewLanguage  string
	previewFile      string
	previewScheme    string
	previewContrast  string
	previewFormatter string
	previewNoNumbers bool
	previewWidth     int
)

var previewCmd = &cobra.Command{
	Use:   "preview <theme>",
	Short: "Render highlighted source with a theme's colors",
	Long: `Highlight a code sample (or --file) and render it in the terminal using
the colors and font weights the theme resolves.

--scheme auto asks the terminal whether its background is dark. With
--formatter, chroma's own formatter is used instead (html, svg,
terminal16m, ...), which is handy for exporting.

Examples:
  themepark preview blackboard
  themepark preview "Solarized (Light)" --file main.go
  themepark preview blackboard --language python --scheme dark
  themepark preview blackboard --formatter html > preview.html`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewLanguage, "language", "l", "", "chroma lexer name (default: preview.language)")
	previewCmd.Flags().StringVar(&previewFile, "file", "", "source file to preview instead of the sample")
	previewCmd.Flags().StringVar(&previewScheme, "scheme", "", "auto, light or dark (default: preview.scheme)")
	previewCmd.Flags().StringVar(&previewContrast, "contrast", "", "standard or increased (default: preview.contrast)")
	previewCmd.Flags().StringVar(&previewFormatter, "formatter", "", "use a chroma formatter instead of the terminal renderer")
	previewCmd.Flags().BoolVar(&previewNoNumbers, "no-line-numbers", false, "hide the gutter")
	previewCmd.Flags().IntVar(&previewWidth, "width", 0, "pad lines to this width")
	rootCmd.AddCommand(previewCmd)
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// previewSource returns the language and text to highlight.
func previewSource() (string, string, error) {
	language := orDefault(previewLanguage, cfg.Preview.Language)
	if previewFile == "" {
		return language, highlight.Sample(language), nil
	}
	data, err := os.ReadFile(previewFile)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", previewFile, err)
	}
	if previewLanguage == "" {
		// let chroma match on the file name
		language = filepath.Base(previewFile)
	}
	return language, string(data), nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	entry, err := findTheme(cmd, args[0])
	if err != nil {
		return err
	}
	language, source, err := previewSource()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r := render.New(out)
	v, err := r.Variant(orDefault(previewScheme, cfg.Preview.Scheme), orDefault(previewContrast, cfg.Preview.Contrast))
	if err != nil {
		return err
	}
	if !entry.Styler.SupportedVariants().Has(v) {
		log.Debug(log.CatRender, "theme does not declare variant", "theme", entry.Key, "variant", v)
	}
	ctx := theme.NewContext(v)

	if previewFormatter != "" {
		return highlight.Format(out, previewFormatter, entry.Styler, ctx, language, source)
	}

	spans, err := highlight.Tokenize(language, source)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, r.Preview(entry.Styler, ctx, spans, render.PreviewOptions{
		LineNumbers: !previewNoNumbers,
		Width:       previewWidth,
	}))
	return err
}
