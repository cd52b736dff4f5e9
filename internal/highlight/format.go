package highlight

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/formatters"

	"github.com/zjrosen/themepark/internal/theme"
)

// Formatters lists the chroma formatter names Format accepts.
func Formatters() []string {
	return formatters.Names()
}

// Format highlights source with one of chroma's own formatters (html,
// terminal16m, svg, ...) using the colors s resolves in ctx.
func Format(w io.Writer, formatter string, s theme.Styler, ctx theme.Context, language, source string) error {
	f, ok := formatters.Registry[formatter]
	if !ok {
		return fmt.Errorf("unknown formatter %q", formatter)
	}

	style, err := ChromaStyle("themepark", s, ctx)
	if err != nil {
		return err
	}

	lexer := Lexer(language)
	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return fmt.Errorf("tokenising %s: %w", lexer.Config().Name, err)
	}
	if err := f.Format(w, style, it); err != nil {
		return fmt.Errorf("formatting with %s: %w", formatter, err)
	}
	return nil
}
