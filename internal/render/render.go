// Package render draws resolved theme styles to a terminal with lipgloss.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/zjrosen/themepark/internal/color"
	"github.com/zjrosen/themepark/internal/font"
	"github.com/zjrosen/themepark/internal/highlight"
	"github.com/zjrosen/themepark/internal/log"
	"github.com/zjrosen/themepark/internal/theme"
)

// Renderer renders styles for one output.
type Renderer struct {
	r *lipgloss.Renderer
}

// New creates a renderer for w. Options override termenv detection, e.g.
// termenv.WithProfile(termenv.TrueColor).
func New(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{r: lipgloss.NewRenderer(w, opts...)}
}

// Lipgloss exposes the underlying renderer.
func (r *Renderer) Lipgloss() *lipgloss.Renderer {
	return r.r
}

// Variant resolves the preview variant. scheme "auto" (or empty) asks the
// terminal whether its background is dark.
func (r *Renderer) Variant(scheme, contrast string) (theme.Variant, error) {
	var v theme.Variant
	switch strings.ToLower(scheme) {
	case "", "auto":
		v.ColorScheme = theme.Light
		if r.r.HasDarkBackground() {
			v.ColorScheme = theme.Dark
		}
		log.Debug(log.CatRender, "detected terminal scheme", "scheme", v.ColorScheme)
	default:
		cs, err := theme.ParseColorScheme(scheme)
		if err != nil {
			return theme.Variant{}, err
		}
		v.ColorScheme = cs
	}
	if contrast != "" {
		c, err := theme.ParseContrast(contrast)
		if err != nil {
			return theme.Variant{}, err
		}
		v.Contrast = c
	}
	return v, nil
}

// Color converts c to a lipgloss color, flattening alpha over bg.
func Color(c, bg color.Color) lipgloss.Color {
	r, g, b, a := c.RGBA()
	if a < 1 {
		br, bgG, bb, _ := bg.RGBA()
		r = r*a + br*(1-a)
		g = g*a + bgG*(1-a)
		b = b*a + bb*(1-a)
	}
	return lipgloss.Color(color.RGBA(r, g, b, 1).Hex())
}

// AdaptiveColor resolves key in the light and dark variants of contrast.
func AdaptiveColor(s theme.Styler, key theme.Key, contrast theme.Contrast) lipgloss.AdaptiveColor {
	light := theme.NewContext(theme.Variant{ColorScheme: theme.Light, Contrast: contrast})
	dark := theme.NewContext(theme.Variant{ColorScheme: theme.Dark, Contrast: contrast})
	lightBg := theme.ColorFor(s, theme.EditorBackground, light)
	darkBg := theme.ColorFor(s, theme.EditorBackground, dark)
	return lipgloss.AdaptiveColor{
		Light: string(Color(theme.ColorFor(s, key, light), lightBg)),
		Dark:  string(Color(theme.ColorFor(s, key, dark), darkBg)),
	}
}

// Style turns a resolved style into a lipgloss foreground on bg. Bold and
// italic are read off the font name.
func (r *Renderer) Style(st theme.Style, bg color.Color) lipgloss.Style {
	ls := r.r.NewStyle().
		Foreground(Color(st.Color, bg)).
		Background(Color(bg, bg))
	if st.Font != nil {
		ls = ls.Bold(isBold(st.Font)).Italic(isItalic(st.Font))
	}
	return ls
}

func isBold(f *font.Font) bool {
	n := strings.ToLower(f.Name)
	return strings.Contains(n, "bold") || strings.Contains(n, "heavy")
}

func isItalic(f *font.Font) bool {
	n := strings.ToLower(f.Name)
	return strings.Contains(n, "italic") || strings.Contains(n, "oblique")
}

// PreviewOptions controls Preview.
type PreviewOptions struct {
	LineNumbers bool
	Width       int // minimum code width; lines are padded with the background
}

// Preview renders highlighted spans as an editor would show them.
func (r *Renderer) Preview(s theme.Styler, ctx theme.Context, spans []highlight.Span, opts PreviewOptions) string {
	bg := theme.ColorFor(s, theme.EditorBackground, ctx)
	gutterBg := theme.ColorFor(s, theme.GutterBackground, ctx)
	gutter := r.r.NewStyle().
		Foreground(Color(theme.ColorFor(s, theme.GutterLabel, ctx), gutterBg)).
		Background(Color(gutterBg, gutterBg)).
		Padding(0, 1)
	fill := r.r.NewStyle().Background(Color(bg, bg))

	styles := make(map[theme.Key]lipgloss.Style)
	styleFor := func(k theme.Key) lipgloss.Style {
		if ls, ok := styles[k]; ok {
			return ls
		}
		ls := r.Style(s.Style(theme.Query{Key: k, Context: ctx}), bg)
		styles[k] = ls
		return ls
	}

	lines := highlight.Lines(expandTabs(spans))
	if n := len(lines); n > 1 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}

	width := opts.Width
	for _, line := range lines {
		if w := plainWidth(line); w > width {
			width = w
		}
	}
	numWidth := len(strconv.Itoa(len(lines)))

	var b strings.Builder
	for i, line := range lines {
		if opts.LineNumbers {
			b.WriteString(gutter.Render(fmt.Sprintf("%*d", numWidth, i+1)))
		}
		var code strings.Builder
		for _, sp := range line {
			code.WriteString(styleFor(theme.Syntax(sp.Specifier)).Render(sp.Text))
		}
		if pad := width - ansi.StringWidth(code.String()); pad > 0 {
			code.WriteString(fill.Render(strings.Repeat(" ", pad)))
		}
		b.WriteString(code.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// expandTabs matches lipgloss, which renders a tab as four spaces.
func expandTabs(spans []highlight.Span) []highlight.Span {
	out := make([]highlight.Span, len(spans))
	for i, sp := range spans {
		sp.Text = strings.ReplaceAll(sp.Text, "\t", "    ")
		out[i] = sp
	}
	return out
}

func plainWidth(line []highlight.Span) int {
	w := 0
	for _, sp := range line {
		w += ansi.StringWidth(sp.Text)
	}
	return w
}

// Swatches renders one row per key: a color block, the key and its value.
func (r *Renderer) Swatches(s theme.Styler, ctx theme.Context, keys []theme.Key) string {
	bg := theme.ColorFor(s, theme.EditorBackground, ctx)

	nameWidth := 0
	for _, k := range keys {
		if w := len(k.String()); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	for _, k := range keys {
		st := s.Style(theme.Query{Key: k, Context: ctx})
		block := r.r.NewStyle().Background(Color(st.Color, bg)).Render("    ")
		b.WriteString(block)
		b.WriteString(fmt.Sprintf(" %-*s %s", nameWidth, k, st.Color))
		if st.Font != nil {
			b.WriteString("  " + st.Font.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
