package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"

	"github.com/zjrosen/themepark/internal/color"
	"github.com/zjrosen/themepark/internal/font"
	"github.com/zjrosen/themepark/internal/theme"
)

// ChromaStyle renders s, as seen in context ctx, into a chroma style named
// name. Every mapped token type gets the foreground of its specifier; the
// background comes from the editor background.
func ChromaStyle(name string, s theme.Styler, ctx theme.Context) (*chroma.Style, error) {
	entries := StyleEntries(s, ctx)
	style, err := chroma.NewStyle(name, entries)
	if err != nil {
		return nil, fmt.Errorf("building chroma style %q: %w", name, err)
	}
	return style, nil
}

// StyleEntries returns the raw chroma entries ChromaStyle builds from.
func StyleEntries(s theme.Styler, ctx theme.Context) chroma.StyleEntries {
	bg := theme.ColorFor(s, theme.EditorBackground, ctx)
	fg := theme.ColorFor(s, theme.Syntax(ForToken(chroma.Text)), ctx)

	entries := chroma.StyleEntries{
		chroma.Background: opaqueHex(fg, bg) + " bg:" + opaqueHex(bg, bg),
	}
	for _, tt := range TokenTypes() {
		st := s.Style(theme.Query{Key: theme.Syntax(ForToken(tt)), Context: ctx})
		entry := opaqueHex(st.Color, bg)
		if mods := fontModifiers(st.Font); mods != "" {
			entry += " " + mods
		}
		entries[tt] = entry
	}
	return entries
}

// opaqueHex flattens c over bg and formats it as #rrggbb, the only form
// chroma parses.
func opaqueHex(c, bg color.Color) string {
	r, g, b, a := c.RGBA()
	if a < 1 {
		br, bgG, bb, _ := bg.RGBA()
		r = r*a + br*(1-a)
		g = g*a + bgG*(1-a)
		b = b*a + bb*(1-a)
	}
	return color.RGBA(r, g, b, 1).Hex()
}

// fontModifiers reads weight and slant off a face name such as
// "SFMono-BoldItalic".
func fontModifiers(f *font.Font) string {
	if f == nil {
		return ""
	}
	name := strings.ToLower(f.Name)
	var mods []string
	if strings.Contains(name, "bold") || strings.Contains(name, "heavy") || strings.Contains(name, "semibold") {
		mods = append(mods, "bold")
	}
	if strings.Contains(name, "italic") || strings.Contains(name, "oblique") {
		mods = append(mods, "italic")
	}
	return strings.Join(mods, " ")
}
