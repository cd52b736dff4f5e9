package highlight

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/themepark/internal/color"
	"github.com/zjrosen/themepark/internal/font"
	"github.com/zjrosen/themepark/internal/syntax"
	"github.com/zjrosen/themepark/internal/theme"
)

type specStyler struct {
	colors map[syntax.Specifier]color.Color
	fonts  map[syntax.Specifier]*font.Font
	bg     color.Color
}

func (s specStyler) Style(q theme.Query) theme.Style {
	if q.Key == theme.EditorBackground {
		return theme.Style{Color: s.bg}
	}
	spec, ok := q.Key.Specifier()
	if !ok {
		return theme.Fallback(q.Key)
	}
	for _, n := range spec.Lineage() {
		if c, ok := s.colors[n]; ok {
			return theme.Style{Color: c, Font: s.fonts[n]}
		}
	}
	return theme.Style{Color: color.RGBA(1, 1, 1, 1)}
}

func (s specStyler) SupportedVariants() theme.VariantSet {
	return theme.SchemeFor(s.bg)
}

func TestForToken(t *testing.T) {
	tests := []struct {
		tt   chroma.TokenType
		want syntax.Specifier
	}{
		{chroma.Keyword, syntax.Keyword},
		{chroma.KeywordNamespace, syntax.KeywordImport},
		{chroma.CommentSingle, syntax.CommentLine},
		{chroma.LiteralNumberFloat, syntax.LiteralNumberFloat},
		{chroma.LiteralStringDouble, syntax.LiteralString},
		{chroma.LiteralStringRegex, syntax.LiteralRegularExpression},
		{chroma.NameFunction, syntax.DefinitionFunction},
		{chroma.GenericHeading, syntax.Text},
		{chroma.CommentPreprocFile, syntax.LiteralStringURI},
		{chroma.TokenType(99999), syntax.Text},
	}
	for _, tt := range tests {
		t.Run(tt.tt.String(), func(t *testing.T) {
			require.Equal(t, tt.want, ForToken(tt.tt))
		})
	}
}

func TestForToken_AlwaysValid(t *testing.T) {
	for _, tt := range TokenTypes() {
		require.True(t, ForToken(tt).Valid(), "token %s", tt)
	}
}

func TestStyleEntries(t *testing.T) {
	s := specStyler{
		bg: color.RGBA(0, 0, 0, 1),
		colors: map[syntax.Specifier]color.Color{
			syntax.Text:    color.RGBA(1, 1, 1, 1),
			syntax.Keyword: color.RGBA(1, 0, 0, 1),
			syntax.Comment: color.RGBA(0, 1, 0, 0.5),
		},
		fonts: map[syntax.Specifier]*font.Font{
			syntax.Keyword: {Name: "SFMono-Bold", Size: 12},
		},
	}
	entries := StyleEntries(s, theme.NewContext(theme.DarkVariant))

	require.Equal(t, "#ffffff bg:#000000", entries[chroma.Background])
	require.Equal(t, "#ff0000 bold", entries[chroma.Keyword])
	require.Equal(t, "#ff0000 bold", entries[chroma.KeywordReserved], "keyword.control widens to keyword")
	require.Equal(t, "#008000", entries[chroma.CommentSingle], "translucent colors flatten over the background")

	style, err := ChromaStyle("blackboard", s, theme.NewContext(theme.DarkVariant))
	require.NoError(t, err)
	require.Equal(t, "blackboard", style.Name)
	kw := style.Get(chroma.Keyword)
	require.Equal(t, "#ff0000", kw.Colour.String())
	require.Equal(t, chroma.Yes, kw.Bold)
}

func TestFontModifiers(t *testing.T) {
	require.Empty(t, fontModifiers(nil))
	require.Empty(t, fontModifiers(&font.Font{Name: "Menlo-Regular", Size: 11}))
	require.Equal(t, "bold italic", fontModifiers(&font.Font{Name: "SFMono-BoldItalic", Size: 11}))
	require.Equal(t, "italic", fontModifiers(&font.Font{Name: "Menlo-Oblique", Size: 11}))
}

func TestTokenize_Go(t *testing.T) {
	src := "// hi\nfunc main() { return 42 }\n"
	spans, err := Tokenize("go", src)
	require.NoError(t, err)

	var b strings.Builder
	found := map[syntax.Specifier]bool{}
	for _, sp := range spans {
		b.WriteString(sp.Text)
		found[sp.Specifier] = true
	}
	require.Equal(t, src, b.String())
	require.True(t, found[syntax.CommentLine])
	require.True(t, found[syntax.KeywordDefinition])
	require.True(t, found[syntax.LiteralNumberInteger])
}

func TestTokenize_UnknownLanguageFallsBack(t *testing.T) {
	spans, err := Tokenize("no-such-language", "plain text")
	require.NoError(t, err)
	require.NotEmpty(t, spans)
	for _, sp := range spans {
		require.Equal(t, syntax.Text, sp.Specifier)
	}
}

func TestLines(t *testing.T) {
	spans := []Span{
		{Text: "a\nb", Specifier: syntax.Keyword},
		{Text: "c\n", Specifier: syntax.Comment},
	}
	lines := Lines(spans)
	require.Len(t, lines, 3)
	require.Equal(t, "a", lines[0][0].Text)
	require.Equal(t, []Span{{Text: "b", Specifier: syntax.Keyword}, {Text: "c", Specifier: syntax.Comment}}, lines[1])
	require.Empty(t, lines[2])
}

func TestSample(t *testing.T) {
	require.Contains(t, Sample("Go"), "package demo")
	require.Contains(t, Sample("swift"), "struct Greeter")
	require.Equal(t, Sample("go"), Sample("cobol"))
}

func TestFormat(t *testing.T) {
	s := specStyler{
		bg:     color.RGBA(0x10/255.0, 0x20/255.0, 0x30/255.0, 1),
		colors: map[syntax.Specifier]color.Color{syntax.Keyword: color.RGBA(1, 0, 0, 1)},
	}
	ctx := theme.NewContext(theme.DarkVariant)

	var b strings.Builder
	require.NoError(t, Format(&b, "html", s, ctx, "go", "package main\n"))
	require.Contains(t, b.String(), "#102030")
	require.Contains(t, b.String(), "#ff0000")

	b.Reset()
	require.NoError(t, Format(&b, "noop", s, ctx, "go", "package main\n"))
	require.Equal(t, "package main\n", b.String())

	require.Error(t, Format(&b, "nope", s, ctx, "go", "x"))
	require.Contains(t, Formatters(), "terminal16m")
}
