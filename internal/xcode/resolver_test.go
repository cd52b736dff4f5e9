package xcode

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/themepark/internal/color"
	"github.com/zjrosen/themepark/internal/font"
	"github.com/zjrosen/themepark/internal/syntax"
	"github.com/zjrosen/themepark/internal/theme"
)

func presentationDark() *Document {
	return &Document{
		Version:          1,
		Background:       "0.121569 0.121569 0.141176 1",
		InsertionPoint:   "1 1 1 1",
		MarkupTextNormal: "0.9 0.9 0.9 1",
		Selection:        "0.317647 0.356863 0.439216 1",
		SyntaxColors: map[string]string{
			IDPlain:      "1 1 1 0.85",
			IDComment:    "0.423529 0.47451 0.52549 1",
			IDCommentDoc: "0.423529 0.47451 0.52549 1",
			IDKeyword:    "0.988235 0.372549 0.639216 1",
			IDString:     "0.988235 0.415686 0.364706 1",
			IDFunction:   "0.403922 0.717647 0.643137 1",
			IDNumber:     "not a color",
		},
		SyntaxFonts: map[string]string{
			IDPlain:   "SFMono-Regular - 13.0",
			IDKeyword: "SFMono-Bold - 13.0",
			IDComment: "bogus",
		},
	}
}

func TestResolver_Colors(t *testing.T) {
	r := New(presentationDark())
	ctx := theme.NewContext(theme.DarkVariant)

	require.Equal(t, color.RGBA(0.121569, 0.121569, 0.141176, 1), theme.ColorFor(r, theme.EditorBackground, ctx))
	require.Equal(t, theme.ColorFor(r, theme.EditorBackground, ctx), theme.ColorFor(r, theme.GutterBackground, ctx))
	require.Equal(t, color.RGBA(1, 1, 1, 1), theme.ColorFor(r, theme.EditorCursor, ctx))
	require.Equal(t, color.RGBA(0.9, 0.9, 0.9, 1), theme.ColorFor(r, theme.EditorAccessoryForeground, ctx))
	require.Equal(t, color.RGBA(1, 1, 1, 0.85), theme.ColorFor(r, theme.GutterLabel, ctx))
	require.Equal(t, color.RGBA(0.988235, 0.372549, 0.639216, 1), theme.ColorFor(r, theme.Syntax(syntax.KeywordControl), ctx))
	require.Equal(t, color.RGBA(0.988235, 0.372549, 0.639216, 1), theme.ColorFor(r, theme.Syntax(syntax.LiteralBoolean), ctx))
	require.Equal(t, color.RGBA(0.403922, 0.717647, 0.643137, 1), theme.ColorFor(r, theme.Syntax(syntax.OperatorCallMethod), ctx))

	// unparseable number color widens past literal to plain
	require.Equal(t, color.RGBA(1, 1, 1, 0.85), theme.ColorFor(r, theme.Syntax(syntax.LiteralNumberFloat), ctx))
	// invisibles are unset and follow plain
	require.Equal(t, color.RGBA(1, 1, 1, 0.85), theme.ColorFor(r, theme.Syntax(syntax.Invisible), ctx))

	sel, ok := r.Selection()
	require.True(t, ok)
	require.Equal(t, color.RGBA(0.317647, 0.356863, 0.439216, 1), sel)
	_, ok = r.LineHighlight()
	require.False(t, ok)

	require.Equal(t, theme.NewVariantSet(theme.DarkVariant), r.SupportedVariants())
}

func TestResolver_Fonts(t *testing.T) {
	r := New(presentationDark())
	ctx := theme.NewContext(theme.DarkVariant)

	f, ok := theme.FontFor(r, theme.Syntax(syntax.KeywordImport), ctx)
	require.True(t, ok)
	require.Equal(t, font.Font{Name: "SFMono-Bold", Size: 13}, f)

	// comment font is malformed, so the plain font applies
	f, ok = theme.FontFor(r, theme.Syntax(syntax.CommentLine), ctx)
	require.True(t, ok)
	require.Equal(t, font.Font{Name: "SFMono-Regular", Size: 13}, f)

	f, ok = theme.FontFor(r, theme.EditorCursor, ctx)
	require.True(t, ok)
	require.Equal(t, "SFMono-Regular", f.Name)

	noFonts := New(&Document{Background: "1 1 1 1"})
	_, ok = theme.FontFor(noFonts, theme.Syntax(syntax.Keyword), ctx)
	require.False(t, ok)
}

func TestResolver_EmptyDocumentFallsBack(t *testing.T) {
	r := New(&Document{})
	for _, q := range theme.AllQueries() {
		got := r.Style(q)
		want := theme.Fallback(q.Key).Color
		if q.Key == theme.EditorAccessoryBackground {
			want = theme.AccessoryBackground(want)
		}
		require.Equal(t, want, got.Color, q.String())
		require.Nil(t, got.Font)
	}
	require.Equal(t, theme.NewVariantSet(theme.LightVariant), r.SupportedVariants())
}

func TestResolver_NonFiniteComponentsFallBack(t *testing.T) {
	doc := presentationDark()
	doc.Background = "NaN NaN NaN NaN"
	doc.SyntaxColors[IDKeyword] = "1 1 Inf 1"
	r := New(doc)
	ctx := theme.NewContext(theme.DarkVariant)

	require.Equal(t, theme.Fallback(theme.EditorBackground).Color, theme.ColorFor(r, theme.EditorBackground, ctx))
	require.Equal(t, color.RGBA(1, 1, 1, 0.85), theme.ColorFor(r, theme.Syntax(syntax.KeywordControl), ctx))
}

func TestResolver_IgnoresControlState(t *testing.T) {
	r := New(presentationDark())
	rapid.Check(t, func(t *rapid.T) {
		key := rapid.SampledFrom(theme.AllKeys()).Draw(t, "key")
		v := rapid.SampledFrom(theme.AllVariants()).Draw(t, "variant")

		active := r.Style(theme.Query{Key: key, Context: theme.Context{ControlState: theme.Active, Variant: v}})
		for _, state := range theme.AllControlStates() {
			got := r.Style(theme.Query{Key: key, Context: theme.Context{ControlState: state, Variant: v}})
			if !got.Equal(active) {
				t.Fatalf("%v differs under %v", key, state)
			}
			if got.Color.IsZero() {
				t.Fatalf("no color for %v", key)
			}
		}
	})
}

func TestIdentifiersFor(t *testing.T) {
	require.Equal(t, []string{IDCommentDoc, IDComment, IDPlain}, IdentifiersFor(syntax.CommentSemanticallySignificant))
	require.Equal(t, []string{IDPlain}, IdentifiersFor(syntax.Text))
	require.Equal(t, []string{IDPlain}, IdentifiersFor(syntax.PunctuationDelimiter))
	require.Equal(t, []string{IDMacro, IDPlain}, IdentifiersFor(syntax.OperatorCallMacro))
}

func TestDecode_RoundTrip(t *testing.T) {
	doc := presentationDark()
	data, err := Encode(doc)
	require.NoError(t, err)
	require.Contains(t, string(data), "DVTSourceTextSyntaxColors")

	back, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, doc, back)

	_, err = Decode([]byte("{"))
	require.Error(t, err)
}
