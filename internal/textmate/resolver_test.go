package textmate

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/themepark/internal/color"
	"github.com/zjrosen/themepark/internal/syntax"
	"github.com/zjrosen/themepark/internal/theme"
)

func hex(t *testing.T, s string) color.Color {
	t.Helper()
	c, err := color.ParseHex(s)
	require.NoError(t, err)
	return c
}

func scenarioDoc() *Document {
	return &Document{
		Name: "Scenario",
		Settings: []Setting{
			{Settings: map[string]string{"background": "#0C1021", "foreground": "#F8F8F8"}},
			{Scope: "comment", Settings: map[string]string{"foreground": "#AEAEAE"}},
		},
	}
}

func TestResolver_Scenario(t *testing.T) {
	r := New(scenarioDoc())

	for _, ctx := range theme.AllContexts() {
		require.Equal(t, hex(t, "#0C1021"), theme.ColorFor(r, theme.EditorBackground, ctx))
		require.Equal(t, hex(t, "#F8F8F8"), theme.ColorFor(r, theme.Syntax(syntax.Text), ctx))
		require.Equal(t, hex(t, "#AEAEAE"), theme.ColorFor(r, theme.Syntax(syntax.Comment), ctx))
	}
	require.Equal(t, theme.NewVariantSet(theme.DarkVariant), r.SupportedVariants())
}

func TestResolver_Widening(t *testing.T) {
	r := New(scenarioDoc())
	ctx := theme.NewContext(theme.DarkVariant)

	// comment.line has no entry of its own and widens to comment
	require.Equal(t, hex(t, "#AEAEAE"), theme.ColorFor(r, theme.Syntax(syntax.CommentLine), ctx))
	require.Equal(t, hex(t, "#AEAEAE"), theme.ColorFor(r, theme.Syntax(syntax.CommentSemanticallySignificant), ctx))
	// keyword has no entry at all and falls back to the global foreground
	require.Equal(t, hex(t, "#F8F8F8"), theme.ColorFor(r, theme.Syntax(syntax.KeywordOperatorCallFunction), ctx))
}

func TestResolver_Blackboard(t *testing.T) {
	doc, err := Decode([]byte(blackboardXML))
	require.NoError(t, err)
	r := New(doc)
	ctx := theme.NewContext(theme.DarkVariant)

	require.Equal(t, hex(t, "#FFFFFFA6"), theme.ColorFor(r, theme.EditorCursor, ctx))
	require.Equal(t, hex(t, "#FFFFFF40"), theme.ColorFor(r, theme.Syntax(syntax.Invisible), ctx))
	require.Equal(t, hex(t, "#FBDE2D"), theme.ColorFor(r, theme.Syntax(syntax.KeywordControl), ctx))
	require.Equal(t, hex(t, "#FBDE2D"), theme.ColorFor(r, theme.Syntax(syntax.KeywordDefinition), ctx))
	require.Equal(t, hex(t, "#61CE3C"), theme.ColorFor(r, theme.Syntax(syntax.LiteralStringEscape), ctx))
	require.Equal(t, hex(t, "#D8FA3C"), theme.ColorFor(r, theme.Syntax(syntax.LiteralNumber), ctx))

	// no gutter entries: gutter follows background, label follows foreground
	require.Equal(t, hex(t, "#0C1021"), theme.ColorFor(r, theme.GutterBackground, ctx))
	require.Equal(t, hex(t, "#F8F8F8"), theme.ColorFor(r, theme.GutterLabel, ctx))
	require.Equal(t, hex(t, "#0C1021").Emphasize(0.1), theme.ColorFor(r, theme.EditorAccessoryBackground, ctx))

	sel, ok := r.GlobalColor(SettingSelection)
	require.True(t, ok)
	require.Equal(t, hex(t, "#253B76"), sel)
}

func TestResolver_FirstMatchingEntryWins(t *testing.T) {
	r := New(&Document{Settings: []Setting{
		{Settings: map[string]string{"foreground": "#000000"}},
		{Scope: "string.quoted, string", Settings: map[string]string{"foreground": "#111111"}},
		{Scope: "string", Settings: map[string]string{"foreground": "#222222"}},
		{Scope: "stringy", Settings: map[string]string{"foreground": "#333333"}},
	}})

	c, ok := r.ScopeColor("string")
	require.True(t, ok)
	require.Equal(t, hex(t, "#111111"), c)

	_, ok = r.ScopeColor("strin")
	require.False(t, ok)
}

func TestResolver_UnparseableIsAbsent(t *testing.T) {
	r := New(&Document{Settings: []Setting{
		{Settings: map[string]string{"background": "#nothex", "foreground": "#FFFFFF", "caret": "rgba(1,2)"}},
		{Scope: "comment", Settings: map[string]string{"foreground": "garbage"}},
		{Scope: "comment", Settings: map[string]string{"foreground": "#00FF00"}},
	}})
	ctx := theme.NewContext(theme.LightVariant)

	require.Equal(t, theme.Fallback(theme.EditorBackground).Color, theme.ColorFor(r, theme.EditorBackground, ctx))
	require.Equal(t, hex(t, "#FFFFFF"), theme.ColorFor(r, theme.EditorCursor, ctx))
	require.Equal(t, hex(t, "#00FF00"), theme.ColorFor(r, theme.Syntax(syntax.Comment), ctx))
	require.Equal(t, theme.NewVariantSet(theme.LightVariant), r.SupportedVariants())
}

func TestResolver_EmptyGlobalsFallBack(t *testing.T) {
	r := New(&Document{Settings: []Setting{{Scope: "comment", Settings: map[string]string{}}}})
	for _, q := range theme.AllQueries() {
		got := r.Style(q)
		if q.Key == theme.EditorAccessoryBackground {
			require.Equal(t, theme.AccessoryBackground(theme.Fallback(q.Key).Color), got.Color)
			continue
		}
		require.Equal(t, theme.Fallback(q.Key).Color, got.Color, q.String())
	}
}

func TestResolver_Totality(t *testing.T) {
	all := theme.AllQueries()
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.SampledFrom([]string{"#0C1021", "#fff", "rgba(0,0,0,1)", "", "bogus", "0.1 0.2 0.3 1"})
		doc := &Document{Settings: []Setting{
			{Settings: map[string]string{
				"background": raw.Draw(t, "bg"),
				"foreground": raw.Draw(t, "fg"),
			}},
			{Scope: rapid.SampledFrom(ScopesFor(syntax.KeywordOperatorCallFunction)).Draw(t, "scope"),
				Settings: map[string]string{"foreground": raw.Draw(t, "scoped")}},
		}}
		r := New(doc)
		q := rapid.SampledFrom(all).Draw(t, "query")
		if r.Style(q).Color.IsZero() {
			t.Fatalf("no color for %v", q)
		}
		if r.Style(q).Font != nil {
			t.Fatalf("textmate resolver returned a font for %v", q)
		}
	})
}

func TestScopesFor_FollowsLineage(t *testing.T) {
	scopes := ScopesFor(syntax.LiteralNumberFloat)
	require.Equal(t, []string{"constant.numeric.float", "constant.numeric", "constant"}, scopes)
	require.Empty(t, ScopesFor(syntax.Text))
}
