package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/themepark/internal/syntax"
	"github.com/zjrosen/themepark/internal/testutil"
	"github.com/zjrosen/themepark/internal/theme"
)

func writeTextMate(t *testing.T, dir, file, name, background string) string {
	t.Helper()
	b := testutil.NewBuilder(t, dir).
		WithTextMate(file, testutil.Name(name), testutil.UUID(testutil.BlackboardUUID), testutil.Background(background))
	b.Build()
	return b.Path(file)
}

func writeXcode(t *testing.T, dir, file, background string) string {
	t.Helper()
	b := testutil.NewBuilder(t, dir).WithXcode(file, testutil.Background(background))
	b.Build()
	return b.Path(file)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("/x/Blackboard.tmTheme")
	require.NoError(t, err)
	require.Equal(t, FormatTextMate, f)

	f, err = FormatFromPath("Default (Dark).XCCOLORTHEME")
	require.NoError(t, err)
	require.Equal(t, FormatXcode, f)

	f, err = FormatFromPath("a.bbColorScheme")
	require.NoError(t, err)
	require.Equal(t, FormatBBEdit, f)

	_, err = FormatFromPath("theme.json")
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	require.Equal(t, "com.apple.dt.Xcode.color-theme", FormatXcode.TypeIdentifier())
	require.Empty(t, FormatBuiltin.TypeIdentifier())
}

func TestLoad_DiscoversAllFormats(t *testing.T) {
	dir := t.TempDir()
	writeTextMate(t, dir, "blackboard.tmTheme", "Blackboard", "#0C1021")
	testutil.NewBuilder(t, dir).WithBBEdit("Night.bbColorScheme").Build()
	writeXcode(t, dir, "Presentation.xccolortheme", "1 1 1 1")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.tmTheme"), 0o755))

	cat, err := NewLoader().Load(context.Background(), []string{dir, filepath.Join(dir, "missing"), ""})
	require.NoError(t, err)

	require.Equal(t, []string{BuiltinKey, "blackboard", "night", "presentation"}, cat.Keys())

	bb, ok := cat.Get("blackboard")
	require.True(t, ok)
	require.Equal(t, FormatTextMate, bb.Format)
	require.Equal(t, "a2c6baa7-90d0-4147-bbf5-96b0cd92d109", bb.ID.String())
	require.Equal(t, theme.NewVariantSet(theme.DarkVariant), bb.Styler.SupportedVariants())

	pres, _ := cat.Get("presentation")
	require.Equal(t, theme.NewVariantSet(theme.LightVariant), pres.Styler.SupportedVariants())
	require.NotEqual(t, bb.ID, pres.ID)
}

func TestLoad_PairsXcodeLightAndDark(t *testing.T) {
	dir := t.TempDir()
	light := writeXcode(t, dir, "Default (Light).xccolortheme", "1 1 1 1")
	dark := writeXcode(t, dir, "Default (Dark).xccolortheme", "0.1 0.1 0.1 1")
	writeXcode(t, dir, "Lonely (Dark).xccolortheme", "0 0 0 1")

	cat, err := NewLoader().Load(context.Background(), []string{dir})
	require.NoError(t, err)
	require.Equal(t, 3, cat.Len())

	e, err := cat.Find("Default")
	require.NoError(t, err)
	require.Equal(t, "default", e.Key)
	require.Equal(t, []string{light, dark}, e.Paths)
	require.Equal(t, theme.NewVariantSet(theme.LightVariant, theme.DarkVariant), e.Styler.SupportedVariants())

	bgLight := theme.ColorFor(e.Styler, theme.EditorBackground, theme.NewContext(theme.LightVariant))
	bgDark := theme.ColorFor(e.Styler, theme.EditorBackground, theme.NewContext(theme.DarkVariant))
	require.False(t, bgLight.IsDark())
	require.True(t, bgDark.IsDark())

	lonely, err := cat.Find("Lonely (Dark)")
	require.NoError(t, err)
	require.Equal(t, "lonely-dark", lonely.Key)
}

func TestLoad_ReportsBadFilesAndKeepsGoodOnes(t *testing.T) {
	dir := t.TempDir()
	writeTextMate(t, dir, "good.tmTheme", "Good", "#FFFFFF")
	bad := filepath.Join(dir, "bad.tmTheme")
	require.NoError(t, os.WriteFile(bad, []byte(`<plist version="1.0"><dict/></plist>`), 0o644))

	cat, err := NewLoader().Load(context.Background(), []string{dir})
	require.Error(t, err)
	require.Contains(t, err.Error(), bad)
	require.Equal(t, []string{BuiltinKey, "good"}, cat.Keys())
}

func TestLoad_DuplicateNamesGetUniqueKeys(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	writeTextMate(t, a, "one.tmTheme", "Same", "#000000")
	writeTextMate(t, b, "two.tmTheme", "Same", "#FFFFFF")

	cat, err := NewLoader().Load(context.Background(), []string{a, b})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{BuiltinKey, "same", "same-1"}, cat.Keys())
}

func TestLoader_CachesUntilInvalidated(t *testing.T) {
	dir := t.TempDir()
	path := writeTextMate(t, dir, "t.tmTheme", "Before", "#000000")
	loader := NewLoader()

	cat, err := loader.Load(context.Background(), []string{dir})
	require.NoError(t, err)
	_, ok := cat.Get("before")
	require.True(t, ok)

	writeTextMate(t, dir, "t.tmTheme", "After", "#000000")
	cat, err = loader.Load(context.Background(), []string{dir})
	require.NoError(t, err)
	_, ok = cat.Get("before")
	require.True(t, ok, "decoded file should come from the cache")

	loader.Invalidate(path)
	cat, err = loader.Load(context.Background(), []string{dir})
	require.NoError(t, err)
	_, ok = cat.Get("after")
	require.True(t, ok)
}

func TestBuiltin(t *testing.T) {
	e := Builtin()
	require.Equal(t, BuiltinKey, e.Key)
	require.Equal(t, Builtin().ID, e.ID)
	require.Equal(t, theme.NewVariantSet(theme.LightVariant, theme.DarkVariant), e.Styler.SupportedVariants())
}

func TestFind_NotFound(t *testing.T) {
	cat := assemble(Builtin(), nil)
	_, err := cat.Find("nope")
	require.Error(t, err)

	e, err := cat.Find("BUILT-IN")
	require.NoError(t, err)
	require.Equal(t, BuiltinKey, e.Key)

	e, err = cat.Find("builtin")
	require.NoError(t, err)
	require.Equal(t, BuiltinKey, e.Key)
}

func TestFind_ThemeNamedDefaultIsNotShadowedByBuiltin(t *testing.T) {
	dir := t.TempDir()
	light := writeXcode(t, dir, "Default (Light).xccolortheme", "1 1 1 1")
	dark := writeXcode(t, dir, "Default (Dark).xccolortheme", "0.1 0.1 0.1 1")

	cat, err := NewLoader().Load(context.Background(), []string{dir})
	require.NoError(t, err)
	require.Equal(t, []string{BuiltinKey, "default"}, cat.Keys())

	for _, name := range []string{"Default", "default", "DEFAULT"} {
		e, err := cat.Find(name)
		require.NoError(t, err, name)
		require.Equal(t, "default", e.Key, name)
		require.Equal(t, FormatXcode, e.Format, name)
		require.Equal(t, []string{light, dark}, e.Paths, name)
	}
}

func TestFind_DisplayNameBeatsSlug(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	writeTextMate(t, a, "one.tmTheme", "Ocean Dark", "#000000")
	writeTextMate(t, b, "two.tmTheme", "Ocean-Dark", "#000000")

	cat, err := NewLoader().Load(context.Background(), []string{a, b})
	require.NoError(t, err)

	e, err := cat.Find("ocean-dark")
	require.NoError(t, err)
	require.Equal(t, "ocean-dark", e.Key)

	e, err = cat.Find("OCEAN-DARK")
	require.NoError(t, err)
	require.Equal(t, "Ocean-Dark", e.DisplayName)
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Blackboard":         "blackboard",
		"Default (Light)":    "default-light",
		"  Solarized  Dark ": "solarized-dark",
		"Base16_Ocean":       "base16-ocean",
		"!!!":                "",
	}
	for in, want := range tests {
		require.Equal(t, want, slugify(in), in)
	}
}

func TestEnsureUniqueKey(t *testing.T) {
	used := map[string]int{"default": 1}
	require.Equal(t, "default-1", ensureUniqueKey("default", used))
	require.Equal(t, "x", ensureUniqueKey("x", used))
	require.Equal(t, "x-1", ensureUniqueKey("x", used))
	require.Equal(t, "x-2", ensureUniqueKey("x", used))
	require.Equal(t, "theme", ensureUniqueKey("", used))
}

func TestLoad_StandardFixtures(t *testing.T) {
	dir := testutil.NewBuilder(t, "").WithStandardThemes().Build()

	cat, err := NewLoader().Load(context.Background(), []string{dir})
	require.NoError(t, err)
	require.Equal(t, []string{BuiltinKey, "blackboard", "night", "presentation"}, cat.Keys())

	pres, err := cat.Find("Presentation")
	require.NoError(t, err)
	require.Equal(t, FormatXcode, pres.Format)
	require.Len(t, pres.Paths, 2)

	dark := theme.NewContext(theme.DarkVariant)
	f, ok := theme.FontFor(pres.Styler, theme.Syntax(syntax.KeywordControl), dark)
	require.True(t, ok)
	require.Equal(t, "SFMono-Bold", f.Name)
	require.True(t, theme.ColorFor(pres.Styler, theme.EditorBackground, dark).IsDark())
	require.False(t, theme.ColorFor(pres.Styler, theme.EditorBackground, theme.NewContext(theme.LightVariant)).IsDark())
}
