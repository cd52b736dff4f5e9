package theme

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/themepark/internal/syntax"
)

func TestAllKeys(t *testing.T) {
	keys := AllKeys()
	require.Len(t, keys, 60)

	seen := make(map[Key]bool, len(keys))
	for _, k := range keys {
		require.True(t, k.Valid(), k.String())
		require.False(t, seen[k])
		seen[k] = true
	}
}

func TestKey_String(t *testing.T) {
	require.Equal(t, "editor.background", EditorBackground.String())
	require.Equal(t, "gutter.label", GutterLabel.String())
	require.Equal(t, "syntax.operator.call.function", Syntax(syntax.OperatorCallFunction).String())
	require.Equal(t, "invalid", Key{}.String())
}

func TestParseKey(t *testing.T) {
	for _, k := range AllKeys() {
		parsed, err := ParseKey(k.String())
		require.NoError(t, err)
		require.Equal(t, k, parsed)
	}

	_, err := ParseKey("editor.foreground")
	require.Error(t, err)
	_, err = ParseKey("syntax.keyword.bogus")
	require.Error(t, err)
}

func TestKey_IsBackground(t *testing.T) {
	require.True(t, EditorBackground.IsBackground())
	require.True(t, EditorAccessoryBackground.IsBackground())
	require.True(t, GutterBackground.IsBackground())
	require.False(t, EditorCursor.IsBackground())
	require.False(t, GutterLabel.IsBackground())
	require.False(t, Syntax(syntax.Text).IsBackground())
}

func TestKey_Specifier(t *testing.T) {
	s, ok := Syntax(syntax.Comment).Specifier()
	require.True(t, ok)
	require.Equal(t, syntax.Comment, s)

	_, ok = EditorCursor.Specifier()
	require.False(t, ok)
}
