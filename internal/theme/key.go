// Package theme defines the query space a resolved editor theme answers:
// what is being styled (Key), under which appearance (Variant) and interaction
// state (ControlState), and the Style answer. Every resolver, wrapper and
// snapshot in themepark is a Styler.
package theme

import (
	"fmt"
	"strings"

	"github.com/zjrosen/themepark/internal/syntax"
)

type keyKind uint8

const (
	kindInvalid keyKind = iota
	kindEditorBackground
	kindEditorAccessoryForeground
	kindEditorAccessoryBackground
	kindEditorCursor
	kindGutterBackground
	kindGutterLabel
	kindSyntax
)

var keyNames = map[keyKind]string{
	kindEditorBackground:          "editor.background",
	kindEditorAccessoryForeground: "editor.accessoryForeground",
	kindEditorAccessoryBackground: "editor.accessoryBackground",
	kindEditorCursor:              "editor.cursor",
	kindGutterBackground:          "gutter.background",
	kindGutterLabel:               "gutter.label",
}

const syntaxPrefix = "syntax."

// Key identifies what is being styled. The zero Key is invalid.
type Key struct {
	kind keyKind
	spec syntax.Specifier
}

var (
	EditorBackground          = Key{kind: kindEditorBackground}
	EditorAccessoryForeground = Key{kind: kindEditorAccessoryForeground}
	EditorAccessoryBackground = Key{kind: kindEditorAccessoryBackground}
	EditorCursor              = Key{kind: kindEditorCursor}
	GutterBackground          = Key{kind: kindGutterBackground}
	GutterLabel               = Key{kind: kindGutterLabel}
)

// Syntax returns the key styling tokens classified as s.
func Syntax(s syntax.Specifier) Key {
	return Key{kind: kindSyntax, spec: s}
}

// Valid reports whether k is one of the closed set of keys.
func (k Key) Valid() bool {
	if k.kind == kindSyntax {
		return k.spec.Valid()
	}
	_, ok := keyNames[k.kind]
	return ok
}

// Specifier returns the syntax specifier of a syntax key.
func (k Key) Specifier() (syntax.Specifier, bool) {
	if k.kind != kindSyntax {
		return syntax.Invalid, false
	}
	return k.spec, true
}

// IsBackground reports whether k styles a surface rather than a foreground.
func (k Key) IsBackground() bool {
	switch k.kind {
	case kindEditorBackground, kindEditorAccessoryBackground, kindGutterBackground:
		return true
	}
	return false
}

func (k Key) String() string {
	if k.kind == kindSyntax {
		return syntaxPrefix + k.spec.String()
	}
	if name, ok := keyNames[k.kind]; ok {
		return name
	}
	return "invalid"
}

// ParseKey reads the form produced by Key.String.
func ParseKey(s string) (Key, error) {
	if rest, ok := strings.CutPrefix(s, syntaxPrefix); ok {
		spec, err := syntax.Parse(rest)
		if err != nil {
			return Key{}, fmt.Errorf("parsing key %q: %w", s, err)
		}
		return Syntax(spec), nil
	}
	for kind, name := range keyNames {
		if name == s {
			return Key{kind: kind}, nil
		}
	}
	return Key{}, fmt.Errorf("unknown key %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid key")
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// AllKeys enumerates every key: the editor and gutter keys followed by one
// syntax key per specifier.
func AllKeys() []Key {
	keys := []Key{
		EditorBackground,
		EditorAccessoryForeground,
		EditorAccessoryBackground,
		EditorCursor,
		GutterBackground,
		GutterLabel,
	}
	for _, s := range syntax.All() {
		keys = append(keys, Syntax(s))
	}
	return keys
}
