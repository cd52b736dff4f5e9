// Package testutil writes theme fixture directories for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/themepark/internal/bbedit"
	"github.com/zjrosen/themepark/internal/textmate"
	"github.com/zjrosen/themepark/internal/xcode"
)

type fileData struct {
	name string
	data []byte
}

// Builder accumulates theme files and writes them into a directory.
type Builder struct {
	t     *testing.T
	dir   string
	files []fileData
}

// NewBuilder creates a builder writing into dir, or into a fresh temp dir
// when dir is empty.
func NewBuilder(t *testing.T, dir string) *Builder {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	return &Builder{t: t, dir: dir}
}

// Dir is the directory the builder writes into.
func (b *Builder) Dir() string {
	return b.dir
}

// Path returns the full path of a fixture file.
func (b *Builder) Path(file string) string {
	return filepath.Join(b.dir, file)
}

// WithTextMate adds a .tmTheme file.
func (b *Builder) WithTextMate(file string, opts ...ThemeOption) *Builder {
	b.t.Helper()
	d := themeData{name: "Fixture", background: "#0C1021", foreground: "#F8F8F8"}
	for _, opt := range opts {
		opt(&d)
	}

	global := map[string]string{}
	set := func(k, v string) {
		if v != "" {
			global[k] = v
		}
	}
	set(textmate.SettingBackground, d.background)
	set(textmate.SettingForeground, d.foreground)
	set(textmate.SettingCaret, d.caret)
	set(textmate.SettingSelection, d.selection)

	doc := &textmate.Document{
		Name:     d.name,
		UUID:     d.uuid,
		Settings: []textmate.Setting{{Settings: global}},
	}
	for _, sc := range d.colors {
		doc.Settings = append(doc.Settings, textmate.Setting{
			Scope:    sc.scope,
			Settings: map[string]string{textmate.SettingForeground: sc.color},
		})
	}

	data, err := textmate.Encode(doc)
	require.NoError(b.t, err)
	return b.WithFile(file, data)
}

// WithXcode adds an .xccolortheme file. Colors use Xcode's "r g b a" notation.
func (b *Builder) WithXcode(file string, opts ...ThemeOption) *Builder {
	b.t.Helper()
	d := themeData{background: "1 1 1 1", foreground: "0 0 0 1"}
	for _, opt := range opts {
		opt(&d)
	}

	doc := &xcode.Document{
		Version:        1,
		Background:     d.background,
		InsertionPoint: d.caret,
		Selection:      d.selection,
		SyntaxColors:   map[string]string{xcode.IDPlain: d.foreground},
		SyntaxFonts:    d.fonts,
	}
	for _, sc := range d.colors {
		doc.SyntaxColors[sc.scope] = sc.color
	}

	data, err := xcode.Encode(doc)
	require.NoError(b.t, err)
	return b.WithFile(file, data)
}

// WithBBEdit adds a .bbColorScheme file. Colors use BBEdit's rgba() notation.
func (b *Builder) WithBBEdit(file string, opts ...ThemeOption) *Builder {
	b.t.Helper()
	d := themeData{background: "rgba(0,0,0,1)", foreground: "rgba(255,255,255,1)"}
	for _, opt := range opts {
		opt(&d)
	}

	doc := &bbedit.Document{
		Background: d.background,
		Colors:     map[string]string{bbedit.IDCode: d.foreground},
	}
	if d.caret != "" {
		doc.Colors[bbedit.KeyInsertionPoint] = d.caret
	}
	if d.selection != "" {
		doc.Colors[bbedit.KeySelection] = d.selection
	}
	for _, sc := range d.colors {
		doc.Colors[sc.scope] = sc.color
	}

	data, err := bbedit.Encode(doc)
	require.NoError(b.t, err)
	return b.WithFile(file, data)
}

// WithFile adds a file with raw contents, such as a deliberately broken theme.
func (b *Builder) WithFile(file string, data []byte) *Builder {
	b.files = append(b.files, fileData{name: file, data: data})
	return b
}

// Build writes every accumulated file and returns the directory. Files
// already written are overwritten.
func (b *Builder) Build() string {
	b.t.Helper()
	require.NoError(b.t, os.MkdirAll(b.dir, 0o750))
	for _, f := range b.files {
		require.NoError(b.t, os.WriteFile(b.Path(f.name), f.data, 0o644))
	}
	b.files = nil
	return b.dir
}
