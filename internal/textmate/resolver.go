package textmate

import (
	"github.com/zjrosen/themepark/internal/color"
	"github.com/zjrosen/themepark/internal/log"
	"github.com/zjrosen/themepark/internal/syntax"
	"github.com/zjrosen/themepark/internal/theme"
)

// Global setting names.
const (
	SettingBackground       = "background"
	SettingForeground       = "foreground"
	SettingCaret            = "caret"
	SettingInvisibles       = "invisibles"
	SettingLineHighlight    = "lineHighlight"
	SettingSelection        = "selection"
	SettingGutter           = "gutter"
	SettingGutterForeground = "gutterForeground"
)

var globalSettings = []string{
	SettingBackground,
	SettingForeground,
	SettingCaret,
	SettingInvisibles,
	SettingLineHighlight,
	SettingSelection,
	SettingGutter,
	SettingGutterForeground,
}

// Resolver answers queries from a TextMate document. It has no fonts and
// ignores control state.
type Resolver struct {
	doc    *Document
	global map[string]color.Color
	scopes map[string]color.Color
}

var _ theme.Styler = (*Resolver)(nil)

// New indexes doc. Unparseable colors are logged here once and then treated
// as absent.
func New(doc *Document) *Resolver {
	r := &Resolver{
		doc:    doc,
		global: make(map[string]color.Color),
		scopes: make(map[string]color.Color),
	}

	global := doc.Global()
	for _, name := range globalSettings {
		raw, ok := global[name]
		if !ok {
			continue
		}
		c, err := color.Parse(raw)
		if err != nil {
			log.Warn(log.CatResolve, "ignoring textmate global color", "theme", doc.Name, "setting", name, "error", err)
			continue
		}
		r.global[name] = c
	}

	for _, s := range doc.Settings {
		scopes := s.Scopes()
		raw, ok := s.Settings[SettingForeground]
		if len(scopes) == 0 || !ok {
			continue
		}
		c, err := color.Parse(raw)
		if err != nil {
			log.Warn(log.CatResolve, "ignoring textmate scope color", "theme", doc.Name, "scope", s.Scope, "error", err)
			continue
		}
		for _, scope := range scopes {
			if _, seen := r.scopes[scope]; !seen {
				r.scopes[scope] = c
			}
		}
	}

	log.Debug(log.CatResolve, "textmate theme indexed", "theme", doc.Name, "scopes", len(r.scopes))
	return r
}

// Document returns the decoded theme.
func (r *Resolver) Document() *Document {
	return r.doc
}

// ScopeColor returns the foreground of the first entry whose scope list
// contains scope exactly.
func (r *Resolver) ScopeColor(scope string) (color.Color, bool) {
	c, ok := r.scopes[scope]
	return c, ok
}

func (r *Resolver) lookup(fallback theme.Key, names ...string) color.Color {
	for _, n := range names {
		if c, ok := r.global[n]; ok {
			return c
		}
	}
	return theme.Fallback(fallback).Color
}

func (r *Resolver) background() color.Color {
	return r.lookup(theme.EditorBackground, SettingBackground)
}

func (r *Resolver) Style(q theme.Query) theme.Style {
	key := q.Key
	switch key {
	case theme.EditorBackground:
		return theme.Style{Color: r.background()}
	case theme.EditorAccessoryBackground:
		return theme.Style{Color: theme.AccessoryBackground(r.background())}
	case theme.EditorAccessoryForeground:
		return theme.Style{Color: r.lookup(key, SettingForeground)}
	case theme.EditorCursor:
		return theme.Style{Color: r.lookup(key, SettingCaret, SettingForeground)}
	case theme.GutterBackground:
		return theme.Style{Color: r.lookup(key, SettingGutter, SettingBackground)}
	case theme.GutterLabel:
		return theme.Style{Color: r.lookup(key, SettingGutterForeground, SettingForeground)}
	}

	spec, ok := key.Specifier()
	if !ok {
		return theme.Fallback(key)
	}
	if spec == syntax.Invisible {
		return theme.Style{Color: r.lookup(key, SettingInvisibles, SettingForeground)}
	}
	for _, scope := range ScopesFor(spec) {
		if c, ok := r.scopes[scope]; ok {
			return theme.Style{Color: c}
		}
	}
	return theme.Style{Color: r.lookup(key, SettingForeground)}
}

// SupportedVariants derives the scheme from the background's luminance.
func (r *Resolver) SupportedVariants() theme.VariantSet {
	return theme.SchemeFor(r.background())
}

// GlobalColor returns a parsed global setting such as SettingSelection.
func (r *Resolver) GlobalColor(name string) (color.Color, bool) {
	c, ok := r.global[name]
	return c, ok
}
