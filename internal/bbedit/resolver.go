package bbedit

import (
	"github.com/zjrosen/themepark/internal/color"
	"github.com/zjrosen/themepark/internal/log"
	"github.com/zjrosen/themepark/internal/syntax"
	"github.com/zjrosen/themepark/internal/theme"
)

// Resolver answers queries from a BBEdit color scheme. Colors may be written
// in rgba(), hsla() or hex notation.
type Resolver struct {
	doc        *Document
	background *color.Color
	colors     map[string]color.Color
}

var _ theme.Styler = (*Resolver)(nil)

// New indexes doc, logging each unparseable value once.
func New(doc *Document) *Resolver {
	r := &Resolver{
		doc:    doc,
		colors: make(map[string]color.Color, len(doc.Colors)),
	}
	if doc.Background != "" {
		if c, err := color.Parse(doc.Background); err == nil {
			r.background = &c
		} else {
			log.Warn(log.CatResolve, "ignoring bbedit background", "error", err)
		}
	}
	for id, raw := range doc.Colors {
		c, err := color.Parse(raw)
		if err != nil {
			log.Warn(log.CatResolve, "ignoring bbedit color", "id", id, "error", err)
			continue
		}
		r.colors[id] = c
	}
	return r
}

// Document returns the decoded scheme.
func (r *Resolver) Document() *Document {
	return r.doc
}

// Color returns the parsed color stored under id.
func (r *Resolver) Color(id string) (color.Color, bool) {
	c, ok := r.colors[id]
	return c, ok
}

func (r *Resolver) backgroundColor() color.Color {
	if r.background != nil {
		return *r.background
	}
	return theme.Fallback(theme.EditorBackground).Color
}

func (r *Resolver) first(key theme.Key, ids ...string) color.Color {
	for _, id := range ids {
		if c, ok := r.colors[id]; ok {
			return c
		}
	}
	return theme.Fallback(key).Color
}

func (r *Resolver) Style(q theme.Query) theme.Style {
	key := q.Key
	switch key {
	case theme.EditorBackground, theme.GutterBackground:
		return theme.Style{Color: r.backgroundColor()}
	case theme.EditorAccessoryBackground:
		return theme.Style{Color: theme.AccessoryBackground(r.backgroundColor())}
	case theme.EditorCursor:
		return theme.Style{Color: r.first(key, KeyInsertionPoint, IDCode)}
	case theme.EditorAccessoryForeground, theme.GutterLabel:
		return theme.Style{Color: r.first(key, IDCode)}
	}

	spec, ok := key.Specifier()
	if !ok {
		return theme.Fallback(key)
	}
	if spec == syntax.Invisible {
		return theme.Style{Color: r.first(key, KeyInvisibles, IDCode)}
	}
	return theme.Style{Color: r.first(key, IdentifiersFor(spec)...)}
}

// SupportedVariants derives the scheme from the background's luminance.
func (r *Resolver) SupportedVariants() theme.VariantSet {
	return theme.SchemeFor(r.backgroundColor())
}
