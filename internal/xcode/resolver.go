package xcode

import (
	"github.com/zjrosen/themepark/internal/color"
	"github.com/zjrosen/themepark/internal/font"
	"github.com/zjrosen/themepark/internal/log"
	"github.com/zjrosen/themepark/internal/syntax"
	"github.com/zjrosen/themepark/internal/theme"
)

// Resolver answers queries from one Xcode document, so it represents a
// single appearance. Compose a light and a dark Resolver for both.
type Resolver struct {
	doc *Document

	background     *color.Color
	insertionPoint *color.Color
	invisibles     *color.Color
	markup         *color.Color
	lineHighlight  *color.Color
	selection      *color.Color

	colors map[string]color.Color
	fonts  map[string]font.Font
}

var _ theme.Styler = (*Resolver)(nil)

// New indexes doc, logging each unparseable value once.
func New(doc *Document) *Resolver {
	r := &Resolver{
		doc:    doc,
		colors: make(map[string]color.Color, len(doc.SyntaxColors)),
		fonts:  make(map[string]font.Font, len(doc.SyntaxFonts)),
	}

	r.background = parseField("DVTSourceTextBackground", doc.Background)
	r.insertionPoint = parseField("DVTSourceTextInsertionPointColor", doc.InsertionPoint)
	r.invisibles = parseField("DVTSourceTextInvisiblesColor", doc.Invisibles)
	r.markup = parseField("DVTMarkupTextNormalColor", doc.MarkupTextNormal)
	r.lineHighlight = parseField("DVTSourceTextCurrentLineHighlightColor", doc.CurrentLineHighlight)
	r.selection = parseField("DVTSourceTextSelectionColor", doc.Selection)

	for id, raw := range doc.SyntaxColors {
		c, err := color.ParseComponents(raw)
		if err != nil {
			log.Warn(log.CatResolve, "ignoring xcode syntax color", "id", id, "error", err)
			continue
		}
		r.colors[id] = c
	}
	for id, raw := range doc.SyntaxFonts {
		f, err := font.ParseDescriptor(raw)
		if err != nil {
			log.Warn(log.CatResolve, "ignoring xcode syntax font", "id", id, "error", err)
			continue
		}
		r.fonts[id] = f
	}

	return r
}

func parseField(name, raw string) *color.Color {
	if raw == "" {
		return nil
	}
	c, err := color.ParseComponents(raw)
	if err != nil {
		log.Warn(log.CatResolve, "ignoring xcode color", "field", name, "error", err)
		return nil
	}
	return &c
}

// Document returns the decoded theme.
func (r *Resolver) Document() *Document {
	return r.doc
}

// LineHighlight returns the current line highlight color, if set.
func (r *Resolver) LineHighlight() (color.Color, bool) {
	return deref(r.lineHighlight)
}

// Selection returns the selection color, if set.
func (r *Resolver) Selection() (color.Color, bool) {
	return deref(r.selection)
}

func deref(c *color.Color) (color.Color, bool) {
	if c == nil {
		return color.Color{}, false
	}
	return *c, true
}

func (r *Resolver) backgroundColor() color.Color {
	if r.background != nil {
		return *r.background
	}
	return theme.Fallback(theme.EditorBackground).Color
}

func (r *Resolver) plain(key theme.Key) color.Color {
	if c, ok := r.colors[IDPlain]; ok {
		return c
	}
	return theme.Fallback(key).Color
}

func (r *Resolver) or(c *color.Color, key theme.Key) color.Color {
	if c != nil {
		return *c
	}
	return r.plain(key)
}

func (r *Resolver) plainFont() *font.Font {
	if f, ok := r.fonts[IDPlain]; ok {
		return &f
	}
	return nil
}

func (r *Resolver) Style(q theme.Query) theme.Style {
	key := q.Key
	switch key {
	case theme.EditorBackground, theme.GutterBackground:
		return theme.Style{Color: r.backgroundColor(), Font: r.plainFont()}
	case theme.EditorAccessoryBackground:
		return theme.Style{Color: theme.AccessoryBackground(r.backgroundColor()), Font: r.plainFont()}
	case theme.EditorCursor:
		return theme.Style{Color: r.or(r.insertionPoint, key), Font: r.plainFont()}
	case theme.EditorAccessoryForeground:
		return theme.Style{Color: r.or(r.markup, key), Font: r.plainFont()}
	case theme.GutterLabel:
		return r.syntaxStyle(syntax.Text)
	}

	spec, ok := key.Specifier()
	if !ok {
		return theme.Fallback(key)
	}
	if spec == syntax.Invisible {
		return theme.Style{Color: r.or(r.invisibles, key), Font: r.plainFont()}
	}
	return r.syntaxStyle(spec)
}

func (r *Resolver) syntaxStyle(spec syntax.Specifier) theme.Style {
	ids := IdentifiersFor(spec)

	s := theme.Fallback(theme.Syntax(spec))
	for _, id := range ids {
		if c, ok := r.colors[id]; ok {
			s.Color = c
			break
		}
	}
	for _, id := range ids {
		if f, ok := r.fonts[id]; ok {
			s.Font = &f
			break
		}
	}
	return s
}

// SupportedVariants derives the scheme from the background's luminance.
func (r *Resolver) SupportedVariants() theme.VariantSet {
	return theme.SchemeFor(r.backgroundColor())
}
