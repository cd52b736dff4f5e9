package theme

import (
	"github.com/zjrosen/themepark/internal/color"
	"github.com/zjrosen/themepark/internal/font"
)

// Style answers a Query. Color is always set; a nil Font means the ambient
// font is inherited.
type Style struct {
	Color color.Color
	Font  *font.Font
}

// Equal compares color and font structurally.
func (s Style) Equal(o Style) bool {
	if s.Color != o.Color {
		return false
	}
	if s.Font == nil || o.Font == nil {
		return s.Font == nil && o.Font == nil
	}
	return *s.Font == *o.Font
}

// Styler is implemented by every resolver and wrapper. Style must be total:
// every query gets an answer with a color.
type Styler interface {
	Style(q Query) Style
	SupportedVariants() VariantSet
}

// Fallback is the last-resort style for a key: the catalog text background
// for surfaces, the catalog text color for everything else.
func Fallback(k Key) Style {
	if k.IsBackground() {
		return Style{Color: color.Named(color.CatalogTextBackground)}
	}
	return Style{Color: color.Named(color.CatalogText)}
}

// AccessoryRatio is the Emphasize ratio that derives an accessory
// background from an editor background.
const AccessoryRatio = 0.1

// AccessoryBackground derives editor.accessoryBackground for formats that
// have no dedicated entry for it.
func AccessoryBackground(background color.Color) color.Color {
	return background.Emphasize(AccessoryRatio)
}

// SchemeFor is {dark} when background is dark, otherwise {light}, both at
// standard contrast. Formats without an explicit appearance flag use it.
func SchemeFor(background color.Color) VariantSet {
	if background.IsDark() {
		return NewVariantSet(DarkVariant)
	}
	return NewVariantSet(LightVariant)
}

// ColorFor resolves the color of key in ctx.
func ColorFor(s Styler, key Key, ctx Context) color.Color {
	return s.Style(Query{Key: key, Context: ctx}).Color
}

// FontFor resolves the font of key in ctx, if the theme sets one.
func FontFor(s Styler, key Key, ctx Context) (font.Font, bool) {
	f := s.Style(Query{Key: key, Context: ctx}).Font
	if f == nil {
		return font.Font{}, false
	}
	return *f, true
}
