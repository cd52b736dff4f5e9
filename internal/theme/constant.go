package theme

import "github.com/zjrosen/themepark/internal/color"

// Constant answers every background key with Background and every other key
// with Foreground, in every context. It stands in where no theme is loaded.
type Constant struct {
	Foreground color.Color
	Background color.Color
}

// DefaultConstant uses the catalog text colors.
func DefaultConstant() Constant {
	return Constant{
		Foreground: color.Named(color.CatalogText),
		Background: color.Named(color.CatalogTextBackground),
	}
}

func (c Constant) Style(q Query) Style {
	if q.Key.IsBackground() {
		return Style{Color: c.Background}
	}
	return Style{Color: c.Foreground}
}

func (c Constant) SupportedVariants() VariantSet {
	return NewVariantSet(LightVariant, DarkVariant)
}
