package theme

type composed struct {
	base Styler
	dark Styler
}

// Compose dispatches dark color scheme queries to dark and everything else to
// base. A nil dark leaves base in charge of every variant. There is no merge:
// the chosen styler's answer is final.
func Compose(base, dark Styler) Styler {
	if dark == nil {
		return base
	}
	return &composed{base: base, dark: dark}
}

func (c *composed) Style(q Query) Style {
	if q.Context.Variant.ColorScheme == Dark {
		return c.dark.Style(q)
	}
	return c.base.Style(q)
}

func (c *composed) SupportedVariants() VariantSet {
	return NewVariantSet(LightVariant, DarkVariant)
}
