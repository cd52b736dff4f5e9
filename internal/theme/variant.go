package theme

import (
	"fmt"
	"strings"
)

// ColorScheme is the light/dark appearance axis.
type ColorScheme uint8

const (
	Light ColorScheme = iota
	Dark
)

func (c ColorScheme) String() string {
	switch c {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return fmt.Sprintf("ColorScheme(%d)", uint8(c))
	}
}

// ParseColorScheme accepts "light" or "dark".
func ParseColorScheme(s string) (ColorScheme, error) {
	switch strings.ToLower(s) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Light, fmt.Errorf("unknown color scheme %q", s)
}

func (c ColorScheme) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *ColorScheme) UnmarshalText(text []byte) error {
	v, err := ParseColorScheme(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Contrast is the accessibility contrast axis.
type Contrast uint8

const (
	Standard Contrast = iota
	Increased
)

func (c Contrast) String() string {
	switch c {
	case Standard:
		return "standard"
	case Increased:
		return "increased"
	default:
		return fmt.Sprintf("Contrast(%d)", uint8(c))
	}
}

// ParseContrast accepts "standard" or "increased".
func ParseContrast(s string) (Contrast, error) {
	switch strings.ToLower(s) {
	case "standard":
		return Standard, nil
	case "increased":
		return Increased, nil
	}
	return Standard, fmt.Errorf("unknown contrast %q", s)
}

func (c Contrast) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Contrast) UnmarshalText(text []byte) error {
	v, err := ParseContrast(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Variant is a rendering appearance, independent of any theme.
type Variant struct {
	ColorScheme ColorScheme `json:"colorScheme" yaml:"colorScheme" toml:"colorScheme"`
	Contrast    Contrast    `json:"contrast" yaml:"contrast" toml:"contrast"`
}

var (
	LightVariant = Variant{ColorScheme: Light, Contrast: Standard}
	DarkVariant  = Variant{ColorScheme: Dark, Contrast: Standard}
)

// AllVariants enumerates the four variants.
func AllVariants() []Variant {
	return []Variant{
		{Light, Standard},
		{Light, Increased},
		{Dark, Standard},
		{Dark, Increased},
	}
}

func (v Variant) String() string {
	return v.ColorScheme.String() + "/" + v.Contrast.String()
}

func (v Variant) bit() VariantSet {
	return 1 << (uint8(v.ColorScheme)*2 + uint8(v.Contrast))
}

// VariantSet is a set of variants.
type VariantSet uint8

// NewVariantSet returns the set containing vs.
func NewVariantSet(vs ...Variant) VariantSet {
	var s VariantSet
	for _, v := range vs {
		s = s.With(v)
	}
	return s
}

// With returns s with v added.
func (s VariantSet) With(v Variant) VariantSet {
	return s | v.bit()
}

// Has reports whether v is in s.
func (s VariantSet) Has(v Variant) bool {
	return s&v.bit() != 0
}

// Variants lists the members of s in AllVariants order.
func (s VariantSet) Variants() []Variant {
	var out []Variant
	for _, v := range AllVariants() {
		if s.Has(v) {
			out = append(out, v)
		}
	}
	return out
}

// Len reports the number of variants in s.
func (s VariantSet) Len() int {
	return len(s.Variants())
}

func (s VariantSet) String() string {
	names := make([]string, 0, 4)
	for _, v := range s.Variants() {
		names = append(names, v.String())
	}
	return "{" + strings.Join(names, ", ") + "}"
}
