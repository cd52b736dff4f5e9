// Package color provides the opaque color value shared by every theme format,
// along with the notation parsers and the luminance math the resolvers rely on.
package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Space names the color space a component-based color is expressed in.
type Space string

const (
	SpaceSRGB Space = "sRGB" // red, green, blue, alpha
	SpaceGray Space = "gray" // white, alpha
)

// componentCount returns how many components a space carries, or 0 if unknown.
func (s Space) componentCount() int {
	switch s {
	case SpaceSRGB:
		return 4
	case SpaceGray:
		return 2
	default:
		return 0
	}
}

// Color is an immutable color value. It is either component-based (a Space
// plus its components) or a catalog color identified only by name.
// Colors are comparable with ==.
type Color struct {
	space   Space
	comps   [4]float64
	n       int
	catalog string
}

// New builds a component-based color. The number of components must match the space.
func New(space Space, components ...float64) (Color, error) {
	want := space.componentCount()
	if want == 0 {
		return Color{}, fmt.Errorf("unknown color space %q", space)
	}
	if len(components) != want {
		return Color{}, fmt.Errorf("color space %q needs %d components, got %d", space, want, len(components))
	}
	c := Color{space: space, n: want}
	for i, v := range components {
		c.comps[i] = clamp01(v)
	}
	return c, nil
}

// RGBA builds an sRGB color. Components are clamped to [0,1].
func RGBA(r, g, b, a float64) Color {
	return Color{
		space: SpaceSRGB,
		comps: [4]float64{clamp01(r), clamp01(g), clamp01(b), clamp01(a)},
		n:     4,
	}
}

// Gray builds a grayscale color.
func Gray(white, alpha float64) Color {
	return Color{
		space: SpaceGray,
		comps: [4]float64{clamp01(white), clamp01(alpha)},
		n:     2,
	}
}

// Named builds a catalog color. Catalog colors keep only their name; their
// components are looked up when the color is decomposed.
func Named(name string) Color {
	return Color{catalog: name}
}

// IsZero reports whether c is the zero Color, which no constructor returns.
func (c Color) IsZero() bool {
	return c.n == 0 && c.catalog == ""
}

// IsCatalog reports whether c is a named catalog color.
func (c Color) IsCatalog() bool {
	return c.catalog != ""
}

// CatalogName returns the catalog name for catalog colors.
func (c Color) CatalogName() (string, bool) {
	return c.catalog, c.catalog != ""
}

// Space returns the color space of a component-based color. Catalog colors
// report SpaceSRGB, the space they decompose into.
func (c Color) Space() Space {
	if c.IsCatalog() || c.n == 0 {
		return SpaceSRGB
	}
	return c.space
}

// Components returns a copy of the native components of a component-based
// color. Catalog colors return their sRGB decomposition.
func (c Color) Components() []float64 {
	if c.IsCatalog() || c.n == 0 {
		r, g, b, a := c.RGBA()
		return []float64{r, g, b, a}
	}
	out := make([]float64, c.n)
	copy(out, c.comps[:c.n])
	return out
}

// RGBA decomposes c into sRGB components.
func (c Color) RGBA() (r, g, b, a float64) {
	switch {
	case c.IsCatalog():
		v, ok := catalog[c.catalog]
		if !ok {
			return 0, 0, 0, 1
		}
		return v[0], v[1], v[2], v[3]
	case c.space == SpaceGray:
		return c.comps[0], c.comps[0], c.comps[0], c.comps[1]
	case c.space == SpaceSRGB:
		return c.comps[0], c.comps[1], c.comps[2], c.comps[3]
	default:
		return 0, 0, 0, 1
	}
}

// Hex formats c as #rrggbb, or #rrggbbaa when it is not fully opaque.
func (c Color) Hex() string {
	r, g, b, a := c.RGBA()
	if a < 1 {
		return fmt.Sprintf("#%02x%02x%02x%02x", to255(r), to255(g), to255(b), to255(a))
	}
	return fmt.Sprintf("#%02x%02x%02x", to255(r), to255(g), to255(b))
}

func (c Color) String() string {
	if c.IsCatalog() {
		return "catalog(" + c.catalog + ")"
	}
	return c.Hex()
}

// Luminance returns the relative luminance (0-1) of c.
func (c Color) Luminance() float64 {
	r, g, b, _ := c.RGBA()
	lr, lg, lb := colorful.Color{R: r, G: g, B: b}.LinearRgb()
	return 0.2126*lr + 0.7152*lg + 0.0722*lb
}

// IsDark reports whether c reads as a dark background.
func (c Color) IsDark() bool {
	return c.Luminance() < 0.5
}

// Emphasize makes c stand out against itself: a positive ratio lightens dark
// colors and darkens light ones by ratio of HSL lightness, a negative ratio
// does the opposite. Alpha is preserved and the result is always sRGB.
func (c Color) Emphasize(ratio float64) Color {
	if ratio == 0 {
		return c
	}
	r, g, b, a := c.RGBA()

	lighten := c.IsDark()
	if ratio < 0 {
		lighten = !lighten
		ratio = -ratio
	}

	h, s, l := colorful.Color{R: r, G: g, B: b}.Hsl()
	if lighten {
		l = math.Min(1, l+ratio)
	} else {
		l = math.Max(0, l-ratio)
	}
	out := colorful.Hsl(h, s, l).Clamped()
	return RGBA(out.R, out.G, out.B, a)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

func to255(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
