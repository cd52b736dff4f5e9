package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnparseable is wrapped by every parser error.
var ErrUnparseable = errors.New("unparseable color")

func unparseable(s, reason string) error {
	return fmt.Errorf("%w %q: %s", ErrUnparseable, s, reason)
}

// Parse picks a parser from the notation of s: a leading '#' is hex,
// rgba(/hsla( is function notation, anything else is space-separated components.
func Parse(s string) (Color, error) {
	trimmed := strings.TrimSpace(s)
	lower := strings.ToLower(trimmed)
	switch {
	case strings.HasPrefix(trimmed, "#"):
		return ParseHex(trimmed)
	case strings.HasPrefix(lower, "rgba("), strings.HasPrefix(lower, "hsla("):
		return ParseFunction(trimmed)
	default:
		return ParseComponents(trimmed)
	}
}

// ParseHex parses #RGB, #RGBA, #RRGGBB and #RRGGBBAA. The '#' is optional.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3, 4:
		expanded := make([]byte, 0, len(hex)*2)
		for i := 0; i < len(hex); i++ {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
	case 6, 8:
	default:
		return Color{}, unparseable(s, "hex color must have 3, 4, 6 or 8 digits")
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, unparseable(s, "invalid hex digits")
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}

	return RGBA(
		float64(v>>24&0xff)/255,
		float64(v>>16&0xff)/255,
		float64(v>>8&0xff)/255,
		float64(v&0xff)/255,
	), nil
}

// ParseFunction parses rgba(r,g,b,a) and hsla(h,s,l,a). Exactly four
// comma-separated floats are required.
//
// rgb channels above 1 are read on a 0-255 scale. A hue above 1 is read in
// degrees, otherwise as a fraction of a turn; saturation and lightness above
// 1 are read as percentages.
func ParseFunction(s string) (Color, error) {
	trimmed := strings.TrimSpace(s)
	open := strings.IndexByte(trimmed, '(')
	if open < 0 || !strings.HasSuffix(trimmed, ")") {
		return Color{}, unparseable(s, "missing parentheses")
	}
	name := strings.ToLower(strings.TrimSpace(trimmed[:open]))
	args := strings.Split(trimmed[open+1:len(trimmed)-1], ",")
	if len(args) != 4 {
		return Color{}, unparseable(s, fmt.Sprintf("expected 4 components, got %d", len(args)))
	}

	var v [4]float64
	for i, arg := range args {
		f, ok := component(strings.TrimSpace(arg))
		if !ok {
			return Color{}, unparseable(s, fmt.Sprintf("component %d is not a number", i+1))
		}
		v[i] = f
	}

	switch name {
	case "rgba":
		if v[0] > 1 || v[1] > 1 || v[2] > 1 {
			v[0], v[1], v[2] = v[0]/255, v[1]/255, v[2]/255
		}
		return RGBA(v[0], v[1], v[2], v[3]), nil
	case "hsla":
		hue := v[0]
		if hue > 1 {
			hue /= 360
		}
		sat, light := percent(v[1]), percent(v[2])
		c := colorful.Hsl(hue*360, sat, light).Clamped()
		return RGBA(c.R, c.G, c.B, v[3]), nil
	default:
		return Color{}, unparseable(s, "unknown color function "+name)
	}
}

// ParseComponents parses four whitespace-separated floats as RGBA in [0,1].
func ParseComponents(s string) (Color, error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return Color{}, unparseable(s, fmt.Sprintf("expected 4 components, got %d", len(fields)))
	}

	var v [4]float64
	for i, field := range fields {
		f, ok := component(field)
		if !ok {
			return Color{}, unparseable(s, fmt.Sprintf("component %d is not a number", i+1))
		}
		v[i] = f
	}
	return RGBA(v[0], v[1], v[2], v[3]), nil
}

// component parses one finite number. strconv accepts NaN and Inf, which
// no theme notation allows.
func component(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func percent(v float64) float64 {
	if v > 1 {
		return v / 100
	}
	return v
}
