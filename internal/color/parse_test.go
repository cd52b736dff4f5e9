package color

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in         string
		r, g, b, a float64
	}{
		{"#0C1021", 12.0 / 255, 16.0 / 255, 33.0 / 255, 1},
		{"#F8F8F8", 248.0 / 255, 248.0 / 255, 248.0 / 255, 1},
		{"aeaeae", 174.0 / 255, 174.0 / 255, 174.0 / 255, 1},
		{"#FF000080", 1, 0, 0, 128.0 / 255},
		{"#fff", 1, 1, 1, 1},
		{"#0f08", 0, 1, 0, 136.0 / 255},
		{"  #000000  ", 0, 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHex(tt.in)
			require.NoError(t, err)
			requireRGBA(t, c, tt.r, tt.g, tt.b, tt.a)
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#1234567", "#GGGGGG", "#123456789"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseHex(in)
			require.ErrorIs(t, err, ErrUnparseable)
		})
	}
}

func TestParseFunction(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		r, g, b, a float64
	}{
		{"bbedit rgba", "rgba(0.077525,0.077522,0.077524,1.000000)", 0.077525, 0.077522, 0.077524, 1},
		{"bbedit hsla gray", "hsla(0.00,0.00,0.68,1.00)", 0.68, 0.68, 0.68, 1},
		{"padded hsla", "hsla(0.00, 0.00, 0.68, 1.00)", 0.68, 0.68, 0.68, 1},
		{"hsla red fraction", "hsla(0, 1, 0.5, 1)", 1, 0, 0, 1},
		{"hsla green degrees", "hsla(120, 100, 50, 0.5)", 0, 1, 0, 0.5},
		{"rgba 255 scale", "rgba(255, 0, 128, 1)", 1, 0, 128.0 / 255, 1},
		{"uppercase", "RGBA(0.5,0.5,0.5,1)", 0.5, 0.5, 0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseFunction(tt.in)
			require.NoError(t, err)
			requireRGBA(t, c, tt.r, tt.g, tt.b, tt.a)
		})
	}
}

func TestParseFunction_Invalid(t *testing.T) {
	for _, in := range []string{
		"rgba(1,1,1)",
		"rgba(1,1,1,1,1)",
		"rgba(1,x,1,1)",
		"rgba 1,1,1,1",
		"rgba(1,1,1,1",
		"cmyk(0,0,0,0)",
		"rgba(NaN,1,1,1)",
		"hsla(0,1,0.5,Inf)",
		"rgba(1,1,-inf,1)",
		"",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseFunction(in)
			require.ErrorIs(t, err, ErrUnparseable)
		})
	}
}

func TestParseComponents(t *testing.T) {
	c, err := ParseComponents("0.36526 0.421879 0.475154 1")
	require.NoError(t, err)
	requireRGBA(t, c, 0.36526, 0.421879, 0.475154, 1)

	c, err = ParseComponents("1 1 1 1")
	require.NoError(t, err)
	require.False(t, c.IsDark())
}

func TestParseComponents_Invalid(t *testing.T) {
	for _, in := range []string{"", "1 1 1", "1 1 1 1 1", "1 a 1 1", "1,1,1,1", "NaN NaN NaN NaN", "1 1 1 +Inf", "0 nan 0 1"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseComponents(in)
			require.ErrorIs(t, err, ErrUnparseable)
		})
	}
}

func TestParse_Dispatch(t *testing.T) {
	hex, err := Parse("#ffffff")
	require.NoError(t, err)
	requireRGBA(t, hex, 1, 1, 1, 1)

	fn, err := Parse("rgba(0,0,0,1)")
	require.NoError(t, err)
	requireRGBA(t, fn, 0, 0, 0, 1)

	comps, err := Parse("0 0 0 0.85")
	require.NoError(t, err)
	requireRGBA(t, comps, 0, 0, 0, 0.85)

	_, err = Parse("not a color")
	require.ErrorIs(t, err, ErrUnparseable)
}
