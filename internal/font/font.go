// Package font describes the optional font half of a resolved style.
package font

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnparseable is wrapped when a font descriptor cannot be read.
var ErrUnparseable = errors.New("unparseable font")

// Font is an immutable font reference: a face name and a point size.
type Font struct {
	Name string  `json:"name" yaml:"name" toml:"name"`
	Size float64 `json:"size" yaml:"size" toml:"size"`
}

// ParseDescriptor reads "<name> - <size>", as stored in Xcode themes
// (e.g. "SFMono-Regular - 12.0").
func ParseDescriptor(s string) (Font, error) {
	parts := strings.Split(s, " - ")
	if len(parts) != 2 {
		return Font{}, fmt.Errorf("%w %q: expected \"name - size\"", ErrUnparseable, s)
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return Font{}, fmt.Errorf("%w %q: empty name", ErrUnparseable, s)
	}
	size, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || size <= 0 {
		return Font{}, fmt.Errorf("%w %q: invalid size", ErrUnparseable, s)
	}

	return Font{Name: name, Size: size}, nil
}

func (f Font) String() string {
	return fmt.Sprintf("%s - %s", f.Name, strconv.FormatFloat(f.Size, 'f', -1, 64))
}
