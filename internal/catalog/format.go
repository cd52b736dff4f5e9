package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zjrosen/themepark/internal/bbedit"
	"github.com/zjrosen/themepark/internal/textmate"
	"github.com/zjrosen/themepark/internal/xcode"
)

// Format identifies the editor a theme file came from.
type Format string

const (
	FormatBuiltin  Format = "builtin"
	FormatTextMate Format = "textmate"
	FormatXcode    Format = "xcode"
	FormatBBEdit   Format = "bbedit"
)

// ErrUnsupportedFormat is returned for files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported theme format")

// FormatFromPath picks the format by file extension, case-insensitively.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case strings.ToLower(textmate.Extension):
		return FormatTextMate, nil
	case strings.ToLower(xcode.Extension):
		return FormatXcode, nil
	case strings.ToLower(bbedit.Extension):
		return FormatBBEdit, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// TypeIdentifier returns the uniform type identifier the editor registers
// for its theme files.
func (f Format) TypeIdentifier() string {
	switch f {
	case FormatTextMate:
		return "com.macromates.textmate.theme"
	case FormatXcode:
		return "com.apple.dt.Xcode.color-theme"
	case FormatBBEdit:
		return "com.barebones.bbedit.color-scheme"
	default:
		return ""
	}
}
