// Package paths provides path resolution utilities.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const appName = "themepark"

// ExpandHome replaces a leading "~" with the user's home directory.
// Paths without a tilde, or when the home directory is unavailable, are
// returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// ConfigDir returns ~/.config/themepark, or ".themepark" if the home
// directory is unavailable.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(home, ".config", appName)
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StorePath returns the default snapshot database path.
func StorePath() string {
	return filepath.Join(ConfigDir(), "snapshots.db")
}

// DefaultThemeDirs lists the per-user theme folders for Xcode, BBEdit and
// TextMate relative to home. Missing directories are fine; the catalog skips them.
func DefaultThemeDirs(home string) []string {
	if home == "" {
		return nil
	}
	library := filepath.Join(home, "Library")
	return []string{
		filepath.Join(library, "Developer", "Xcode", "UserData", "FontAndColorThemes"),
		filepath.Join(library, "Application Support", "BBEdit", "Color Schemes"),
		filepath.Join(library, "Application Support", "TextMate", "Themes"),
	}
}

// ThemeDirs merges the configured directories with the defaults, expanding
// tildes and dropping duplicates. Configured directories come first.
func ThemeDirs(configured []string) []string {
	home, _ := os.UserHomeDir()

	seen := make(map[string]bool)
	var dirs []string
	add := func(d string) {
		d = filepath.Clean(ExpandHome(d))
		if seen[d] {
			return
		}
		seen[d] = true
		dirs = append(dirs, d)
	}
	for _, d := range configured {
		if d != "" {
			add(d)
		}
	}
	for _, d := range DefaultThemeDirs(home) {
		add(d)
	}
	return dirs
}
