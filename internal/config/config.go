// Package config provides configuration types and defaults for themepark.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/themepark/internal/log"
)

// Config holds all configuration options for themepark.
type Config struct {
	// ThemeDirs are scanned for .tmTheme, .xccolortheme and .bbColorScheme files.
	ThemeDirs []string       `mapstructure:"theme_dirs" validate:"dive,required"`
	Snapshot  SnapshotConfig `mapstructure:"snapshot"`
	Preview   PreviewConfig  `mapstructure:"preview"`
	Watch     WatchConfig    `mapstructure:"watch"`
	Tracing   TracingConfig  `mapstructure:"tracing"`
}

// SnapshotConfig controls snapshot output and the snapshot store.
type SnapshotConfig struct {
	Format    string `mapstructure:"format" validate:"omitempty,oneof=json yaml yml toml"` // json (default), yaml, toml
	StorePath string `mapstructure:"store_path"`                                           // sqlite database for saved snapshots
	UseStore  bool   `mapstructure:"use_store"`                                            // save every captured snapshot
}

// PreviewConfig holds defaults for the preview command.
type PreviewConfig struct {
	Language string `mapstructure:"language"`                                            // chroma lexer name
	Scheme   string `mapstructure:"scheme" validate:"omitempty,oneof=auto light dark"`   // auto uses terminal detection
	Contrast string `mapstructure:"contrast" validate:"omitempty,oneof=standard increased"`
}

// WatchConfig holds file watcher options.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" validate:"gte=0"`
}

// TracingConfig holds distributed tracing configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter" validate:"omitempty,oneof=none file stdout otlp"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/themepark/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// DefaultTracesFilePath returns ~/.config/themepark/traces/traces.jsonl, or
// an empty string if the home directory is unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "themepark", "traces", "traces.jsonl")
}

// ValidateTracing checks the cross-field tracing rules the struct tags can't express.
func ValidateTracing(tracing TracingConfig) error {
	if !tracing.Enabled {
		return nil
	}
	if tracing.Exporter == "file" && tracing.FilePath == "" {
		return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
	}
	if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}
	return nil
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		ThemeDirs: nil, // platform directories are added by paths.DefaultThemeDirs
		Snapshot: SnapshotConfig{
			Format:    "json",
			StorePath: "", // Derived from config dir at runtime
			UseStore:  false,
		},
		Preview: PreviewConfig{
			Language: "go",
			Scheme:   "auto",
			Contrast: "standard",
		},
		Watch: WatchConfig{
			Debounce: 300 * time.Millisecond,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# themepark configuration

# Directories scanned for editor themes (.tmTheme, .xccolortheme, .bbColorScheme).
# The platform's Xcode, BBEdit and TextMate theme folders are always scanned.
# theme_dirs:
#   - ~/themes

# Snapshot settings
snapshot:
  format: json          # json (default), yaml, or toml
  # store_path: ~/.config/themepark/snapshots.db
  use_store: false      # Save every captured snapshot to the store

# Preview settings
preview:
  language: go          # Any chroma lexer name
  scheme: auto          # auto (terminal detection), light, or dark
  contrast: standard    # standard or increased

# File watching
watch:
  debounce: 300ms

# Distributed tracing
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/themepark/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
