package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/themepark/internal/config"
	"github.com/zjrosen/themepark/internal/log"
	"github.com/zjrosen/themepark/internal/paths"
	"github.com/zjrosen/themepark/internal/tracing"
)

var (
	version   = "dev"
	cfgFile   string
	cfg       config.Config
	debugFlag bool

	provider   *tracing.Provider
	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "themepark",
	Short: "Resolve editor themes into concrete colors and fonts",
	Long: `themepark discovers TextMate, Xcode and BBEdit themes, answers style
queries against them and captures the answers as portable snapshots.

Themes are read from the platform's Xcode, BBEdit and TextMate theme
folders plus any theme_dirs listed in the config file.`,
	Version:            version,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/themepark/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"enable debug logging (also THEMEPARK_DEBUG)")
	rootCmd.PersistentFlags().StringSlice("theme-dir", nil,
		"theme directory to scan (repeatable, replaces theme_dirs)")
}

func initConfig() {
	cfg = config.Config{}
	_ = viper.BindPFlag("theme_dirs", rootCmd.PersistentFlags().Lookup("theme-dir"))

	defaults := config.Defaults()
	viper.SetDefault("snapshot.format", defaults.Snapshot.Format)
	viper.SetDefault("snapshot.use_store", defaults.Snapshot.UseStore)
	viper.SetDefault("preview.language", defaults.Preview.Language)
	viper.SetDefault("preview.scheme", defaults.Preview.Scheme)
	viper.SetDefault("preview.contrast", defaults.Preview.Contrast)
	viper.SetDefault("watch.debounce", defaults.Watch.Debounce)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	viper.SetEnvPrefix("THEMEPARK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .themepark/config.yaml (current directory)
		// 2. ~/.config/themepark/config.yaml (user config)
		if _, err := os.Stat(filepath.Join(".themepark", "config.yaml")); err == nil {
			viper.SetConfigFile(filepath.Join(".themepark", "config.yaml"))
		} else {
			viper.AddConfigPath(paths.ConfigDir())
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "themepark: reading config: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func setup(cmd *cobra.Command, _ []string) error {
	// Initialize logging if debug mode enabled (via flag or env var)
	if debugFlag || os.Getenv("THEMEPARK_DEBUG") != "" {
		if logPath := os.Getenv("THEMEPARK_LOG"); logPath != "" {
			cleanup, err := log.Init(logPath)
			if err != nil {
				return fmt.Errorf("initializing logging: %w", err)
			}
			logCleanup = cleanup
		} else {
			log.InitWriter(cmd.ErrOrStderr())
		}
		if name := os.Getenv("THEMEPARK_LOG_LEVEL"); name != "" {
			level, err := log.ParseLevel(name)
			if err != nil {
				return fmt.Errorf("THEMEPARK_LOG_LEVEL: %w", err)
			}
			log.SetMinLevel(level)
		}
		log.Info(log.CatConfig, "themepark starting", "version", version, "config", viper.ConfigFileUsed())
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	tc := cfg.Tracing
	if tc.FilePath == "" {
		tc.FilePath = config.DefaultTracesFilePath()
	}
	tc.FilePath = paths.ExpandHome(tc.FilePath)
	p, err := tracing.NewProvider(cmd.Context(), tc)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	provider = p
	return nil
}

func teardown(cmd *cobra.Command, _ []string) error {
	var err error
	if provider != nil {
		err = provider.Shutdown(context.WithoutCancel(cmd.Context()))
		provider = nil
	}
	if logCleanup != nil {
		logCleanup()
		logCleanup = nil
	}
	return err
}

// tracer returns the active tracer, or nil before setup has run.
func tracer() trace.Tracer {
	if provider == nil {
		return nil
	}
	return provider.Tracer()
}

// configPath is where config edits are written.
func configPath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	if cfgFile != "" {
		return cfgFile
	}
	return paths.ConfigFile()
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
