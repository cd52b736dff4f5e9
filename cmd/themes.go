package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/themepark/internal/catalog"
	"github.com/zjrosen/themepark/internal/log"
	"github.com/zjrosen/themepark/internal/paths"
	"github.com/zjrosen/themepark/internal/store"
	"github.com/zjrosen/themepark/internal/theme"
)

// strictLoad turns decode failures into a command error instead of a warning.
var strictLoad bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&strictLoad, "strict", false,
		"fail when any theme file cannot be decoded")
}

func themeDirs() []string {
	return paths.ThemeDirs(cfg.ThemeDirs)
}

// loadCatalog scans the configured directories. Broken theme files are
// reported on stderr and skipped unless --strict is set.
func loadCatalog(cmd *cobra.Command, loader *catalog.Loader) (*catalog.Catalog, error) {
	if loader == nil {
		loader = catalog.NewLoader(catalog.WithTracer(tracer()))
	}
	cat, err := loader.Load(cmd.Context(), themeDirs())
	if err != nil {
		if strictLoad {
			return nil, err
		}
		log.ErrorErr(log.CatCatalog, "some themes were skipped", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}
	return cat, nil
}

func findTheme(cmd *cobra.Command, name string) (catalog.Entry, error) {
	cat, err := loadCatalog(cmd, nil)
	if err != nil {
		return catalog.Entry{}, err
	}
	return cat.Find(name)
}

// variantFlags holds --scheme and --contrast for commands that resolve
// against a single variant.
type variantFlags struct {
	scheme   string
	contrast string
}

func (f *variantFlags) register(cmd *cobra.Command, defScheme string) {
	cmd.Flags().StringVar(&f.scheme, "scheme", defScheme, "color scheme: light or dark")
	cmd.Flags().StringVar(&f.contrast, "contrast", "standard", "contrast: standard or increased")
}

func (f *variantFlags) variant() (theme.Variant, error) {
	scheme, err := theme.ParseColorScheme(f.scheme)
	if err != nil {
		return theme.Variant{}, err
	}
	contrast, err := theme.ParseContrast(f.contrast)
	if err != nil {
		return theme.Variant{}, err
	}
	return theme.Variant{ColorScheme: scheme, Contrast: contrast}, nil
}

func openStore(ctx context.Context) (*store.DB, error) {
	path := cfg.Snapshot.StorePath
	if path == "" {
		path = paths.StorePath()
	}
	db, err := store.Open(ctx, paths.ExpandHome(path), store.WithTracer(tracer()))
	if err != nil {
		return nil, fmt.Errorf("opening snapshot store: %w", err)
	}
	return db, nil
}
