package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zjrosen/themepark/internal/catalog"
	"github.com/zjrosen/themepark/internal/log"
	"github.com/zjrosen/themepark/internal/pubsub"
	"github.com/zjrosen/themepark/internal/store"
	"github.com/zjrosen/themepark/internal/watcher"
)

var watchSave bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload themes as their files change",
	Long: `Watch the theme directories and reload the catalog whenever a theme
file is added, changed or removed. Each reload prints what changed.

With --save, a snapshot of every added or changed theme is saved to the
snapshot store.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchSave, "save", false, "save a snapshot of each changed theme")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wcfg := watcher.DefaultConfig(themeDirs()...)
	if cfg.Watch.Debounce > 0 {
		wcfg.DebounceDur = cfg.Watch.Debounce
	}
	w, err := watcher.New(wcfg)
	if err != nil {
		return err
	}
	events := w.Broker().Subscribe(ctx)
	if err := w.Start(); err != nil {
		_ = w.Stop()
		return err
	}
	defer func() { _ = w.Stop() }()

	var db *store.DB
	if watchSave {
		if db, err = openStore(ctx); err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
	}

	loader := catalog.NewLoader(catalog.WithTracer(tracer()))
	cat, err := loadCatalog(cmd, loader)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "watching %d theme(s); press ctrl+c to stop\n", cat.Len())

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			cat, err = handleThemeEvent(ctx, cmd, loader, db, ev)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s (%d themes)\n", ev.Type, ev.Payload, cat.Len())
		}
	}
}

// handleThemeEvent drops the changed file from the decode cache, reloads
// the catalog and optionally snapshots the themes built from that file.
func handleThemeEvent(ctx context.Context, cmd *cobra.Command, loader *catalog.Loader, db *store.DB, ev pubsub.Event[string]) (*catalog.Catalog, error) {
	log.Info(log.CatWatcher, "theme file event", "type", ev.Type, "path", ev.Payload)
	loader.Invalidate(ev.Payload)

	cat, err := loadCatalog(cmd, loader)
	if err != nil {
		return nil, err
	}
	if db == nil || ev.Type == pubsub.RemovedEvent {
		return cat, nil
	}

	for _, e := range cat.All() {
		if !slices.Contains(e.Paths, ev.Payload) {
			continue
		}
		rec, err := db.Save(ctx, e.Key, e.ID, captureSnapshot(ctx, e))
		if err != nil {
			log.ErrorErr(log.CatStore, "saving snapshot failed", err, "theme", e.Key)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved %s snapshot %s\n", e.Key, rec.Digest)
	}
	return cat, nil
}
