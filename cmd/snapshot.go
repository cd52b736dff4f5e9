package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/themepark/internal/catalog"
	"github.com/zjrosen/themepark/internal/log"
	"github.com/zjrosen/themepark/internal/snapshot"
	"github.com/zjrosen/themepark/internal/store"
	"github.com/zjrosen/themepark/internal/tracing"
)

var (
	snapFormat string
	snapOutput string
	snapSave   bool
	snapDigest string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <theme>",
	Short: "Capture a theme's answers to every query",
	Long: `Capture a snapshot: every query under every variant, resolved once and
written as JSON, YAML or TOML. A snapshot is itself a theme and can be
read back without the original theme file.

The output format is taken from --format, then from the --output file
extension, then from snapshot.format in the config.

Examples:
  themepark snapshot blackboard > blackboard.json
  themepark snapshot blackboard -o blackboard.toml
  themepark snapshot blackboard --save`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshot,
}

var snapshotLoadCmd = &cobra.Command{
	Use:   "load [theme]",
	Short: "Print the latest saved snapshot of a theme",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSnapshotLoad,
}

var snapshotHistoryCmd = &cobra.Command{
	Use:   "history [theme]",
	Short: "List saved snapshots",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSnapshotHistory,
}

var snapshotDeleteCmd = &cobra.Command{
	Use:   "delete <theme>",
	Short: "Delete every saved snapshot of a theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotDelete,
}

var snapshotConvertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Re-encode a snapshot file in another format",
	Long: `Read a snapshot file (format from its extension) and write it in the
format given by --format or the --output extension.

Example:
  themepark snapshot convert blackboard.json --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshotConvert,
}

func init() {
	for _, c := range []*cobra.Command{snapshotCmd, snapshotLoadCmd, snapshotConvertCmd} {
		c.Flags().StringVarP(&snapFormat, "format", "f", "", "output format: json, yaml or toml")
		c.Flags().StringVarP(&snapOutput, "output", "o", "", "write to file instead of stdout")
	}
	snapshotCmd.Flags().BoolVar(&snapSave, "save", false, "also save the snapshot to the store (snapshot.use_store)")
	snapshotLoadCmd.Flags().StringVar(&snapDigest, "digest", "", "load the snapshot with this digest instead")

	snapshotCmd.AddCommand(snapshotLoadCmd, snapshotHistoryCmd, snapshotDeleteCmd, snapshotConvertCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// outputFormat picks the format from --format, the --output extension or the config.
func outputFormat() (snapshot.Format, error) {
	if snapFormat != "" {
		return snapshot.ParseFormat(snapFormat)
	}
	if snapOutput != "" {
		if f, err := snapshot.FormatFromPath(snapOutput); err == nil {
			return f, nil
		}
	}
	if cfg.Snapshot.Format != "" {
		return snapshot.ParseFormat(cfg.Snapshot.Format)
	}
	return snapshot.FormatJSON, nil
}

// captureSnapshot captures e's styler inside a span.
func captureSnapshot(ctx context.Context, e catalog.Entry) *snapshot.Snapshot {
	_, span := tracing.Start(ctx, tracer(), tracing.SpanSnapshotCapture,
		attribute.String(tracing.AttrThemeKey, e.Key),
		attribute.String(tracing.AttrThemeName, e.DisplayName),
		attribute.String(tracing.AttrThemeFormat, string(e.Format)),
	)
	snap := snapshot.Capture(e.Styler)
	span.SetAttributes(
		attribute.Int(tracing.AttrQueryCount, snap.Len()),
		attribute.String(tracing.AttrVariants, snap.SupportedVariants().String()),
	)
	tracing.End(span, nil)
	return snap
}

func writeSnapshot(ctx context.Context, w io.Writer, snap *snapshot.Snapshot) (err error) {
	f, err := outputFormat()
	if err != nil {
		return err
	}
	_, span := tracing.Start(ctx, tracer(), tracing.SpanSnapshotEncode,
		attribute.String(tracing.AttrSnapshotFormat, string(f)))
	defer func() { tracing.End(span, err) }()

	if snapOutput == "" {
		return snap.Encode(w, f)
	}

	if dir := filepath.Dir(snapOutput); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	file, err := os.Create(snapOutput)
	if err != nil {
		return fmt.Errorf("creating %s: %w", snapOutput, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := snap.Encode(file, f); err != nil {
		return err
	}
	log.Info(log.CatSnapshot, "wrote snapshot", "path", snapOutput, "format", f)
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	entry, err := findTheme(cmd, args[0])
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	snap := captureSnapshot(ctx, entry)

	if snapSave || cfg.Snapshot.UseStore {
		db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		rec, err := db.Save(ctx, entry.Key, entry.ID, snap)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "saved %s snapshot %s\n", entry.Key, rec.Digest)
	}

	return writeSnapshot(ctx, cmd.OutOrStdout(), snap)
}

func runSnapshotLoad(cmd *cobra.Command, args []string) error {
	if snapDigest == "" && len(args) == 0 {
		return errors.New("a theme or --digest is required")
	}
	ctx := cmd.Context()
	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	var snap *snapshot.Snapshot
	if snapDigest != "" {
		snap, _, err = db.ByDigest(ctx, snapDigest)
	} else {
		snap, _, err = db.Latest(ctx, latestKey(cmd, args[0]))
	}
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no saved snapshot: %w", err)
	}
	if err != nil {
		return err
	}
	return writeSnapshot(ctx, cmd.OutOrStdout(), snap)
}

// latestKey resolves a theme name to its catalog key when the theme is
// still installed, so saved snapshots can be found by display name too.
func latestKey(cmd *cobra.Command, name string) string {
	cat, err := loadCatalog(cmd, nil)
	if err != nil {
		return name
	}
	if e, err := cat.Find(name); err == nil {
		return e.Key
	}
	return name
}

func runSnapshotHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	key := ""
	if len(args) == 1 {
		key = latestKey(cmd, args[0])
	}
	records, err := db.List(ctx, key)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "THEME\tDIGEST\tVARIANTS\tSAVED")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rec.ThemeKey, rec.Digest, rec.Variants, rec.CreatedAt.Format(time.DateTime))
	}
	return w.Flush()
}

func runSnapshotDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	n, err := db.Delete(ctx, latestKey(cmd, args[0]))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %d snapshot(s)\n", n)
	return nil
}

func runSnapshotConvert(cmd *cobra.Command, args []string) error {
	in, err := snapshot.FormatFromPath(args[0])
	if err != nil {
		return err
	}
	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	snap, err := snapshot.Decode(file, in)
	if err != nil {
		return err
	}
	log.Debug(log.CatSnapshot, "decoded snapshot", "path", args[0], "styles", snap.Len(), "variants", snap.SupportedVariants())
	return writeSnapshot(cmd.Context(), cmd.OutOrStdout(), snap)
}
