// Package store persists captured snapshots in a local SQLite database.
// Snapshots are content addressed: saving the same snapshot for a theme
// twice keeps a single row.
package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/themepark/internal/log"
	"github.com/zjrosen/themepark/internal/snapshot"
	"github.com/zjrosen/themepark/internal/tracing"
)

// ErrNotFound is returned when no stored snapshot matches.
var ErrNotFound = errors.New("snapshot not found")

// Record describes a stored snapshot without its body.
type Record struct {
	ID        int64
	ThemeKey  string
	ThemeID   uuid.UUID
	Digest    string
	Variants  string
	CreatedAt time.Time
}

// DB is an open snapshot store.
type DB struct {
	conn   *sql.DB
	tracer trace.Tracer
	now    func() time.Time
}

// Option configures a DB.
type Option func(*DB)

// WithTracer records store spans on t.
func WithTracer(t trace.Tracer) Option {
	return func(db *DB) { db.tracer = t }
}

// Open opens or creates the database at path and migrates it to the
// latest schema. Parent directories are created with 0700.
func Open(ctx context.Context, path string, opts ...Option) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	_, statErr := os.Stat(path)
	existed := statErr == nil

	conn, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	// One writer; keeps PRAGMA user_version and the migration tx on the same connection.
	conn.SetMaxOpenConns(1)

	if err := migrate(ctx, conn, path, existed); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn, now: time.Now}
	for _, opt := range opts {
		opt(db)
	}
	log.Debug(log.CatStore, "store opened", "path", path)
	return db, nil
}

// Close closes the database.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Version returns the applied schema version.
func (db *DB) Version(ctx context.Context) (uint, error) {
	return userVersion(ctx, db.conn)
}

// Digest returns the content address of an encoded snapshot body.
func Digest(body []byte) string {
	return strconv.FormatUint(xxhash.Sum64(body), 16)
}

// Save stores snap under themeKey. Saving an identical snapshot again only
// refreshes its timestamp.
func (db *DB) Save(ctx context.Context, themeKey string, themeID uuid.UUID, snap *snapshot.Snapshot) (rec Record, err error) {
	ctx, span := tracing.Start(ctx, db.tracer, tracing.SpanStoreSave, attribute.String(tracing.AttrThemeKey, themeKey))
	defer func() { tracing.End(span, err) }()

	var buf bytes.Buffer
	if err := snap.Encode(&buf, snapshot.FormatJSON); err != nil {
		return Record{}, err
	}
	body := buf.Bytes()
	digest := Digest(body)
	span.SetAttributes(attribute.String(tracing.AttrStoreDigest, digest))

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO snapshots (theme_key, theme_id, digest, body, created_at, variants)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (theme_key, digest) DO UPDATE SET created_at = excluded.created_at`,
		themeKey, themeID.String(), digest, body, db.now().Unix(), snap.SupportedVariants().String(),
	)
	if err != nil {
		return Record{}, fmt.Errorf("failed to insert snapshot: %w", err)
	}
	log.Info(log.CatStore, "snapshot saved", "theme", themeKey, "digest", digest)

	_, rec, err = db.get(ctx, `WHERE theme_key = ? AND digest = ?`, themeKey, digest)
	return rec, err
}

const recordColumns = `id, theme_key, theme_id, digest, variants, created_at, body`

func (db *DB) get(ctx context.Context, where string, args ...any) (*snapshot.Snapshot, Record, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM snapshots `+where+` ORDER BY created_at DESC, id DESC LIMIT 1`, args...)

	var body []byte
	rec, err := scanRecord(row, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, Record{}, ErrNotFound
	}
	if err != nil {
		return nil, Record{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	snap, err := snapshot.Decode(bytes.NewReader(body), snapshot.FormatJSON)
	if err != nil {
		return nil, Record{}, fmt.Errorf("failed to decode stored snapshot %s: %w", rec.Digest, err)
	}
	return snap, rec, nil
}

func scanRecord(scanner interface{ Scan(...any) error }, body *[]byte) (Record, error) {
	var (
		rec     Record
		themeID string
		created int64
	)
	dest := []any{&rec.ID, &rec.ThemeKey, &themeID, &rec.Digest, &rec.Variants, &created}
	if body != nil {
		dest = append(dest, body)
	}
	if err := scanner.Scan(dest...); err != nil {
		return Record{}, err
	}
	rec.CreatedAt = time.Unix(created, 0)
	if id, err := uuid.Parse(themeID); err == nil {
		rec.ThemeID = id
	}
	return rec, nil
}

// Latest returns the most recently saved snapshot for themeKey.
func (db *DB) Latest(ctx context.Context, themeKey string) (snap *snapshot.Snapshot, rec Record, err error) {
	ctx, span := tracing.Start(ctx, db.tracer, tracing.SpanStoreLoad, attribute.String(tracing.AttrThemeKey, themeKey))
	defer func() { tracing.End(span, err) }()
	return db.get(ctx, `WHERE theme_key = ?`, themeKey)
}

// ByDigest returns a stored snapshot by its digest.
func (db *DB) ByDigest(ctx context.Context, digest string) (snap *snapshot.Snapshot, rec Record, err error) {
	ctx, span := tracing.Start(ctx, db.tracer, tracing.SpanStoreLoad, attribute.String(tracing.AttrStoreDigest, digest))
	defer func() { tracing.End(span, err) }()
	return db.get(ctx, `WHERE digest = ?`, digest)
}

// List returns records newest first. An empty themeKey lists every theme.
func (db *DB) List(ctx context.Context, themeKey string) ([]Record, error) {
	query := `SELECT id, theme_key, theme_id, digest, variants, created_at FROM snapshots`
	var args []any
	if themeKey != "" {
		query += ` WHERE theme_key = ?`
		args = append(args, themeKey)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Delete removes every snapshot stored for themeKey and reports how many.
func (db *DB) Delete(ctx context.Context, themeKey string) (int64, error) {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM snapshots WHERE theme_key = ?`, themeKey)
	if err != nil {
		return 0, fmt.Errorf("failed to delete snapshots: %w", err)
	}
	return res.RowsAffected()
}
