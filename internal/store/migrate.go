package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/zjrosen/themepark/internal/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func migrationSource() (source.Driver, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("loading migrations: %w", err)
	}
	return src, nil
}

// pendingMigrations lists the up migrations newer than current, in order.
func pendingMigrations(src source.Driver, current uint) ([]uint, error) {
	v, err := src.First()
	if err != nil {
		return nil, fmt.Errorf("reading first migration: %w", err)
	}
	var pending []uint
	for {
		if v > current {
			pending = append(pending, v)
		}
		next, err := src.Next(v)
		if errors.Is(err, fs.ErrNotExist) {
			return pending, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading migration after %d: %w", v, err)
		}
		v = next
	}
}

func userVersion(ctx context.Context, conn *sql.DB) (uint, error) {
	var v uint
	if err := conn.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return v, nil
}

// migrate applies every pending up migration, each in its own transaction,
// recording progress in PRAGMA user_version. An existing database file is
// copied to <path>.bak before the first migration runs.
func migrate(ctx context.Context, conn *sql.DB, path string, existed bool) error {
	src, err := migrationSource()
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	current, err := userVersion(ctx, conn)
	if err != nil {
		return err
	}
	pending, err := pendingMigrations(src, current)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	if existed {
		if err := backup(path); err != nil {
			return err
		}
	}

	for _, v := range pending {
		if err := apply(ctx, conn, src, v); err != nil {
			return err
		}
		log.Info(log.CatStore, "applied migration", "version", v)
	}
	return nil
}

func apply(ctx context.Context, conn *sql.DB, src source.Driver, version uint) error {
	r, name, err := src.ReadUp(version)
	if err != nil {
		return fmt.Errorf("reading migration %d: %w", version, err)
	}
	body, err := io.ReadAll(r)
	_ = r.Close()
	if err != nil {
		return fmt.Errorf("reading migration %d: %w", version, err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning migration %d: %w", version, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, string(body)); err != nil {
		return fmt.Errorf("applying migration %d (%s): %w", version, name, err)
	}
	// PRAGMA does not accept bound parameters.
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
		return fmt.Errorf("recording migration %d: %w", version, err)
	}
	return tx.Commit()
}

func backup(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is the configured store location
	if err != nil {
		return fmt.Errorf("reading database for backup: %w", err)
	}
	if err := os.WriteFile(path+".bak", data, 0o600); err != nil {
		return fmt.Errorf("writing database backup: %w", err)
	}
	log.Debug(log.CatStore, "backed up database", "path", path+".bak")
	return nil
}
