// Package store provides read and write access to the SQLite event
// history written by the external trading engine. All tables except the
// runtime_status singleton are append-only from the engine's side and
// strictly read-only from here.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// Store owns the two connection handles to the trading database: a
// read-only handle for analytics queries and a write-capable handle used
// exclusively by the runtime-status gateway. Each handle is opened at
// most once and cached for the process lifetime.
type Store struct {
	path   string
	logger *slog.Logger

	readOnce  sync.Once
	readDB    *sql.DB
	readErr   error
	writeOnce sync.Once
	writeDB   *sql.DB
	writeErr  error
}

// New creates a store for the database at path. No connection is opened
// until the first query.
func New(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.With(slog.String("component", "store")),
	}
}

// reader returns the cached read-only handle, opening it on first use.
// The database file is owned by the trading engine; a missing file is
// fatal and never papered over with an empty store.
func (s *Store) reader(ctx context.Context) (*sql.DB, error) {
	s.readOnce.Do(func() {
		s.readDB, s.readErr = s.open(ctx, "ro")
	})
	return s.readDB, s.readErr
}

// writer returns the cached write-capable handle, opening it on first
// use. mode=rw keeps the driver from creating a fresh file.
func (s *Store) writer(ctx context.Context) (*sql.DB, error) {
	s.writeOnce.Do(func() {
		s.writeDB, s.writeErr = s.open(ctx, "rw")
	})
	return s.writeDB, s.writeErr
}

func (s *Store) open(ctx context.Context, mode string) (*sql.DB, error) {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, s.path)
		}
		return nil, fmt.Errorf("failed to stat store: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?mode=%s&_busy_timeout=5000", s.path, mode)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// sql.Open is lazy; force the error to surface at open time.
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to store: %w", err)
	}

	s.logger.InfoContext(ctx, "store connection opened",
		slog.String("path", s.path),
		slog.String("mode", mode))

	return db, nil
}

// Ping reports whether the store is reachable over the read handle.
func (s *Store) Ping(ctx context.Context) error {
	db, err := s.reader(ctx)
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

// Close releases whichever handles were opened.
func (s *Store) Close() error {
	var firstErr error
	if s.readDB != nil {
		if err := s.readDB.Close(); err != nil {
			firstErr = err
		}
	}
	if s.writeDB != nil {
		if err := s.writeDB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
