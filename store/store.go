// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver
)

// FileName is the database file inside the store directory.
const FileName = "algocmp.db"

var (
	// ErrDatasetNotFound is returned when no dataset has the requested name.
	ErrDatasetNotFound = errors.New("store: dataset not found")

	// ErrEmptyName is returned when a dataset name is empty.
	ErrEmptyName = errors.New("store: dataset name is empty")

	// ErrStoreNotFound is returned by Open when the database does not exist
	// and CreateIfNotExists is false.
	ErrStoreNotFound = errors.New("store: database not found")
)

// Options configures Open.
type Options struct {
	// CreateIfNotExists creates the directory and database file when missing.
	CreateIfNotExists bool

	// EnableWAL switches the journal to write-ahead logging.
	EnableWAL bool
}

// DefaultOptions creates the database on demand and enables WAL.
func DefaultOptions() Options {
	return Options{CreateIfNotExists: true, EnableWAL: true}
}

// Info describes a stored dataset without loading its cells.
type Info struct {
	ID      string
	Name    string
	Rows    int
	Columns int
	Created time.Time
}

// Store is a SQLite-backed dataset store. It is safe for concurrent use;
// the single connection serializes access.
type Store struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

// Open opens or creates the store in dir. A nil logger is replaced by zap.NewNop.
func Open(dir string, opts Options, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	path := filepath.Join(dir, FileName)

	mode := "rw"
	if opts.CreateIfNotExists {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("store: create directory: %w", err)
		}
		mode = "rwc"
	} else if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w at %s", ErrStoreNotFound, path)
	} else if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?mode="+mode)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{db: db, path: path, logger: logger}
	ctx := context.Background()
	if opts.EnableWAL {
		if _, err = db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("store: enable WAL: %w", err)
		}
	}
	if err = s.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create tables: %w", err)
	}
	logger.Debug("store opened", zap.String("path", path))

	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) createTables(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS datasets (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		row_count INTEGER NOT NULL,
		created TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS columns (
		dataset_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		PRIMARY KEY (dataset_id, position)
	);

	-- one row per cell; exactly one of text_value / num_value is set
	CREATE TABLE IF NOT EXISTS cells (
		dataset_id TEXT NOT NULL,
		row_index INTEGER NOT NULL,
		position INTEGER NOT NULL,
		text_value TEXT,
		num_value REAL,
		PRIMARY KEY (dataset_id, row_index, position)
	);
	`
	_, err := s.db.ExecContext(ctx, schema)

	return err
}
