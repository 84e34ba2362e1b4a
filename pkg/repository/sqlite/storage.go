// Package sqlite provides a SQLite-backed implementation of the durable
// Storage collaborator, for hosts that need persisted state to survive
// process restarts.
package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	_ "modernc.org/sqlite"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS state_entries (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Storage stores versioned slice snapshots in a single key-value table
type Storage struct {
	db *sql.DB
}

var _ interfaces.Storage = &Storage{}

// New opens or creates the database at path and ensures the schema exists
func New(path string) (*Storage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database",
			goerr.T(types.ErrTagPersistence), goerr.V("path", path))
	}

	// WAL keeps concurrent snapshot writes from blocking reads.
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to enable WAL mode", goerr.T(types.ErrTagPersistence))
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to create schema", goerr.T(types.ErrTagPersistence))
	}

	return &Storage{db: db}, nil
}

// Close closes the underlying database
func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) GetItem(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM state_entries WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, goerr.Wrap(err, "failed to read state entry",
			goerr.T(types.ErrTagPersistence), goerr.V("key", key))
	}
	return value, true, nil
}

func (s *Storage) SetItem(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO state_entries (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		return goerr.Wrap(err, "failed to write state entry",
			goerr.T(types.ErrTagPersistence), goerr.V("key", key))
	}
	return nil
}

func (s *Storage) RemoveItem(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM state_entries WHERE key = ?", key)
	if err != nil {
		return goerr.Wrap(err, "failed to remove state entry",
			goerr.T(types.ErrTagPersistence), goerr.V("key", key))
	}
	return nil
}

func (s *Storage) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key FROM state_entries ORDER BY key")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list state entries", goerr.T(types.ErrTagPersistence))
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, goerr.Wrap(err, "failed to scan state entry key", goerr.T(types.ErrTagPersistence))
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate state entries", goerr.T(types.ErrTagPersistence))
	}
	return keys, nil
}
