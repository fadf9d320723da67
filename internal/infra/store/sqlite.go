package store

import (
	"context"
	"database/sql"
	"time"

	"engineershub/internal/errors"

	_ "modernc.org/sqlite"
)

const createKVTable = `CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLite is a KV backed by a single sqlite file.
type SQLite struct {
	conn *sql.DB
}

// NewSQLite opens (and creates when missing) the sqlite file at path.
func NewSQLite(ctx context.Context, path string) (*SQLite, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open db")
	}
	// One writer keeps sqlite from reporting SQLITE_BUSY between our own calls.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to ping db")
	}
	if _, err := conn.ExecContext(ctx, createKVTable); err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to create kv table")
	}

	return &SQLite{conn: conn}, nil
}

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.conn.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "select %s", key)
	}

	return value, nil
}

func (s *SQLite) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)

	return errors.Wrapf(err, "upsert %s", key)
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	_, err := s.conn.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)

	return errors.Wrapf(err, "delete %s", key)
}

func (s *SQLite) Close() error {
	return s.conn.Close()
}
