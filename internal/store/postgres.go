package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// PostgresStore keeps each key as one row in kv_entries. Updates take a
// row lock so concurrent read-modify-write cycles serialize per key.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore wraps an open database handle.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the backing table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	const ddl = `CREATE TABLE IF NOT EXISTS kv_entries (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure kv schema: %w", err)
	}
	return nil
}

// Get returns the raw value under key.
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value, "SELECT value FROM kv_entries WHERE key = $1", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kv get %s: %w", key, err)
	}
	return value, true, nil
}

// Set upserts the value under key.
func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	const query = `INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	return nil
}

// Update applies mutate inside a transaction holding the row lock for key.
func (s *PostgresStore) Update(ctx context.Context, key string, mutate func(current []byte) ([]byte, error)) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("kv update %s: begin: %w", key, err)
	}
	defer func() { _ = tx.Rollback() }()

	var current []byte
	err = tx.GetContext(ctx, &current, "SELECT value FROM kv_entries WHERE key = $1 FOR UPDATE", key)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("kv update %s: read: %w", key, err)
	}
	if errors.Is(err, sql.ErrNoRows) {
		current = nil
	}

	next, err := mutate(current)
	if err != nil {
		return err
	}

	const upsert = `INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := tx.ExecContext(ctx, upsert, key, next, time.Now().UTC()); err != nil {
		return fmt.Errorf("kv update %s: write: %w", key, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("kv update %s: commit: %w", key, err)
	}
	return nil
}

// Delete removes the key.
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv_entries WHERE key = $1", key); err != nil {
		return fmt.Errorf("kv delete %s: %w", key, err)
	}
	return nil
}

var _ Store = (*PostgresStore)(nil)
