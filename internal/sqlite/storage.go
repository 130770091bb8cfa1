// Package sqlite backs the app's key-value persistence with a local sqlite
// file, the durable half of the reminder ledger.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/shpemaes-utep/chapterapp/internal"
)

const DriverName = "sqlite3"

type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sql.DB) *Storage {
	s := &Storage{
		db: sqlx.NewDb(db, DriverName),
	}
	err := s.RunMigrations()
	if err != nil {
		panic(fmt.Sprintf("sqlite: running migrations: %v", err))
	}
	return s
}

func (s Storage) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.GetContext(ctx, &value, `
		SELECT value FROM kv WHERE key = ?
	`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", internal.ErrNotFound
	}
	return value, err
}

func (s Storage) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value=?;
	`, key, value, value)
	return err
}

func (s Storage) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM kv WHERE key = ?
	`, key)
	return err
}

// Keys returns every stored key. Namespace filtering is the caller's
// concern, matching the "list all keys" shape of the mobile store.
func (s Storage) Keys(ctx context.Context) ([]string, error) {
	var rows []record
	err := s.db.SelectContext(ctx, &rows, `
		SELECT key, value FROM kv ORDER BY key
	`)
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(rows))
	for i, r := range rows {
		keys[i] = r.Key
	}
	return keys, nil
}
