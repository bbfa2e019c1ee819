package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SettingStore holds single string values by key. Get reports found=false
// when the key has never been written.
type SettingStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
}

type SQLiteSettingStore struct {
	db *sql.DB
}

func NewSQLiteSettingStore(db *sql.DB) *SQLiteSettingStore {
	return &SQLiteSettingStore{db: db}
}

func (s *SQLiteSettingStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value sql.NullString
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %s: %w", key, err)
	}
	return value.String, true, nil
}

func (s *SQLiteSettingStore) Put(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("put setting %s: %w", key, err)
	}
	return nil
}
