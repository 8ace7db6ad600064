package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrItemNotFound is returned when no value is stored under a key.
var ErrItemNotFound = errors.New("item not found")

// SaveItem stores value under key, replacing any previous value.
func SaveItem(ctx context.Context, db *sql.DB, key, value string) error {
	query := `
		INSERT INTO items (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ','now')
	`

	if _, err := db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to save item %q: %w", key, err)
	}
	return nil
}

// LoadItem retrieves the value stored under key.
func LoadItem(ctx context.Context, db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM items WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrItemNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load item %q: %w", key, err)
	}
	return value, nil
}

// DeleteItem removes key. Deleting a missing key is not an error.
func DeleteItem(ctx context.Context, db *sql.DB, key string) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM items WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete item %q: %w", key, err)
	}
	return nil
}

// Storage exposes the item table as a key/value store.
type Storage struct {
	db *sql.DB
}

// NewStorage wraps an open database.
func NewStorage(database *sql.DB) *Storage {
	return &Storage{db: database}
}

// SaveItem stores value under key.
func (s *Storage) SaveItem(ctx context.Context, key, value string) error {
	return SaveItem(ctx, s.db, key, value)
}

// LoadItem retrieves the value stored under key.
func (s *Storage) LoadItem(ctx context.Context, key string) (string, error) {
	return LoadItem(ctx, s.db, key)
}

// DeleteItem removes key.
func (s *Storage) DeleteItem(ctx context.Context, key string) error {
	return DeleteItem(ctx, s.db, key)
}
