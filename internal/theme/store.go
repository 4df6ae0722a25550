// Package theme persists the light/dark preference.
package theme

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ziadkadry99/moviemood/internal/db"
)

// Mode is the colour scheme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

const preferenceKey = "theme"

// Store reads and writes the theme preference.
type Store struct {
	db *db.DB
}

// NewStore creates a store backed by d.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// Get returns the saved mode, or Light when none is saved.
func (s *Store) Get(ctx context.Context) (Mode, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, preferenceKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return Light, nil
	}
	if err != nil {
		return Light, fmt.Errorf("reading theme: %w", err)
	}
	if Mode(value) == Dark {
		return Dark, nil
	}
	return Light, nil
}

// Set saves m.
func (s *Store) Set(ctx context.Context, m Mode) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, datetime('now'))
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		preferenceKey, string(m))
	if err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}
