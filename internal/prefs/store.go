// Package prefs persists the picker's user preferences as key/value rows.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pickperfect/internal/colormodel"
)

const (
	keyFormat = "format"
	keyTheme  = "theme"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

var ErrInvalidTheme = errors.New("invalid theme")

func ParseTheme(value string) (Theme, error) {
	switch theme := Theme(strings.ToLower(strings.TrimSpace(value))); theme {
	case ThemeLight, ThemeDark, ThemeSystem:
		return theme, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, value)
	}
}

type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) *Store {
	return &Store{db: database}
}

// Format returns the preferred output format. Missing or unreadable values
// fall back to hex.
func (s *Store) Format(ctx context.Context) (colormodel.Format, error) {
	value, ok, err := s.get(ctx, keyFormat)
	if err != nil || !ok {
		return colormodel.FormatHex, err
	}

	format, err := colormodel.ParseFormat(value)
	if err != nil {
		return colormodel.FormatHex, nil
	}
	return format, nil
}

func (s *Store) SetFormat(ctx context.Context, value string) (colormodel.Format, error) {
	format, err := colormodel.ParseFormat(value)
	if err != nil {
		return "", err
	}

	if err := s.set(ctx, keyFormat, string(format)); err != nil {
		return "", err
	}
	return format, nil
}

func (s *Store) Theme(ctx context.Context) (Theme, error) {
	value, ok, err := s.get(ctx, keyTheme)
	if err != nil || !ok {
		return ThemeSystem, err
	}

	theme, err := ParseTheme(value)
	if err != nil {
		return ThemeSystem, nil
	}
	return theme, nil
}

func (s *Store) SetTheme(ctx context.Context, value string) (Theme, error) {
	theme, err := ParseTheme(value)
	if err != nil {
		return "", err
	}

	if err := s.set(ctx, keyTheme, string(theme)); err != nil {
		return "", err
	}
	return theme, nil
}

func (s *Store) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read preference %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) set(ctx context.Context, key string, value string) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO preferences(key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key,
		value,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("write preference %s: %w", key, err)
	}
	return nil
}
