// Package history keeps the recently picked colors, newest first.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pickperfect/internal/colormodel"
)

// MaxEntries caps the number of remembered picks.
const MaxEntries = 20

var ErrEntryNotFound = errors.New("history entry not found")

type Entry struct {
	Hex       string `json:"hex"`
	Timestamp int64  `json:"timestamp"`
}

type Repository struct {
	db  *sql.DB
	now func() time.Time
}

func NewRepository(database *sql.DB) *Repository {
	return &Repository{db: database, now: time.Now}
}

func (r *Repository) List(ctx context.Context) ([]Entry, error) {
	rows, err := r.db.QueryContext(
		ctx,
		"SELECT hex, picked_at FROM history ORDER BY picked_at DESC, id DESC LIMIT ?",
		MaxEntries,
	)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.Hex, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}

	return entries, nil
}

// Add records hex as the newest pick. A color already present moves to the
// front instead of appearing twice, and the oldest picks beyond MaxEntries
// are dropped.
func (r *Repository) Add(ctx context.Context, hex string) (Entry, error) {
	canonical, err := canonicalHex(hex)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{Hex: canonical, Timestamp: r.now().UnixMilli()}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return Entry{}, fmt.Errorf("start history tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM history WHERE hex = ?", entry.Hex); err != nil {
		return Entry{}, fmt.Errorf("remove previous history entry: %w", err)
	}

	if _, err := tx.ExecContext(
		ctx,
		"INSERT INTO history(hex, picked_at) VALUES (?, ?)",
		entry.Hex,
		entry.Timestamp,
	); err != nil {
		return Entry{}, fmt.Errorf("insert history entry: %w", err)
	}

	if _, err := tx.ExecContext(
		ctx,
		`DELETE FROM history WHERE id NOT IN (
			SELECT id FROM history ORDER BY picked_at DESC, id DESC LIMIT ?
		)`,
		MaxEntries,
	); err != nil {
		return Entry{}, fmt.Errorf("trim history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Entry{}, fmt.Errorf("commit history entry: %w", err)
	}

	return entry, nil
}

func (r *Repository) Remove(ctx context.Context, hex string) error {
	canonical, err := canonicalHex(hex)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, "DELETE FROM history WHERE hex = ?", canonical)
	if err != nil {
		return fmt.Errorf("delete history entry %s: %w", canonical, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read deleted history count: %w", err)
	}
	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func (r *Repository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM history"); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func canonicalHex(hex string) (string, error) {
	if strings.TrimSpace(hex) == "" {
		return "", errors.New("hex is required")
	}
	return colormodel.ParseHex(strings.TrimSpace(hex)).Hex(), nil
}
