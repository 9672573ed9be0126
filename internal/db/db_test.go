package db

import (
	"context"
	"path/filepath"
	"testing"
)

func TestBootstrapCreatesSchemaOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "nested", "pickperfect.db")

	database, err := Bootstrap(ctx, dbPath)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	defer database.Close()

	for _, table := range []string{"history", "preferences", "schema_migrations"} {
		var count int
		if err := database.QueryRowContext(
			ctx,
			"SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = ?",
			table,
		).Scan(&count); err != nil {
			t.Fatalf("inspect schema: %v", err)
		}
		if count != 1 {
			t.Fatalf("expected table %q to exist", table)
		}
	}

	applied, err := RunMigrations(ctx, database)
	if err != nil {
		t.Fatalf("rerun migrations: %v", err)
	}
	if len(applied) != 0 {
		t.Fatalf("expected no migrations on second run, got %v", applied)
	}
}
