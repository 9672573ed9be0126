package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePathsHonoursOverride(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")
	t.Setenv(EnvDataDir, dataDir)

	paths, err := ResolvePaths("pickperfect")
	if err != nil {
		t.Fatalf("resolve paths: %v", err)
	}

	if paths.BaseDir != dataDir {
		t.Fatalf("expected base dir %q, got %q", dataDir, paths.BaseDir)
	}
	if paths.DBPath != filepath.Join(dataDir, "pickperfect.db") {
		t.Fatalf("unexpected db path %q", paths.DBPath)
	}

	info, err := os.Stat(dataDir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected data dir to be created: %v", err)
	}
}
