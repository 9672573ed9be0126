package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// EnvDataDir overrides the per-user data directory.
const EnvDataDir = "PICKPERFECT_DATA_DIR"

type Paths struct {
	BaseDir string
	DBPath  string
}

// ResolvePaths picks the data directory for appSlug and makes sure it
// exists. The override in EnvDataDir wins over the XDG data home.
func ResolvePaths(appSlug string) (Paths, error) {
	baseDir := strings.TrimSpace(os.Getenv(EnvDataDir))
	if baseDir == "" {
		baseDir = filepath.Join(xdg.DataHome, appSlug)
	}

	return PathsIn(baseDir)
}

func PathsIn(baseDir string) (Paths, error) {
	absDir, err := filepath.Abs(baseDir)
	if err != nil {
		return Paths{}, fmt.Errorf("resolve data dir: %w", err)
	}

	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return Paths{}, fmt.Errorf("create data dir: %w", err)
	}

	return Paths{
		BaseDir: absDir,
		DBPath:  filepath.Join(absDir, "pickperfect.db"),
	}, nil
}
