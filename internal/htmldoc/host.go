package htmldoc

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"pickperfect/internal/logging"
	"pickperfect/internal/palette"
)

// FileHost samples a single HTML file on disk. The file is re-read on every
// Execute so edits between runs are picked up.
type FileHost struct {
	path   string
	logger *slog.Logger
}

func NewFileHost(path string, logger *slog.Logger) *FileHost {
	return &FileHost{path: path, logger: logging.OrDiscard(logger)}
}

func (h *FileHost) ActiveTarget(ctx context.Context) (palette.Target, error) {
	if err := ctx.Err(); err != nil {
		return palette.Target{}, err
	}

	absPath, err := filepath.Abs(h.path)
	if err != nil {
		return palette.Target{}, fmt.Errorf("%w: %w", palette.ErrNoActiveTarget, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return palette.Target{}, fmt.Errorf("%w: %s does not exist", palette.ErrNoActiveTarget, absPath)
		}
		return palette.Target{}, fmt.Errorf("%w: %w", palette.ErrNoActiveTarget, err)
	}
	if info.IsDir() {
		return palette.Target{}, fmt.Errorf("%w: %s is a directory", palette.ErrNoActiveTarget, absPath)
	}

	return palette.Target{
		ID:    absPath,
		Title: filepath.Base(absPath),
		URL:   "file://" + filepath.ToSlash(absPath),
	}, nil
}

func (h *FileHost) Execute(ctx context.Context, target palette.Target, sample palette.SampleFunc) ([]palette.ExtractedColor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := ParseFile(target.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", palette.ErrSamplingFailed, err)
	}

	colors, err := palette.RunSafely(sample, doc)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("sampled document",
		"path", target.ID,
		"title", doc.Title,
		"elements", len(doc.elements),
		"colors", len(colors),
	)
	return colors, nil
}
