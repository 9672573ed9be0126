package htmldoc

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events most editors emit per save.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reports saves of one file. It watches the parent directory so
// editors that replace the file on save are still seen.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	Debounce time.Duration
}

func NewWatcher(path string) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watched path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	return &Watcher{path: absPath, watcher: watcher, Debounce: DefaultDebounce}, nil
}

// Run calls onChange after each settled change to the file until ctx is
// done. onChange runs on its own goroutine and never after Run returns
// through ctx. Run closes the watcher before returning.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	defer w.watcher.Close()

	debounced := debounce.New(w.Debounce)
	settled := func() {
		if ctx.Err() == nil {
			onChange()
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				debounced(settled)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", w.path, err)
		}
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Watch blocks, calling onChange whenever path is saved, until ctx is done.
func Watch(ctx context.Context, path string, onChange func()) error {
	watcher, err := NewWatcher(path)
	if err != nil {
		return err
	}
	return watcher.Run(ctx, onChange)
}
