package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fredbi/uri"

	"pickperfect/internal/export"
	"pickperfect/internal/logging"
	"pickperfect/internal/palette"
)

const defaultSampleTimeout = 10 * time.Second

// PageOpener shows url in a window the palette host can sample.
type PageOpener func(pageURL string) (palette.Target, error)

type PaletteResult struct {
	Target    palette.Target           `json:"target"`
	Colors    []palette.ExtractedColor `json:"colors"`
	Grouped   bool                     `json:"grouped"`
	SampledAt string                   `json:"sampledAt"`
}

type PaletteService struct {
	host    palette.Host
	open    PageOpener
	timeout time.Duration
	logger  *slog.Logger

	mu      sync.Mutex
	running bool
}

func NewPaletteService(host palette.Host, open PageOpener, logger *slog.Logger) *PaletteService {
	return &PaletteService{
		host:    host,
		open:    open,
		timeout: defaultSampleTimeout,
		logger:  logging.OrDiscard(logger),
	}
}

func (s *PaletteService) OpenPage(pageURL string) (palette.Target, error) {
	parsed, err := uri.Parse(strings.TrimSpace(pageURL))
	if err != nil {
		return palette.Target{}, fmt.Errorf("parse page url: %w", err)
	}
	switch strings.ToLower(parsed.Scheme()) {
	case "http", "https", "file":
	default:
		return palette.Target{}, fmt.Errorf("unsupported page url %q", pageURL)
	}

	if s.open == nil {
		return palette.Target{}, errors.New("opening pages is not supported")
	}
	return s.open(parsed.String())
}

// SamplePage samples the active page. A negative threshold returns the raw
// palette; otherwise entries closer than threshold are grouped, so 0 keeps
// every color but still marks the result as grouped.
func (s *PaletteService) SamplePage(threshold float64) (PaletteResult, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return PaletteResult{}, errors.New("sampling already in progress")
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	target, err := s.host.ActiveTarget(ctx)
	if err != nil {
		if errors.Is(err, palette.ErrNoActiveTarget) {
			return PaletteResult{}, err
		}
		return PaletteResult{}, fmt.Errorf("%w: %w", palette.ErrNoActiveTarget, err)
	}

	started := time.Now()
	colors, err := palette.Extract(ctx, s.host)
	if err != nil {
		s.logger.Warn("palette sampling failed", "target", target.ID, "err", err)
		return PaletteResult{}, err
	}

	result := PaletteResult{
		Target:    target,
		Colors:    colors,
		SampledAt: time.Now().UTC().Format(time.RFC3339),
	}
	if threshold >= 0 {
		result.Colors = palette.Group(colors, threshold)
		result.Grouped = true
	}

	s.logger.Info("sampled palette",
		"target", target.ID,
		"colors", len(result.Colors),
		"grouped", result.Grouped,
		"elapsed", time.Since(started),
	)
	return result, nil
}

func (s *PaletteService) Export(kind string, name string, colors []palette.ExtractedColor) (string, error) {
	parsed, err := export.ParseKind(kind)
	if err != nil {
		return "", err
	}
	return export.Render(parsed, name, colors)
}
