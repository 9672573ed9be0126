package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pickperfect/internal/db"
	"pickperfect/internal/history"
	"pickperfect/internal/palette"
	"pickperfect/internal/prefs"
)

type stubHost struct {
	target  palette.Target
	elems   palette.Snapshot
	release chan struct{}
	entered chan struct{}
}

func (h *stubHost) ActiveTarget(ctx context.Context) (palette.Target, error) {
	if h.target.ID == "" {
		return palette.Target{}, palette.ErrNoActiveTarget
	}
	return h.target, nil
}

func (h *stubHost) Execute(ctx context.Context, _ palette.Target, sample palette.SampleFunc) ([]palette.ExtractedColor, error) {
	if h.entered != nil {
		h.entered <- struct{}{}
	}
	if h.release != nil {
		select {
		case <-h.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return palette.RunSafely(sample, h.elems)
}

func visible(background, text string) palette.ElementSnapshot {
	return palette.ElementSnapshot{
		Visible: true,
		Style:   palette.Style{Background: background, Text: text, Border: "rgba(0, 0, 0, 0)"},
	}
}

func TestPaletteServiceGroupsOnRequest(t *testing.T) {
	t.Parallel()

	host := &stubHost{
		target: palette.Target{ID: "page"},
		elems: palette.Snapshot{
			visible("rgb(255, 255, 255)", "rgb(0, 0, 0)"),
			visible("rgb(250, 250, 250)", "rgb(0, 0, 0)"),
			visible("rgb(255, 255, 255)", "rgb(3, 3, 3)"),
		},
	}
	service := NewPaletteService(host, nil, nil)

	raw, err := service.SamplePage(-1)
	if err != nil {
		t.Fatalf("sample raw: %v", err)
	}
	if raw.Grouped || len(raw.Colors) != 4 {
		t.Fatalf("expected four ungrouped colors, got %+v", raw)
	}

	exact, err := service.SamplePage(0)
	if err != nil {
		t.Fatalf("sample with zero threshold: %v", err)
	}
	if !exact.Grouped || len(exact.Colors) != 4 {
		t.Fatalf("zero threshold must keep every color, got %+v", exact)
	}

	grouped, err := service.SamplePage(palette.DefaultGroupThreshold)
	if err != nil {
		t.Fatalf("sample grouped: %v", err)
	}
	if !grouped.Grouped || len(grouped.Colors) != 2 {
		t.Fatalf("expected two grouped colors, got %+v", grouped)
	}
	if grouped.Colors[0].Count != 3 || grouped.Colors[1].Count != 3 {
		t.Fatalf("unexpected grouped counts %+v", grouped.Colors)
	}
	if grouped.Target.ID != "page" {
		t.Fatalf("expected target page, got %+v", grouped.Target)
	}
}

func TestPaletteServiceRejectsConcurrentSampling(t *testing.T) {
	t.Parallel()

	host := &stubHost{
		target:  palette.Target{ID: "slow"},
		elems:   palette.Snapshot{visible("rgb(1, 2, 3)", "rgb(4, 5, 6)")},
		release: make(chan struct{}),
		entered: make(chan struct{}, 1),
	}
	service := NewPaletteService(host, nil, nil)

	done := make(chan error, 1)
	go func() {
		_, err := service.SamplePage(-1)
		done <- err
	}()
	<-host.entered

	if _, err := service.SamplePage(-1); err == nil || !strings.Contains(err.Error(), "already in progress") {
		t.Fatalf("expected in-progress error, got %v", err)
	}

	close(host.release)
	if err := <-done; err != nil {
		t.Fatalf("first sample: %v", err)
	}
}

func TestPaletteServiceTimesOut(t *testing.T) {
	t.Parallel()

	host := &stubHost{
		target:  palette.Target{ID: "stuck"},
		release: make(chan struct{}),
	}
	service := NewPaletteService(host, nil, nil)
	service.timeout = 20 * time.Millisecond

	_, err := service.SamplePage(-1)
	if !errors.Is(err, palette.ErrSamplingFailed) || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected timed out sampling failure, got %v", err)
	}
}

func TestPaletteServiceWithoutTarget(t *testing.T) {
	t.Parallel()

	service := NewPaletteService(&stubHost{}, nil, nil)
	if _, err := service.SamplePage(-1); !errors.Is(err, palette.ErrNoActiveTarget) {
		t.Fatalf("expected ErrNoActiveTarget, got %v", err)
	}
}

func TestPaletteServiceOpenPage(t *testing.T) {
	t.Parallel()

	var opened string
	service := NewPaletteService(&stubHost{}, func(pageURL string) (palette.Target, error) {
		opened = pageURL
		return palette.Target{ID: "window", URL: pageURL}, nil
	}, nil)

	if _, err := service.OpenPage("javascript:alert(1)"); err == nil {
		t.Fatalf("expected unsupported scheme error")
	}
	target, err := service.OpenPage(" https://example.test/a ")
	if err != nil {
		t.Fatalf("open page: %v", err)
	}
	if opened != "https://example.test/a" || target.ID != "window" {
		t.Fatalf("unexpected open %q -> %+v", opened, target)
	}
}

func TestColorServiceDescribe(t *testing.T) {
	t.Parallel()

	service := NewColorService()
	description := service.Describe("ff0000")

	if description.Hex != "#FF0000" {
		t.Fatalf("unexpected hex %s", description.Hex)
	}
	if description.Formats["rgb"] != "rgb(255, 0, 0)" || description.Formats["hsl"] != "hsl(0, 100%, 50%)" {
		t.Fatalf("unexpected formats %v", description.Formats)
	}
	if description.Nearest.Name != "red" || description.Nearest.Distance != 0 {
		t.Fatalf("expected exact css red, got %+v", description.Nearest)
	}
	if description.LabelInk != "#FFFFFF" {
		t.Fatalf("expected white label ink on red, got %s", description.LabelInk)
	}

	if _, err := service.Format("#000", "cmyk"); err == nil {
		t.Fatalf("expected unknown format error")
	}
	if ratio := service.CheckContrast("#000000", "#FFFFFF").Ratio; ratio != 21 {
		t.Fatalf("expected 21:1, got %v", ratio)
	}
}

func TestPickerAndBootstrapServices(t *testing.T) {
	t.Parallel()

	database, err := db.Bootstrap(context.Background(), filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatalf("bootstrap db: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	historyDomain := history.NewService(history.NewRepository(database))
	store := prefs.NewStore(database)

	picker := NewPickerService(historyDomain)
	result, err := picker.RecordEyedropper("rgba(16, 32, 48, 1)")
	if err != nil {
		t.Fatalf("record eyedropper: %v", err)
	}
	if result.Hex != "#102030" || len(result.History) != 1 {
		t.Fatalf("unexpected pick result %+v", result)
	}

	settings := NewSettingsService(store)
	if _, err := settings.SetTheme("dark"); err != nil {
		t.Fatalf("set theme: %v", err)
	}

	snapshot, err := NewBootstrapService(historyDomain, store).GetInitialState()
	if err != nil {
		t.Fatalf("initial state: %v", err)
	}
	if snapshot.Theme != "dark" || snapshot.Format != "hex" || len(snapshot.History) != 1 || len(snapshot.Formats) != 4 {
		t.Fatalf("unexpected snapshot %+v", snapshot)
	}

	historyService := NewHistoryService(historyDomain)
	if _, err := historyService.Remove("#FFFFFF"); err == nil {
		t.Fatalf("expected missing entry error")
	}
}
