package main

import (
	"context"
	"embed"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"

	"pickperfect/internal/bridge"
	"pickperfect/internal/config"
	"pickperfect/internal/db"
	"pickperfect/internal/history"
	"pickperfect/internal/logging"
	"pickperfect/internal/palette"
	"pickperfect/internal/prefs"
)

// Wails uses Go's `embed` package to embed the frontend files into the binary.
// Any files in the frontend/dist folder will be embedded into the binary and
// made available to the frontend.

//go:embed all:frontend/dist
var assets embed.FS

func init() {
	application.RegisterEvent[[]history.Entry](history.EventChanged)
	application.RegisterEvent[bridge.Response](bridge.EventSampleResult)
}

func main() {
	_ = godotenv.Load()

	level, err := logging.ParseLevel(os.Getenv("PICKPERFECT_LOG_LEVEL"))
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.New(os.Stderr, level)

	paths, err := config.ResolvePaths("pickperfect")
	if err != nil {
		log.Fatal(err)
	}

	sqliteDB, err := db.Bootstrap(context.Background(), paths.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	historyDomain := history.NewService(history.NewRepository(sqliteDB))
	prefsStore := prefs.NewStore(sqliteDB)
	sampleBridge := bridge.New(logger.With("component", "bridge"))

	var app *application.App
	openPage := func(pageURL string) (palette.Target, error) {
		window := app.Window.NewWithOptions(application.WebviewWindowOptions{
			Title:  pageURL,
			URL:    pageURL,
			Width:  1280,
			Height: 800,
		})
		target := sampleBridge.Attach(window, palette.Target{Title: pageURL, URL: pageURL})
		window.OnWindowEvent(events.Common.WindowClosing, func(*application.WindowEvent) {
			sampleBridge.Detach(target.ID)
		})
		return target, nil
	}

	colorService := NewColorService()
	paletteService := NewPaletteService(sampleBridge, openPage, logger.With("component", "palette"))
	historyService := NewHistoryService(historyDomain)
	settingsService := NewSettingsService(prefsStore)
	bootstrapService := NewBootstrapService(historyDomain, prefsStore)
	pickerService := NewPickerService(historyDomain)

	app = application.New(application.Options{
		Name:        "PickPerfect",
		Description: "Color picker and page palette sampler",
		Logger:      logger,
		Services: []application.Service{
			application.NewService(colorService),
			application.NewService(paletteService),
			application.NewService(historyService),
			application.NewService(settingsService),
			application.NewService(bootstrapService),
			application.NewService(pickerService),
		},
		Assets: application.AssetOptions{
			Handler: application.AssetFileServerFS(assets),
		},
		Mac: application.MacOptions{
			ApplicationShouldTerminateAfterLastWindowClosed: true,
		},
	})

	historyDomain.SetEmitter(func(eventName string, payload any) {
		app.Event.Emit(eventName, payload)
	})
	app.Event.On(bridge.EventSampleResult, func(event *application.CustomEvent) {
		if err := sampleBridge.Resolve(event.Data); err != nil {
			logger.Warn("dropping sample result", "err", err)
		}
	})

	app.Window.NewWithOptions(application.WebviewWindowOptions{
		Title: "PickPerfect",
		Mac: application.MacWindow{
			InvisibleTitleBarHeight: 50,
			Backdrop:                application.MacBackdropTranslucent,
			TitleBar:                application.MacTitleBarHiddenInset,
		},
		BackgroundColour: application.NewRGB(18, 18, 20),
		URL:              "/",
	})

	logger.Info("starting", "data", paths.BaseDir)
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
