package main

import (
	"context"

	"pickperfect/internal/colormodel"
	"pickperfect/internal/history"
	"pickperfect/internal/prefs"
)

type StartupSnapshot struct {
	History []history.Entry     `json:"history"`
	Format  string              `json:"format"`
	Formats []colormodel.Format `json:"formats"`
	Theme   string              `json:"theme"`
}

type BootstrapService struct {
	history *history.Service
	prefs   *prefs.Store
}

func NewBootstrapService(historyService *history.Service, store *prefs.Store) *BootstrapService {
	return &BootstrapService{history: historyService, prefs: store}
}

func (s *BootstrapService) GetInitialState() (StartupSnapshot, error) {
	ctx := context.Background()

	entries, err := s.history.List(ctx)
	if err != nil {
		return StartupSnapshot{}, err
	}

	format, err := s.prefs.Format(ctx)
	if err != nil {
		return StartupSnapshot{}, err
	}

	theme, err := s.prefs.Theme(ctx)
	if err != nil {
		return StartupSnapshot{}, err
	}

	return StartupSnapshot{
		History: entries,
		Format:  string(format),
		Formats: colormodel.Formats(),
		Theme:   string(theme),
	}, nil
}
