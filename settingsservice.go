package main

import (
	"context"

	"pickperfect/internal/prefs"
)

type SettingsService struct {
	prefs *prefs.Store
}

func NewSettingsService(store *prefs.Store) *SettingsService {
	return &SettingsService{prefs: store}
}

func (s *SettingsService) GetFormat() (string, error) {
	format, err := s.prefs.Format(context.Background())
	return string(format), err
}

func (s *SettingsService) SetFormat(format string) (string, error) {
	saved, err := s.prefs.SetFormat(context.Background(), format)
	return string(saved), err
}

func (s *SettingsService) GetTheme() (string, error) {
	theme, err := s.prefs.Theme(context.Background())
	return string(theme), err
}

func (s *SettingsService) SetTheme(theme string) (string, error) {
	saved, err := s.prefs.SetTheme(context.Background(), theme)
	return string(saved), err
}
