package main

import (
	"context"

	"pickperfect/internal/history"
	"pickperfect/internal/palette"
	"pickperfect/internal/picker"
)

type PickResult struct {
	Hex     string          `json:"hex"`
	History []history.Entry `json:"history"`
}

type PickerService struct {
	history *history.Service
}

func NewPickerService(historyService *history.Service) *PickerService {
	return &PickerService{history: historyService}
}

// RecordEyedropper normalizes what the page's eyedropper reported and adds
// it to the history.
func (s *PickerService) RecordEyedropper(raw string) (PickResult, error) {
	picked, err := picker.NormalizeEyedropper(raw)
	if err != nil {
		return PickResult{}, err
	}
	return s.record(picked.Hex())
}

func (s *PickerService) PickFromImage(path string, x int, y int) (PickResult, error) {
	img, err := picker.LoadImage(path)
	if err != nil {
		return PickResult{}, err
	}

	picked, err := picker.PickFromImage(img, x, y)
	if err != nil {
		return PickResult{}, err
	}
	return s.record(picked.Hex())
}

func (s *PickerService) DominantColors(path string, count int) ([]palette.ExtractedColor, error) {
	img, err := picker.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return picker.Dominant(img, count)
}

func (s *PickerService) record(hex string) (PickResult, error) {
	entries, err := s.history.Add(context.Background(), hex)
	if err != nil {
		return PickResult{}, err
	}
	return PickResult{Hex: hex, History: entries}, nil
}
