package main

import (
	"context"
	"errors"
	"fmt"

	"pickperfect/internal/history"
)

type HistoryService struct {
	history *history.Service
}

func NewHistoryService(historyService *history.Service) *HistoryService {
	return &HistoryService{history: historyService}
}

func (s *HistoryService) List() ([]history.Entry, error) {
	return s.history.List(context.Background())
}

func (s *HistoryService) Add(hex string) ([]history.Entry, error) {
	return s.history.Add(context.Background(), hex)
}

func (s *HistoryService) Remove(hex string) ([]history.Entry, error) {
	entries, err := s.history.Remove(context.Background(), hex)
	if errors.Is(err, history.ErrEntryNotFound) {
		return nil, fmt.Errorf("color %s is not in history", hex)
	}
	return entries, err
}

func (s *HistoryService) Clear() error {
	return s.history.Clear(context.Background())
}
