package history

import (
	"context"
	"sync"
)

const EventChanged = "history:changed"

type Emitter func(eventName string, payload any)

// Service publishes the full list after every change so views never have to
// merge partial updates.
type Service struct {
	mu   sync.Mutex
	repo *Repository
	emit Emitter
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) SetEmitter(emitter Emitter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emit = emitter
}

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.repo.List(ctx)
}

func (s *Service) Add(ctx context.Context, hex string) ([]Entry, error) {
	if _, err := s.repo.Add(ctx, hex); err != nil {
		return nil, err
	}
	return s.publish(ctx)
}

func (s *Service) Remove(ctx context.Context, hex string) ([]Entry, error) {
	if err := s.repo.Remove(ctx, hex); err != nil {
		return nil, err
	}
	return s.publish(ctx)
}

func (s *Service) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	_, err := s.publish(ctx)
	return err
}

func (s *Service) publish(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	emit := s.emit
	s.mu.Unlock()

	if emit != nil {
		emit(EventChanged, entries)
	}
	return entries, nil
}
