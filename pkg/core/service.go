package core

import (
	"context"
	"errors"
	"sync"
)

// Service handles the business logic for loading documents.
type Service struct {
	source Source
	mu     sync.RWMutex
}

// NewService creates a new Service.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// LoadDocument retrieves a single document.
func (s *Service) LoadDocument(ctx context.Context, id string) (Document, error) {
	if id == "" {
		return Document{}, errors.New("document ID cannot be empty")
	}
	return s.source.Get(ctx, id)
}

// LoadAll retrieves every document in the collection.
// It fails fast: the first malformed document aborts the load with an error
// naming the offending document. Callers that want the full picture should
// use Check instead.
func (s *Service) LoadAll(ctx context.Context) ([]Document, error) {
	return s.source.List(ctx)
}

// Check validates every document and reports the ones that failed to parse.
// The parser never decides skip-vs-abort policy; the report lets the caller
// make that call.
func (s *Service) Check(ctx context.Context) ([]Issue, error) {
	if c, ok := s.source.(Checkable); ok {
		return c.Check(ctx)
	}

	// Fallback for sources without report support: a fail-fast List yields at
	// most one issue.
	if _, err := s.source.List(ctx); err != nil {
		return []Issue{{Err: err}}, nil
	}
	return nil, nil
}

// Watch observes changes in the collection if the source supports it.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.source.(Watchable)
	if !ok {
		return nil, errors.New("source does not support watching")
	}
	return w.Watch(ctx, pattern)
}
