package repotest

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/repository"
)

// Lookups is an in-memory repository.LookupRepository.
type Lookups struct {
	mu    sync.RWMutex
	clock clock
	items map[string]domain.Lookup
	calls int
}

var _ repository.LookupRepository = (*Lookups)(nil)

// NewLookups returns an empty store.
func NewLookups() *Lookups {
	return &Lookups{items: map[string]domain.Lookup{}}
}

// ListCalls reports how many times List reached the store.
func (s *Lookups) ListCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calls
}

func (s *Lookups) duplicate(item *domain.Lookup) bool {
	for id, existing := range s.items {
		if id != item.ID && existing.Kind == item.Kind && existing.Label == item.Label {
			return true
		}
	}
	return false
}

func (s *Lookups) Create(_ context.Context, item *domain.Lookup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.duplicate(item) {
		return uniqueViolation(item.Kind.Table() + "_" + item.Kind.Field() + "_key")
	}
	item.ID = newID()
	item.DateCreated = s.clock.now()
	item.DateModified = item.DateCreated
	s.items[item.ID] = *item
	return nil
}

func (s *Lookups) Update(_ context.Context, item *domain.Lookup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.items[item.ID]
	if !ok || existing.Kind != item.Kind {
		return pgx.ErrNoRows
	}
	if s.duplicate(item) {
		return uniqueViolation(item.Kind.Table() + "_" + item.Kind.Field() + "_key")
	}
	item.DateModified = s.clock.now()
	s.items[item.ID] = *item
	return nil
}

func (s *Lookups) GetByID(_ context.Context, kind domain.LookupKind, id string) (*domain.Lookup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok || item.Kind != kind {
		return nil, pgx.ErrNoRows
	}
	return &item, nil
}

func (s *Lookups) List(_ context.Context, kind domain.LookupKind) ([]domain.Lookup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	var result []domain.Lookup
	for _, item := range s.items {
		if item.Kind == kind {
			result = append(result, item)
		}
	}
	sortBy(result, func(l domain.Lookup) string { return l.Label })
	return result, nil
}

func (s *Lookups) Delete(_ context.Context, kind domain.LookupKind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok || item.Kind != kind {
		return pgx.ErrNoRows
	}
	delete(s.items, id)
	return nil
}

func (s *Lookups) label(kind domain.LookupKind, id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if item, ok := s.items[id]; ok && item.Kind == kind {
		return item.Label
	}
	return ""
}
