package repotest

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/repository"
)

// OrgUnits is an in-memory repository.OrgUnitRepository.
type OrgUnits struct {
	mu    sync.RWMutex
	clock clock
	units map[string]domain.OrgUnit
}

var _ repository.OrgUnitRepository = (*OrgUnits)(nil)

// NewOrgUnits returns an empty store.
func NewOrgUnits() *OrgUnits {
	return &OrgUnits{units: map[string]domain.OrgUnit{}}
}

func (s *OrgUnits) duplicate(unit *domain.OrgUnit) bool {
	for id, existing := range s.units {
		if id != unit.ID && existing.Level == unit.Level && existing.ParentID == unit.ParentID && existing.Name == unit.Name {
			return true
		}
	}
	return false
}

func (s *OrgUnits) Create(_ context.Context, unit *domain.OrgUnit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.duplicate(unit) {
		return uniqueViolation(unit.Level.Table() + "_" + unit.Level.ParentKey() + "_name_key")
	}
	unit.ID = newID()
	unit.DateCreated = s.clock.now()
	unit.DateModified = unit.DateCreated
	s.units[unit.ID] = *unit
	return nil
}

func (s *OrgUnits) Update(_ context.Context, unit *domain.OrgUnit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.units[unit.ID]
	if !ok || existing.Level != unit.Level {
		return pgx.ErrNoRows
	}
	if s.duplicate(unit) {
		return uniqueViolation(unit.Level.Table() + "_" + unit.Level.ParentKey() + "_name_key")
	}
	unit.DateModified = s.clock.now()
	s.units[unit.ID] = *unit
	return nil
}

func (s *OrgUnits) GetByID(_ context.Context, level domain.OrgLevel, id string) (*domain.OrgUnit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	unit, ok := s.units[id]
	if !ok || unit.Level != level {
		return nil, pgx.ErrNoRows
	}
	return &unit, nil
}

func (s *OrgUnits) List(_ context.Context, level domain.OrgLevel, parentID *string) ([]domain.OrgUnit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.OrgUnit
	for _, unit := range s.units {
		if unit.Level != level {
			continue
		}
		if parentID != nil && unit.ParentID != *parentID {
			continue
		}
		result = append(result, unit)
	}
	sortBy(result, func(u domain.OrgUnit) string { return u.Name })
	return result, nil
}

func (s *OrgUnits) Delete(_ context.Context, level domain.OrgLevel, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	unit, ok := s.units[id]
	if !ok || unit.Level != level {
		return pgx.ErrNoRows
	}
	for _, other := range s.units {
		if other.ParentID == id {
			return foreignKeyViolation(other.Level.Table() + "_" + other.Level.ParentKey() + "_fkey")
		}
	}
	delete(s.units, id)
	return nil
}

func (s *OrgUnits) get(id string) (domain.OrgUnit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	unit, ok := s.units[id]
	return unit, ok
}
