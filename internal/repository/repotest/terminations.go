package repotest

import (
	"context"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/repository"
)

// Terminations is an in-memory repository.TerminationRepository that flags
// employees in the paired Employees store.
type Terminations struct {
	mu           sync.RWMutex
	clock        clock
	terminations map[string]domain.Termination
	employees    *Employees
}

var _ repository.TerminationRepository = (*Terminations)(nil)

// NewTerminations returns an empty store bound to employees.
func NewTerminations(employees *Employees) *Terminations {
	return &Terminations{terminations: map[string]domain.Termination{}, employees: employees}
}

func (s *Terminations) checkUnique(t *domain.Termination) error {
	for id, existing := range s.terminations {
		if id == t.ID || existing.EmployeeID != t.EmployeeID {
			continue
		}
		if existing.HireDate.Equal(t.HireDate) {
			return uniqueViolation("termination_employee_uid_hire_date_key")
		}
		if existing.TerminationDate.Equal(t.TerminationDate) {
			return uniqueViolation("termination_employee_uid_termination_date_key")
		}
	}
	return nil
}

func (s *Terminations) Create(_ context.Context, t *domain.Termination) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkUnique(t); err != nil {
		return err
	}
	if err := s.employees.SetTerminated(t.EmployeeID, t.ModifiedBy, true); err != nil {
		return err
	}
	t.ID = newID()
	t.DateCreated = s.clock.now()
	t.DateModified = t.DateCreated
	s.terminations[t.ID] = *t
	return nil
}

func (s *Terminations) Update(_ context.Context, t *domain.Termination) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.terminations[t.ID]; !ok {
		return pgx.ErrNoRows
	}
	if err := s.checkUnique(t); err != nil {
		return err
	}
	t.DateModified = s.clock.now()
	s.terminations[t.ID] = *t
	return nil
}

func (s *Terminations) GetByID(_ context.Context, id string) (*domain.Termination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.terminations[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &t, nil
}

func (s *Terminations) List(_ context.Context) ([]domain.Termination, error) {
	return s.collect(func(domain.Termination) bool { return true }), nil
}

func (s *Terminations) ListByEmployee(_ context.Context, employeeID string) ([]domain.Termination, error) {
	return s.collect(func(t domain.Termination) bool { return t.EmployeeID == employeeID }), nil
}

func (s *Terminations) collect(keep func(domain.Termination) bool) []domain.Termination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Termination
	for _, t := range s.terminations {
		if keep(t) {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].TerminationDate.After(result[j].TerminationDate) })
	return result
}

func (s *Terminations) Delete(_ context.Context, id, actor string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.terminations[id]
	if !ok {
		return pgx.ErrNoRows
	}
	for other, existing := range s.terminations {
		if other != id && existing.EmployeeID == t.EmployeeID {
			delete(s.terminations, id)
			return nil
		}
	}
	if err := s.employees.SetTerminated(t.EmployeeID, actor, false); err != nil {
		return err
	}
	delete(s.terminations, id)
	return nil
}
