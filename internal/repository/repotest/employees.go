package repotest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/repository"
)

// Employees is an in-memory repository.EmployeeRepository. When built with
// lookup and org unit stores the full info projection resolves labels from them.
type Employees struct {
	mu        sync.RWMutex
	clock     clock
	employees map[string]domain.Employee
	nextBadge int64
	lookups   *Lookups
	units     *OrgUnits
}

var _ repository.EmployeeRepository = (*Employees)(nil)

// NewEmployees returns an empty store. lookups and units may be nil.
func NewEmployees(lookups *Lookups, units *OrgUnits) *Employees {
	return &Employees{
		employees: map[string]domain.Employee{},
		lookups:   lookups,
		units:     units,
	}
}

func sameOptional(a, b *string) bool {
	return a != nil && b != nil && *a == *b
}

func (s *Employees) checkUnique(e *domain.Employee) error {
	for id, existing := range s.employees {
		if id == e.ID {
			continue
		}
		if sameOptional(existing.PhoneNumber, e.PhoneNumber) {
			return uniqueViolation("employee_phone_number_key")
		}
		if sameOptional(existing.NationalID, e.NationalID) {
			return uniqueViolation("employee_national_id_key")
		}
	}
	return nil
}

func (s *Employees) Create(_ context.Context, e *domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkUnique(e); err != nil {
		return err
	}
	s.nextBadge++
	e.ID = newID()
	e.BadgeNumber = s.nextBadge
	e.IsTerminated = false
	e.DateCreated = s.clock.now()
	e.DateModified = e.DateCreated
	s.employees[e.ID] = *e
	return nil
}

func (s *Employees) Update(_ context.Context, e *domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.employees[e.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	if err := s.checkUnique(e); err != nil {
		return err
	}
	e.BadgeNumber = existing.BadgeNumber
	e.DateModified = s.clock.now()
	s.employees[e.ID] = *e
	return nil
}

func (s *Employees) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.employees[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &e, nil
}

func (s *Employees) List(_ context.Context, filter repository.EmployeeFilter) ([]domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(filter), nil
}

func (s *Employees) Deactivate(_ context.Context, id, actor string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[id]
	if !ok {
		return pgx.ErrNoRows
	}
	e.IsActive = false
	e.ModifiedBy = actor
	e.DateModified = s.clock.now()
	s.employees[id] = e
	return nil
}

// SetTerminated flips the terminated flag the way termination writes do.
func (s *Employees) SetTerminated(id, actor string, terminated bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[id]
	if !ok {
		return pgx.ErrNoRows
	}
	e.IsTerminated = terminated
	e.ModifiedBy = actor
	e.DateModified = s.clock.now()
	s.employees[id] = e
	return nil
}

func (s *Employees) GetFullByID(ctx context.Context, id string) (*domain.EmployeeFull, error) {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	full := s.resolve(*e)
	return &full, nil
}

func (s *Employees) GetFullByBadge(_ context.Context, badge int64) (*domain.EmployeeFull, error) {
	s.mu.RLock()
	var found *domain.Employee
	for _, e := range s.employees {
		if e.BadgeNumber == badge {
			e := e
			found = &e
			break
		}
	}
	s.mu.RUnlock()
	if found == nil {
		return nil, pgx.ErrNoRows
	}
	full := s.resolve(*found)
	return &full, nil
}

func (s *Employees) ListFull(_ context.Context, filter repository.EmployeeFilter) ([]domain.EmployeeFull, error) {
	s.mu.RLock()
	employees := s.filter(filter)
	s.mu.RUnlock()

	result := make([]domain.EmployeeFull, 0, len(employees))
	for _, e := range employees {
		result = append(result, s.resolve(e))
	}
	return result, nil
}

func (s *Employees) filter(filter repository.EmployeeFilter) []domain.Employee {
	var result []domain.Employee
	for _, e := range s.employees {
		if filter.IsActive != nil && e.IsActive != *filter.IsActive {
			continue
		}
		if filter.IsTerminated != nil && e.IsTerminated != *filter.IsTerminated {
			continue
		}
		if filter.SectionID != nil && e.SectionID != *filter.SectionID {
			continue
		}
		if filter.Search != nil {
			term := strings.ToLower(strings.TrimSpace(*filter.Search))
			if term != "" && !strings.Contains(strings.ToLower(e.FullName()), term) {
				continue
			}
		}
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].BadgeNumber < result[j].BadgeNumber })

	if filter.Offset > 0 {
		if filter.Offset >= len(result) {
			return nil
		}
		result = result[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(result) {
		result = result[:filter.Limit]
	}
	return result
}

func (s *Employees) resolve(e domain.Employee) domain.EmployeeFull {
	full := domain.EmployeeFull{Employee: e}
	if s.lookups != nil {
		full.EducationalLevel = s.lookups.label(domain.LookupEducationalLevel, e.EducationalLevelID)
		full.Designation = s.lookups.label(domain.LookupDesignation, e.DesignationID)
		full.Nationality = s.lookups.label(domain.LookupNationality, e.NationalityID)
		full.Country = s.lookups.label(domain.LookupCountry, e.CountryID)
	}
	if s.units == nil {
		return full
	}
	section, ok := s.units.get(e.SectionID)
	if !ok {
		return full
	}
	full.Section = section.Name
	unit, ok := s.units.get(section.ParentID)
	if !ok {
		return full
	}
	full.Unit = unit.Name
	department, ok := s.units.get(unit.ParentID)
	if !ok {
		return full
	}
	full.Department = department.Name
	if s.lookups != nil {
		full.Division = s.lookups.label(domain.LookupDivision, department.ParentID)
	}
	return full
}
