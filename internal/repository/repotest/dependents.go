package repotest

import (
	"context"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/repository"
)

// Children is an in-memory repository.ChildRepository.
type Children struct {
	mu       sync.RWMutex
	clock    clock
	children map[string]domain.Child
}

var _ repository.ChildRepository = (*Children)(nil)

// NewChildren returns an empty store.
func NewChildren() *Children {
	return &Children{children: map[string]domain.Child{}}
}

func (s *Children) checkUnique(c *domain.Child) error {
	for id, existing := range s.children {
		if id != c.ID && existing.ParentID == c.ParentID && existing.FirstName == c.FirstName {
			return uniqueViolation("child_parent_uid_first_name_key")
		}
	}
	return nil
}

func (s *Children) Create(_ context.Context, c *domain.Child) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkUnique(c); err != nil {
		return err
	}
	c.ID = newID()
	c.DateCreated = s.clock.now()
	c.DateModified = c.DateCreated
	s.children[c.ID] = *c
	return nil
}

func (s *Children) Update(_ context.Context, c *domain.Child) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.children[c.ID]; !ok {
		return pgx.ErrNoRows
	}
	if err := s.checkUnique(c); err != nil {
		return err
	}
	c.DateModified = s.clock.now()
	s.children[c.ID] = *c
	return nil
}

func (s *Children) GetByID(_ context.Context, id string) (*domain.Child, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.children[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &c, nil
}

func (s *Children) List(_ context.Context) ([]domain.Child, error) {
	return s.collect(""), nil
}

func (s *Children) ListByEmployee(_ context.Context, employeeID string) ([]domain.Child, error) {
	return s.collect(employeeID), nil
}

func (s *Children) collect(parentID string) []domain.Child {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Child
	for _, c := range s.children {
		if parentID == "" || c.ParentID == parentID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DateCreated.Before(result[j].DateCreated) })
	return result
}

func (s *Children) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.children[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.children, id)
	return nil
}

// Addresses is an in-memory repository.AddressRepository.
type Addresses struct {
	mu        sync.RWMutex
	clock     clock
	addresses map[string]domain.Address
}

var _ repository.AddressRepository = (*Addresses)(nil)

// NewAddresses returns an empty store.
func NewAddresses() *Addresses {
	return &Addresses{addresses: map[string]domain.Address{}}
}

func (s *Addresses) checkUnique(a *domain.Address) error {
	for id, existing := range s.addresses {
		if id != a.ID && existing.EmployeeID == a.EmployeeID {
			return uniqueViolation("address_employee_uid_key")
		}
	}
	return nil
}

func (s *Addresses) Create(_ context.Context, a *domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkUnique(a); err != nil {
		return err
	}
	a.ID = newID()
	a.DateCreated = s.clock.now()
	a.DateModified = a.DateCreated
	s.addresses[a.ID] = *a
	return nil
}

func (s *Addresses) Update(_ context.Context, a *domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.addresses[a.ID]; !ok {
		return pgx.ErrNoRows
	}
	if err := s.checkUnique(a); err != nil {
		return err
	}
	a.DateModified = s.clock.now()
	s.addresses[a.ID] = *a
	return nil
}

func (s *Addresses) GetByID(_ context.Context, id string) (*domain.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.addresses[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &a, nil
}

func (s *Addresses) GetByEmployee(_ context.Context, employeeID string) (*domain.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.addresses {
		if a.EmployeeID == employeeID {
			return &a, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *Addresses) List(_ context.Context) ([]domain.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Address
	for _, a := range s.addresses {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DateCreated.Before(result[j].DateCreated) })
	return result, nil
}

func (s *Addresses) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.addresses[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.addresses, id)
	return nil
}

// ContactPersons is an in-memory repository.ContactPersonRepository.
type ContactPersons struct {
	mu       sync.RWMutex
	clock    clock
	contacts map[string]domain.ContactPerson
}

var _ repository.ContactPersonRepository = (*ContactPersons)(nil)

// NewContactPersons returns an empty store.
func NewContactPersons() *ContactPersons {
	return &ContactPersons{contacts: map[string]domain.ContactPerson{}}
}

func (s *ContactPersons) checkUnique(c *domain.ContactPerson) error {
	for id, existing := range s.contacts {
		if id == c.ID {
			continue
		}
		if existing.EmployeeID == c.EmployeeID {
			return uniqueViolation("contact_person_employee_uid_key")
		}
		if existing.PhoneNumber == c.PhoneNumber {
			return uniqueViolation("contact_person_phone_number_key")
		}
	}
	return nil
}

func (s *ContactPersons) Create(_ context.Context, c *domain.ContactPerson) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkUnique(c); err != nil {
		return err
	}
	c.ID = newID()
	c.DateCreated = s.clock.now()
	c.DateModified = c.DateCreated
	s.contacts[c.ID] = *c
	return nil
}

func (s *ContactPersons) Update(_ context.Context, c *domain.ContactPerson) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.contacts[c.ID]; !ok {
		return pgx.ErrNoRows
	}
	if err := s.checkUnique(c); err != nil {
		return err
	}
	c.DateModified = s.clock.now()
	s.contacts[c.ID] = *c
	return nil
}

func (s *ContactPersons) GetByID(_ context.Context, id string) (*domain.ContactPerson, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.contacts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &c, nil
}

func (s *ContactPersons) GetByEmployee(_ context.Context, employeeID string) (*domain.ContactPerson, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.contacts {
		if c.EmployeeID == employeeID {
			return &c, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *ContactPersons) List(_ context.Context) ([]domain.ContactPerson, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.ContactPerson
	for _, c := range s.contacts {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DateCreated.Before(result[j].DateCreated) })
	return result, nil
}

func (s *ContactPersons) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.contacts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.contacts, id)
	return nil
}
