package repotest

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/repository"
)

// Accounts is an in-memory repository.AccountRepository.
type Accounts struct {
	mu       sync.RWMutex
	clock    clock
	accounts map[string]domain.Account
}

var _ repository.AccountRepository = (*Accounts)(nil)

// NewAccounts returns an empty store.
func NewAccounts() *Accounts {
	return &Accounts{accounts: map[string]domain.Account{}}
}

func (s *Accounts) Create(_ context.Context, a *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.accounts {
		if existing.Username == a.Username {
			return uniqueViolation("accounts_username_key")
		}
	}
	a.ID = newID()
	a.CreatedAt = s.clock.now()
	a.UpdatedAt = a.CreatedAt
	s.accounts[a.ID] = *a
	return nil
}

func (s *Accounts) Update(_ context.Context, a *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[a.ID]; !ok {
		return pgx.ErrNoRows
	}
	a.UpdatedAt = s.clock.now()
	s.accounts[a.ID] = *a
	return nil
}

func (s *Accounts) GetByID(_ context.Context, id string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &a, nil
}

func (s *Accounts) GetByUsername(_ context.Context, username string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.Username == username {
			return &a, nil
		}
	}
	return nil, pgx.ErrNoRows
}
