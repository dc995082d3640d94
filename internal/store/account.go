package store

import (
	"sync"
	"time"

	"github.com/paperbroker/internal/domain"
)

// AccountStore is a thread-safe in-memory store for accounts, with a
// primary index by ID and a secondary index by username. IDs are
// issued sequentially starting at 1.
type AccountStore struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*domain.Account
	byName map[string]*domain.Account
	order  []*domain.Account // registration order
}

// NewAccountStore creates an empty AccountStore.
func NewAccountStore() *AccountStore {
	return &AccountStore{
		nextID: 1,
		byID:   make(map[int64]*domain.Account),
		byName: make(map[string]*domain.Account),
	}
}

// Create registers a new account and assigns it the next ID. It
// returns domain.ErrUserAlreadyExists if the username is taken.
func (s *AccountStore) Create(username, password string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[username]; exists {
		return nil, domain.ErrUserAlreadyExists
	}

	acct := &domain.Account{
		ID:        s.nextID,
		Username:  username,
		Password:  password,
		CreatedAt: time.Now(),
	}
	s.nextID++
	s.byID[acct.ID] = acct
	s.byName[username] = acct
	s.order = append(s.order, acct)
	return acct, nil
}

// Get retrieves an account by ID. It returns
// domain.ErrAccountNotFound if the account does not exist.
func (s *AccountStore) Get(id int64) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acct, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return acct, nil
}

// GetByUsername retrieves an account by username. It returns
// domain.ErrUserNotFound if no such user exists.
func (s *AccountStore) GetByUsername(username string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acct, ok := s.byName[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return acct, nil
}

// List returns all accounts in registration order.
func (s *AccountStore) List() []*domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to avoid callers mutating the internal slice.
	result := make([]*domain.Account, len(s.order))
	copy(result, s.order)
	return result
}
