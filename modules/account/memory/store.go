// Package memory provides an in-memory account.Repository backed by a map.
// It is intended for tests and local development; nothing is persisted.
package memory

import (
	"context"
	"sync"

	"github.com/finkit/accountkit/modules/account"
)

// Store is a map-backed account repository, safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]account.Account
}

// NewStore creates an empty in-memory repository.
func NewStore() *Store {
	return &Store{accounts: make(map[string]account.Account)}
}

// ByNumber implements account.Repository.
func (s *Store) ByNumber(_ context.Context, no string) (account.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[no]
	if !ok {
		return account.Account{}, account.ErrNotFound
	}
	return acc, nil
}

// Save implements account.Repository.
func (s *Store) Save(_ context.Context, acc account.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[acc.No]; ok {
		return account.ErrDuplicateNumber
	}
	s.accounts[acc.No] = acc
	return nil
}

// Update implements account.Repository.
func (s *Store) Update(_ context.Context, acc account.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[acc.No]; !ok {
		return account.ErrNotFound
	}
	s.accounts[acc.No] = acc
	return nil
}

// Len returns the number of stored accounts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}
