package memory

import (
	"sync"

	"github.com/trebuchet-org/courier/internal/domain"
	"github.com/trebuchet-org/courier/internal/usecase"
)

// AccountStore keeps the accounts of the current session in memory
type AccountStore struct {
	mu  sync.RWMutex
	set domain.AccountSet
}

// NewAccountStore creates an empty AccountStore
func NewAccountStore() *AccountStore {
	return &AccountStore{}
}

// Snapshot returns a copy that later Replace calls do not affect
func (s *AccountStore) Snapshot() domain.AccountSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.AccountSet{
		Accounts: append([]domain.Account(nil), s.set.Accounts...),
		Proxies:  append([]string(nil), s.set.Proxies...),
	}
}

// Replace swaps in a freshly loaded set
func (s *AccountStore) Replace(set domain.AccountSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set = set
}

var _ usecase.AccountRepository = (*AccountStore)(nil)
