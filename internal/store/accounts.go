package store

import (
	"sort"

	"github.com/priyakanth/payengine/internal/domain"
)

// AccountStore holds one Account per client id. Accounts are created
// lazily and never deleted. The store holds state only; business rules
// (non-negative balances, lock handling) are the engine's job.
type AccountStore struct {
	accounts map[domain.ClientID]*domain.Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[domain.ClientID]*domain.Account)}
}

// GetOrCreate returns the account for id, creating a zeroed unlocked
// account on first reference.
func (s *AccountStore) GetOrCreate(id domain.ClientID) *domain.Account {
	if acct, ok := s.accounts[id]; ok {
		return acct
	}
	acct := &domain.Account{}
	s.accounts[id] = acct
	return acct
}

// Get returns the account for id if it exists.
func (s *AccountStore) Get(id domain.ClientID) (*domain.Account, bool) {
	acct, ok := s.accounts[id]
	return acct, ok
}

// Clients returns every known client id in ascending order.
func (s *AccountStore) Clients() []domain.ClientID {
	ids := make([]domain.ClientID, 0, len(s.accounts))
	for id := range s.accounts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *AccountStore) Len() int {
	return len(s.accounts)
}
