package repository

import (
	"sort"

	"github.com/amirasaad/payengine/pkg/domain"
)

// MemoryAccountRepository keeps accounts in an in-process map. State lives
// only for the run; nothing is persisted.
type MemoryAccountRepository struct {
	accounts map[domain.ClientID]*domain.Account
}

// NewMemoryAccountRepository returns an empty in-memory repository.
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{accounts: make(map[domain.ClientID]*domain.Account)}
}

// GetOrCreate returns the account for clientID, creating it on first use.
func (r *MemoryAccountRepository) GetOrCreate(clientID domain.ClientID) *domain.Account {
	if acc, ok := r.accounts[clientID]; ok {
		return acc
	}
	acc := domain.NewAccount(clientID)
	r.accounts[clientID] = acc
	return acc
}

// All returns every account referenced so far, ascending by client id.
func (r *MemoryAccountRepository) All() []*domain.Account {
	accounts := make([]*domain.Account, 0, len(r.accounts))
	for _, acc := range r.accounts {
		accounts = append(accounts, acc)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].ClientID() < accounts[j].ClientID()
	})
	return accounts
}
