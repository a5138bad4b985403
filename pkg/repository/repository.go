// Package repository provides access to the accounts touched during a run.
package repository

import "github.com/amirasaad/payengine/pkg/domain"

// AccountRepository is the engine's view of the account collection. Accounts
// are created lazily the first time a client id is referenced and live for
// the duration of the run.
type AccountRepository interface {
	// GetOrCreate returns the account for clientID, creating an unlocked
	// zero-balance account on first reference.
	GetOrCreate(clientID domain.ClientID) *domain.Account

	// All returns every account ever referenced, ascending by client id.
	All() []*domain.Account
}
