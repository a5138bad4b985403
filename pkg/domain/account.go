package domain

import "github.com/shopspring/decimal"

// ClientID identifies a client. It is assigned by the input stream the first
// time an instruction references it, never minted locally.
type ClientID uint16

// Account holds one client's balances and lock state. It acts as an aggregate
// root: every state change goes through one of the five operations below.
//
// Invariants:
//   - Total == Available + Held after every successful operation.
//   - Available and Held never go negative.
//   - Locked is one-way: set by a successful chargeback, never cleared.
//   - A locked account rejects every operation before any other validation.
type Account struct {
	clientID  ClientID
	available decimal.Decimal
	held      decimal.Decimal
	total     decimal.Decimal
	locked    bool
}

// NewAccount creates an unlocked account with zero balances.
func NewAccount(clientID ClientID) *Account {
	return &Account{
		clientID:  clientID,
		available: decimal.Zero,
		held:      decimal.Zero,
		total:     decimal.Zero,
	}
}

// ClientID returns the owning client's identifier.
func (a *Account) ClientID() ClientID {
	return a.clientID
}

// Available returns the balance usable for withdrawals and disputes.
func (a *Account) Available() decimal.Decimal {
	return a.available
}

// Held returns the balance frozen under dispute.
func (a *Account) Held() decimal.Decimal {
	return a.held
}

// Total returns the account's overall worth (available + held).
func (a *Account) Total() decimal.Decimal {
	return a.total
}

// Locked reports whether the account is in the terminal locked state.
func (a *Account) Locked() bool {
	return a.locked
}

func (a *Account) ensureUnlocked() error {
	if a.locked {
		return ErrAccountLocked
	}
	return nil
}

func (a *Account) ensureAvailable(amount decimal.Decimal) error {
	if amount.GreaterThan(a.available) {
		return ErrInsufficientFunds
	}
	return nil
}

func (a *Account) ensureHeld(amount decimal.Decimal) error {
	if amount.GreaterThan(a.held) {
		return ErrInsufficientFunds
	}
	return nil
}

// Deposit credits the available balance.
// Invariants enforced:
//   - Account must not be locked.
//
// Always succeeds on an unlocked account.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if err := a.ensureUnlocked(); err != nil {
		return err
	}
	a.available = a.available.Add(amount)
	a.total = a.total.Add(amount)
	return nil
}

// Withdraw debits the available balance.
// Invariants enforced:
//   - Account must not be locked.
//   - Amount must not exceed the available balance.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := a.ensureUnlocked(); err != nil {
		return err
	}
	if err := a.ensureAvailable(amount); err != nil {
		return err
	}
	a.available = a.available.Sub(amount)
	a.total = a.total.Sub(amount)
	return nil
}

// Dispute moves funds from available to held. Total is unchanged: the funds
// are frozen, not destroyed.
// Invariants enforced:
//   - Account must not be locked.
//   - Amount must not exceed the available balance.
func (a *Account) Dispute(amount decimal.Decimal) error {
	if err := a.ensureUnlocked(); err != nil {
		return err
	}
	if err := a.ensureAvailable(amount); err != nil {
		return err
	}
	a.available = a.available.Sub(amount)
	a.held = a.held.Add(amount)
	return nil
}

// Resolve releases held funds back to available. Total is unchanged.
// Invariants enforced:
//   - Account must not be locked.
//   - Amount must not exceed the held balance.
func (a *Account) Resolve(amount decimal.Decimal) error {
	if err := a.ensureUnlocked(); err != nil {
		return err
	}
	if err := a.ensureHeld(amount); err != nil {
		return err
	}
	a.held = a.held.Sub(amount)
	a.available = a.available.Add(amount)
	return nil
}

// Chargeback removes held funds from the account entirely and locks it.
// Locking is irreversible.
// Invariants enforced:
//   - Account must not be locked.
//   - Amount must not exceed the held balance.
func (a *Account) Chargeback(amount decimal.Decimal) error {
	if err := a.ensureUnlocked(); err != nil {
		return err
	}
	if err := a.ensureHeld(amount); err != nil {
		return err
	}
	a.held = a.held.Sub(amount)
	a.total = a.total.Sub(amount)
	a.locked = true
	return nil
}
