package domain

import "errors"

var (
	// ErrInsufficientFunds is returned when an operation requests more than the
	// relevant balance pool holds (available for withdrawals and disputes, held
	// for resolves and chargebacks).
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountLocked is returned when any operation is attempted on a locked
	// account. Locked is terminal: once a chargeback locks an account, every
	// subsequent operation fails with this error and leaves balances unchanged.
	ErrAccountLocked = errors.New("account locked")
)
