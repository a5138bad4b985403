// Package engine applies an ordered stream of payment instructions to the
// account collection, consulting the instruction history to validate the
// dispute lifecycle.
package engine

import (
	"log/slog"

	"github.com/amirasaad/payengine/pkg/domain"
	"github.com/amirasaad/payengine/pkg/ledger"
	"github.com/amirasaad/payengine/pkg/repository"
)

// Engine owns the account collection and the instruction history for the
// duration of a run and is the only component that mutates them.
type Engine struct {
	accounts repository.AccountRepository
	history  *ledger.History
	logger   *slog.Logger
}

// New constructs an Engine over explicitly owned containers; there is no
// ambient state.
func New(accounts repository.AccountRepository, history *ledger.History, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		accounts: accounts,
		history:  history,
		logger:   logger,
	}
}

// Process folds the instructions in arrival order. Each instruction is
// dispatched by kind and then recorded in the history (a no-op when its id is
// already present, or when it carries no funds of its own).
//
// A single bad instruction never aborts the fold: reference failures (unknown
// id, wrong dispute state, client mismatch) are silent no-ops, and account
// failures are logged as warnings with no effect on balances. There is no
// retry; a skipped instruction is dropped permanently.
func (e *Engine) Process(instructions []domain.Instruction) {
	for _, in := range instructions {
		switch in.Kind {
		case domain.KindDeposit:
			e.deposit(in)
		case domain.KindWithdrawal:
			e.withdraw(in)
		case domain.KindDispute:
			e.dispute(in)
		case domain.KindResolve:
			e.resolve(in)
		case domain.KindChargeback:
			e.chargeback(in)
		default:
			e.logger.Warn("skipping instruction of unknown kind",
				"kind", in.Kind, "id", in.ID, "client", in.ClientID)
		}

		e.history.Record(in)
	}
}

// Accounts exposes the account collection for the display collaborator once
// processing is done.
func (e *Engine) Accounts() repository.AccountRepository {
	return e.accounts
}

func (e *Engine) deposit(in domain.Instruction) {
	account := e.accounts.GetOrCreate(in.ClientID)
	if _, seen := e.history.Lookup(in.ID); seen {
		// Already applied under this id; duplicates are idempotent.
		return
	}
	if err := account.Deposit(in.Amount); err != nil {
		e.logger.Warn("could not deposit",
			"error", err, "id", in.ID, "client", in.ClientID, "amount", in.Amount)
	}
}

func (e *Engine) withdraw(in domain.Instruction) {
	account := e.accounts.GetOrCreate(in.ClientID)
	if _, seen := e.history.Lookup(in.ID); seen {
		return
	}
	if err := account.Withdraw(in.Amount); err != nil {
		e.logger.Warn("could not withdraw",
			"error", err, "id", in.ID, "client", in.ClientID, "amount", in.Amount)
	}
}

func (e *Engine) dispute(in domain.Instruction) {
	account := e.accounts.GetOrCreate(in.ClientID)
	target, ok := e.history.Lookup(in.TargetID())
	if !ok {
		return
	}
	if e.history.Disputed(in.TargetID()) || target.ClientID != account.ClientID() {
		return
	}
	if err := account.Dispute(target.Amount); err != nil {
		e.logger.Warn("could not dispute",
			"error", err, "id", in.TargetID(), "client", in.ClientID, "amount", target.Amount)
		return
	}
	// The flag only flips on a successful balance mutation.
	if err := e.history.MarkDisputed(in.TargetID()); err != nil {
		e.logger.Warn("could not mark instruction disputed", "error", err, "id", in.TargetID())
	}
}

func (e *Engine) resolve(in domain.Instruction) {
	account := e.accounts.GetOrCreate(in.ClientID)
	target, ok := e.history.Lookup(in.TargetID())
	if !ok {
		return
	}
	if !e.history.Disputed(in.TargetID()) || target.ClientID != account.ClientID() {
		return
	}
	if err := account.Resolve(target.Amount); err != nil {
		e.logger.Warn("could not resolve",
			"error", err, "id", in.TargetID(), "client", in.ClientID, "amount", target.Amount)
		return
	}
	if err := e.history.ClearDisputed(in.TargetID()); err != nil {
		e.logger.Warn("could not clear disputed flag", "error", err, "id", in.TargetID())
	}
}

func (e *Engine) chargeback(in domain.Instruction) {
	account := e.accounts.GetOrCreate(in.ClientID)
	target, ok := e.history.Lookup(in.TargetID())
	if !ok {
		return
	}
	if !e.history.Disputed(in.TargetID()) || target.ClientID != account.ClientID() {
		return
	}
	if err := account.Chargeback(target.Amount); err != nil {
		e.logger.Warn("could not charge back",
			"error", err, "id", in.TargetID(), "client", in.ClientID, "amount", target.Amount)
	}
}
