// Package ledger keeps the history of monetary instructions seen during a run,
// so that disputes, resolves and chargebacks can be validated against the
// deposit or withdrawal they reference.
package ledger

import (
	"errors"

	"github.com/amirasaad/payengine/pkg/domain"
)

// ErrNotRecorded is returned when a disputed-flag mutation references an
// instruction id that was never recorded.
var ErrNotRecorded = errors.New("instruction not recorded")

type entry struct {
	instruction domain.Instruction
	disputed    bool
}

// History is an append-only record of the first deposit or withdrawal seen
// under each instruction id, plus a mutable disputed flag per record.
//
// Insertion is first-write-wins: recording a second instruction under an id
// already present is a no-op. That is what makes duplicate deposits and
// withdrawals idempotent at the engine level. Non-monetary instructions are
// never inserted; they only read and flip the disputed flag of the record
// they reference.
type History struct {
	entries map[domain.InstructionID]*entry
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{entries: make(map[domain.InstructionID]*entry)}
}

// Record stores a deposit or withdrawal under its id unless the id is already
// present. Idempotent; non-monetary instructions are ignored.
func (h *History) Record(in domain.Instruction) {
	if !in.Monetary() {
		return
	}
	if _, ok := h.entries[in.ID]; ok {
		return
	}
	h.entries[in.ID] = &entry{instruction: in}
}

// Lookup returns the instruction recorded under id, if any.
func (h *History) Lookup(id domain.InstructionID) (domain.Instruction, bool) {
	e, ok := h.entries[id]
	if !ok {
		return domain.Instruction{}, false
	}
	return e.instruction, true
}

// Disputed reports whether the record under id is currently disputed.
// A missing id is never disputed.
func (h *History) Disputed(id domain.InstructionID) bool {
	e, ok := h.entries[id]
	return ok && e.disputed
}

// MarkDisputed flags the record under id as disputed.
func (h *History) MarkDisputed(id domain.InstructionID) error {
	e, ok := h.entries[id]
	if !ok {
		return ErrNotRecorded
	}
	e.disputed = true
	return nil
}

// ClearDisputed removes the disputed flag from the record under id.
func (h *History) ClearDisputed(id domain.InstructionID) error {
	e, ok := h.entries[id]
	if !ok {
		return ErrNotRecorded
	}
	e.disputed = false
	return nil
}
