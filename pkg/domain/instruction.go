package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// InstructionID identifies a deposit or withdrawal instruction. Dispute,
// resolve and chargeback instructions reuse the field to reference the
// instruction they act on.
type InstructionID uint32

// Kind discriminates the five instruction types.
type Kind uint8

const (
	KindDeposit Kind = iota + 1
	KindWithdrawal
	KindDispute
	KindResolve
	KindChargeback
)

var kindNames = map[Kind]string{
	KindDeposit:    "deposit",
	KindWithdrawal: "withdrawal",
	KindDispute:    "dispute",
	KindResolve:    "resolve",
	KindChargeback: "chargeback",
}

// ParseKind parses a wire-format kind, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deposit":
		return KindDeposit, nil
	case "withdrawal":
		return KindWithdrawal, nil
	case "dispute":
		return KindDispute, nil
	case "resolve":
		return KindResolve, nil
	case "chargeback":
		return KindChargeback, nil
	default:
		return 0, fmt.Errorf("unknown instruction kind %q", s)
	}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Instruction is one client-submitted payment instruction.
//
// For deposits and withdrawals ID is the instruction's own identity and Amount
// carries the funds moved. For disputes, resolves and chargebacks ID references
// a prior deposit/withdrawal and Amount is ignored; read the reference through
// TargetID so the overload is explicit at the call site.
type Instruction struct {
	ID       InstructionID
	Kind     Kind
	ClientID ClientID
	Amount   decimal.Decimal
}

// TargetID returns the id of the deposit/withdrawal this instruction acts on.
// Only meaningful for dispute, resolve and chargeback kinds.
func (in Instruction) TargetID() InstructionID {
	return in.ID
}

// Monetary reports whether this instruction carries funds of its own, i.e. it
// is a deposit or a withdrawal rather than a reference to one.
func (in Instruction) Monetary() bool {
	return in.Kind == KindDeposit || in.Kind == KindWithdrawal
}
