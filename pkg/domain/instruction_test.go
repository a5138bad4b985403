package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirasaad/payengine/pkg/domain"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	t.Run("accepts all five kinds case-insensitively", func(t *testing.T) {
		cases := map[string]domain.Kind{
			"deposit":    domain.KindDeposit,
			"WITHDRAWAL": domain.KindWithdrawal,
			"Dispute":    domain.KindDispute,
			" resolve ":  domain.KindResolve,
			"chargeBack": domain.KindChargeback,
		}
		for input, want := range cases {
			kind, err := domain.ParseKind(input)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, want, kind)
		}
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		_, err := domain.ParseKind("transfer")
		assert.Error(t, err)
	})
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "deposit", domain.KindDeposit.String())
	assert.Equal(t, "chargeback", domain.KindChargeback.String())
}

func TestInstructionMonetary(t *testing.T) {
	t.Parallel()
	assert.True(t, domain.Instruction{Kind: domain.KindDeposit}.Monetary())
	assert.True(t, domain.Instruction{Kind: domain.KindWithdrawal}.Monetary())
	assert.False(t, domain.Instruction{Kind: domain.KindDispute}.Monetary())
	assert.False(t, domain.Instruction{Kind: domain.KindResolve}.Monetary())
	assert.False(t, domain.Instruction{Kind: domain.KindChargeback}.Monetary())
}
