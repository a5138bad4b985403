package repository_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirasaad/payengine/pkg/domain"
	"github.com/amirasaad/payengine/pkg/repository"
)

func TestGetOrCreate(t *testing.T) {
	t.Parallel()
	repo := repository.NewMemoryAccountRepository()

	acc := repo.GetOrCreate(3)
	require.NotNil(t, acc)
	assert.Equal(t, domain.ClientID(3), acc.ClientID())
	assert.True(t, acc.Available().IsZero())
	assert.False(t, acc.Locked())

	require.NoError(t, acc.Deposit(decimal.RequireFromString("2.5")))
	again := repo.GetOrCreate(3)
	assert.Same(t, acc, again, "second lookup must return the same account")
}

func TestAllSortedByClientID(t *testing.T) {
	t.Parallel()
	repo := repository.NewMemoryAccountRepository()
	for _, id := range []domain.ClientID{5, 1, 9, 3} {
		repo.GetOrCreate(id)
	}

	all := repo.All()
	require.Len(t, all, 4)
	var got []domain.ClientID
	for _, acc := range all {
		got = append(got, acc.ClientID())
	}
	assert.Equal(t, []domain.ClientID{1, 3, 5, 9}, got)
}
