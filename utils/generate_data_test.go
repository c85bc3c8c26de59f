package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valeriaulyamaeva/living-budget/internal/database"
	"github.com/valeriaulyamaeva/living-budget/internal/finance"
	"github.com/valeriaulyamaeva/living-budget/models"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerator(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	g := NewGenerator(store, 42, bcrypt.MinCost)
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	users, err := g.GenerateTestUsers(ctx, 2)
	require.NoError(t, err)
	require.Len(t, users, 2)
	owner := users[0].ID

	found, err := store.FindUserByEmail(ctx, users[0].Email)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(users[0].Password)))

	s, err := g.GenerateTestSettings(ctx, owner)
	require.NoError(t, err)
	assert.True(t, s.FixedDeductions().LessThan(s.TotalSalary))
	assert.Equal(t, finance.NormalizePayDay(s.PayDay), s.PayDay)

	n, err := g.GenerateTestTransactions(ctx, s, 3, 10, now)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 32)

	from := finance.MonthWindow(2025, time.January, time.UTC).Start
	txs, err := store.ListTransactions(ctx, owner, from, now)
	require.NoError(t, err)
	assert.Len(t, txs, n, "nothing dated in the future or before the window")
	for _, tx := range txs {
		assert.False(t, tx.Amount.IsNegative())
		assert.NotEmpty(t, finance.ParseLabel(tx.Name).Icon)
	}

	require.NoError(t, g.GenerateTestHoldings(ctx, owner, 3))
	require.NoError(t, g.GenerateTestRiskItems(ctx, owner, 4))
	holdings, err := store.ListHoldings(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, holdings, 3)
	items, err := store.ListRiskItems(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, items, 4)
	for _, it := range items {
		assert.True(t, it.Type.Valid())
	}
}

func TestGeneratorIsDeterministic(t *testing.T) {
	ctx := context.Background()
	settings := func() models.Settings {
		s, err := NewGenerator(database.NewMemoryStore(), 7, bcrypt.MinCost).GenerateTestSettings(ctx, 1)
		require.NoError(t, err)
		return s
	}
	a, b := settings(), settings()
	assert.True(t, a.TotalSalary.Equal(b.TotalSalary))
	assert.Equal(t, a.PayDay, b.PayDay)
}
