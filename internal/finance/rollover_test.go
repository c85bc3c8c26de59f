package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/valeriaulyamaeva/living-budget/models"
)

func TestComputeRollover(t *testing.T) {
	r := ComputeRollover(d("32000"), d("5000"), d("20900"))
	assertDecimal(t, "6100", r.PreviousBalance)
	assert.True(t, r.Offer)
}

func TestComputeRolloverEmptyMonth(t *testing.T) {
	for _, fixed := range []string{"0", "20900", "-50"} {
		r := ComputeRollover(decimal.Zero, decimal.Zero, d(fixed))
		assert.True(t, r.PreviousBalance.IsZero(), fixed)
		assert.False(t, r.Offer, fixed)
	}
}

func TestComputeRolloverDeficitNotOffered(t *testing.T) {
	r := ComputeRollover(decimal.Zero, d("100"), d("20900"))
	assertDecimal(t, "-21000", r.PreviousBalance)
	assert.False(t, r.Offer)

	r = ComputeRollover(d("20900"), decimal.Zero, d("20900"))
	assert.True(t, r.PreviousBalance.IsZero())
	assert.False(t, r.Offer)
}

func TestRolloverItem(t *testing.T) {
	now := day(2025, time.March, 1)

	item, ok := RolloverItem(ComputeRollover(d("32000"), d("5000"), d("20900")), 7, now)
	assert.True(t, ok)
	assert.Equal(t, 7, item.OwnerID)
	assert.Equal(t, models.RiskCash, item.Type)
	assert.Equal(t, RolloverItemName, item.Name)
	assertDecimal(t, "6100", item.Amount)
	assert.Equal(t, now, item.CreatedAt)

	_, ok = RolloverItem(ComputeRollover(decimal.Zero, decimal.Zero, d("20900")), 7, now)
	assert.False(t, ok)
}
