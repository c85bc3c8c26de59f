package finance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/living-budget/models"
)

// RolloverItemName labels the cash risk item created from a carry-over.
const RolloverItemName = "上月結餘轉存"

type Rollover struct {
	PreviousIncome  decimal.Decimal `json:"previous_income"`
	PreviousExpense decimal.Decimal `json:"previous_expense"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	Offer           bool            `json:"offer"`
}

// ComputeRollover returns last period's income minus fixed costs and
// expenses. A period with neither income nor expense has no balance at all,
// whatever the fixed costs are. Fixed costs come from the current settings.
func ComputeRollover(prevIncome, prevExpense, totalFixedCosts decimal.Decimal) Rollover {
	r := Rollover{
		PreviousIncome:  prevIncome,
		PreviousExpense: prevExpense,
		PreviousBalance: decimal.Zero,
	}
	if prevIncome.IsZero() && prevExpense.IsZero() {
		return r
	}
	r.PreviousBalance = prevIncome.Sub(totalFixedCosts).Sub(prevExpense)
	r.Offer = r.PreviousBalance.IsPositive()
	return r
}

// RolloverItem builds the emergency-cash entry for an offered carry-over.
// It reports false when there is nothing to carry.
func RolloverItem(r Rollover, ownerID int, now time.Time) (models.RiskItem, bool) {
	if !r.Offer {
		return models.RiskItem{}, false
	}
	return models.RiskItem{
		OwnerID:   ownerID,
		Name:      RolloverItemName,
		Amount:    r.PreviousBalance,
		Type:      models.RiskCash,
		CreatedAt: now,
	}, true
}
