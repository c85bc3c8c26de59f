package finance

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/living-budget/models"
)

// Totals holds the income and expense sums of one period.
type Totals struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}

// IsEmpty reports whether nothing was earned or spent.
func (t Totals) IsEmpty() bool {
	return t.TotalIncome.IsZero() && t.TotalExpense.IsZero()
}

// Classify sums the transactions inside w by type. Rows outside the window
// are skipped, and rows with an unknown type count as expenses.
func Classify(txs iter.Seq[models.Transaction], w Window) Totals {
	totals := Totals{TotalIncome: decimal.Zero, TotalExpense: decimal.Zero}
	for tx := range txs {
		if !w.Contains(tx.CreatedAt) {
			continue
		}
		if tx.Type.Normalize() == models.Income {
			totals.TotalIncome = totals.TotalIncome.Add(tx.Amount)
		} else {
			totals.TotalExpense = totals.TotalExpense.Add(tx.Amount)
		}
	}
	return totals
}

func ClassifySlice(txs []models.Transaction, w Window) Totals {
	return Classify(slices.Values(txs), w)
}

// InWindow yields the transactions that fall inside w.
func InWindow(txs []models.Transaction, w Window) iter.Seq[models.Transaction] {
	return func(yield func(models.Transaction) bool) {
		for _, tx := range txs {
			if w.Contains(tx.CreatedAt) && !yield(tx) {
				return
			}
		}
	}
}

// HasActivity reports whether any transaction falls inside w.
func HasActivity(txs []models.Transaction, w Window) bool {
	for range InWindow(txs, w) {
		return true
	}
	return false
}
