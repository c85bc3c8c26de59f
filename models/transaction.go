package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Normalize maps legacy rows without a type, and anything unrecognised, to EXPENSE.
func (t TransactionType) Normalize() TransactionType {
	if t == Income {
		return Income
	}
	return Expense
}

type Transaction struct {
	ID        int             `json:"id" db:"id"`
	OwnerID   int             `json:"owner_id" db:"owner_id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Name      string          `json:"name" db:"name"`
	Type      TransactionType `json:"type" db:"type"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}
