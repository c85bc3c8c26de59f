package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RiskType string

const (
	RiskInsurance RiskType = "insurance"
	RiskCash      RiskType = "cash"
)

func (t RiskType) Valid() bool {
	return t == RiskInsurance || t == RiskCash
}

type RiskItem struct {
	ID        int             `json:"id" db:"id"`
	OwnerID   int             `json:"owner_id" db:"owner_id"`
	Name      string          `json:"name" db:"name"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Type      RiskType        `json:"type" db:"type"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}
