package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Holding struct {
	ID           int             `json:"id" db:"id"`
	OwnerID      int             `json:"owner_id" db:"owner_id"`
	Symbol       string          `json:"symbol" db:"symbol"`
	Shares       decimal.Decimal `json:"shares" db:"shares"`
	AvgCost      decimal.Decimal `json:"avg_cost" db:"avg_cost"`
	CurrentPrice decimal.Decimal `json:"current_price" db:"current_price"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

// MarketValue is valued at cost; there is no live price feed.
func (h Holding) MarketValue() decimal.Decimal {
	return h.Shares.Mul(h.AvgCost)
}
