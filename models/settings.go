package models

import "github.com/shopspring/decimal"

// Settings is the owner's monthly salary allocation plan.
type Settings struct {
	OwnerID       int             `json:"owner_id" db:"owner_id"`
	TotalSalary   decimal.Decimal `json:"total_salary" db:"total_salary"`
	PayDay        int             `json:"pay_day" db:"pay_day"`
	Rent          decimal.Decimal `json:"rent" db:"rent"`
	SavingsTarget decimal.Decimal `json:"savings_target" db:"savings_target"`
	RiskTarget    decimal.Decimal `json:"risk_target" db:"risk_target"`
	FixedCost     decimal.Decimal `json:"fixed_cost" db:"fixed_cost"`
}

// FixedDeductions is the money taken off the top of every pay cheque:
// savings, risk, rent and fixed bills.
func (s Settings) FixedDeductions() decimal.Decimal {
	return s.SavingsTarget.Add(s.RiskTarget).Add(s.Rent).Add(s.FixedCost)
}
