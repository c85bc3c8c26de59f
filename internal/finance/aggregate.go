package finance

import (
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/living-budget/models"
)

type Portfolio struct {
	TotalStockValue decimal.Decimal `json:"total_stock_value"`
	CashAvailable   decimal.Decimal `json:"cash_available"`
	TotalWealth     decimal.Decimal `json:"total_wealth"`
	StockRatio      decimal.Decimal `json:"stock_ratio"`
}

// ComputePortfolio values holdings at cost and weighs them against the
// savings target, which stands in for the cash side of the wealth.
func ComputePortfolio(holdings []models.Holding, s models.Settings) Portfolio {
	stocks := decimal.Zero
	for _, h := range holdings {
		stocks = stocks.Add(h.MarketValue())
	}
	wealth := stocks.Add(s.SavingsTarget)

	p := Portfolio{
		TotalStockValue: stocks,
		CashAvailable:   s.SavingsTarget,
		TotalWealth:     wealth,
		StockRatio:      decimal.Zero,
	}
	if wealth.IsPositive() {
		p.StockRatio = percentOf(stocks, wealth)
	}
	return p
}

type Risk struct {
	TotalInsurance        decimal.Decimal `json:"total_insurance"`
	TotalCashItems        decimal.Decimal `json:"total_cash_items"`
	RiskBudgetAvailable   decimal.Decimal `json:"risk_budget_available"`
	TotalProtectionWealth decimal.Decimal `json:"total_protection_wealth"`
	TotalRealCash         decimal.Decimal `json:"total_real_cash"`
	InsuranceRatio        decimal.Decimal `json:"insurance_ratio"`
}

// ComputeRisk splits risk items into insurance and cash and adds the monthly
// risk target on top as cash not yet moved into an item.
func ComputeRisk(items []models.RiskItem, s models.Settings) Risk {
	insurance, cash := decimal.Zero, decimal.Zero
	for _, it := range items {
		switch it.Type {
		case models.RiskInsurance:
			insurance = insurance.Add(it.Amount)
		case models.RiskCash:
			cash = cash.Add(it.Amount)
		}
	}
	budget := s.RiskTarget
	protection := insurance.Add(cash).Add(budget)

	r := Risk{
		TotalInsurance:        insurance,
		TotalCashItems:        cash,
		RiskBudgetAvailable:   budget,
		TotalProtectionWealth: protection,
		TotalRealCash:         cash.Add(budget),
		InsuranceRatio:        decimal.Zero,
	}
	if protection.IsPositive() {
		r.InsuranceRatio = percentOf(insurance, protection)
	}
	return r
}
