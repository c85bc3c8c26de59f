package finance

import (
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/living-budget/models"
)

var hundred = decimal.NewFromInt(100)

// ChartSegments are the cumulative boundaries, in percent of Total, of the
// allocation gauge: savings, risk, rent plus bills, spent, then the living
// remainder up to 100. Boundaries are not clamped, so an overspent month can
// push P3 and P4 past 100.
type ChartSegments struct {
	Total   decimal.Decimal `json:"total"`
	Savings decimal.Decimal `json:"savings"`
	Risk    decimal.Decimal `json:"risk"`
	Fixed   decimal.Decimal `json:"fixed"`
	Spent   decimal.Decimal `json:"spent"`
	P1      decimal.Decimal `json:"p1"`
	P2      decimal.Decimal `json:"p2"`
	P3      decimal.Decimal `json:"p3"`
	P4      decimal.Decimal `json:"p4"`
}

type Budget struct {
	TotalFixedCosts     decimal.Decimal `json:"total_fixed_costs"`
	LivingRemaining     decimal.Decimal `json:"living_remaining"`
	DailyBudget         decimal.Decimal `json:"daily_budget"`
	DaysUntilNextPayDay int             `json:"days_until_next_pay_day"`
	HasData             bool            `json:"has_data"`

	// Display values are zeroed until the period has its first transaction.
	DisplayLiving  decimal.Decimal `json:"display_living"`
	DisplayDaily   decimal.Decimal `json:"display_daily"`
	DisplaySavings decimal.Decimal `json:"display_savings"`
	DisplayRisk    decimal.Decimal `json:"display_risk"`

	Chart ChartSegments `json:"chart"`
}

// ComputeBudget derives the living account for one period. A negative
// LivingRemaining yields a negative DailyBudget on purpose.
func ComputeBudget(s models.Settings, t Totals, hasData bool, daysUntilPayDay int) Budget {
	days := max(daysUntilPayDay, 1)
	fixed := s.FixedDeductions()
	living := t.TotalIncome.Sub(fixed).Sub(t.TotalExpense)
	daily := living.Div(decimal.NewFromInt(int64(days))).Floor()

	b := Budget{
		TotalFixedCosts:     fixed,
		LivingRemaining:     living,
		DailyBudget:         daily,
		DaysUntilNextPayDay: days,
		HasData:             hasData,
		DisplayLiving:       decimal.Zero,
		DisplayDaily:        decimal.Zero,
		DisplaySavings:      decimal.Zero,
		DisplayRisk:         decimal.Zero,
	}
	if hasData {
		b.DisplayLiving = living
		b.DisplayDaily = daily
		b.DisplaySavings = s.SavingsTarget
		b.DisplayRisk = s.RiskTarget
	}
	b.Chart = chartSegments(s, t, hasData)
	return b
}

// ChartTotal is the gauge denominator: this period's income, or the planned
// salary before any income is recorded, or 1 when both are zero.
func ChartTotal(s models.Settings, t Totals) decimal.Decimal {
	if t.TotalIncome.IsPositive() {
		return t.TotalIncome
	}
	if !s.TotalSalary.IsZero() {
		return s.TotalSalary
	}
	return decimal.NewFromInt(1)
}

func chartSegments(s models.Settings, t Totals, hasData bool) ChartSegments {
	c := ChartSegments{
		Total:   ChartTotal(s, t),
		Savings: decimal.Zero,
		Risk:    decimal.Zero,
		Fixed:   decimal.Zero,
		Spent:   decimal.Zero,
	}
	if hasData {
		c.Savings = s.SavingsTarget
		c.Risk = s.RiskTarget
		c.Fixed = s.Rent.Add(s.FixedCost)
		c.Spent = t.TotalExpense
	}
	c.P1 = percentOf(c.Savings, c.Total)
	c.P2 = c.P1.Add(percentOf(c.Risk, c.Total))
	c.P3 = c.P2.Add(percentOf(c.Fixed, c.Total))
	c.P4 = c.P3.Add(percentOf(c.Spent, c.Total))
	return c
}

// percentOf returns v/total*100, or 0 when total is zero.
func percentOf(v, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return v.Mul(hundred).Div(total)
}

// AllocationPreview is what is left of the planned salary once every fixed
// deduction is taken, shown while the settings are being edited.
type AllocationPreview struct {
	Remaining  decimal.Decimal `json:"remaining"`
	Negative   bool            `json:"negative"`
	BarPercent decimal.Decimal `json:"bar_percent"`
}

func PreviewAllocation(s models.Settings) AllocationPreview {
	remaining := s.TotalSalary.Sub(s.FixedDeductions())
	denominator := s.TotalSalary
	if denominator.IsZero() {
		denominator = decimal.NewFromInt(1)
	}
	bar := percentOf(remaining, denominator)
	bar = decimal.Min(hundred, decimal.Max(decimal.Zero, bar))
	return AllocationPreview{
		Remaining:  remaining,
		Negative:   remaining.IsNegative(),
		BarPercent: bar,
	}
}
