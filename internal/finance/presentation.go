package finance

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency formats amounts when the configured code is unknown.
const DefaultCurrency = "TWD"

// EmptyColor paints the whole gauge before the period has any data.
const EmptyColor = "#E7E5E4"

type Segment struct {
	Key     string          `json:"key"`
	Color   string          `json:"color"`
	Value   decimal.Decimal `json:"value"`
	Display string          `json:"display"`
	From    decimal.Decimal `json:"from"`
	To      decimal.Decimal `json:"to"`
	Percent int64           `json:"percent"`
}

type Presentation struct {
	Empty          bool      `json:"empty"`
	Segments       []Segment `json:"segments"`
	Living         string    `json:"living"`
	Daily          string    `json:"daily"`
	Savings        string    `json:"savings"`
	Risk           string    `json:"risk"`
	FixedCosts     string    `json:"fixed_costs"`
	DaysLeft       int       `json:"days_left"`
	Rollover       string    `json:"rollover"`
	RolloverOffer  bool      `json:"rollover_offer"`
	StockValue     string    `json:"stock_value"`
	Wealth         string    `json:"wealth"`
	StockRatio     int64     `json:"stock_ratio"`
	ProtectionCash string    `json:"protection_cash"`
	Protection     string    `json:"protection"`
	InsuranceRatio int64     `json:"insurance_ratio"`
}

type Presenter struct {
	currency *money.Currency
}

// NewPresenter formats amounts in the given ISO currency, falling back to
// DefaultCurrency for codes go-money does not know.
func NewPresenter(code string) Presenter {
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}
	return Presenter{currency: cur}
}

func (p Presenter) Currency() string { return p.currency.Code }

// Money renders an amount with the currency grapheme and grouping.
func (p Presenter) Money(d decimal.Decimal) string {
	minor := d.Shift(int32(p.currency.Fraction)).Round(0).IntPart()
	return money.New(minor, p.currency.Code).Display()
}

// Percent truncates toward zero. Segment labels are differences of truncated
// boundaries, so a full gauge always labels to 100.
func Percent(d decimal.Decimal) int64 {
	return d.IntPart()
}

// Present maps derived values onto display strings and gauge segments. It
// does no arithmetic beyond formatting and truncation.
func (p Presenter) Present(b Budget, pf Portfolio, r Risk, ro Rollover) Presentation {
	c := b.Chart
	out := Presentation{
		Empty:          !b.HasData,
		Living:         p.Money(b.DisplayLiving),
		Daily:          p.Money(b.DisplayDaily),
		Savings:        p.Money(b.DisplaySavings),
		Risk:           p.Money(b.DisplayRisk),
		FixedCosts:     p.Money(b.TotalFixedCosts),
		DaysLeft:       b.DaysUntilNextPayDay,
		Rollover:       p.Money(ro.PreviousBalance),
		RolloverOffer:  ro.Offer,
		StockValue:     p.Money(pf.TotalStockValue),
		Wealth:         p.Money(pf.TotalWealth),
		StockRatio:     Percent(pf.StockRatio),
		ProtectionCash: p.Money(r.TotalRealCash),
		Protection:     p.Money(r.TotalProtectionWealth),
		InsuranceRatio: Percent(r.InsuranceRatio),
	}
	if out.Empty {
		return out
	}

	out.Segments = []Segment{
		p.segment("savings", "#10B981", c.Savings, decimal.Zero, c.P1),
		p.segment("risk", "#3B82F6", c.Risk, c.P1, c.P2),
		p.segment("fixed", "#78716C", c.Fixed, c.P2, c.P3),
		p.segment("spent", "#EF4444", c.Spent, c.P3, c.P4),
		p.segment("living", "#F59E0B", b.LivingRemaining, c.P4, decimal.Max(c.P4, hundred)),
	}
	return out
}

func (p Presenter) segment(key, color string, value, from, to decimal.Decimal) Segment {
	return Segment{
		Key:     key,
		Color:   color,
		Value:   value,
		Display: p.Money(value),
		From:    from,
		To:      to,
		Percent: Percent(to) - Percent(from),
	}
}
