package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valeriaulyamaeva/living-budget/internal/database"
	"github.com/valeriaulyamaeva/living-budget/internal/finance"
	"github.com/valeriaulyamaeva/living-budget/models"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

type stubIssuer struct{}

func (stubIssuer) GenerateToken(userID int) (string, error) {
	return fmt.Sprintf("token-%d", userID), nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func defaults() models.Settings {
	return models.Settings{
		TotalSalary:   d("32000"),
		PayDay:        5,
		Rent:          d("8500"),
		SavingsTarget: d("6200"),
		RiskTarget:    d("3200"),
		FixedCost:     d("3000"),
	}
}

func newTestService(t *testing.T) (*Service, *database.MemoryStore) {
	t.Helper()
	store := database.NewMemoryStore()
	svc := New(store, stubIssuer{}, Options{
		Defaults:   defaults(),
		Currency:   "USD",
		Location:   time.UTC,
		BcryptCost: bcrypt.MinCost,
		Now:        func() time.Time { return fixedNow },
	})
	return svc, store
}

func addTx(t *testing.T, store database.Store, owner int, amount string, typ models.TransactionType, at time.Time) {
	t.Helper()
	require.NoError(t, store.CreateTransaction(context.Background(), &models.Transaction{
		OwnerID: owner, Amount: d(amount), Name: "entry", Type: typ, CreatedAt: at,
	}))
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "want %s, got %s", want, got)
}

func TestRequiresOwner(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Settings(ctx, 0)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = svc.Dashboard(ctx, 0, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = svc.AddTransaction(ctx, -1, TransactionInput{Name: "x"})
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, svc.Reset(ctx, 0), ErrUnauthenticated)
}

func TestSettings(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	got, err := svc.Settings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got.OwnerID)
	assertDecimal(t, "32000", got.TotalSalary)
	assert.Equal(t, 5, got.PayDay)

	in := defaults()
	in.PayDay = 0
	in.Rent = d("9000")
	saved, err := svc.SaveSettings(ctx, 1, in)
	require.NoError(t, err)
	assert.Equal(t, finance.DefaultPayDay, saved.PayDay)

	in.PayDay = 40
	saved, err = svc.SaveSettings(ctx, 1, in)
	require.NoError(t, err)
	assert.Equal(t, 31, saved.PayDay)

	got, err = svc.Settings(ctx, 1)
	require.NoError(t, err)
	assertDecimal(t, "9000", got.Rent)
	assert.Equal(t, 31, got.PayDay)

	in.SavingsTarget = d("-1")
	_, err = svc.SaveSettings(ctx, 1, in)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorContains(t, err, "savings_target")

	other, err := svc.Settings(ctx, 2)
	require.NoError(t, err)
	assertDecimal(t, "8500", other.Rent)
}

func TestPreviewAllocation(t *testing.T) {
	svc, _ := newTestService(t)
	p := svc.PreviewAllocation(defaults())
	assertDecimal(t, "11100", p.Remaining)
	assert.False(t, p.Negative)
}

func TestMonthSummary(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	march := time.Date(2025, time.March, 2, 9, 0, 0, 0, time.UTC)

	addTx(t, store, 1, "500", models.Income, march)
	addTx(t, store, 1, "200", models.Income, march.Add(time.Hour))
	addTx(t, store, 1, "100", models.Expense, march.Add(2*time.Hour))
	addTx(t, store, 1, "60", "", march.Add(3*time.Hour))
	addTx(t, store, 1, "40", "BOGUS", march.Add(4*time.Hour))
	addTx(t, store, 1, "999", models.Expense, time.Date(2025, time.February, 28, 23, 0, 0, 0, time.UTC))
	addTx(t, store, 2, "1", models.Expense, march)

	sum, err := svc.MonthSummary(ctx, 1, "")
	require.NoError(t, err)
	assert.Equal(t, "2025-03", sum.Month)
	assertDecimal(t, "700", sum.Totals.TotalIncome)
	assertDecimal(t, "200", sum.Totals.TotalExpense)
	assertDecimal(t, "999", sum.Previous.TotalExpense)
	require.Len(t, sum.History, 5)
	assert.Equal(t, "40", sum.History[0].Amount.String(), "newest first")

	feb, err := svc.MonthSummary(ctx, 1, "2025-02")
	require.NoError(t, err)
	require.Len(t, feb.History, 1)
	assert.True(t, feb.Previous.IsEmpty())

	_, err = svc.MonthSummary(ctx, 1, "March")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddTransactionDates(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	explicit := time.Date(2024, time.December, 24, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		month string
		date  *time.Time
		want  time.Time
	}{
		{"no month", "", nil, fixedNow},
		{"current month", "2025-03", nil, fixedNow},
		{"backfill", "2025-01", nil, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{"explicit date wins", "2025-01", &explicit, explicit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := svc.AddTransaction(ctx, 1, TransactionInput{
				Amount: d("10"), Name: "🍱 午餐", Month: tt.month, Date: tt.date,
			})
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(v.CreatedAt), "got %s", v.CreatedAt)
			assert.Equal(t, models.Expense, v.Type)
			assert.Equal(t, finance.Label{Icon: "🍱", Text: "午餐"}, v.Label)
		})
	}

	_, err := svc.AddTransaction(ctx, 1, TransactionInput{Amount: d("-1"), Name: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.AddTransaction(ctx, 1, TransactionInput{Amount: d("1"), Name: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.AddTransaction(ctx, 1, TransactionInput{Amount: d("1"), Name: "x", Month: "2025-13"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateAndDeleteTransaction(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	v, err := svc.AddTransaction(ctx, 1, TransactionInput{Amount: d("10"), Name: "salary", Type: models.Income})
	require.NoError(t, err)
	assert.Equal(t, models.Income, v.Type)

	updated, err := svc.UpdateTransaction(ctx, 1, v.ID, TransactionInput{Amount: d("15"), Name: "salary", Type: models.Income})
	require.NoError(t, err)
	assertDecimal(t, "15", updated.Amount)

	_, err = svc.UpdateTransaction(ctx, 2, v.ID, TransactionInput{Amount: d("1"), Name: "mine now"})
	assert.ErrorIs(t, err, database.ErrNotFound)
	_, err = svc.DeleteTransaction(ctx, 2, v.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)

	deleted, err := svc.DeleteTransaction(ctx, 1, v.ID)
	require.NoError(t, err)
	assertDecimal(t, "15", deleted.Amount)
}

func TestUpdateTransactionKeepsDate(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	january := time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC)
	addTx(t, store, 1, "500", models.Expense, january)

	before, err := svc.MonthSummary(ctx, 1, "2025-01")
	require.NoError(t, err)
	require.Len(t, before.History, 1)
	id := before.History[0].ID

	updated, err := svc.UpdateTransaction(ctx, 1, id, TransactionInput{Amount: d("400"), Name: "entry", Month: "2025-03"})
	require.NoError(t, err)
	assert.True(t, january.Equal(updated.CreatedAt), "got %s", updated.CreatedAt)

	after, err := svc.MonthSummary(ctx, 1, "2025-01")
	require.NoError(t, err)
	require.Len(t, after.History, 1)
	assertDecimal(t, "400", after.Totals.TotalExpense)

	march, err := svc.MonthSummary(ctx, 1, "2025-03")
	require.NoError(t, err)
	assert.Empty(t, march.History)

	moved := time.Date(2025, time.February, 3, 8, 0, 0, 0, time.UTC)
	updated, err = svc.UpdateTransaction(ctx, 1, id, TransactionInput{Amount: d("400"), Name: "entry", Date: &moved})
	require.NoError(t, err)
	assert.True(t, moved.Equal(updated.CreatedAt))
	feb, err := svc.MonthSummary(ctx, 1, "2025-02")
	require.NoError(t, err)
	require.Len(t, feb.History, 1)
}

func TestQuickAdd(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	v, err := svc.QuickAdd(ctx, 1, 1, "2025-02")
	require.NoError(t, err)
	assertDecimal(t, "60", v.Amount)
	assert.Equal(t, "🥤 飲料", v.Name)
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), v.CreatedAt)

	_, err = svc.QuickAdd(ctx, 1, len(finance.QuickAdds), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHoldingsAndRiskItems(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	h, err := svc.BuyHolding(ctx, 1, HoldingInput{Symbol: " vt ", Shares: d("10"), AvgCost: d("100.5")})
	require.NoError(t, err)
	assert.Equal(t, "VT", h.Symbol)
	assertDecimal(t, "100.5", h.CurrentPrice)

	h, err = svc.EditHolding(ctx, 1, h.ID, HoldingInput{Symbol: "VT", Shares: d("12"), AvgCost: d("100"), CurrentPrice: d("110")})
	require.NoError(t, err)
	assertDecimal(t, "110", h.CurrentPrice)

	_, err = svc.BuyHolding(ctx, 1, HoldingInput{Symbol: "VT", Shares: d("-1")})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, svc.SellHolding(ctx, 2, h.ID), database.ErrNotFound)
	require.NoError(t, svc.SellHolding(ctx, 1, h.ID))

	item, err := svc.AddRiskItem(ctx, 1, RiskItemInput{Name: "醫療險", Amount: d("5000"), Type: models.RiskInsurance})
	require.NoError(t, err)
	_, err = svc.AddRiskItem(ctx, 1, RiskItemInput{Name: "gold", Amount: d("1"), Type: "bullion"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.EditRiskItem(ctx, 1, item.ID, RiskItemInput{Name: "醫療險", Amount: d("6000"), Type: models.RiskInsurance})
	require.NoError(t, err)
	items, err := svc.RiskItems(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assertDecimal(t, "6000", items[0].Amount)

	require.NoError(t, svc.DeleteRiskItem(ctx, 1, item.ID))
	assert.ErrorIs(t, svc.DeleteRiskItem(ctx, 1, item.ID), database.ErrNotFound)
}

func seedDashboard(t *testing.T, store database.Store, owner int) {
	t.Helper()
	ctx := context.Background()
	addTx(t, store, owner, "32000", models.Income, time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC))
	addTx(t, store, owner, "5000", models.Expense, time.Date(2025, time.March, 8, 9, 0, 0, 0, time.UTC))
	addTx(t, store, owner, "30000", models.Income, time.Date(2025, time.February, 5, 9, 0, 0, 0, time.UTC))
	addTx(t, store, owner, "4000", models.Expense, time.Date(2025, time.February, 20, 9, 0, 0, 0, time.UTC))
	require.NoError(t, store.CreateHolding(ctx, &models.Holding{
		OwnerID: owner, Symbol: "2330", Shares: d("10"), AvgCost: d("500"), CurrentPrice: d("500"),
	}))
}

func TestDashboard(t *testing.T) {
	svc, store := newTestService(t)
	seedDashboard(t, store, 1)

	dash, err := svc.Dashboard(context.Background(), 1, "")
	require.NoError(t, err)

	assert.Equal(t, "2025-03", dash.Period.Month)
	assert.Equal(t, 26, dash.Period.DaysUntilNextPayDay)
	assert.Equal(t, "USD", dash.Currency)
	assertDecimal(t, "32000", dash.Totals.TotalIncome)
	assertDecimal(t, "5000", dash.Totals.TotalExpense)
	assertDecimal(t, "20900", dash.Budget.TotalFixedCosts)
	assertDecimal(t, "6100", dash.Budget.LivingRemaining)
	assertDecimal(t, "234", dash.Budget.DailyBudget)
	assert.True(t, dash.Budget.HasData)

	assertDecimal(t, "5100", dash.Rollover.PreviousBalance)
	assert.True(t, dash.Rollover.Offer)

	assertDecimal(t, "5000", dash.Portfolio.TotalStockValue)
	assertDecimal(t, "11200", dash.Portfolio.TotalWealth)
	assert.Equal(t, int64(44), dash.Presentation.StockRatio)

	assert.False(t, dash.Presentation.Empty)
	assert.Len(t, dash.Presentation.Segments, 5)
	assert.Equal(t, "$6,100.00", dash.Presentation.Living)
	assert.Equal(t, "$234.00", dash.Presentation.Daily)
}

func TestDashboardEmptyMonth(t *testing.T) {
	svc, store := newTestService(t)
	seedDashboard(t, store, 1)

	dash, err := svc.Dashboard(context.Background(), 1, "2024-06")
	require.NoError(t, err)
	assert.False(t, dash.Budget.HasData)
	assert.True(t, dash.Presentation.Empty)
	assert.Empty(t, dash.Presentation.Segments)
	assert.True(t, dash.Rollover.PreviousBalance.IsZero())
	assert.False(t, dash.Rollover.Offer)
	assert.Equal(t, 26, dash.Period.DaysUntilNextPayDay, "countdown follows the real date")

	_, err = svc.Dashboard(context.Background(), 1, "06/2024")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRollover(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	seedDashboard(t, store, 1)

	_, err := svc.Rollover(ctx, 1, "", false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)

	item, err := svc.Rollover(ctx, 1, "", true)
	require.NoError(t, err)
	assert.Equal(t, finance.RolloverItemName, item.Name)
	assert.Equal(t, models.RiskCash, item.Type)
	assertDecimal(t, "5100", item.Amount)

	// Not deduplicated.
	_, err = svc.Rollover(ctx, 1, "", true)
	require.NoError(t, err)
	items, err := svc.RiskItems(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = svc.Rollover(ctx, 2, "", true)
	assert.ErrorIs(t, err, ErrNothingToRollover)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRolloverOffers(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	rich, err := svc.Register(ctx, Credentials{Email: "rich@example.com", Password: "secret1"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, Credentials{Email: "quiet@example.com", Password: "secret1"})
	require.NoError(t, err)
	seedDashboard(t, store, rich.User.ID)

	offers, err := svc.RolloverOffers(ctx)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, rich.User.ID, offers[0].OwnerID)
	assertDecimal(t, "5100", offers[0].Rollover.PreviousBalance)
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Register(ctx, Credentials{Name: "Mei", Email: " Mei@Example.com ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "mei@example.com", sess.User.Email)
	assert.Empty(t, sess.User.Password)
	assert.Equal(t, fmt.Sprintf("token-%d", sess.User.ID), sess.Token)

	_, err = svc.Register(ctx, Credentials{Email: "mei@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, database.ErrEmailTaken)
	_, err = svc.Register(ctx, Credentials{Email: "not-an-email", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Register(ctx, Credentials{Email: "a@b.co", Password: "123"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	login, err := svc.Login(ctx, Credentials{Email: "MEI@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, login.User.ID)

	_, err = svc.Login(ctx, Credentials{Email: "mei@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, Credentials{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResetAndExport(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	seedDashboard(t, store, 1)
	in := defaults()
	in.Rent = d("7000")
	_, err := svc.SaveSettings(ctx, 1, in)
	require.NoError(t, err)

	exp, err := svc.Export(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, exp.Transactions, 4)
	assert.Len(t, exp.Holdings, 1)
	assertDecimal(t, "7000", exp.Settings.Rent)

	require.NoError(t, svc.Reset(ctx, 1))
	exp, err = svc.Export(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, exp.Transactions)
	assert.Empty(t, exp.Holdings)
	assertDecimal(t, "7000", exp.Settings.Rent)
}
