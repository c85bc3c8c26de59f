package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/living-budget/internal/auth"
	"github.com/valeriaulyamaeva/living-budget/internal/database"
	"github.com/valeriaulyamaeva/living-budget/internal/finance"
	"github.com/valeriaulyamaeva/living-budget/models"
)

// DemoUser is a generated account together with its plain password.
type DemoUser struct {
	ID       int
	Email    string
	Password string
}

// Generator fills a store with plausible demo data. The same seed always
// produces the same records.
type Generator struct {
	store      database.Store
	faker      *gofakeit.Faker
	bcryptCost int
}

func NewGenerator(store database.Store, seed int64, bcryptCost int) *Generator {
	return &Generator{store: store, faker: gofakeit.New(seed), bcryptCost: bcryptCost}
}

func (g *Generator) money(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(g.faker.Price(min, max)).Round(0)
}

func (g *Generator) GenerateTestUsers(ctx context.Context, numUsers int) ([]DemoUser, error) {
	users := make([]DemoUser, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		password := g.faker.Password(true, true, true, false, false, 10)
		hash, err := auth.HashPassword(password, g.bcryptCost)
		if err != nil {
			return nil, err
		}
		u := &models.User{
			Email:    fmt.Sprintf("%d.%s", i+1, g.faker.Email()),
			Password: hash,
			Name:     g.faker.Name(),
		}
		if err := g.store.CreateUser(ctx, u); err != nil {
			return nil, fmt.Errorf("create demo user: %w", err)
		}
		users = append(users, DemoUser{ID: u.ID, Email: u.Email, Password: password})
	}
	return users, nil
}

// GenerateTestSettings saves a plan whose fixed deductions stay below salary.
func (g *Generator) GenerateTestSettings(ctx context.Context, ownerID int) (models.Settings, error) {
	salary := g.money(28000, 90000)
	s := models.Settings{
		OwnerID:       ownerID,
		TotalSalary:   salary,
		PayDay:        g.faker.Number(1, 28),
		Rent:          salary.Mul(decimal.NewFromFloat(0.25)).Round(0),
		SavingsTarget: salary.Mul(decimal.NewFromFloat(0.2)).Round(0),
		RiskTarget:    salary.Mul(decimal.NewFromFloat(0.1)).Round(0),
		FixedCost:     g.money(1000, 4000),
	}
	if err := g.store.UpsertSettings(ctx, &s); err != nil {
		return models.Settings{}, fmt.Errorf("save demo settings: %w", err)
	}
	return s, nil
}

// GenerateTestTransactions records a salary on pay day and perMonth random
// expenses in each of the last months calendar months, never after now.
func (g *Generator) GenerateTestTransactions(ctx context.Context, s models.Settings, months, perMonth int, now time.Time) (int, error) {
	created := 0
	for m := months - 1; m >= 0; m-- {
		w := finance.MonthWindow(now.Year(), now.Month()-time.Month(m), now.Location())
		end := w.End
		if end.After(now) {
			end = now
		}

		payDay := min(s.PayDay, finance.DaysIn(w.Start.Year(), w.Start.Month()))
		salaryAt := w.Start.AddDate(0, 0, payDay-1).Add(9 * time.Hour)
		if !salaryAt.After(end) {
			salary := &models.Transaction{
				OwnerID:   s.OwnerID,
				Amount:    s.TotalSalary,
				Name:      "💰 薪水",
				Type:      models.Income,
				CreatedAt: salaryAt,
			}
			if err := g.store.CreateTransaction(ctx, salary); err != nil {
				return created, fmt.Errorf("create demo salary: %w", err)
			}
			created++
		}

		for i := 0; i < perMonth; i++ {
			cat := finance.Categories[g.faker.Number(0, len(finance.Categories)-1)]
			tx := &models.Transaction{
				OwnerID:   s.OwnerID,
				Amount:    g.money(30, 900),
				Name:      finance.Label{Icon: cat.Icon, Text: cat.Label}.String(),
				Type:      models.Expense,
				CreatedAt: g.faker.DateRange(w.Start, end),
			}
			if err := g.store.CreateTransaction(ctx, tx); err != nil {
				return created, fmt.Errorf("create demo expense: %w", err)
			}
			created++
		}
	}
	return created, nil
}

var demoSymbols = []string{"2330", "0050", "2317", "2454", "VT", "VOO", "QQQ"}

func (g *Generator) GenerateTestHoldings(ctx context.Context, ownerID, numHoldings int) error {
	for i := 0; i < numHoldings; i++ {
		cost := decimal.NewFromFloat(g.faker.Price(20, 900)).Round(2)
		h := &models.Holding{
			OwnerID:      ownerID,
			Symbol:       g.faker.RandomString(demoSymbols),
			Shares:       decimal.NewFromInt(int64(g.faker.Number(1, 200))),
			AvgCost:      cost,
			CurrentPrice: cost,
			CreatedAt:    time.Now(),
		}
		if err := g.store.CreateHolding(ctx, h); err != nil {
			return fmt.Errorf("create demo holding: %w", err)
		}
	}
	return nil
}

var demoPolicies = []string{"醫療險", "意外險", "壽險", "癌症險"}

func (g *Generator) GenerateTestRiskItems(ctx context.Context, ownerID, numItems int) error {
	for i := 0; i < numItems; i++ {
		item := &models.RiskItem{
			OwnerID:   ownerID,
			Name:      g.faker.RandomString(demoPolicies),
			Amount:    g.money(2000, 30000),
			Type:      models.RiskInsurance,
			CreatedAt: time.Now(),
		}
		if g.faker.Bool() {
			item.Name = "緊急預備金"
			item.Type = models.RiskCash
		}
		if err := g.store.CreateRiskItem(ctx, item); err != nil {
			return fmt.Errorf("create demo risk item: %w", err)
		}
	}
	return nil
}
