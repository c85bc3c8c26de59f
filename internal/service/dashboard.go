package service

import (
	"context"
	"fmt"

	"github.com/valeriaulyamaeva/living-budget/internal/finance"
	"github.com/valeriaulyamaeva/living-budget/models"
	"golang.org/x/sync/errgroup"
)

type Dashboard struct {
	Period       finance.PeriodWindow `json:"period"`
	Currency     string               `json:"currency"`
	Settings     models.Settings      `json:"settings"`
	Totals       finance.Totals       `json:"totals"`
	Previous     finance.Totals       `json:"previous"`
	Budget       finance.Budget       `json:"budget"`
	Rollover     finance.Rollover     `json:"rollover"`
	Portfolio    finance.Portfolio    `json:"portfolio"`
	Risk         finance.Risk         `json:"risk"`
	Holdings     []models.Holding     `json:"holdings"`
	RiskItems    []models.RiskItem    `json:"risk_items"`
	Presentation finance.Presentation `json:"presentation"`
}

// Dashboard loads settings, the two month windows of transactions, holdings
// and risk items concurrently, then derives everything from one snapshot.
func (s *Service) Dashboard(ctx context.Context, ownerID int, month string) (*Dashboard, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	now := s.now()
	period, err := finance.ResolvePeriod(month, finance.DefaultPayDay, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var (
		settings  models.Settings
		txs       []models.Transaction
		holdings  []models.Holding
		riskItems []models.RiskItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		settings, err = s.Settings(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		txs, err = s.store.ListTransactions(gctx, ownerID, period.Previous.Start, period.Current.End)
		if err != nil {
			return fmt.Errorf("list transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		holdings, err = s.Holdings(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		riskItems, err = s.RiskItems(gctx, ownerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	period.DaysUntilNextPayDay = finance.DaysUntilPayDay(settings.PayDay, now)
	totals := finance.ClassifySlice(txs, period.Current)
	previous := finance.ClassifySlice(txs, period.Previous)

	budget := finance.ComputeBudget(settings, totals, finance.HasActivity(txs, period.Current), period.DaysUntilNextPayDay)
	rollover := finance.ComputeRollover(previous.TotalIncome, previous.TotalExpense, budget.TotalFixedCosts)
	portfolio := finance.ComputePortfolio(holdings, settings)
	risk := finance.ComputeRisk(riskItems, settings)

	return &Dashboard{
		Period:       period,
		Currency:     s.Currency(),
		Settings:     settings,
		Totals:       totals,
		Previous:     previous,
		Budget:       budget,
		Rollover:     rollover,
		Portfolio:    portfolio,
		Risk:         risk,
		Holdings:     holdings,
		RiskItems:    riskItems,
		Presentation: s.presenter.Present(budget, portfolio, risk, rollover),
	}, nil
}
