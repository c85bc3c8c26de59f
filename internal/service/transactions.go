package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/living-budget/internal/finance"
	"github.com/valeriaulyamaeva/living-budget/models"
)

type TransactionInput struct {
	Amount decimal.Decimal        `json:"amount"`
	Name   string                 `json:"name"`
	Type   models.TransactionType `json:"type"`
	// Date is optional; see entryDate.
	Date *time.Time `json:"date"`
	// Month is the YYYY-MM the user is looking at when the entry is made.
	Month string `json:"month"`
}

type TransactionView struct {
	models.Transaction
	Label finance.Label `json:"label"`
}

type SpendSummary struct {
	Month    string            `json:"month"`
	Totals   finance.Totals    `json:"totals"`
	Previous finance.Totals    `json:"previous"`
	History  []TransactionView `json:"history"`
}

func viewOf(tx models.Transaction) TransactionView {
	return TransactionView{Transaction: tx, Label: finance.ParseLabel(tx.Name)}
}

// MonthSummary returns the selected month's totals, the month before it and
// the month's entries newest first.
func (s *Service) MonthSummary(ctx context.Context, ownerID int, month string) (*SpendSummary, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	period, err := finance.ResolvePeriod(month, finance.DefaultPayDay, s.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	txs, err := s.store.ListTransactions(ctx, ownerID, period.Previous.Start, period.Current.End)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	history := []TransactionView{}
	for tx := range finance.InWindow(txs, period.Current) {
		history = append(history, viewOf(tx))
	}
	return &SpendSummary{
		Month:    period.Month,
		Totals:   finance.ClassifySlice(txs, period.Current),
		Previous: finance.ClassifySlice(txs, period.Previous),
		History:  history,
	}, nil
}

// entryDate applies the backfill rule: an explicit date wins; otherwise an
// entry made while another month is selected lands on the 1st of that month,
// and anything else is stamped now.
func (s *Service) entryDate(in TransactionInput) (time.Time, error) {
	now := s.now()
	if in.Date != nil && !in.Date.IsZero() {
		return in.Date.In(s.loc), nil
	}
	if strings.TrimSpace(in.Month) == "" {
		return now, nil
	}
	selected, err := finance.ResolvePeriod(in.Month, finance.DefaultPayDay, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if selected.Month == now.Format(finance.MonthLayout) {
		return now, nil
	}
	return selected.Current.Start, nil
}

func (s *Service) buildTransaction(ownerID int, in TransactionInput, at time.Time) (models.Transaction, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Transaction{}, invalid("name is required")
	}
	if err := nonNegative("amount", in.Amount); err != nil {
		return models.Transaction{}, err
	}
	return models.Transaction{
		OwnerID:   ownerID,
		Amount:    in.Amount,
		Name:      name,
		Type:      in.Type.Normalize(),
		CreatedAt: at,
	}, nil
}

func (s *Service) AddTransaction(ctx context.Context, ownerID int, in TransactionInput) (*TransactionView, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	at, err := s.entryDate(in)
	if err != nil {
		return nil, err
	}
	tx, err := s.buildTransaction(ownerID, in, at)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateTransaction(ctx, &tx); err != nil {
		return nil, fmt.Errorf("add transaction: %w", err)
	}
	v := viewOf(tx)
	return &v, nil
}

// UpdateTransaction replaces amount, name and type. The stored date is kept
// unless the input carries an explicit one; Month is ignored.
func (s *Service) UpdateTransaction(ctx context.Context, ownerID, id int, in TransactionInput) (*TransactionView, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	var at time.Time
	if in.Date != nil && !in.Date.IsZero() {
		at = in.Date.In(s.loc)
	}
	tx, err := s.buildTransaction(ownerID, in, at)
	if err != nil {
		return nil, err
	}
	tx.ID = id
	if err := s.store.UpdateTransaction(ctx, &tx); err != nil {
		return nil, fmt.Errorf("update transaction %d: %w", id, err)
	}
	v := viewOf(tx)
	return &v, nil
}

// DeleteTransaction returns the removed entry so callers can adjust totals.
func (s *Service) DeleteTransaction(ctx context.Context, ownerID, id int) (*TransactionView, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	tx, err := s.store.DeleteTransaction(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("delete transaction %d: %w", id, err)
	}
	v := viewOf(*tx)
	return &v, nil
}

// QuickAdd records one of the preset expenses.
func (s *Service) QuickAdd(ctx context.Context, ownerID, preset int, month string) (*TransactionView, error) {
	if preset < 0 || preset >= len(finance.QuickAdds) {
		return nil, invalid("unknown quick add %d", preset)
	}
	q := finance.QuickAdds[preset]
	return s.AddTransaction(ctx, ownerID, TransactionInput{
		Amount: decimal.NewFromInt(q.Amount),
		Name:   q.Name,
		Type:   models.Expense,
		Month:  month,
	})
}
