package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/living-budget/internal/database"
	"github.com/valeriaulyamaeva/living-budget/internal/finance"
	"github.com/valeriaulyamaeva/living-budget/models"
)

// Settings returns the owner's allocation plan, or the configured defaults
// when nothing was saved yet.
func (s *Service) Settings(ctx context.Context, ownerID int) (models.Settings, error) {
	if err := requireOwner(ownerID); err != nil {
		return models.Settings{}, err
	}
	saved, err := s.store.FindSettings(ctx, ownerID)
	if errors.Is(err, database.ErrNotFound) {
		def := s.defaults
		def.OwnerID = ownerID
		return def, nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	saved.PayDay = finance.NormalizePayDay(saved.PayDay)
	return *saved, nil
}

func (s *Service) SaveSettings(ctx context.Context, ownerID int, in models.Settings) (models.Settings, error) {
	if err := requireOwner(ownerID); err != nil {
		return models.Settings{}, err
	}
	fields := []struct {
		name string
		v    decimal.Decimal
	}{
		{"total_salary", in.TotalSalary},
		{"rent", in.Rent},
		{"savings_target", in.SavingsTarget},
		{"risk_target", in.RiskTarget},
		{"fixed_cost", in.FixedCost},
	}
	for _, f := range fields {
		if err := nonNegative(f.name, f.v); err != nil {
			return models.Settings{}, err
		}
	}
	in.OwnerID = ownerID
	in.PayDay = finance.NormalizePayDay(in.PayDay)
	if err := s.store.UpsertSettings(ctx, &in); err != nil {
		return models.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	return in, nil
}

// PreviewAllocation shows what an edited plan would leave for living costs
// before it is saved.
func (s *Service) PreviewAllocation(in models.Settings) finance.AllocationPreview {
	return finance.PreviewAllocation(in)
}
