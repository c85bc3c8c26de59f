package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/living-budget/models"
)

type HoldingInput struct {
	Symbol       string          `json:"symbol"`
	Shares       decimal.Decimal `json:"shares"`
	AvgCost      decimal.Decimal `json:"avg_cost"`
	CurrentPrice decimal.Decimal `json:"current_price"`
}

func (s *Service) buildHolding(ownerID int, in HoldingInput) (models.Holding, error) {
	symbol := strings.ToUpper(strings.TrimSpace(in.Symbol))
	if symbol == "" {
		return models.Holding{}, invalid("symbol is required")
	}
	if err := nonNegative("shares", in.Shares); err != nil {
		return models.Holding{}, err
	}
	if err := nonNegative("avg_cost", in.AvgCost); err != nil {
		return models.Holding{}, err
	}
	price := in.CurrentPrice
	if price.IsZero() {
		price = in.AvgCost
	}
	return models.Holding{
		OwnerID:      ownerID,
		Symbol:       symbol,
		Shares:       in.Shares,
		AvgCost:      in.AvgCost,
		CurrentPrice: price,
		CreatedAt:    s.now(),
	}, nil
}

func (s *Service) Holdings(ctx context.Context, ownerID int) ([]models.Holding, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	holdings, err := s.store.ListHoldings(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list holdings: %w", err)
	}
	return holdings, nil
}

// BuyHolding records a new position. CurrentPrice defaults to AvgCost.
func (s *Service) BuyHolding(ctx context.Context, ownerID int, in HoldingInput) (*models.Holding, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	h, err := s.buildHolding(ownerID, in)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateHolding(ctx, &h); err != nil {
		return nil, fmt.Errorf("buy holding: %w", err)
	}
	return &h, nil
}

func (s *Service) EditHolding(ctx context.Context, ownerID, id int, in HoldingInput) (*models.Holding, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	h, err := s.buildHolding(ownerID, in)
	if err != nil {
		return nil, err
	}
	h.ID = id
	if err := s.store.UpdateHolding(ctx, &h); err != nil {
		return nil, fmt.Errorf("edit holding %d: %w", id, err)
	}
	return &h, nil
}

func (s *Service) SellHolding(ctx context.Context, ownerID, id int) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}
	if err := s.store.DeleteHolding(ctx, ownerID, id); err != nil {
		return fmt.Errorf("sell holding %d: %w", id, err)
	}
	return nil
}

type RiskItemInput struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Type   models.RiskType `json:"type"`
}

func (s *Service) buildRiskItem(ownerID int, in RiskItemInput) (models.RiskItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.RiskItem{}, invalid("name is required")
	}
	if err := nonNegative("amount", in.Amount); err != nil {
		return models.RiskItem{}, err
	}
	if !in.Type.Valid() {
		return models.RiskItem{}, invalid("type must be %q or %q", models.RiskInsurance, models.RiskCash)
	}
	return models.RiskItem{
		OwnerID:   ownerID,
		Name:      name,
		Amount:    in.Amount,
		Type:      in.Type,
		CreatedAt: s.now(),
	}, nil
}

func (s *Service) RiskItems(ctx context.Context, ownerID int) ([]models.RiskItem, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	items, err := s.store.ListRiskItems(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list risk items: %w", err)
	}
	return items, nil
}

func (s *Service) AddRiskItem(ctx context.Context, ownerID int, in RiskItemInput) (*models.RiskItem, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	item, err := s.buildRiskItem(ownerID, in)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateRiskItem(ctx, &item); err != nil {
		return nil, fmt.Errorf("add risk item: %w", err)
	}
	return &item, nil
}

func (s *Service) EditRiskItem(ctx context.Context, ownerID, id int, in RiskItemInput) (*models.RiskItem, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	item, err := s.buildRiskItem(ownerID, in)
	if err != nil {
		return nil, err
	}
	item.ID = id
	if err := s.store.UpdateRiskItem(ctx, &item); err != nil {
		return nil, fmt.Errorf("edit risk item %d: %w", id, err)
	}
	return &item, nil
}

func (s *Service) DeleteRiskItem(ctx context.Context, ownerID, id int) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}
	if err := s.store.DeleteRiskItem(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete risk item %d: %w", id, err)
	}
	return nil
}
