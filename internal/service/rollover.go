package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/valeriaulyamaeva/living-budget/internal/finance"
	"github.com/valeriaulyamaeva/living-budget/models"
)

var (
	ErrConfirmationRequired = fmt.Errorf("%w: rollover must be confirmed", ErrInvalidInput)
	ErrNothingToRollover    = fmt.Errorf("%w: no positive balance to carry over", ErrInvalidInput)
)

// PendingRollover computes the carry-over from the month before the selected
// one using store-side totals and the owner's current fixed costs.
func (s *Service) PendingRollover(ctx context.Context, ownerID int, month string) (finance.Rollover, error) {
	if err := requireOwner(ownerID); err != nil {
		return finance.Rollover{}, err
	}
	period, err := finance.ResolvePeriod(month, finance.DefaultPayDay, s.now())
	if err != nil {
		return finance.Rollover{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	settings, err := s.Settings(ctx, ownerID)
	if err != nil {
		return finance.Rollover{}, err
	}
	income, expense, err := s.store.PeriodTotals(ctx, ownerID, period.Previous.Start, period.Previous.End)
	if err != nil {
		return finance.Rollover{}, fmt.Errorf("previous period totals: %w", err)
	}
	return finance.ComputeRollover(income, expense, settings.FixedDeductions()), nil
}

// Rollover moves last month's positive balance into emergency cash. The
// amount is recomputed here, never taken from the caller, and repeated calls
// create repeated items.
func (s *Service) Rollover(ctx context.Context, ownerID int, month string, confirm bool) (*models.RiskItem, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if !confirm {
		return nil, ErrConfirmationRequired
	}
	r, err := s.PendingRollover(ctx, ownerID, month)
	if err != nil {
		return nil, err
	}
	item, ok := finance.RolloverItem(r, ownerID, s.now())
	if !ok {
		return nil, ErrNothingToRollover
	}
	if err := s.store.CreateRiskItem(ctx, &item); err != nil {
		return nil, fmt.Errorf("store rollover: %w", err)
	}
	log.Printf("owner %d rolled over %s into emergency cash", ownerID, item.Amount)
	return &item, nil
}

// RolloverOffer pairs an owner with an unclaimed carry-over.
type RolloverOffer struct {
	OwnerID  int
	Rollover finance.Rollover
}

// RolloverOffers scans every owner for a positive carry-over from the month
// before now. Owners that fail to load are logged and skipped.
func (s *Service) RolloverOffers(ctx context.Context) ([]RolloverOffer, error) {
	owners, err := s.store.ListOwnerIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	var offers []RolloverOffer
	for _, id := range owners {
		if err := ctx.Err(); err != nil {
			return offers, err
		}
		r, err := s.PendingRollover(ctx, id, "")
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return offers, err
			}
			log.Printf("rollover scan: owner %d: %v", id, err)
			continue
		}
		if r.Offer {
			offers = append(offers, RolloverOffer{OwnerID: id, Rollover: r})
		}
	}
	return offers, nil
}
