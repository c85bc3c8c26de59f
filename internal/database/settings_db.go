package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/valeriaulyamaeva/living-budget/models"
)

func (s *PgStore) FindSettings(ctx context.Context, ownerID int) (*models.Settings, error) {
	query := `
		SELECT owner_id, total_salary, pay_day, rent, savings_target, risk_target, fixed_cost
		FROM settings
		WHERE owner_id = $1`

	var settings models.Settings
	err := s.pool.QueryRow(ctx, query, ownerID).Scan(
		&settings.OwnerID,
		&settings.TotalSalary,
		&settings.PayDay,
		&settings.Rent,
		&settings.SavingsTarget,
		&settings.RiskTarget,
		&settings.FixedCost,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get settings for owner %d: %w", ownerID, err)
	}
	return &settings, nil
}

// UpsertSettings replaces the owner's settings wholesale.
func (s *PgStore) UpsertSettings(ctx context.Context, settings *models.Settings) error {
	query := `
		INSERT INTO settings (owner_id, total_salary, pay_day, rent, savings_target, risk_target, fixed_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (owner_id) DO UPDATE
		SET total_salary = EXCLUDED.total_salary,
			pay_day = EXCLUDED.pay_day,
			rent = EXCLUDED.rent,
			savings_target = EXCLUDED.savings_target,
			risk_target = EXCLUDED.risk_target,
			fixed_cost = EXCLUDED.fixed_cost`

	_, err := s.pool.Exec(ctx, query,
		settings.OwnerID,
		settings.TotalSalary,
		settings.PayDay,
		settings.Rent,
		settings.SavingsTarget,
		settings.RiskTarget,
		settings.FixedCost,
	)
	if err != nil {
		log.Printf("save settings for owner_id=%d failed: %v", settings.OwnerID, err)
		return fmt.Errorf("save settings: %w", err)
	}
	log.Printf("settings saved for owner_id=%d", settings.OwnerID)
	return nil
}
