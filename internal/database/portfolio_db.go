package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/valeriaulyamaeva/living-budget/models"
)

func (s *PgStore) ListHoldings(ctx context.Context, ownerID int) ([]models.Holding, error) {
	query := `
		SELECT id, owner_id, symbol, shares, avg_cost, current_price, created_at
		FROM holdings
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := s.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list holdings: %w", err)
	}
	defer rows.Close()

	holdings := []models.Holding{}
	for rows.Next() {
		var h models.Holding
		if err := rows.Scan(&h.ID, &h.OwnerID, &h.Symbol, &h.Shares, &h.AvgCost, &h.CurrentPrice, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan holding: %w", err)
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

func (s *PgStore) CreateHolding(ctx context.Context, h *models.Holding) error {
	query := `
		INSERT INTO holdings (owner_id, symbol, shares, avg_cost, current_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := s.pool.QueryRow(ctx, query,
		h.OwnerID, h.Symbol, h.Shares, h.AvgCost, h.CurrentPrice, h.CreatedAt).Scan(&h.ID)
	if err != nil {
		return fmt.Errorf("insert holding: %w", err)
	}
	return nil
}

// UpdateHolding replaces the holding wholesale; created_at is kept.
func (s *PgStore) UpdateHolding(ctx context.Context, h *models.Holding) error {
	query := `
		UPDATE holdings
		SET symbol = $1, shares = $2, avg_cost = $3, current_price = $4
		WHERE id = $5 AND owner_id = $6
		RETURNING created_at`

	err := s.pool.QueryRow(ctx, query, h.Symbol, h.Shares, h.AvgCost, h.CurrentPrice, h.ID, h.OwnerID).Scan(&h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update holding %d: %w", h.ID, err)
	}
	return nil
}

func (s *PgStore) DeleteHolding(ctx context.Context, ownerID, id int) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM holdings WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete holding %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
