package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/valeriaulyamaeva/living-budget/models"
)

func (s *PgStore) ListRiskItems(ctx context.Context, ownerID int) ([]models.RiskItem, error) {
	query := `
		SELECT id, owner_id, name, amount, type, created_at
		FROM risk_items
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := s.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list risk items: %w", err)
	}
	defer rows.Close()

	items := []models.RiskItem{}
	for rows.Next() {
		var it models.RiskItem
		if err := rows.Scan(&it.ID, &it.OwnerID, &it.Name, &it.Amount, &it.Type, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan risk item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *PgStore) CreateRiskItem(ctx context.Context, item *models.RiskItem) error {
	query := `
		INSERT INTO risk_items (owner_id, name, amount, type, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := s.pool.QueryRow(ctx, query,
		item.OwnerID, item.Name, item.Amount, item.Type, item.CreatedAt).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert risk item: %w", err)
	}
	return nil
}

func (s *PgStore) UpdateRiskItem(ctx context.Context, item *models.RiskItem) error {
	query := `
		UPDATE risk_items
		SET name = $1, amount = $2, type = $3
		WHERE id = $4 AND owner_id = $5
		RETURNING created_at`

	err := s.pool.QueryRow(ctx, query, item.Name, item.Amount, item.Type, item.ID, item.OwnerID).Scan(&item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update risk item %d: %w", item.ID, err)
	}
	return nil
}

func (s *PgStore) DeleteRiskItem(ctx context.Context, ownerID, id int) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM risk_items WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete risk item %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
