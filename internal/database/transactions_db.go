package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/valeriaulyamaeva/living-budget/models"
)

func (s *PgStore) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (owner_id, amount, name, type, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := s.pool.QueryRow(ctx, query,
		tx.OwnerID,
		tx.Amount,
		tx.Name,
		tx.Type,
		tx.CreatedAt).Scan(&tx.ID)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (s *PgStore) ListTransactions(ctx context.Context, ownerID int, from, to time.Time) ([]models.Transaction, error) {
	query := `
		SELECT id, owner_id, amount, name, type, created_at
		FROM transactions
		WHERE owner_id = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at DESC, id DESC`

	rows, err := s.pool.Query(ctx, query, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	txs := []models.Transaction{}
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.OwnerID, &tx.Amount, &tx.Name, &tx.Type, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

func (s *PgStore) UpdateTransaction(ctx context.Context, tx *models.Transaction) error {
	query := `
		UPDATE transactions
		SET amount = $1, name = $2, type = $3, created_at = COALESCE($4, created_at)
		WHERE id = $5 AND owner_id = $6
		RETURNING created_at`

	var at *time.Time
	if !tx.CreatedAt.IsZero() {
		at = &tx.CreatedAt
	}
	err := s.pool.QueryRow(ctx, query,
		tx.Amount,
		tx.Name,
		tx.Type,
		at,
		tx.ID,
		tx.OwnerID).Scan(&tx.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update transaction %d: %w", tx.ID, err)
	}
	return nil
}

// DeleteTransaction returns the removed row so callers can adjust totals.
func (s *PgStore) DeleteTransaction(ctx context.Context, ownerID, id int) (*models.Transaction, error) {
	query := `
		DELETE FROM transactions
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, amount, name, type, created_at`

	var tx models.Transaction
	err := s.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&tx.ID, &tx.OwnerID, &tx.Amount, &tx.Name, &tx.Type, &tx.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("delete transaction %d: %w", id, err)
	}
	return &tx, nil
}
