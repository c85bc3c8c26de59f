package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodTotals aggregates in SQL. Rows whose type is not INCOME count as
// expenses, the same rule finance.Classify applies in memory.
func (s *PgStore) PeriodTotals(ctx context.Context, ownerID int, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'INCOME' THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN type = 'INCOME' THEN 0 ELSE amount END), 0) AS total_expense
		FROM transactions
		WHERE owner_id = $1 AND created_at >= $2 AND created_at <= $3`

	var income, expense decimal.Decimal
	err := s.pool.QueryRow(ctx, query, ownerID, from, to).Scan(&income, &expense)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("sum transactions for owner %d: %w", ownerID, err)
	}
	return income, expense, nil
}

// ListOwnerIDs returns every account, used by the monthly carry-over scan.
func (s *PgStore) ListOwnerIDs(ctx context.Context) ([]int, error) {
	rows, err := s.pool.Query(ctx, `SELECT id FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ResetOwner clears the owner's activity. Settings survive a reset.
func (s *PgStore) ResetOwner(ctx context.Context, ownerID int) error {
	tables := []string{"transactions", "holdings", "risk_items"}
	for _, table := range tables {
		result, err := s.pool.Exec(ctx, "DELETE FROM "+table+" WHERE owner_id = $1", ownerID)
		if err != nil {
			return fmt.Errorf("reset %s for owner %d: %w", table, ownerID, err)
		}
		log.Printf("reset owner_id=%d: %d rows removed from %s", ownerID, result.RowsAffected(), table)
	}
	return nil
}
