package database

import (
	"context"
	"fmt"
	"log"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         SERIAL PRIMARY KEY,
		email      TEXT NOT NULL UNIQUE,
		name       TEXT NOT NULL DEFAULT '',
		password   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		owner_id       INT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		total_salary   NUMERIC(14,2) NOT NULL DEFAULT 0,
		pay_day        INT NOT NULL DEFAULT 5 CHECK (pay_day BETWEEN 1 AND 31),
		rent           NUMERIC(14,2) NOT NULL DEFAULT 0,
		savings_target NUMERIC(14,2) NOT NULL DEFAULT 0,
		risk_target    NUMERIC(14,2) NOT NULL DEFAULT 0,
		fixed_cost     NUMERIC(14,2) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id         SERIAL PRIMARY KEY,
		owner_id   INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		amount     NUMERIC(14,2) NOT NULL,
		name       TEXT NOT NULL DEFAULT '',
		type       TEXT NOT NULL DEFAULT 'EXPENSE',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS transactions_owner_created_idx ON transactions (owner_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS holdings (
		id            SERIAL PRIMARY KEY,
		owner_id      INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		symbol        TEXT NOT NULL,
		shares        NUMERIC(18,6) NOT NULL,
		avg_cost      NUMERIC(14,2) NOT NULL,
		current_price NUMERIC(14,2) NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS risk_items (
		id         SERIAL PRIMARY KEY,
		owner_id   INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		amount     NUMERIC(14,2) NOT NULL,
		type       TEXT NOT NULL CHECK (type IN ('insurance', 'cash')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate creates the tables when they do not exist yet.
func (s *PgStore) Migrate(ctx context.Context) error {
	for i, stmt := range schema {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i, err)
		}
	}
	log.Printf("schema up to date (%d statements)", len(schema))
	return nil
}
