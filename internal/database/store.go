package database

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/living-budget/models"
)

// ErrNotFound is returned when a row does not exist or belongs to another owner.
var ErrNotFound = errors.New("record not found")

// ErrEmailTaken is returned when registering an email that already has an account.
var ErrEmailTaken = errors.New("email already registered")

type SettingsStore interface {
	FindSettings(ctx context.Context, ownerID int) (*models.Settings, error)
	UpsertSettings(ctx context.Context, s *models.Settings) error
}

type TransactionStore interface {
	// ListTransactions returns the owner's rows created within [from, to], newest first.
	ListTransactions(ctx context.Context, ownerID int, from, to time.Time) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	// UpdateTransaction keeps the stored created_at when tx.CreatedAt is zero
	// and writes the effective value back into tx.
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error
	DeleteTransaction(ctx context.Context, ownerID, id int) (*models.Transaction, error)
	// PeriodTotals sums income and expense within [from, to].
	PeriodTotals(ctx context.Context, ownerID int, from, to time.Time) (income, expense decimal.Decimal, err error)
}

type HoldingStore interface {
	ListHoldings(ctx context.Context, ownerID int) ([]models.Holding, error)
	CreateHolding(ctx context.Context, h *models.Holding) error
	UpdateHolding(ctx context.Context, h *models.Holding) error
	DeleteHolding(ctx context.Context, ownerID, id int) error
}

type RiskItemStore interface {
	ListRiskItems(ctx context.Context, ownerID int) ([]models.RiskItem, error)
	CreateRiskItem(ctx context.Context, item *models.RiskItem) error
	UpdateRiskItem(ctx context.Context, item *models.RiskItem) error
	DeleteRiskItem(ctx context.Context, ownerID, id int) error
}

type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListOwnerIDs(ctx context.Context) ([]int, error)
}

// Store is everything the service layer reads and writes.
type Store interface {
	SettingsStore
	TransactionStore
	HoldingStore
	RiskItemStore
	UserStore
	// ResetOwner removes the owner's transactions, holdings and risk items.
	// Settings are kept.
	ResetOwner(ctx context.Context, ownerID int) error
}
