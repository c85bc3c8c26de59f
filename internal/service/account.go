package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/valeriaulyamaeva/living-budget/internal/auth"
	"github.com/valeriaulyamaeva/living-budget/internal/database"
	"github.com/valeriaulyamaeva/living-budget/models"
)

type Credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Register(ctx context.Context, in Credentials) (*Session, error) {
	email := normalizeEmail(in.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, invalid("email is not valid")
	}
	if len(in.Password) < 6 {
		return nil, invalid("password must be at least 6 characters")
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Password:  hash,
		CreatedAt: s.now(),
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("register %s: %w", email, err)
	}
	log.Printf("registered user %d", u.ID)
	return s.session(*u)
}

func (s *Service) Login(ctx context.Context, in Credentials) (*Session, error) {
	u, err := s.store.FindUserByEmail(ctx, normalizeEmail(in.Email))
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !auth.CheckPassword(u.Password, in.Password) {
		return nil, ErrInvalidCredentials
	}
	return s.session(*u)
}

func (s *Service) session(u models.User) (*Session, error) {
	token, err := s.tokens.GenerateToken(u.ID)
	if err != nil {
		return nil, err
	}
	u.Password = ""
	return &Session{Token: token, User: u}, nil
}

// Reset wipes the owner's transactions, holdings and risk items. The
// allocation plan is kept.
func (s *Service) Reset(ctx context.Context, ownerID int) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}
	if err := s.store.ResetOwner(ctx, ownerID); err != nil {
		return fmt.Errorf("reset owner %d: %w", ownerID, err)
	}
	return nil
}

type Export struct {
	ExportedAt   time.Time            `json:"exported_at"`
	Currency     string               `json:"currency"`
	Settings     models.Settings      `json:"settings"`
	Transactions []models.Transaction `json:"transactions"`
	Holdings     []models.Holding     `json:"holdings"`
	RiskItems    []models.RiskItem    `json:"risk_items"`
}

var (
	exportFrom = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	exportTo   = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
)

// Export dumps everything the owner has recorded.
func (s *Service) Export(ctx context.Context, ownerID int) (*Export, error) {
	settings, err := s.Settings(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	txs, err := s.store.ListTransactions(ctx, ownerID, exportFrom, exportTo)
	if err != nil {
		return nil, fmt.Errorf("export transactions: %w", err)
	}
	holdings, err := s.Holdings(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	items, err := s.RiskItems(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &Export{
		ExportedAt:   s.now(),
		Currency:     s.Currency(),
		Settings:     settings,
		Transactions: txs,
		Holdings:     holdings,
		RiskItems:    items,
	}, nil
}
