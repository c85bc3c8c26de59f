package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/living-budget/internal/database"
	"github.com/valeriaulyamaeva/living-budget/internal/finance"
	"github.com/valeriaulyamaeva/living-budget/models"
)

var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type TokenIssuer interface {
	GenerateToken(userID int) (string, error)
}

type Options struct {
	Defaults   models.Settings
	Currency   string
	Location   *time.Location
	BcryptCost int
	// Now replaces the wall clock in tests.
	Now func() time.Time
}

// Service ties the record store to the budget engine. Every method is scoped
// to one owner.
type Service struct {
	store      database.Store
	tokens     TokenIssuer
	defaults   models.Settings
	presenter  finance.Presenter
	loc        *time.Location
	bcryptCost int
	clock      func() time.Time
}

func New(store database.Store, tokens TokenIssuer, opts Options) *Service {
	s := &Service{
		store:      store,
		tokens:     tokens,
		defaults:   opts.Defaults,
		presenter:  finance.NewPresenter(opts.Currency),
		loc:        opts.Location,
		bcryptCost: opts.BcryptCost,
		clock:      opts.Now,
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	s.defaults.PayDay = finance.NormalizePayDay(s.defaults.PayDay)
	return s
}

func (s *Service) now() time.Time {
	return s.clock().In(s.loc)
}

func (s *Service) Currency() string {
	return s.presenter.Currency()
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func requireOwner(ownerID int) error {
	if ownerID <= 0 {
		return ErrUnauthenticated
	}
	return nil
}

func nonNegative(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return invalid("%s must not be negative", field)
	}
	return nil
}
