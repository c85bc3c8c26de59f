package database

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/living-budget/models"
)

// MemoryStore keeps everything in maps. It backs tests and the -memory
// server flag; data does not survive a restart.
type MemoryStore struct {
	mu           sync.RWMutex
	nextID       int
	users        map[int]models.User
	settings     map[int]models.Settings
	transactions map[int]models.Transaction
	holdings     map[int]models.Holding
	riskItems    map[int]models.RiskItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[int]models.User),
		settings:     make(map[int]models.Settings),
		transactions: make(map[int]models.Transaction),
		holdings:     make(map[int]models.Holding),
		riskItems:    make(map[int]models.RiskItem),
	}
}

var _ Store = (*MemoryStore)(nil)

func (m *MemoryStore) id() int {
	m.nextID++
	return m.nextID
}

/* ---- settings ---- */

func (m *MemoryStore) FindSettings(_ context.Context, ownerID int) (*models.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.settings[ownerID]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemoryStore) UpsertSettings(_ context.Context, s *models.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[s.OwnerID] = *s
	return nil
}

/* ---- transactions ---- */

func newestFirst[T any](created func(T) time.Time, id func(T) int) func(a, b T) int {
	return func(a, b T) int {
		if c := created(b).Compare(created(a)); c != 0 {
			return c
		}
		return cmp.Compare(id(b), id(a))
	}
}

var txNewestFirst = newestFirst(
	func(t models.Transaction) time.Time { return t.CreatedAt },
	func(t models.Transaction) int { return t.ID },
)

func (m *MemoryStore) ListTransactions(_ context.Context, ownerID int, from, to time.Time) ([]models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Transaction{}
	for _, tx := range m.transactions {
		if tx.OwnerID != ownerID || tx.CreatedAt.Before(from) || tx.CreatedAt.After(to) {
			continue
		}
		out = append(out, tx)
	}
	slices.SortFunc(out, txNewestFirst)
	return out, nil
}

func (m *MemoryStore) CreateTransaction(_ context.Context, tx *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx.ID = m.id()
	m.transactions[tx.ID] = *tx
	return nil
}

func (m *MemoryStore) UpdateTransaction(_ context.Context, tx *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.transactions[tx.ID]
	if !ok || existing.OwnerID != tx.OwnerID {
		return ErrNotFound
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = existing.CreatedAt
	}
	m.transactions[tx.ID] = *tx
	return nil
}

func (m *MemoryStore) DeleteTransaction(_ context.Context, ownerID, id int) (*models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.transactions[id]
	if !ok || tx.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	delete(m.transactions, id)
	return &tx, nil
}

func (m *MemoryStore) PeriodTotals(_ context.Context, ownerID int, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	income, expense := decimal.Zero, decimal.Zero
	for _, tx := range m.transactions {
		if tx.OwnerID != ownerID || tx.CreatedAt.Before(from) || tx.CreatedAt.After(to) {
			continue
		}
		if tx.Type == models.Income {
			income = income.Add(tx.Amount)
		} else {
			expense = expense.Add(tx.Amount)
		}
	}
	return income, expense, nil
}

/* ---- holdings ---- */

func (m *MemoryStore) ListHoldings(_ context.Context, ownerID int) ([]models.Holding, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Holding{}
	for _, h := range m.holdings {
		if h.OwnerID == ownerID {
			out = append(out, h)
		}
	}
	slices.SortFunc(out, newestFirst(
		func(h models.Holding) time.Time { return h.CreatedAt },
		func(h models.Holding) int { return h.ID },
	))
	return out, nil
}

func (m *MemoryStore) CreateHolding(_ context.Context, h *models.Holding) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	h.ID = m.id()
	m.holdings[h.ID] = *h
	return nil
}

func (m *MemoryStore) UpdateHolding(_ context.Context, h *models.Holding) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.holdings[h.ID]
	if !ok || existing.OwnerID != h.OwnerID {
		return ErrNotFound
	}
	h.CreatedAt = existing.CreatedAt
	m.holdings[h.ID] = *h
	return nil
}

func (m *MemoryStore) DeleteHolding(_ context.Context, ownerID, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.holdings[id]
	if !ok || h.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(m.holdings, id)
	return nil
}

/* ---- risk items ---- */

func (m *MemoryStore) ListRiskItems(_ context.Context, ownerID int) ([]models.RiskItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.RiskItem{}
	for _, it := range m.riskItems {
		if it.OwnerID == ownerID {
			out = append(out, it)
		}
	}
	slices.SortFunc(out, newestFirst(
		func(it models.RiskItem) time.Time { return it.CreatedAt },
		func(it models.RiskItem) int { return it.ID },
	))
	return out, nil
}

func (m *MemoryStore) CreateRiskItem(_ context.Context, item *models.RiskItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item.ID = m.id()
	m.riskItems[item.ID] = *item
	return nil
}

func (m *MemoryStore) UpdateRiskItem(_ context.Context, item *models.RiskItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.riskItems[item.ID]
	if !ok || existing.OwnerID != item.OwnerID {
		return ErrNotFound
	}
	item.CreatedAt = existing.CreatedAt
	m.riskItems[item.ID] = *item
	return nil
}

func (m *MemoryStore) DeleteRiskItem(_ context.Context, ownerID, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.riskItems[id]
	if !ok || it.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(m.riskItems, id)
	return nil
}

/* ---- users ---- */

func (m *MemoryStore) CreateUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return ErrEmailTaken
		}
	}
	u.ID = m.id()
	u.CreatedAt = time.Now()
	m.users[u.ID] = *u
	return nil
}

func (m *MemoryStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) ListOwnerIDs(_ context.Context) ([]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]int, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

func (m *MemoryStore) ResetOwner(_ context.Context, ownerID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, tx := range m.transactions {
		if tx.OwnerID == ownerID {
			delete(m.transactions, id)
		}
	}
	for id, h := range m.holdings {
		if h.OwnerID == ownerID {
			delete(m.holdings, id)
		}
	}
	for id, it := range m.riskItems {
		if it.OwnerID == ownerID {
			delete(m.riskItems, id)
		}
	}
	return nil
}
