package mocks

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/iho/gowallet/internal/domain"
)

// MockWalletRepository is a mock implementation of WalletRepository. It
// behaves like a small in-memory store unless a per-method Func override
// is installed.
type MockWalletRepository struct {
	mu        sync.RWMutex
	accounts  map[uuid.UUID]*domain.Account
	entries   map[uuid.UUID][]*domain.Entry
	processed map[uuid.UUID]bool

	FindAccountFunc              func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	SaveAccountFunc              func(ctx context.Context, account *domain.Account) error
	SaveEntryFunc                func(ctx context.Context, entry *domain.Entry) error
	FindEntriesByAccountFunc     func(ctx context.Context, accountID uuid.UUID) ([]*domain.Entry, error)
	FindAccountsFunc             func(ctx context.Context) ([]*domain.Account, error)
	MarkTransactionProcessedFunc func(ctx context.Context, transactionID uuid.UUID) error
	IsTransactionProcessedFunc   func(ctx context.Context, transactionID uuid.UUID) (bool, error)
}

func NewMockWalletRepository() *MockWalletRepository {
	return &MockWalletRepository{
		accounts:  make(map[uuid.UUID]*domain.Account),
		entries:   make(map[uuid.UUID][]*domain.Entry),
		processed: make(map[uuid.UUID]bool),
	}
}

func (m *MockWalletRepository) FindAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if m.FindAccountFunc != nil {
		return m.FindAccountFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockWalletRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	if m.SaveAccountFunc != nil {
		return m.SaveAccountFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockWalletRepository) SaveEntry(ctx context.Context, entry *domain.Entry) error {
	if m.SaveEntryFunc != nil {
		return m.SaveEntryFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.AccountID] = append(m.entries[entry.AccountID], entry)
	return nil
}

func (m *MockWalletRepository) FindEntriesByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.Entry, error) {
	if m.FindEntriesByAccountFunc != nil {
		return m.FindEntriesByAccountFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := make([]*domain.Entry, len(m.entries[accountID]))
	copy(entries, m.entries[accountID])
	return entries, nil
}

func (m *MockWalletRepository) FindAccounts(ctx context.Context) ([]*domain.Account, error) {
	if m.FindAccountsFunc != nil {
		return m.FindAccountsFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	accounts := make([]*domain.Account, 0, len(m.accounts))
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

func (m *MockWalletRepository) MarkTransactionProcessed(ctx context.Context, transactionID uuid.UUID) error {
	if m.MarkTransactionProcessedFunc != nil {
		return m.MarkTransactionProcessedFunc(ctx, transactionID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processed[transactionID] = true
	return nil
}

func (m *MockWalletRepository) IsTransactionProcessed(ctx context.Context, transactionID uuid.UUID) (bool, error) {
	if m.IsTransactionProcessedFunc != nil {
		return m.IsTransactionProcessedFunc(ctx, transactionID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.processed[transactionID], nil
}

// MockIDGenerator is a deterministic IDGenerator for tests.
type MockIDGenerator struct {
	counter atomic.Int64

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return fmt.Sprintf("entry-%04d", m.counter.Add(1))
}
