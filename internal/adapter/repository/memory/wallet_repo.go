// Package memory provides the in-memory implementation of the ledger
// store. It is the default backend: the engine's per-account locks
// provide all cross-account ordering, so the store only has to make each
// individual operation safe under unbounded concurrent callers.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/iho/gowallet/internal/domain"
)

// WalletRepository implements usecase.WalletRepository with concurrent
// maps guarded by a single RWMutex. Entry logs are append-only; reads
// return copies so no caller can observe a partially appended log or
// mutate stored entries.
type WalletRepository struct {
	mu        sync.RWMutex
	accounts  map[uuid.UUID]*domain.Account
	entries   map[uuid.UUID][]*domain.Entry
	processed map[uuid.UUID]struct{}
}

// NewWalletRepository creates an empty in-memory store.
func NewWalletRepository() *WalletRepository {
	return &WalletRepository{
		accounts:  make(map[uuid.UUID]*domain.Account),
		entries:   make(map[uuid.UUID][]*domain.Entry),
		processed: make(map[uuid.UUID]struct{}),
	}
}

// FindAccount returns domain.ErrAccountNotFound for an unknown id.
func (r *WalletRepository) FindAccount(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	copied := *account

	return &copied, nil
}

// SaveAccount inserts or replaces an account by id.
func (r *WalletRepository) SaveAccount(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *account
	r.accounts[account.ID] = &copied

	return nil
}

// SaveEntry appends an entry to the log of entry.AccountID.
func (r *WalletRepository) SaveEntry(_ context.Context, entry *domain.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *entry
	r.entries[entry.AccountID] = append(r.entries[entry.AccountID], &copied)

	return nil
}

// FindEntriesByAccount returns the account's entries in insertion order.
// Unknown ids yield an empty slice, never an error.
func (r *WalletRepository) FindEntriesByAccount(_ context.Context, accountID uuid.UUID) ([]*domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log := r.entries[accountID]
	entries := make([]*domain.Entry, len(log))
	for i, entry := range log {
		copied := *entry
		entries[i] = &copied
	}

	return entries, nil
}

// FindAccounts returns every account in the store.
func (r *WalletRepository) FindAccounts(_ context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]*domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		copied := *account
		accounts = append(accounts, &copied)
	}

	return accounts, nil
}

// MarkTransactionProcessed records the transaction in the processed set.
func (r *WalletRepository) MarkTransactionProcessed(_ context.Context, transactionID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.processed[transactionID] = struct{}{}

	return nil
}

// IsTransactionProcessed reports whether the transaction already
// completed.
func (r *WalletRepository) IsTransactionProcessed(_ context.Context, transactionID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.processed[transactionID]

	return ok, nil
}
