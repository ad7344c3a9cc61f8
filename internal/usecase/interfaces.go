package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/iho/gowallet/internal/domain"
)

// WalletRepository defines data access for the ledger store. The store
// owns every collection (accounts, per-account entry logs, the processed
// set) and guarantees safe concurrent access, but provides no ordering
// across accounts; serializing a transfer is the engine's job.
type WalletRepository interface {
	// FindAccount returns domain.ErrAccountNotFound for an unknown id.
	FindAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	// SaveAccount inserts or replaces an account by id.
	SaveAccount(ctx context.Context, account *domain.Account) error
	// SaveEntry appends an entry to the log of entry.AccountID.
	SaveEntry(ctx context.Context, entry *domain.Entry) error
	// FindEntriesByAccount returns the account's entries in insertion
	// order. An unknown id yields an empty slice, not an error.
	FindEntriesByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.Entry, error)
	// FindAccounts returns every account in the store.
	FindAccounts(ctx context.Context) ([]*domain.Account, error)
	MarkTransactionProcessed(ctx context.Context, transactionID uuid.UUID) error
	IsTransactionProcessed(ctx context.Context, transactionID uuid.UUID) (bool, error)
}

// IDGenerator generates unique entry IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles transport-level idempotency key storage for
// the HTTP layer. It is unrelated to the ledger's own TransactionID
// idempotency, which lives in the WalletRepository processed set.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
