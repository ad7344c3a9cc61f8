package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a wallet account. An account carries no stored
// balance: the balance is always derived by folding the account's entry
// log, so the ledger is the single source of truth.
type Account struct {
	ID        uuid.UUID
	CreatedAt time.Time
}

// NewAccount creates an account with the given ID.
func NewAccount(id uuid.UUID, createdAt time.Time) *Account {
	return &Account{
		ID:        id,
		CreatedAt: createdAt,
	}
}
