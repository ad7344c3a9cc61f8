package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/iho/gowallet/internal/domain"
)

// EntryUseCase is the read path for transaction entries.
type EntryUseCase struct {
	repo WalletRepository
}

// NewEntryUseCase creates a new EntryUseCase.
func NewEntryUseCase(repo WalletRepository) *EntryUseCase {
	return &EntryUseCase{repo: repo}
}

// EntriesByAccount returns the account's entries in insertion order. An
// account with no history yields an empty slice, never an error.
func (uc *EntryUseCase) EntriesByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.Entry, error) {
	return uc.repo.FindEntriesByAccount(ctx, accountID)
}
