package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceCalculator derives account balances from the entry log. It is a
// pure read path: no caching, no side effects, exact decimal arithmetic.
type BalanceCalculator struct {
	repo WalletRepository
}

// NewBalanceCalculator creates a new BalanceCalculator.
func NewBalanceCalculator(repo WalletRepository) *BalanceCalculator {
	return &BalanceCalculator{repo: repo}
}

// Calculate folds the account's entries: CREDIT adds, DEBIT subtracts.
// An account with no entries has a zero balance. Returns
// domain.ErrAccountNotFound when the account does not exist.
func (c *BalanceCalculator) Calculate(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	if _, err := c.repo.FindAccount(ctx, accountID); err != nil {
		return decimal.Zero, err
	}

	entries, err := c.repo.FindEntriesByAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	for _, entry := range entries {
		balance = balance.Add(entry.Signed())
	}

	return balance, nil
}
