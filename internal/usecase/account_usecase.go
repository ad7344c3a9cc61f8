package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
)

// AccountUseCase is the read path for accounts: existence, identity and
// derived balance.
type AccountUseCase struct {
	repo    WalletRepository
	balance *BalanceCalculator
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(repo WalletRepository, balance *BalanceCalculator) *AccountUseCase {
	return &AccountUseCase{
		repo:    repo,
		balance: balance,
	}
}

// GetAccount retrieves an account by ID. Returns
// domain.ErrAccountNotFound when absent.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return uc.repo.FindAccount(ctx, id)
}

// AccountExists reports whether the account is known to the ledger.
func (uc *AccountUseCase) AccountExists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := uc.repo.FindAccount(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// Balance returns the account's current balance derived from its entry
// log.
func (uc *AccountUseCase) Balance(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	return uc.balance.Calculate(ctx, id)
}
