package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
)

// Seeder provisions system accounts with initial funds at process start.
// Seeding books a self-credit entry under a fixed transaction id and
// marks it processed, so repeating the seed against a durable store is a
// no-op.
type Seeder struct {
	repo  WalletRepository
	idGen IDGenerator
}

// NewSeeder creates a new Seeder.
func NewSeeder(repo WalletRepository, idGen IDGenerator) *Seeder {
	return &Seeder{
		repo:  repo,
		idGen: idGen,
	}
}

// Seed credits accountID with amount under transactionID. Already-seeded
// stores are left untouched.
func (s *Seeder) Seed(ctx context.Context, accountID, transactionID uuid.UUID, amount decimal.Decimal) error {
	processed, err := s.repo.IsTransactionProcessed(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("seed idempotency check: %w", err)
	}

	if processed {
		return nil
	}

	_, err = s.repo.FindAccount(ctx, accountID)
	if errors.Is(err, domain.ErrAccountNotFound) {
		account := domain.NewAccount(accountID, time.Now().UTC())
		if err := s.repo.SaveAccount(ctx, account); err != nil {
			return fmt.Errorf("save seed account: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("find seed account: %w", err)
	}

	// Entries must carry a positive amount; a zero-fund seed just
	// creates the account.
	if amount.IsZero() {
		return s.repo.MarkTransactionProcessed(ctx, transactionID)
	}

	entry := &domain.Entry{
		ID:             s.idGen.Generate(),
		TransactionID:  transactionID,
		AccountID:      accountID,
		CounterpartyID: accountID,
		Amount:         amount,
		Type:           domain.EntryTypeCredit,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.SaveEntry(ctx, entry); err != nil {
		return fmt.Errorf("save seed entry: %w", err)
	}

	if err := s.repo.MarkTransactionProcessed(ctx, transactionID); err != nil {
		return fmt.Errorf("mark seed processed: %w", err)
	}

	return nil
}
