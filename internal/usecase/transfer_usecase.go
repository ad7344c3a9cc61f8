package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iho/gowallet/internal/domain"
)

// TransferUseCase orchestrates fund movements between two accounts:
// idempotency check, per-account locking, validation, destination
// provisioning, paired entry creation, commit.
type TransferUseCase struct {
	repo    WalletRepository
	balance *BalanceCalculator
	idGen   IDGenerator
	locks   *lockRegistry
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(repo WalletRepository, balance *BalanceCalculator, idGen IDGenerator) *TransferUseCase {
	return &TransferUseCase{
		repo:    repo,
		balance: balance,
		idGen:   idGen,
		locks:   newLockRegistry(),
	}
}

// Transfer moves request.Amount from the source account to the
// destination account. Replaying a TransactionID that already completed
// returns nil without touching the ledger, so callers may retry freely
// under at-least-once delivery. Validation failures leave the ledger
// unchanged: no entries are written and the transaction is not marked
// processed.
func (uc *TransferUseCase) Transfer(ctx context.Context, request domain.TransferRequest) error {
	// Idempotency short-circuit before taking any lock.
	processed, err := uc.repo.IsTransactionProcessed(ctx, request.TransactionID)
	if err != nil {
		return fmt.Errorf("idempotency check: %w", err)
	}

	if processed {
		return nil
	}

	// Lock both accounts in a total order independent of direction,
	// then re-check and validate against state that cannot change
	// underneath us.
	unlock := uc.locks.lockPair(request.SourceAccountID, request.DestinationAccountID)
	defer unlock()

	// A racing retry of the same TransactionID may have committed while
	// we waited for the locks.
	processed, err = uc.repo.IsTransactionProcessed(ctx, request.TransactionID)
	if err != nil {
		return fmt.Errorf("idempotency check: %w", err)
	}

	if processed {
		return nil
	}

	if err := uc.validate(ctx, request); err != nil {
		return err
	}

	if err := uc.provisionDestination(ctx, request); err != nil {
		return err
	}

	return uc.commit(ctx, request)
}

func (uc *TransferUseCase) validate(ctx context.Context, request domain.TransferRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}

	_, err := uc.repo.FindAccount(ctx, request.SourceAccountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.ErrSourceNotFound
		}

		return fmt.Errorf("find source account: %w", err)
	}

	sourceBalance, err := uc.balance.Calculate(ctx, request.SourceAccountID)
	if err != nil {
		return fmt.Errorf("calculate source balance: %w", err)
	}

	if sourceBalance.LessThan(request.Amount) {
		return domain.ErrInsufficientFunds
	}

	return nil
}

// provisionDestination creates the destination account with an empty
// entry log the first time it receives funds.
func (uc *TransferUseCase) provisionDestination(ctx context.Context, request domain.TransferRequest) error {
	_, err := uc.repo.FindAccount(ctx, request.DestinationAccountID)
	if err == nil {
		return nil
	}

	if !errors.Is(err, domain.ErrAccountNotFound) {
		return fmt.Errorf("find destination account: %w", err)
	}

	account := domain.NewAccount(request.DestinationAccountID, time.Now().UTC())
	if err := uc.repo.SaveAccount(ctx, account); err != nil {
		return fmt.Errorf("provision destination account: %w", err)
	}

	return nil
}

// commit writes the DEBIT/CREDIT pair and marks the transaction
// processed last, so a crash mid-commit can never leave a transaction
// marked processed without its entries.
func (uc *TransferUseCase) commit(ctx context.Context, request domain.TransferRequest) error {
	now := time.Now().UTC()

	debit := &domain.Entry{
		ID:             uc.idGen.Generate(),
		TransactionID:  request.TransactionID,
		AccountID:      request.SourceAccountID,
		CounterpartyID: request.DestinationAccountID,
		Amount:         request.Amount,
		Type:           domain.EntryTypeDebit,
		CreatedAt:      now,
	}

	credit := &domain.Entry{
		ID:             uc.idGen.Generate(),
		TransactionID:  request.TransactionID,
		AccountID:      request.DestinationAccountID,
		CounterpartyID: request.SourceAccountID,
		Amount:         request.Amount,
		Type:           domain.EntryTypeCredit,
		CreatedAt:      now,
	}

	if err := uc.repo.SaveEntry(ctx, debit); err != nil {
		return fmt.Errorf("save debit entry: %w", err)
	}

	if err := uc.repo.SaveEntry(ctx, credit); err != nil {
		return fmt.Errorf("save credit entry: %w", err)
	}

	if err := uc.repo.MarkTransactionProcessed(ctx, request.TransactionID); err != nil {
		return fmt.Errorf("mark transaction processed: %w", err)
	}

	return nil
}
