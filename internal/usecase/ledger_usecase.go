package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/iho/gowallet/internal/domain"
)

// ErrInconsistentLedger is returned when the ledger fails its
// double-entry audit.
var ErrInconsistentLedger = errors.New("ledger is inconsistent")

// LedgerUseCase handles ledger-wide operations.
type LedgerUseCase struct {
	repo    WalletRepository
	balance *BalanceCalculator
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(repo WalletRepository, balance *BalanceCalculator) *LedgerUseCase {
	return &LedgerUseCase{
		repo:    repo,
		balance: balance,
	}
}

// CheckConsistency audits the whole ledger: every transaction must have
// exactly one DEBIT and one CREDIT of equal amount (the seed self-credit
// being the one allowed unpaired entry), and no account balance may be
// negative.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) error {
	accounts, err := uc.repo.FindAccounts(ctx)
	if err != nil {
		return err
	}

	type pair struct {
		debits     int
		credits    int
		selfCredit bool
		amounts    map[string]int
	}

	pairs := make(map[uuid.UUID]*pair)

	for _, account := range accounts {
		balance, err := uc.balance.Calculate(ctx, account.ID)
		if err != nil {
			return err
		}

		if balance.IsNegative() {
			return fmt.Errorf("%w: account %s has negative balance %s",
				ErrInconsistentLedger, account.ID, balance)
		}

		entries, err := uc.repo.FindEntriesByAccount(ctx, account.ID)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			p := pairs[entry.TransactionID]
			if p == nil {
				p = &pair{amounts: make(map[string]int)}
				pairs[entry.TransactionID] = p
			}

			switch entry.Type {
			case domain.EntryTypeDebit:
				p.debits++
			case domain.EntryTypeCredit:
				p.credits++

				if entry.CounterpartyID == entry.AccountID {
					p.selfCredit = true
				}
			}

			p.amounts[entry.Amount.String()]++
		}
	}

	for transactionID, p := range pairs {
		// Seed transactions credit an account from itself and have no
		// debit side.
		if p.debits == 0 && p.credits == 1 && p.selfCredit {
			continue
		}

		if p.debits != 1 || p.credits != 1 || len(p.amounts) != 1 {
			return fmt.Errorf("%w: transaction %s has %d debits and %d credits",
				ErrInconsistentLedger, transactionID, p.debits, p.credits)
		}
	}

	return nil
}
