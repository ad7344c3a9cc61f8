package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gowallet/internal/adapter/repository/memory"
	"github.com/iho/gowallet/internal/domain"
)

func TestWalletRepositoryAccounts(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewWalletRepository()

	id := uuid.New()

	_, err := repo.FindAccount(ctx, id)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	require.NoError(t, repo.SaveAccount(ctx, domain.NewAccount(id, time.Now().UTC())))

	account, err := repo.FindAccount(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, account.ID)

	// The store hands out copies, not references to its own state.
	account.ID = uuid.New()
	again, err := repo.FindAccount(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, again.ID)

	accounts, err := repo.FindAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestWalletRepositoryEntryOrder(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewWalletRepository()

	accountID := uuid.New()

	for i := range 10 {
		require.NoError(t, repo.SaveEntry(ctx, &domain.Entry{
			ID:            fmt.Sprintf("entry-%d", i),
			TransactionID: uuid.New(),
			AccountID:     accountID,
			Amount:        decimal.NewFromInt(int64(i + 1)),
			Type:          domain.EntryTypeCredit,
		}))
	}

	entries, err := repo.FindEntriesByAccount(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, entries, 10)

	for i, entry := range entries {
		assert.Equal(t, fmt.Sprintf("entry-%d", i), entry.ID)
	}

	// Unknown account: empty, no error.
	entries, err = repo.FindEntriesByAccount(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWalletRepositoryProcessedSet(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewWalletRepository()

	transactionID := uuid.New()

	processed, err := repo.IsTransactionProcessed(ctx, transactionID)
	require.NoError(t, err)
	assert.False(t, processed)

	require.NoError(t, repo.MarkTransactionProcessed(ctx, transactionID))

	processed, err = repo.IsTransactionProcessed(ctx, transactionID)
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestWalletRepositoryConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewWalletRepository()

	const accounts = 8
	const perAccount = 50

	ids := make([]uuid.UUID, accounts)
	for i := range ids {
		ids[i] = uuid.New()
	}

	var wg sync.WaitGroup
	wg.Add(accounts)

	for _, id := range ids {
		go func() {
			defer wg.Done()

			for i := range perAccount {
				if err := repo.SaveEntry(ctx, &domain.Entry{
					ID:            fmt.Sprintf("%s-%d", id, i),
					TransactionID: uuid.New(),
					AccountID:     id,
					Amount:        decimal.NewFromInt(1),
					Type:          domain.EntryTypeCredit,
				}); err != nil {
					t.Errorf("save entry: %v", err)
				}
			}
		}()
	}

	wg.Wait()

	for _, id := range ids {
		entries, err := repo.FindEntriesByAccount(ctx, id)
		require.NoError(t, err)
		assert.Len(t, entries, perAccount)

		// Per-account insertion order survives concurrent appends to
		// other accounts.
		for i, entry := range entries {
			assert.Equal(t, fmt.Sprintf("%s-%d", id, i), entry.ID)
		}
	}
}
