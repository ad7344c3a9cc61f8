package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gowallet/internal/adapter/repository/postgres"
	"github.com/iho/gowallet/internal/domain"
)

// newTestPool connects to the database named by TEST_DATABASE_URL. The
// schema from migrations/ must already be applied.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping postgres tests")
	}

	pool, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func TestWalletRepositoryRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	pool := newTestPool(t)
	repo := postgres.NewWalletRepository(pool)

	accountID := uuid.New()
	counterpartyID := uuid.New()

	_, err := repo.FindAccount(ctx, accountID)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	require.NoError(t, repo.SaveAccount(ctx, domain.NewAccount(accountID, time.Now().UTC())))

	account, err := repo.FindAccount(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, accountID, account.ID)

	transactionID := uuid.New()
	entry := &domain.Entry{
		ID:             postgres.NewULIDGenerator().Generate(),
		TransactionID:  transactionID,
		AccountID:      accountID,
		CounterpartyID: counterpartyID,
		Amount:         decimal.RequireFromString("12.34"),
		Type:           domain.EntryTypeCredit,
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, repo.SaveEntry(ctx, entry))

	entries, err := repo.FindEntriesByAccount(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
	assert.True(t, entries[0].Amount.Equal(entry.Amount))
	assert.Equal(t, domain.EntryTypeCredit, entries[0].Type)

	processed, err := repo.IsTransactionProcessed(ctx, transactionID)
	require.NoError(t, err)
	assert.False(t, processed)

	require.NoError(t, repo.MarkTransactionProcessed(ctx, transactionID))
	// Re-marking is a no-op, not an error.
	require.NoError(t, repo.MarkTransactionProcessed(ctx, transactionID))

	processed, err = repo.IsTransactionProcessed(ctx, transactionID)
	require.NoError(t, err)
	assert.True(t, processed)
}
