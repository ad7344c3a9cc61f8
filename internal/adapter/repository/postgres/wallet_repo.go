package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
)

// WalletRepository implements usecase.WalletRepository on PostgreSQL.
// Entries are stored append-only with a bigserial sequence column, which
// preserves per-account insertion order without any cross-account
// coordination. The repository performs no locking of its own; the
// transfer engine serializes writes per account pair.
type WalletRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewWalletRepository creates a new WalletRepository.
func NewWalletRepository(pool *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{
		pool:    pool,
		retrier: NewRetrier(),
	}
}

// FindAccount retrieves an account by ID.
func (r *WalletRepository) FindAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var account domain.Account
	var createdAt pgtype.Timestamptz

	err := r.pool.QueryRow(ctx,
		`SELECT id, created_at FROM accounts WHERE id = $1`,
		id,
	).Scan(&account.ID, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	account.CreatedAt = createdAt.Time

	return &account, nil
}

// SaveAccount inserts or replaces an account by id.
func (r *WalletRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO accounts (id, created_at)
			 VALUES ($1, $2)
			 ON CONFLICT (id) DO UPDATE SET created_at = EXCLUDED.created_at`,
			account.ID, timeToPgTimestamptz(account.CreatedAt),
		)

		return err
	})
}

// SaveEntry appends an entry to the account's log.
func (r *WalletRepository) SaveEntry(ctx context.Context, entry *domain.Entry) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO entries (id, transaction_id, account_id, counterparty_id, amount, entry_type, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			entry.ID, entry.TransactionID, entry.AccountID, entry.CounterpartyID,
			decimalToNumeric(entry.Amount), string(entry.Type), timeToPgTimestamptz(entry.CreatedAt),
		)

		return err
	})
}

// FindEntriesByAccount retrieves the account's entries in insertion
// order.
func (r *WalletRepository) FindEntriesByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.Entry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, transaction_id, account_id, counterparty_id, amount, entry_type, created_at
		 FROM entries
		 WHERE account_id = $1
		 ORDER BY seq`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.Entry, 0)

	for rows.Next() {
		var entry domain.Entry
		var amount pgtype.Numeric
		var entryType string
		var createdAt pgtype.Timestamptz

		err := rows.Scan(&entry.ID, &entry.TransactionID, &entry.AccountID,
			&entry.CounterpartyID, &amount, &entryType, &createdAt)
		if err != nil {
			return nil, err
		}

		entry.Amount = numericToDecimal(amount)
		entry.Type = domain.EntryType(entryType)
		entry.CreatedAt = createdAt.Time

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// FindAccounts retrieves every account.
func (r *WalletRepository) FindAccounts(ctx context.Context) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, created_at FROM accounts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)

	for rows.Next() {
		var account domain.Account
		var createdAt pgtype.Timestamptz

		if err := rows.Scan(&account.ID, &createdAt); err != nil {
			return nil, err
		}

		account.CreatedAt = createdAt.Time
		accounts = append(accounts, &account)
	}

	return accounts, rows.Err()
}

// MarkTransactionProcessed records the transaction id in the processed
// set. Re-marking an already processed transaction is a no-op.
func (r *WalletRepository) MarkTransactionProcessed(ctx context.Context, transactionID uuid.UUID) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO processed_transactions (transaction_id, processed_at)
			 VALUES ($1, $2)
			 ON CONFLICT (transaction_id) DO NOTHING`,
			transactionID, timeToPgTimestamptz(time.Now().UTC()),
		)

		return err
	})
}

// IsTransactionProcessed reports whether the transaction already
// completed.
func (r *WalletRepository) IsTransactionProcessed(ctx context.Context, transactionID uuid.UUID) (bool, error) {
	var exists bool

	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM processed_transactions WHERE transaction_id = $1)`,
		transactionID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
