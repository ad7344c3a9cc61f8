package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType is the side of a double-entry pair.
type EntryType string

const (
	EntryTypeDebit  EntryType = "DEBIT"
	EntryTypeCredit EntryType = "CREDIT"
)

// Entry represents a single immutable ledger entry. Every committed
// transfer produces exactly two entries sharing TransactionID, Amount and
// CreatedAt: a DEBIT on the source account and a CREDIT on the
// destination, each naming the other side as counterparty.
type Entry struct {
	CreatedAt      time.Time
	ID             string
	TransactionID  uuid.UUID
	AccountID      uuid.UUID
	CounterpartyID uuid.UUID
	Amount         decimal.Decimal
	Type           EntryType
}

// Signed returns the entry amount as it contributes to the account
// balance: CREDIT adds, DEBIT subtracts.
func (e *Entry) Signed() decimal.Decimal {
	if e.Type == EntryTypeDebit {
		return e.Amount.Neg()
	}

	return e.Amount
}
