package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferRequest represents an instruction to move funds between two
// accounts. TransactionID doubles as the idempotency key: replaying a
// request with a TransactionID that already completed is a no-op success.
type TransferRequest struct {
	TransactionID        uuid.UUID
	SourceAccountID      uuid.UUID
	DestinationAccountID uuid.UUID
	Amount               decimal.Decimal
}

// Validate checks the request invariants that do not depend on ledger
// state.
func (r *TransferRequest) Validate() error {
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if r.SourceAccountID == r.DestinationAccountID {
		return ErrSameAccount
	}

	return nil
}
