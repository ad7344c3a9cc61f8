package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID.String(),
		CreatedAt: a.CreatedAt,
	}
}

// BalanceResponse represents a derived account balance.
type BalanceResponse struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

// TransferResponse acknowledges a committed (or replayed) transfer.
type TransferResponse struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID             string          `json:"id"`
	TransactionID  string          `json:"transaction_id"`
	AccountID      string          `json:"account_id"`
	CounterpartyID string          `json:"counterparty_id"`
	Amount         decimal.Decimal `json:"amount"`
	Type           string          `json:"type"`
	CreatedAt      time.Time       `json:"created_at"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:             e.ID,
		TransactionID:  e.TransactionID.String(),
		AccountID:      e.AccountID.String(),
		CounterpartyID: e.CounterpartyID.String(),
		Amount:         e.Amount,
		Type:           string(e.Type),
		CreatedAt:      e.CreatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// ConsistencyResponse reports the outcome of a ledger audit.
type ConsistencyResponse struct {
	Consistent bool   `json:"consistent"`
	Detail     string `json:"detail,omitempty"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
