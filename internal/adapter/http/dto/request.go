package dto

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
)

// TransferRequest represents a request to execute a transfer.
type TransferRequest struct {
	TransactionID        string          `json:"transaction_id"`
	SourceAccountID      string          `json:"source_account_id"`
	DestinationAccountID string          `json:"destination_account_id"`
	Amount               decimal.Decimal `json:"amount"`
}

// ToDomain validates identifier syntax and converts to the domain
// request. Semantic validation (funds, existence) belongs to the engine.
func (r *TransferRequest) ToDomain() (domain.TransferRequest, error) {
	transactionID, err := uuid.Parse(r.TransactionID)
	if err != nil {
		return domain.TransferRequest{}, fmt.Errorf("invalid transaction_id: %w", err)
	}

	sourceID, err := uuid.Parse(r.SourceAccountID)
	if err != nil {
		return domain.TransferRequest{}, fmt.Errorf("invalid source_account_id: %w", err)
	}

	destinationID, err := uuid.Parse(r.DestinationAccountID)
	if err != nil {
		return domain.TransferRequest{}, fmt.Errorf("invalid destination_account_id: %w", err)
	}

	return domain.TransferRequest{
		TransactionID:        transactionID,
		SourceAccountID:      sourceID,
		DestinationAccountID: destinationID,
		Amount:               r.Amount,
	}, nil
}
