package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestTransferRequestToDomain(t *testing.T) {
	transactionID := uuid.New()
	source := uuid.New()
	destination := uuid.New()

	req := TransferRequest{
		TransactionID:        transactionID.String(),
		SourceAccountID:      source.String(),
		DestinationAccountID: destination.String(),
		Amount:               decimal.RequireFromString("12.34"),
	}

	domainReq, err := req.ToDomain()
	require.NoError(t, err)
	require.Equal(t, transactionID, domainReq.TransactionID)
	require.Equal(t, source, domainReq.SourceAccountID)
	require.Equal(t, destination, domainReq.DestinationAccountID)
	require.True(t, domainReq.Amount.Equal(decimal.RequireFromString("12.34")))
}

func TestTransferRequestToDomainRejectsMalformedIDs(t *testing.T) {
	valid := uuid.New().String()

	tests := []struct {
		name    string
		request TransferRequest
	}{
		{"bad transaction id", TransferRequest{TransactionID: "x", SourceAccountID: valid, DestinationAccountID: valid}},
		{"bad source id", TransferRequest{TransactionID: valid, SourceAccountID: "x", DestinationAccountID: valid}},
		{"bad destination id", TransferRequest{TransactionID: valid, SourceAccountID: valid, DestinationAccountID: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.request.ToDomain()
			require.Error(t, err)
		})
	}
}
