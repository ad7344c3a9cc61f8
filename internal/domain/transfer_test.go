package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
)

func TestTransferRequestValidate(t *testing.T) {
	source := uuid.New()
	destination := uuid.New()

	tests := []struct {
		name    string
		request domain.TransferRequest
		wantErr error
	}{
		{
			name: "valid request",
			request: domain.TransferRequest{
				TransactionID:        uuid.New(),
				SourceAccountID:      source,
				DestinationAccountID: destination,
				Amount:               decimal.RequireFromString("30.00"),
			},
			wantErr: nil,
		},
		{
			name: "zero amount",
			request: domain.TransferRequest{
				TransactionID:        uuid.New(),
				SourceAccountID:      source,
				DestinationAccountID: destination,
				Amount:               decimal.Zero,
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "negative amount",
			request: domain.TransferRequest{
				TransactionID:        uuid.New(),
				SourceAccountID:      source,
				DestinationAccountID: destination,
				Amount:               decimal.RequireFromString("-5"),
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "same account",
			request: domain.TransferRequest{
				TransactionID:        uuid.New(),
				SourceAccountID:      source,
				DestinationAccountID: source,
				Amount:               decimal.RequireFromString("10"),
			},
			wantErr: domain.ErrSameAccount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if err != tt.wantErr {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestEntrySigned(t *testing.T) {
	amount := decimal.RequireFromString("42.50")

	credit := domain.Entry{Type: domain.EntryTypeCredit, Amount: amount}
	if !credit.Signed().Equal(amount) {
		t.Errorf("expected credit to contribute +%s, got %s", amount, credit.Signed())
	}

	debit := domain.Entry{Type: domain.EntryTypeDebit, Amount: amount}
	if !debit.Signed().Equal(amount.Neg()) {
		t.Errorf("expected debit to contribute -%s, got %s", amount, debit.Signed())
	}
}
