package domain

import "errors"

var (
	// Transfer validation errors
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrSameAccount       = errors.New("cannot transfer to same account")
	ErrSourceNotFound    = errors.New("source account not found")
	ErrInsufficientFunds = errors.New("insufficient funds in source account")

	// Lookup errors
	ErrAccountNotFound = errors.New("account not found")
)
