package model

import "errors"

var (
	ErrNonPositiveAmount  = errors.New("amount must be greater than zero")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrSameAccount        = errors.New("cannot transfer to the same account")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid user ID or PIN")
	ErrUnknownKind        = errors.New("unknown transaction kind")
)
