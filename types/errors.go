package types

import "errors"

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrDuplicateKey  = errors.New("duplicate entry")
)
