package core

import (
	"errors"
	"fmt"

	"paysched/internal/ethereum"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrNotFound          = errors.New("not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidTransition = errors.New("transaction cannot change status")
)

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// asValidation tags chain input errors the caller can correct.
func asValidation(err error) error {
	if errors.Is(err, ethereum.ErrInvalidAddress) ||
		errors.Is(err, ethereum.ErrInvalidAmount) ||
		errors.Is(err, ethereum.ErrMalformedSignature) ||
		errors.Is(err, ethereum.ErrUnknownAccount) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return err
}
