package ethereum

import "errors"

var (
	ErrMalformedSignature  = errors.New("malformed signature")
	ErrChainCallFailed     = errors.New("chain call failed")
	ErrEventNotFound       = errors.New("expected contract event not found in receipt")
	ErrConfirmationTimeout = errors.New("timed out waiting for confirmation")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrUnknownAccount      = errors.New("account is not managed by the node")
)
