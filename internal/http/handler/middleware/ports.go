package middleware

import (
	"context"

	"paysched/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name IdentityProvider . IdentityProvider
type IdentityProvider interface {
	IdentityFromToken(ctx context.Context, token string) (core.Identity, error)
	IdentityFromSession(ctx context.Context, sessionID string) (core.Identity, error)
}
