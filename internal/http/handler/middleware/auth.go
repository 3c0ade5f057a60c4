package middleware

import (
	"context"
	"net/http"
	"strings"

	"paysched/internal/core"

	"go.uber.org/zap"
)

const (
	IdentityKey   ctxKey = "identity"
	SessionCookie        = "sid"
)

type authMiddleware struct {
	logs     *zap.SugaredLogger
	provider IdentityProvider
}

func NewAuthMiddleware(logger *zap.SugaredLogger, provider IdentityProvider) *authMiddleware {
	return &authMiddleware{
		logs:     logger,
		provider: provider,
	}
}

// Authenticate attaches the caller's identity from a bearer token, falling
// back to the session cookie. Requests without valid credentials pass through
// anonymously; handlers decide whether that is allowed.
func (m *authMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if token, ok := bearerToken(r); ok {
			id, err := m.provider.IdentityFromToken(ctx, token)
			if err == nil {
				next.ServeHTTP(w, r.WithContext(WithIdentity(ctx, id)))
				return
			}
			m.logs.Infow("bearer token rejected", "error", err, "request_id", RequestIDFrom(ctx))
		}

		if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
			id, err := m.provider.IdentityFromSession(ctx, cookie.Value)
			if err == nil {
				next.ServeHTTP(w, r.WithContext(WithIdentity(ctx, id)))
				return
			}
			m.logs.Infow("session rejected", "error", err, "request_id", RequestIDFrom(ctx))
		}

		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	return token, found && token != ""
}

func WithIdentity(ctx context.Context, id core.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, id)
}

func IdentityFrom(ctx context.Context) (core.Identity, bool) {
	id, ok := ctx.Value(IdentityKey).(core.Identity)
	return id, ok
}
