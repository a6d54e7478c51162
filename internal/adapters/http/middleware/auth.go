package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/hyeonlog/taskhub/internal/adapters/http/dto"
	"github.com/hyeonlog/taskhub/internal/domain"
	"github.com/hyeonlog/taskhub/internal/domain/user"
	"github.com/hyeonlog/taskhub/internal/ports"
)

const bearerPrefix = "Bearer "

// authUserKey is the context key for the authenticated caller identity.
type authUserKey struct{}

// WithAuthUser returns a new context carrying the authenticated identity.
func WithAuthUser(ctx context.Context, u user.AuthUser) context.Context {
	return context.WithValue(ctx, authUserKey{}, u)
}

// AuthUserFromContext extracts the authenticated identity from the context.
// The second return is false when the request passed no authentication
// middleware.
func AuthUserFromContext(ctx context.Context) (user.AuthUser, bool) {
	u, ok := ctx.Value(authUserKey{}).(user.AuthUser)
	return u, ok
}

// Authenticate returns middleware that verifies the Authorization bearer
// token and stores the caller identity in the request context. Requests
// without a valid token are rejected with 401 before reaching the handler.
func Authenticate(tokens ports.TokenCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				dto.WriteErrorResponse(w, r,
					fmt.Errorf("missing bearer token: %w", domain.ErrUnauthenticated))
				return
			}

			auth, err := tokens.ParseToken(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAuthUser(r.Context(), auth)))
		})
	}
}

// RequireRole returns middleware that rejects authenticated callers whose
// global role differs from the required one. It must run after Authenticate.
func RequireRole(role user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth, ok := AuthUserFromContext(r.Context())
			if !ok {
				dto.WriteErrorResponse(w, r,
					fmt.Errorf("no authenticated caller: %w", domain.ErrUnauthenticated))
				return
			}
			if auth.Role != role {
				dto.WriteErrorResponse(w, r,
					fmt.Errorf("requires %s role: %w", role, domain.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
