package ports

import (
	"context"

	"github.com/hyeonlog/taskhub/internal/domain/user"
)

// WeatherClient defines the client port for the downstream weather API.
// Implemented by the weather adapter; called by the todo service when a
// todo is created.
type WeatherClient interface {
	// TodayWeather returns today's weather description.
	// Returns domain.ErrUnavailable when the downstream API fails or has
	// no entry for today's date.
	TodayWeather(ctx context.Context) (string, error)
}

// PasswordHasher hashes and verifies account credentials. Implemented by
// the platform auth layer.
type PasswordHasher interface {
	// Hash returns a one-way hash of the password suitable for storage.
	Hash(password string) (string, error)

	// Compare reports whether the password matches the stored hash.
	Compare(hash, password string) bool
}

// TokenCodec issues and verifies the bearer tokens that carry the caller's
// identity between requests. Implemented by the platform auth layer.
type TokenCodec interface {
	// CreateToken signs a token carrying the user's id, email, and role.
	CreateToken(u *user.User) (string, error)

	// ParseToken verifies the signature and expiry and returns the caller
	// identity. Returns domain.ErrUnauthenticated for invalid tokens.
	ParseToken(token string) (user.AuthUser, error)
}
