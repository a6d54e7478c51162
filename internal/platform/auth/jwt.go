// Package auth provides the token codec and password hasher behind the
// ports.TokenCodec and ports.PasswordHasher interfaces. Tokens are HS256
// JWTs carrying the account id as subject plus email and role claims.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hyeonlog/taskhub/internal/domain"
	"github.com/hyeonlog/taskhub/internal/domain/user"
	"github.com/hyeonlog/taskhub/internal/ports"
)

// Compile-time check that JWTCodec implements ports.TokenCodec.
var _ ports.TokenCodec = (*JWTCodec)(nil)

// Claims is the JWT claim set issued at signup and signin.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTCodec signs and verifies HS256 bearer tokens.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTCodec creates a codec signing with the given secret. Tokens expire
// after ttl.
func NewJWTCodec(secret string, ttl time.Duration) *JWTCodec {
	return &JWTCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// CreateToken signs a token carrying the user's id, email, and role.
func (c *JWTCodec) CreateToken(u *user.User) (string, error) {
	now := c.now()
	claims := Claims{
		Email: u.Email,
		Role:  u.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies the signature and expiry and returns the caller
// identity. Any verification failure maps to domain.ErrUnauthenticated; the
// caller cannot distinguish a forged token from an expired one.
func (c *JWTCodec) ParseToken(token string) (user.AuthUser, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return c.now() }))
	if err != nil {
		return user.AuthUser{}, fmt.Errorf("parsing token: %w", domain.ErrUnauthenticated)
	}
	if !parsed.Valid {
		return user.AuthUser{}, fmt.Errorf("invalid token: %w", domain.ErrUnauthenticated)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return user.AuthUser{}, fmt.Errorf("malformed subject claim: %w", domain.ErrUnauthenticated)
	}
	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return user.AuthUser{}, fmt.Errorf("malformed role claim: %w", domain.ErrUnauthenticated)
	}

	return user.AuthUser{
		ID:    id,
		Email: claims.Email,
		Role:  role,
	}, nil
}
