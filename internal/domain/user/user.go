// Package user contains the user entity, roles, and the authenticated
// caller identity shared by all inbound operations.
package user

import (
	"fmt"
	"time"

	"github.com/hyeonlog/taskhub/internal/domain"
)

// Role is the global role of a user account.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// ParseRole converts a wire-format role string to a Role.
// Returns a validation error wrapping domain.ErrValidation for unknown values.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", &domain.ValidationError{
			Fields: map[string]string{"role": fmt.Sprintf("invalid: %q", s)},
		}
	}
	return r, nil
}

// User represents a registered account. Email is unique and immutable after
// signup. Password holds the bcrypt hash and is opaque to the domain.
type User struct {
	ID        int64
	Email     string
	Password  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuthUser is the verified identity of the current caller, established by
// the authentication layer before any core operation runs. It carries
// identity and role only; services that need the full account re-resolve
// it through the store.
type AuthUser struct {
	ID    int64
	Email string
	Role  Role
}

// FromAuthUser derives a User from an authenticated identity without a
// store lookup. The derived user carries no credential and no timestamps;
// it exists to own newly created todos and comments.
func FromAuthUser(a AuthUser) User {
	return User{
		ID:    a.ID,
		Email: a.Email,
		Role:  a.Role,
	}
}
