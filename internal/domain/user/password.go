package user

import (
	"unicode"

	"github.com/hyeonlog/taskhub/internal/domain"
)

const minPasswordLength = 8

// ValidatePassword checks the password policy: at least eight characters,
// with at least one digit and one uppercase letter.
func ValidatePassword(password string) error {
	var hasDigit, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}

	if len(password) < minPasswordLength || !hasDigit || !hasUpper {
		return &domain.ValidationError{
			Fields: map[string]string{
				"password": "must be at least 8 characters and contain a digit and an uppercase letter",
			},
		}
	}
	return nil
}
