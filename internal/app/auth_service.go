package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hyeonlog/taskhub/internal/domain"
	"github.com/hyeonlog/taskhub/internal/domain/user"
	"github.com/hyeonlog/taskhub/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

// AuthService implements ports.AuthService.
type AuthService struct {
	users  ports.UserStore
	hasher ports.PasswordHasher
	tokens ports.TokenCodec
	logger *slog.Logger
}

// NewAuthService creates an AuthService backed by the given store, hasher,
// and token codec.
func NewAuthService(users ports.UserStore, hasher ports.PasswordHasher, tokens ports.TokenCodec, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Signup registers a new account and returns a signed bearer token.
func (s *AuthService) Signup(ctx context.Context, email, password string, role user.Role) (string, error) {
	s.logger.InfoContext(ctx, "registering account", slog.String("role", role.String()))

	if email == "" {
		return "", &domain.ValidationError{Fields: map[string]string{"email": domain.MsgRequired}}
	}
	if err := user.ValidatePassword(password); err != nil {
		return "", err
	}
	if !role.IsValid() {
		return "", &domain.ValidationError{Fields: map[string]string{"role": "must be USER or ADMIN"}}
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check email",
			slog.String("operation", "Signup"),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("checking email: %w", err)
	}
	if exists {
		return "", fmt.Errorf("email already registered: %w", domain.ErrConflict)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password",
			slog.String("operation", "Signup"),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("hashing password: %w", err)
	}

	u := &user.User{
		Email:    email,
		Password: hash,
		Role:     role,
	}
	if err := s.users.Save(ctx, u); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist user",
			slog.String("operation", "Signup"),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("saving user: %w", err)
	}

	token, err := s.tokens.CreateToken(u)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to sign token",
			slog.String("operation", "Signup"),
			slog.Int64("user_id", u.ID),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("signing token: %w", err)
	}

	s.logger.InfoContext(ctx, "account registered", slog.Int64("user_id", u.ID))
	return token, nil
}

// Signin verifies the credential and returns a signed bearer token.
func (s *AuthService) Signin(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve account",
			slog.String("operation", "Signin"),
			slog.Any("error", err),
		)
		return "", err
	}

	if !s.hasher.Compare(u.Password, password) {
		return "", fmt.Errorf("wrong password: %w", domain.ErrUnauthenticated)
	}

	token, err := s.tokens.CreateToken(u)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to sign token",
			slog.String("operation", "Signin"),
			slog.Int64("user_id", u.ID),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("signing token: %w", err)
	}

	s.logger.InfoContext(ctx, "signed in", slog.Int64("user_id", u.ID))
	return token, nil
}
