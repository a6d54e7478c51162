package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hyeonlog/taskhub/internal/domain"
	"github.com/hyeonlog/taskhub/internal/domain/user"
	"github.com/hyeonlog/taskhub/internal/ports"
)

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService implements ports.UserService.
type UserService struct {
	users  ports.UserStore
	hasher ports.PasswordHasher
	logger *slog.Logger
}

// NewUserService creates a UserService backed by the given store and hasher.
func NewUserService(users ports.UserStore, hasher ports.PasswordHasher, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &UserService{
		users:  users,
		hasher: hasher,
		logger: logger,
	}
}

// GetUser returns the account identified by userID.
func (s *UserService) GetUser(ctx context.Context, userID int64) (*user.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load user",
			slog.String("operation", "GetUser"),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return u, nil
}

// ChangePassword replaces the account's credential. The policy check on the
// new password runs before any store access; reusing the current password is
// rejected, and the old password must verify against the stored hash.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	s.logger.InfoContext(ctx, "changing password", slog.Int64("user_id", userID))

	if err := user.ValidatePassword(newPassword); err != nil {
		return err
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load user",
			slog.String("operation", "ChangePassword"),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		return err
	}

	if s.hasher.Compare(u.Password, newPassword) {
		return &domain.ValidationError{
			Fields: map[string]string{"newPassword": "must differ from the current password"},
		}
	}
	if !s.hasher.Compare(u.Password, oldPassword) {
		return fmt.Errorf("wrong password: %w", domain.ErrUnauthenticated)
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password",
			slog.String("operation", "ChangePassword"),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		return fmt.Errorf("hashing password: %w", err)
	}

	u.Password = hash
	if err := s.users.Save(ctx, u); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist user",
			slog.String("operation", "ChangePassword"),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		return fmt.Errorf("saving user: %w", err)
	}

	return nil
}

// ChangeUserRole sets the account's global role. Role checks on the caller
// belong to the inbound adapter.
func (s *UserService) ChangeUserRole(ctx context.Context, userID int64, role user.Role) error {
	s.logger.InfoContext(ctx, "changing user role",
		slog.Int64("user_id", userID),
		slog.String("role", role.String()),
	)

	if !role.IsValid() {
		return &domain.ValidationError{Fields: map[string]string{"role": "must be USER or ADMIN"}}
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load user",
			slog.String("operation", "ChangeUserRole"),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		return err
	}

	u.Role = role
	if err := s.users.Save(ctx, u); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist user",
			slog.String("operation", "ChangeUserRole"),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		return fmt.Errorf("saving user: %w", err)
	}

	return nil
}
