// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hyeonlog/taskhub/internal/domain"
	"github.com/hyeonlog/taskhub/internal/domain/todo"
	"github.com/hyeonlog/taskhub/internal/domain/user"
	"github.com/hyeonlog/taskhub/internal/ports"
)

// Compile-time check that ManagerService implements ports.ManagerService.
var _ ports.ManagerService = (*ManagerService)(nil)

// ManagerService implements ports.ManagerService. Each operation follows the
// same shape: resolve the entities it reasons about through the stores,
// apply the ownership policy on the loaded state, then write. No entity is
// re-read after a decision, and a failure before the final write leaves no
// write performed.
type ManagerService struct {
	todos    ports.TodoStore
	users    ports.UserStore
	managers ports.ManagerStore
	logger   *slog.Logger
}

// NewManagerService creates a ManagerService backed by the given stores.
func NewManagerService(todos ports.TodoStore, users ports.UserStore, managers ports.ManagerStore, logger *slog.Logger) *ManagerService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ManagerService{
		todos:    todos,
		users:    users,
		managers: managers,
		logger:   logger,
	}
}

// SaveManager assigns the user identified by managerUserID as a manager on
// the todo. Only the todo's creator may assign; the check compares the
// caller's id against the loaded todo's owner, never the caller's role.
func (s *ManagerService) SaveManager(ctx context.Context, auth user.AuthUser, todoID, managerUserID int64) (*todo.Manager, error) {
	s.logger.InfoContext(ctx, "assigning manager",
		slog.Int64("todo_id", todoID),
		slog.Int64("manager_user_id", managerUserID),
	)

	td, err := s.todos.FindByID(ctx, todoID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load todo",
			slog.String("operation", "SaveManager"),
			slog.Int64("todo_id", todoID),
			slog.Any("error", err),
		)
		return nil, err
	}

	// A persisted todo without an owner is corrupt data, not an
	// authorization failure. Guard before the ownership check so the two
	// conditions surface as distinct error kinds.
	if td.Owner == nil {
		return nil, fmt.Errorf("todo %d has no owner: %w", todoID, domain.ErrInvalidState)
	}

	if !todo.CanAssignManager(td, auth.ID) {
		return nil, fmt.Errorf("user %d is not the creator of todo %d: %w", auth.ID, todoID, domain.ErrForbidden)
	}

	candidate, err := s.users.FindByID(ctx, managerUserID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load manager candidate",
			slog.String("operation", "SaveManager"),
			slog.Int64("manager_user_id", managerUserID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("manager candidate: %w", err)
	}

	m := &todo.Manager{
		Todo: *td,
		User: *candidate,
	}
	if err := s.managers.Save(ctx, m); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist manager",
			slog.String("operation", "SaveManager"),
			slog.Int64("todo_id", todoID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("saving manager: %w", err)
	}

	return m, nil
}

// GetManagers returns all managers on the todo with their users populated.
// Managers and users are fetched in one batched read; a todo without
// managers yields an empty slice.
func (s *ManagerService) GetManagers(ctx context.Context, todoID int64) ([]todo.Manager, error) {
	s.logger.InfoContext(ctx, "listing managers", slog.Int64("todo_id", todoID))

	if _, err := s.todos.FindByID(ctx, todoID); err != nil {
		s.logger.ErrorContext(ctx, "failed to load todo",
			slog.String("operation", "GetManagers"),
			slog.Int64("todo_id", todoID),
			slog.Any("error", err),
		)
		return nil, err
	}

	managers, err := s.managers.FindByTodoIDWithUser(ctx, todoID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list managers",
			slog.String("operation", "GetManagers"),
			slog.Int64("todo_id", todoID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing managers: %w", err)
	}

	return managers, nil
}

// DeleteManager removes a manager from the todo. The caller is identified by
// id and re-resolved through the store; the ownership rule is the same as
// for assignment. The manager must be registered on the given todo.
func (s *ManagerService) DeleteManager(ctx context.Context, userID, todoID, managerID int64) error {
	s.logger.InfoContext(ctx, "removing manager",
		slog.Int64("todo_id", todoID),
		slog.Int64("manager_id", managerID),
	)

	caller, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load caller",
			slog.String("operation", "DeleteManager"),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		return err
	}

	td, err := s.todos.FindByID(ctx, todoID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load todo",
			slog.String("operation", "DeleteManager"),
			slog.Int64("todo_id", todoID),
			slog.Any("error", err),
		)
		return err
	}

	// CanRemoveManager covers both the missing-owner and the wrong-caller
	// case; removal phrases them as a single creator-privilege failure.
	if !todo.CanRemoveManager(td, caller.ID) {
		return fmt.Errorf("user %d is not the creator of todo %d: %w", caller.ID, todoID, domain.ErrForbidden)
	}

	m, err := s.managers.FindByID(ctx, managerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load manager",
			slog.String("operation", "DeleteManager"),
			slog.Int64("manager_id", managerID),
			slog.Any("error", err),
		)
		return err
	}

	if !todo.BelongsTo(m, td.ID) {
		return fmt.Errorf("manager %d is not registered on todo %d: %w", managerID, todoID, domain.ErrInvalidRelation)
	}

	if err := s.managers.Delete(ctx, m); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete manager",
			slog.String("operation", "DeleteManager"),
			slog.Int64("manager_id", managerID),
			slog.Any("error", err),
		)
		return fmt.Errorf("deleting manager: %w", err)
	}

	return nil
}
