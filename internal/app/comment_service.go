package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hyeonlog/taskhub/internal/domain/todo"
	"github.com/hyeonlog/taskhub/internal/domain/user"
	"github.com/hyeonlog/taskhub/internal/ports"
)

// Compile-time check that CommentService implements ports.CommentService.
var _ ports.CommentService = (*CommentService)(nil)

// CommentService implements ports.CommentService.
type CommentService struct {
	todos    ports.TodoStore
	comments ports.CommentStore
	logger   *slog.Logger
}

// NewCommentService creates a CommentService backed by the given stores.
func NewCommentService(todos ports.TodoStore, comments ports.CommentStore, logger *slog.Logger) *CommentService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CommentService{
		todos:    todos,
		comments: comments,
		logger:   logger,
	}
}

// SaveComment posts a comment on the todo. The author is derived from the
// authenticated identity without a store lookup. Contents are persisted as
// given — an empty string is a valid comment at this layer.
func (s *CommentService) SaveComment(ctx context.Context, auth user.AuthUser, todoID int64, contents string) (*todo.Comment, error) {
	s.logger.InfoContext(ctx, "posting comment", slog.Int64("todo_id", todoID))

	td, err := s.todos.FindByID(ctx, todoID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load todo",
			slog.String("operation", "SaveComment"),
			slog.Int64("todo_id", todoID),
			slog.Any("error", err),
		)
		return nil, err
	}

	c := &todo.Comment{
		Contents: contents,
		User:     user.FromAuthUser(auth),
		Todo:     *td,
	}
	if err := s.comments.Save(ctx, c); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist comment",
			slog.String("operation", "SaveComment"),
			slog.Int64("todo_id", todoID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("saving comment: %w", err)
	}

	return c, nil
}

// GetComments returns all comments on the todo with their authors populated.
func (s *CommentService) GetComments(ctx context.Context, todoID int64) ([]todo.Comment, error) {
	s.logger.InfoContext(ctx, "listing comments", slog.Int64("todo_id", todoID))

	if _, err := s.todos.FindByID(ctx, todoID); err != nil {
		s.logger.ErrorContext(ctx, "failed to load todo",
			slog.String("operation", "GetComments"),
			slog.Int64("todo_id", todoID),
			slog.Any("error", err),
		)
		return nil, err
	}

	comments, err := s.comments.FindByTodoIDWithUser(ctx, todoID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list comments",
			slog.String("operation", "GetComments"),
			slog.Int64("todo_id", todoID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	return comments, nil
}
