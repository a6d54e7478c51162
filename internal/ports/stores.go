package ports

import (
	"context"

	"github.com/hyeonlog/taskhub/internal/domain/todo"
	"github.com/hyeonlog/taskhub/internal/domain/user"
)

// Store ports are implemented by the storage adapter. Lookups return
// domain.ErrNotFound (wrapped with the entity name) for missing rows rather
// than a driver error; Save assigns the id on first persist. The core never
// caches entities across operations — every operation re-resolves the rows
// it reasons about.

// UserStore persists and resolves user accounts.
type UserStore interface {
	// FindByID returns the user or domain.ErrNotFound.
	FindByID(ctx context.Context, id int64) (*user.User, error)

	// FindByEmail returns the user or domain.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*user.User, error)

	// ExistsByEmail reports whether an account with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save persists the user, assigning ID on first save.
	Save(ctx context.Context, u *user.User) error
}

// TodoStore persists and resolves todos with their owners.
type TodoStore interface {
	// FindByID returns the todo with its owner populated, or
	// domain.ErrNotFound.
	FindByID(ctx context.Context, id int64) (*todo.Todo, error)

	// FindAll returns a page of todos with owners populated, newest
	// first. Page numbering starts at 1.
	FindAll(ctx context.Context, page, size int) ([]todo.Todo, error)

	// Save persists the todo, assigning ID on first save.
	Save(ctx context.Context, t *todo.Todo) error
}

// ManagerStore persists and resolves manager assignments.
type ManagerStore interface {
	// FindByID returns the manager with its todo reference populated, or
	// domain.ErrNotFound.
	FindByID(ctx context.Context, id int64) (*todo.Manager, error)

	// FindByTodoIDWithUser returns all managers on the todo with their
	// users populated in one batched query. An empty slice means the todo
	// has no managers.
	FindByTodoIDWithUser(ctx context.Context, todoID int64) ([]todo.Manager, error)

	// Save persists the manager, assigning ID on first save. Duplicate
	// (todo, user) pairs are permitted.
	Save(ctx context.Context, m *todo.Manager) error

	// Delete removes the manager record.
	Delete(ctx context.Context, m *todo.Manager) error
}

// CommentStore persists and resolves comments.
type CommentStore interface {
	// FindByTodoIDWithUser returns all comments on the todo with their
	// authors populated in one batched query.
	FindByTodoIDWithUser(ctx context.Context, todoID int64) ([]todo.Comment, error)

	// Save persists the comment, assigning ID on first save.
	Save(ctx context.Context, c *todo.Comment) error
}
