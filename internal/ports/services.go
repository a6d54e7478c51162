package ports

import (
	"context"

	"github.com/hyeonlog/taskhub/internal/domain/todo"
	"github.com/hyeonlog/taskhub/internal/domain/user"
)

// ManagerService defines the service port for manager assignment on todos.
// Implemented by the application layer; called by inbound adapters (handlers).
//
// All three operations enforce the ownership policy: only the todo's creator
// may assign or remove managers, regardless of global role.
type ManagerService interface {
	// SaveManager assigns the user identified by managerUserID as a manager
	// on the todo. The returned manager has its User populated.
	// Returns domain.ErrNotFound if the todo or the candidate user does
	// not exist, domain.ErrInvalidState if the todo has no owner, and
	// domain.ErrForbidden if auth is not the todo's creator.
	//
	// Not idempotent: repeated calls with identical arguments create
	// distinct manager records.
	SaveManager(ctx context.Context, auth user.AuthUser, todoID, managerUserID int64) (*todo.Manager, error)

	// GetManagers returns all managers assigned to the todo, each with its
	// User populated, in a single batched read. An empty slice is a valid
	// result, not an error.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetManagers(ctx context.Context, todoID int64) ([]todo.Manager, error)

	// DeleteManager removes the manager record from the todo on behalf of
	// the user identified by userID.
	// Returns domain.ErrNotFound if the user, todo, or manager does not
	// exist, domain.ErrForbidden if the user is not the todo's creator,
	// and domain.ErrInvalidRelation if the manager is not registered on
	// the given todo.
	DeleteManager(ctx context.Context, userID, todoID, managerID int64) error
}

// CommentService defines the service port for comments on todos.
type CommentService interface {
	// SaveComment posts a comment on the todo authored by the calling user.
	// The author is derived from auth without a store lookup. Empty
	// contents are persisted as given; validation belongs to the request
	// layer. Returns domain.ErrNotFound if the todo does not exist.
	SaveComment(ctx context.Context, auth user.AuthUser, todoID int64, contents string) (*todo.Comment, error)

	// GetComments returns all comments on the todo, each with its author
	// populated. Returns domain.ErrNotFound if the todo does not exist.
	GetComments(ctx context.Context, todoID int64) ([]todo.Comment, error)
}

// TodoService defines the service port for todo CRUD operations.
type TodoService interface {
	// SaveTodo creates a todo owned by the calling user. Today's weather
	// is fetched from the weather client and stored on the record.
	// Returns domain.ErrValidation if the todo fails validation and
	// domain.ErrUnavailable if the weather lookup fails.
	SaveTodo(ctx context.Context, auth user.AuthUser, title, contents string) (*todo.Todo, error)

	// GetTodo returns a single todo by id with its owner populated.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, todoID int64) (*todo.Todo, error)

	// GetTodos returns a page of todos, newest first. Page numbering
	// starts at 1; non-positive page or size fall back to defaults.
	GetTodos(ctx context.Context, page, size int) ([]todo.Todo, error)
}

// AuthService defines the service port for signup and signin.
type AuthService interface {
	// Signup registers a new account and returns a signed bearer token.
	// Returns domain.ErrConflict if the email is already registered.
	Signup(ctx context.Context, email, password string, role user.Role) (string, error)

	// Signin verifies the credential and returns a signed bearer token.
	// Returns domain.ErrNotFound for an unregistered email and
	// domain.ErrUnauthenticated for a wrong password.
	Signin(ctx context.Context, email, password string) (string, error)
}

// UserService defines the service port for account operations.
type UserService interface {
	// GetUser returns the account identified by userID.
	// Returns domain.ErrNotFound if it does not exist.
	GetUser(ctx context.Context, userID int64) (*user.User, error)

	// ChangePassword replaces the account's credential after verifying
	// the old password. Returns domain.ErrValidation if the new password
	// violates the password policy or equals the old one, and
	// domain.ErrUnauthenticated if the old password is wrong.
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error

	// ChangeUserRole sets the account's global role. Restricted to admin
	// callers by the inbound adapter.
	// Returns domain.ErrNotFound if the account does not exist.
	ChangeUserRole(ctx context.Context, userID int64, role user.Role) error
}
