package todo

import "github.com/hyeonlog/taskhub/internal/domain/user"

// Manager designates a user as collaborator on a specific todo.
//
// The same (todo, user) pair may appear more than once: assigning a manager
// is not idempotent and no uniqueness constraint is enforced, so repeated
// assignments create distinct Manager records.
type Manager struct {
	ID   int64
	Todo Todo
	User user.User
}
