// Package todo contains the todo aggregate: the Todo entity, its Manager
// and Comment relations, and the ownership policy that guards manager
// assignment and removal.
package todo

import (
	"strings"
	"time"

	"github.com/hyeonlog/taskhub/internal/domain"
	"github.com/hyeonlog/taskhub/internal/domain/user"
)

// Todo represents a task record with a single creator.
//
// Owner is set once at creation and never reassigned. A persisted todo
// whose owner is nil violates a core invariant; operations that reason
// about ownership reject such a todo with domain.ErrInvalidState rather
// than treating it as an authorization failure.
type Todo struct {
	ID        int64
	Title     string
	Contents  string
	Weather   string
	Owner     *user.User
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(t.Contents) == "" {
		fields["contents"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
