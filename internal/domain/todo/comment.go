package todo

import (
	"time"

	"github.com/hyeonlog/taskhub/internal/domain/user"
)

// Comment is a remark posted on a todo by a user. Comments are immutable
// once persisted. Empty contents are accepted at this layer; any non-empty
// requirement belongs to the request-shape layer.
type Comment struct {
	ID        int64
	Contents  string
	User      user.User
	Todo      Todo
	CreatedAt time.Time
}
