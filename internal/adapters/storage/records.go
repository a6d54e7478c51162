package storage

import (
	"time"

	"github.com/hyeonlog/taskhub/internal/domain/todo"
	"github.com/hyeonlog/taskhub/internal/domain/user"
)

type userRecord struct {
	ID        int64  `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	Role      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (userRecord) TableName() string { return "users" }

// todoRecord keeps UserID nullable on purpose: the ownership policy must be
// able to observe a persisted todo with no owner and report it as corrupt
// state instead of failing on a constraint.
type todoRecord struct {
	ID        int64 `gorm:"primaryKey"`
	Title     string
	Contents  string
	Weather   string
	UserID    *int64      `gorm:"index"`
	User      *userRecord `gorm:"foreignKey:UserID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (todoRecord) TableName() string { return "todos" }

// managerRecord has no uniqueness constraint on (todo_id, user_id):
// repeated assignment of the same user is a distinct row each time.
type managerRecord struct {
	ID        int64 `gorm:"primaryKey"`
	TodoID    int64 `gorm:"index;not null"`
	UserID    int64 `gorm:"index;not null"`
	Todo      todoRecord
	User      userRecord
	CreatedAt time.Time
}

func (managerRecord) TableName() string { return "managers" }

type commentRecord struct {
	ID        int64 `gorm:"primaryKey"`
	Contents  string
	TodoID    int64 `gorm:"index;not null"`
	UserID    int64 `gorm:"index;not null"`
	Todo      todoRecord
	User      userRecord
	CreatedAt time.Time
}

func (commentRecord) TableName() string { return "comments" }

func toUserRecord(u *user.User) userRecord {
	return userRecord{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.Password,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func fromUserRecord(r *userRecord) user.User {
	return user.User{
		ID:        r.ID,
		Email:     r.Email,
		Password:  r.Password,
		Role:      user.Role(r.Role),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toTodoRecord(t *todo.Todo) todoRecord {
	r := todoRecord{
		ID:        t.ID,
		Title:     t.Title,
		Contents:  t.Contents,
		Weather:   t.Weather,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.Owner != nil {
		id := t.Owner.ID
		r.UserID = &id
	}
	return r
}

func fromTodoRecord(r *todoRecord) todo.Todo {
	t := todo.Todo{
		ID:        r.ID,
		Title:     r.Title,
		Contents:  r.Contents,
		Weather:   r.Weather,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.User != nil {
		owner := fromUserRecord(r.User)
		t.Owner = &owner
	}
	return t
}

func fromManagerRecord(r *managerRecord) todo.Manager {
	return todo.Manager{
		ID:   r.ID,
		Todo: fromTodoRecord(&r.Todo),
		User: fromUserRecord(&r.User),
	}
}

func fromCommentRecord(r *commentRecord) todo.Comment {
	return todo.Comment{
		ID:        r.ID,
		Contents:  r.Contents,
		User:      fromUserRecord(&r.User),
		Todo:      fromTodoRecord(&r.Todo),
		CreatedAt: r.CreatedAt,
	}
}
