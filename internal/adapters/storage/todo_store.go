package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hyeonlog/taskhub/internal/domain"
	"github.com/hyeonlog/taskhub/internal/domain/todo"
	"github.com/hyeonlog/taskhub/internal/ports"
)

// Compile-time check that TodoStore implements ports.TodoStore.
var _ ports.TodoStore = (*TodoStore)(nil)

// TodoStore persists todos with their owners.
type TodoStore struct {
	db *gorm.DB
}

// NewTodoStore creates a TodoStore on the given database handle.
func NewTodoStore(db *gorm.DB) *TodoStore {
	return &TodoStore{db: db}
}

func (s *TodoStore) FindByID(ctx context.Context, id int64) (*todo.Todo, error) {
	var r todoRecord
	if err := s.db.WithContext(ctx).Preload("User").First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("todo %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("finding todo %d: %w", id, err)
	}
	t := fromTodoRecord(&r)
	return &t, nil
}

func (s *TodoStore) FindAll(ctx context.Context, page, size int) ([]todo.Todo, error) {
	var records []todoRecord
	err := s.db.WithContext(ctx).
		Preload("User").
		Order("updated_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}

	todos := make([]todo.Todo, len(records))
	for i := range records {
		todos[i] = fromTodoRecord(&records[i])
	}
	return todos, nil
}

func (s *TodoStore) Save(ctx context.Context, t *todo.Todo) error {
	r := toTodoRecord(t)
	if err := s.db.WithContext(ctx).Omit("User").Save(&r).Error; err != nil {
		return fmt.Errorf("saving todo: %w", err)
	}
	owner := t.Owner
	*t = fromTodoRecord(&r)
	t.Owner = owner
	return nil
}
