package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hyeonlog/taskhub/internal/domain/todo"
	"github.com/hyeonlog/taskhub/internal/ports"
)

// Compile-time check that CommentStore implements ports.CommentStore.
var _ ports.CommentStore = (*CommentStore)(nil)

// CommentStore persists comments.
type CommentStore struct {
	db *gorm.DB
}

// NewCommentStore creates a CommentStore on the given database handle.
func NewCommentStore(db *gorm.DB) *CommentStore {
	return &CommentStore{db: db}
}

func (s *CommentStore) FindByTodoIDWithUser(ctx context.Context, todoID int64) ([]todo.Comment, error) {
	var records []commentRecord
	err := s.db.WithContext(ctx).
		Preload("Todo").
		Preload("User").
		Where("todo_id = ?", todoID).
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("listing comments for todo %d: %w", todoID, err)
	}

	comments := make([]todo.Comment, len(records))
	for i := range records {
		comments[i] = fromCommentRecord(&records[i])
	}
	return comments, nil
}

func (s *CommentStore) Save(ctx context.Context, c *todo.Comment) error {
	r := commentRecord{
		ID:       c.ID,
		Contents: c.Contents,
		TodoID:   c.Todo.ID,
		UserID:   c.User.ID,
	}
	if err := s.db.WithContext(ctx).Omit("Todo", "User").Save(&r).Error; err != nil {
		return fmt.Errorf("saving comment: %w", err)
	}
	c.ID = r.ID
	c.CreatedAt = r.CreatedAt
	return nil
}
