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

// Compile-time check that ManagerStore implements ports.ManagerStore.
var _ ports.ManagerStore = (*ManagerStore)(nil)

// ManagerStore persists manager assignments.
type ManagerStore struct {
	db *gorm.DB
}

// NewManagerStore creates a ManagerStore on the given database handle.
func NewManagerStore(db *gorm.DB) *ManagerStore {
	return &ManagerStore{db: db}
}

func (s *ManagerStore) FindByID(ctx context.Context, id int64) (*todo.Manager, error) {
	var r managerRecord
	err := s.db.WithContext(ctx).
		Preload("Todo").
		Preload("User").
		First(&r, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("manager %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("finding manager %d: %w", id, err)
	}
	m := fromManagerRecord(&r)
	return &m, nil
}

func (s *ManagerStore) FindByTodoIDWithUser(ctx context.Context, todoID int64) ([]todo.Manager, error) {
	var records []managerRecord
	err := s.db.WithContext(ctx).
		Preload("Todo").
		Preload("User").
		Where("todo_id = ?", todoID).
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("listing managers for todo %d: %w", todoID, err)
	}

	managers := make([]todo.Manager, len(records))
	for i := range records {
		managers[i] = fromManagerRecord(&records[i])
	}
	return managers, nil
}

func (s *ManagerStore) Save(ctx context.Context, m *todo.Manager) error {
	r := managerRecord{
		ID:     m.ID,
		TodoID: m.Todo.ID,
		UserID: m.User.ID,
	}
	if err := s.db.WithContext(ctx).Omit("Todo", "User").Save(&r).Error; err != nil {
		return fmt.Errorf("saving manager: %w", err)
	}
	m.ID = r.ID
	return nil
}

func (s *ManagerStore) Delete(ctx context.Context, m *todo.Manager) error {
	if err := s.db.WithContext(ctx).Delete(&managerRecord{}, m.ID).Error; err != nil {
		return fmt.Errorf("deleting manager %d: %w", m.ID, err)
	}
	return nil
}
