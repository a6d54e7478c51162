package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hyeonlog/taskhub/internal/domain"
	"github.com/hyeonlog/taskhub/internal/domain/user"
	"github.com/hyeonlog/taskhub/internal/ports"
)

// Compile-time check that UserStore implements ports.UserStore.
var _ ports.UserStore = (*UserStore)(nil)

// UserStore persists user accounts.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a UserStore on the given database handle.
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) FindByID(ctx context.Context, id int64) (*user.User, error) {
	var r userRecord
	if err := s.db.WithContext(ctx).First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("finding user %d: %w", id, err)
	}
	u := fromUserRecord(&r)
	return &u, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var r userRecord
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("finding user %q: %w", email, err)
	}
	u := fromUserRecord(&r)
	return &u, nil
}

func (s *UserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&userRecord{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("counting users with email %q: %w", email, err)
	}
	return count > 0, nil
}

func (s *UserStore) Save(ctx context.Context, u *user.User) error {
	r := toUserRecord(u)
	if err := s.db.WithContext(ctx).Save(&r).Error; err != nil {
		return fmt.Errorf("saving user: %w", err)
	}
	*u = fromUserRecord(&r)
	return nil
}
