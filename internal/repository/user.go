package repository

import (
	"context"
	"errors"

	"kob-backend/internal/domain"
)

// ErrUserExists is returned by Insert when the id is already taken.
var ErrUserExists = errors.New("user already exists")

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	List(ctx context.Context) ([]domain.User, error)
	// GetByID returns nil, nil when no user has the id.
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) error
	// DeleteByID is a no-op for unknown ids.
	DeleteByID(ctx context.Context, id int64) error
}
