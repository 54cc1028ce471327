package repository

import (
	"context"

	"neurotask/internal/domain"
)

// UserUpdate carries a partial update; nil fields are left untouched.
type UserUpdate struct {
	Username      *string
	Email         *string
	PasswordHash  *string
	Theme         *string
	LastCheckDate *string
}

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, upd UserUpdate) error
	// Delete removes the user and, by cascade, every task they own.
	Delete(ctx context.Context, id int64) error
}
