package repository

import (
	"context"

	"neurotask/internal/domain"
)

// TaskUpdate carries a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Title         *string
	Description   *string
	DueDate       *string
	Kind          *domain.TaskKind
	Priority      *domain.TaskPriority
	Completed     *bool
	NotifiedToday *bool
}

// TaskRepository defines persistence operations for Task entities.
type TaskRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, task *domain.Task) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Task, error)
	Update(ctx context.Context, id int64, upd TaskUpdate) error
	Delete(ctx context.Context, id int64) error
}
