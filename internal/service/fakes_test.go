package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"neurotask/internal/domain"
	"neurotask/internal/repository"
)

// In-memory repositories shared by the service tests.

type memUserRepo struct {
	users   map[int64]*domain.User
	nextID  int64
	updates int
	// failWith, when set, makes every operation fail with that error.
	failWith error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func (r *memUserRepo) Init(context.Context) error { return r.failWith }

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	for _, existing := range r.users {
		if strings.EqualFold(existing.Username, user.Username) || strings.EqualFold(existing.Email, user.Email) {
			return 0, fmt.Errorf("insert user: %w", repository.ErrDuplicate)
		}
	}
	user.ID = r.nextID
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return user.ID, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, user := range r.users {
		if strings.EqualFold(user.Username, username) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) Update(_ context.Context, id int64, upd repository.UserUpdate) error {
	if r.failWith != nil {
		return r.failWith
	}
	user, ok := r.users[id]
	if !ok {
		return fmt.Errorf("update user: %w", repository.ErrNotFound)
	}
	r.updates++
	if upd.Username != nil {
		user.Username = *upd.Username
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.PasswordHash != nil {
		user.PasswordHash = *upd.PasswordHash
	}
	if upd.Theme != nil {
		user.Theme = *upd.Theme
	}
	if upd.LastCheckDate != nil {
		user.LastCheckDate = *upd.LastCheckDate
	}
	user.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id int64) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("delete user: %w", repository.ErrNotFound)
	}
	delete(r.users, id)
	return nil
}

type memTaskRepo struct {
	tasks    map[int64]*domain.Task
	nextID   int64
	updates  int
	failWith error
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: make(map[int64]*domain.Task), nextID: 1}
}

func (r *memTaskRepo) Init(context.Context) error { return r.failWith }

func (r *memTaskRepo) Create(_ context.Context, task *domain.Task) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	task.ID = r.nextID
	task.CreatedAt = time.Now().UTC()
	task.UpdatedAt = task.CreatedAt
	r.nextID++
	copied := *task
	r.tasks[task.ID] = &copied
	return task.ID, nil
}

func (r *memTaskRepo) Get(_ context.Context, id int64) (*domain.Task, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	task, ok := r.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task: %w", repository.ErrNotFound)
	}
	copied := *task
	return &copied, nil
}

func (r *memTaskRepo) ListByUser(_ context.Context, userID int64) ([]domain.Task, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []domain.Task
	for id := int64(1); id < r.nextID; id++ {
		if task, ok := r.tasks[id]; ok && task.UserID == userID {
			out = append(out, *task)
		}
	}
	return out, nil
}

func (r *memTaskRepo) Update(_ context.Context, id int64, upd repository.TaskUpdate) error {
	if r.failWith != nil {
		return r.failWith
	}
	task, ok := r.tasks[id]
	if !ok {
		return fmt.Errorf("update task: %w", repository.ErrNotFound)
	}
	r.updates++
	if upd.Title != nil {
		task.Title = *upd.Title
	}
	if upd.Description != nil {
		task.Description = *upd.Description
	}
	if upd.DueDate != nil {
		task.DueDate = *upd.DueDate
	}
	if upd.Kind != nil {
		task.Kind = *upd.Kind
	}
	if upd.Priority != nil {
		task.Priority = *upd.Priority
	}
	if upd.Completed != nil {
		task.Completed = *upd.Completed
	}
	if upd.NotifiedToday != nil {
		task.NotifiedToday = *upd.NotifiedToday
	}
	task.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, id int64) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.tasks[id]; !ok {
		return fmt.Errorf("delete task: %w", repository.ErrNotFound)
	}
	delete(r.tasks, id)
	return nil
}
