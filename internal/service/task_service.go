package service

import (
	"context"
	"fmt"
	"strings"

	"neurotask/internal/domain"
	"neurotask/internal/repository"
)

// TaskService coordinates task level operations backed by repositories.
// Every operation that names a task id also names the owning user; a task
// belonging to someone else behaves as if it did not exist.
type TaskService interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Get(ctx context.Context, userID, id int64) (*domain.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Task, error)
	Update(ctx context.Context, userID, id int64, upd repository.TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, userID, id int64) error
}

type taskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	task.Title = strings.TrimSpace(task.Title)
	if task.Kind == "" {
		task.Kind = domain.TaskKindSingle
	}
	if err := validateTask(task.Title, task.Kind, task.Priority, task.DueDate); err != nil {
		return nil, err
	}

	if _, err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Get(ctx context.Context, userID, id int64) (*domain.Task, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, fmt.Errorf("task: %w", repository.ErrNotFound)
	}
	return task, nil
}

func (s *taskService) ListByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

func (s *taskService) Update(ctx context.Context, userID, id int64, upd repository.TaskUpdate) (*domain.Task, error) {
	task, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	// Validate against the state the task would have after the update.
	merged := *task
	if upd.Title != nil {
		trimmed := strings.TrimSpace(*upd.Title)
		upd.Title = &trimmed
		merged.Title = trimmed
	}
	if upd.Description != nil {
		merged.Description = *upd.Description
	}
	if upd.Kind != nil {
		merged.Kind = *upd.Kind
	}
	if upd.Priority != nil {
		merged.Priority = *upd.Priority
	}
	if upd.DueDate != nil {
		merged.DueDate = *upd.DueDate
	}
	if err := validateTask(merged.Title, merged.Kind, merged.Priority, merged.DueDate); err != nil {
		return nil, err
	}

	if err := s.tasks.Update(ctx, id, upd); err != nil {
		return nil, err
	}
	return s.tasks.Get(ctx, id)
}

func (s *taskService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}

func validateTask(title string, kind domain.TaskKind, priority domain.TaskPriority, dueDate string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !domain.ValidKind(kind) {
		return fmt.Errorf("%w: unknown task kind %q", domain.ErrValidation, kind)
	}
	if !domain.ValidPriority(priority) {
		return fmt.Errorf("%w: unknown priority %q", domain.ErrValidation, priority)
	}
	if !domain.ValidDueSpecifier(kind, dueDate) {
		return fmt.Errorf("%w: malformed due date %q", domain.ErrValidation, dueDate)
	}
	return nil
}
