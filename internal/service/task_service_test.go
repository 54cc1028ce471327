package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neurotask/internal/domain"
	"neurotask/internal/repository"
)

func TestCreateTaskValidation(t *testing.T) {
	svc := NewTaskService(newMemTaskRepo())

	tests := []struct {
		name string
		task domain.Task
	}{
		{"empty title", domain.Task{UserID: 1}},
		{"whitespace title", domain.Task{UserID: 1, Title: "   "}},
		{"unknown kind", domain.Task{UserID: 1, Title: "x", Kind: "weekly"}},
		{"unknown priority", domain.Task{UserID: 1, Title: "x", Kind: "single", Priority: "urgent"}},
		{"daily with a date specifier", domain.Task{UserID: 1, Title: "x", Kind: "daily", DueDate: "2024-03-01"}},
		{"single with bare time", domain.Task{UserID: 1, Title: "x", Kind: "single", DueDate: "09:00"}},
		{"garbage due date", domain.Task{UserID: 1, Title: "x", Kind: "single", DueDate: "tomorrow"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := tt.task
			_, err := svc.Create(context.Background(), &task)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCreateTaskDefaults(t *testing.T) {
	repo := newMemTaskRepo()
	svc := NewTaskService(repo)

	task, err := svc.Create(context.Background(), &domain.Task{UserID: 1, Title: "  buy milk  "})
	require.NoError(t, err)

	assert.Equal(t, "buy milk", task.Title)
	assert.Equal(t, domain.TaskKindSingle, task.Kind)
	assert.Empty(t, task.Priority, "no stored priority; display layers default it to medium")
	assert.Equal(t, domain.TaskPriorityMedium, task.EffectivePriority())
	assert.False(t, task.Completed)
}

func TestCreateTaskAcceptsValidDueSpecifiers(t *testing.T) {
	svc := NewTaskService(newMemTaskRepo())

	tests := []struct {
		name string
		kind domain.TaskKind
		due  string
	}{
		{"daily time of day", domain.TaskKindDaily, "09:00"},
		{"daily without due", domain.TaskKindDaily, ""},
		{"single date", domain.TaskKindSingle, "2024-12-31"},
		{"single date and time", domain.TaskKindSingle, "2024-12-31 14:00"},
		{"single without due", domain.TaskKindSingle, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &domain.Task{UserID: 1, Title: "x", Kind: tt.kind, DueDate: tt.due})
			assert.NoError(t, err)
		})
	}
}

func TestTaskOwnership(t *testing.T) {
	repo := newMemTaskRepo()
	svc := NewTaskService(repo)

	task, err := svc.Create(context.Background(), &domain.Task{UserID: 1, Title: "mine"})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), 2, task.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound, "another user's task behaves as missing")

	title := "stolen"
	_, err = svc.Update(context.Background(), 2, task.ID, repository.TaskUpdate{Title: &title})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.Delete(context.Background(), 2, task.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err := svc.Get(context.Background(), 1, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", got.Title)
}

func TestUpdateTask(t *testing.T) {
	repo := newMemTaskRepo()
	svc := NewTaskService(repo)

	task, err := svc.Create(context.Background(), &domain.Task{UserID: 1, Title: "draft", Kind: domain.TaskKindDaily, DueDate: "09:00"})
	require.NoError(t, err)

	completed := true
	priority := domain.TaskPriorityHigh
	got, err := svc.Update(context.Background(), 1, task.ID, repository.TaskUpdate{
		Completed: &completed,
		Priority:  &priority,
	})
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Equal(t, domain.TaskPriorityHigh, got.Priority)
	assert.Equal(t, "draft", got.Title, "unset fields stay untouched")
}

func TestUpdateTaskValidatesMergedState(t *testing.T) {
	repo := newMemTaskRepo()
	svc := NewTaskService(repo)

	task, err := svc.Create(context.Background(), &domain.Task{UserID: 1, Title: "draft", Kind: domain.TaskKindDaily, DueDate: "09:00"})
	require.NoError(t, err)

	// Switching kind to single leaves the bare time specifier invalid.
	kind := domain.TaskKindSingle
	_, err = svc.Update(context.Background(), 1, task.ID, repository.TaskUpdate{Kind: &kind})
	assert.ErrorIs(t, err, domain.ErrValidation)

	empty := " "
	_, err = svc.Update(context.Background(), 1, task.ID, repository.TaskUpdate{Title: &empty})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeleteMissingTask(t *testing.T) {
	svc := NewTaskService(newMemTaskRepo())
	err := svc.Delete(context.Background(), 1, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
