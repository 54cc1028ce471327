package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neurotask/internal/repository"
)

// Driver-level failures must surface as ErrUnavailable, never as ErrNotFound.

func TestUserLookupFailureIsUnavailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("disk I/O error"))

	repo := &UserRepository{db: db}
	_, err = repo.GetByEmail(context.Background(), "maria@example.com")

	assert.ErrorIs(t, err, repository.ErrUnavailable)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskListFailureIsUnavailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("database is locked"))

	repo := &TaskRepository{db: db}
	_, err = repo.ListByUser(context.Background(), 1)

	assert.ErrorIs(t, err, repository.ErrUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskUpdateFailureIsUnavailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE tasks").WillReturnError(errors.New("disk I/O error"))

	repo := &TaskRepository{db: db}
	completed := true
	err = repo.Update(context.Background(), 1, repository.TaskUpdate{Completed: &completed})

	assert.ErrorIs(t, err, repository.ErrUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}
