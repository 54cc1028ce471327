package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"neurotask/internal/domain"
	"neurotask/internal/repository"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, NewUserRepository(db).Init(context.Background()))
	require.NoError(t, NewTaskRepository(db).Init(context.Background()))
	return db
}

func createTestUser(t *testing.T, repo repository.UserRepository, username, email string) *domain.User {
	t.Helper()
	user := &domain.User{Username: username, Email: email, PasswordHash: "$2a$10$test"}
	_, err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	return user
}
