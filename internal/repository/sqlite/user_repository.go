package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"neurotask/internal/domain"
	"neurotask/internal/repository"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE COLLATE NOCASE,
	email TEXT NOT NULL UNIQUE COLLATE NOCASE,
	password_hash TEXT NOT NULL,
	theme TEXT NOT NULL DEFAULT '',
	last_check_date TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO users (username, email, password_hash, theme, last_check_date, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Theme,
		user.LastCheckDate,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert user: %w", repository.ErrDuplicate)
		}
		return 0, storeErr("insert user", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storeErr("user last insert id", err)
	}
	user.ID = id
	return id, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, selectUser+`WHERE email = ? COLLATE NOCASE`, email)
	return scanUser(row)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, selectUser+`WHERE username = ? COLLATE NOCASE`, username)
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, selectUser+`WHERE id = ?`, id)
	return scanUser(row)
}

func (r *UserRepository) Update(ctx context.Context, id int64, upd repository.UserUpdate) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}
	if upd.Username != nil {
		add("username", *upd.Username)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.PasswordHash != nil {
		add("password_hash", *upd.PasswordHash)
	}
	if upd.Theme != nil {
		add("theme", *upd.Theme)
	}
	if upd.LastCheckDate != nil {
		add("last_check_date", *upd.LastCheckDate)
	}

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = ?", strings.Join(sets, ", "))
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("update user: %w", repository.ErrDuplicate)
		}
		return storeErr("update user", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storeErr("update user rows affected", err)
	}
	if affected == 0 {
		return fmt.Errorf("update user: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return storeErr("delete user", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storeErr("delete user rows affected", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete user: %w", repository.ErrNotFound)
	}
	return nil
}

const selectUser = `
SELECT id, username, email, password_hash, theme, last_check_date, created_at, updated_at
FROM users
`

func scanUser(row interface {
	Scan(dest ...any) error
}) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Theme,
		&user.LastCheckDate,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
		}
		return nil, storeErr("scan user", err)
	}
	return &user, nil
}
