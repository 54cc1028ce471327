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

const createTasksTable = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	due_date TEXT NOT NULL DEFAULT '',
	kind TEXT NOT NULL DEFAULT 'single',
	priority TEXT NOT NULL DEFAULT '',
	completed INTEGER NOT NULL DEFAULT 0,
	notified_today INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON tasks(user_id);
`

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) repository.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTasksTable); err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	return nil
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (int64, error) {
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO tasks (user_id, title, description, due_date, kind, priority, completed, notified_today, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.UserID,
		task.Title,
		task.Description,
		task.DueDate,
		task.Kind,
		task.Priority,
		task.Completed,
		task.NotifiedToday,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return 0, storeErr("insert task", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storeErr("task last insert id", err)
	}
	task.ID = id
	return id, nil
}

func (r *TaskRepository) Get(ctx context.Context, id int64) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, selectTask+`WHERE id = ?`, id)
	return scanTask(row)
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectTask+`WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, storeErr("list tasks", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list tasks", err)
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, id int64, upd repository.TaskUpdate) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}
	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.DueDate != nil {
		add("due_date", *upd.DueDate)
	}
	if upd.Kind != nil {
		add("kind", *upd.Kind)
	}
	if upd.Priority != nil {
		add("priority", *upd.Priority)
	}
	if upd.Completed != nil {
		add("completed", *upd.Completed)
	}
	if upd.NotifiedToday != nil {
		add("notified_today", *upd.NotifiedToday)
	}

	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ?", strings.Join(sets, ", "))
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return storeErr("update task", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storeErr("update task rows affected", err)
	}
	if affected == 0 {
		return fmt.Errorf("update task: %w", repository.ErrNotFound)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return storeErr("delete task", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storeErr("delete task rows affected", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete task: %w", repository.ErrNotFound)
	}
	return nil
}

const selectTask = `
SELECT id, user_id, title, description, due_date, kind, priority, completed, notified_today, created_at, updated_at
FROM tasks
`

func scanTask(row interface {
	Scan(dest ...any) error
}) (*domain.Task, error) {
	var task domain.Task
	if err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.DueDate,
		&task.Kind,
		&task.Priority,
		&task.Completed,
		&task.NotifiedToday,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task: %w", repository.ErrNotFound)
		}
		return nil, storeErr("scan task", err)
	}
	return &task, nil
}
