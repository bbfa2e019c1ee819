package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TWRT/taskboard/internal/models"
)

type TaskRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db, now: time.Now}
}

func (r *TaskRepository) Create(ctx context.Context, title string) (*models.Task, error) {
	task := &models.Task{
		Id:        uuid.NewString(),
		Title:     title,
		Completed: false,
		CreatedAt: r.now().UnixMilli(),
	}

	query := `
		INSERT INTO tasks (id, title, completed, created_at)
        VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, task.Id, task.Title, 0, task.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]models.Task, error) {
	query := `
	SELECT id, title, completed, created_at FROM tasks ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var (
			t         models.Task
			title     sql.NullString
			completed int64
		)
		if err := rows.Scan(&t.Id, &title, &completed, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.Title = title.String
		t.Completed = completed != 0
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return tasks, nil
}

// Update does not check that the row exists and echoes the caller's values.
func (r *TaskRepository) Update(ctx context.Context, id, title string, completed bool) (*models.Task, error) {
	query := `UPDATE tasks SET title = ?, completed = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, title, boolToInt(completed), id)
	if err != nil {
		return nil, fmt.Errorf("update task %s: %w", id, err)
	}

	return &models.Task{Id: id, Title: title, Completed: completed}, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
