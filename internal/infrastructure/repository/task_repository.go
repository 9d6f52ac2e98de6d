package repository

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskhub/internal/domain/task"
	"taskhub/internal/infrastructure/database"
)

type taskRepository struct {
	db *database.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *database.DB) task.Repository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(t *task.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = task.StatusOpen
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO tasks (id, title, description, status, user_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Description, t.Status, t.UserID, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

// GetByID fetches a task scoped to its owner. A task that exists under a
// different owner scans as no rows, so callers cannot distinguish "not
// yours" from "not there".
func (r *taskRepository) GetByID(id, userID string) (*task.Task, error) {
	t := &task.Task{}
	err := r.db.QueryRow(
		`SELECT id, title, description, status, user_id, created_at, updated_at
		 FROM tasks WHERE id = ? AND user_id = ?`, id, userID,
	).Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.UserID, &t.CreatedAt, &t.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, task.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *taskRepository) ListByUser(userID string, filter task.Filter) ([]task.Task, error) {
	query := `SELECT id, title, description, status, user_id, created_at, updated_at
		 FROM tasks WHERE user_id = ?`
	args := []any{userID}

	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, filter.Status)
	}
	if filter.Search != "" {
		query += ` AND (LOWER(title) LIKE ? OR LOWER(description) LIKE ?)`
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Update(t *task.Task) error {
	t.UpdatedAt = time.Now()
	result, err := r.db.Exec(
		`UPDATE tasks SET title = ?, description = ?, status = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		t.Title, t.Description, t.Status, t.UpdatedAt, t.ID, t.UserID,
	)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) Delete(id, userID string) error {
	result, err := r.db.Exec(`DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}
