package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophnotes/internal/models"
	"github.com/iudanet/gophnotes/internal/server/storage"
)

// CreateTask inserts a new task with version 1
func (s *Storage) CreateTask(ctx context.Context, task *models.Task) error {
	now := time.Now()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	task.UpdatedAt = now
	task.Version = 1

	query := `
		INSERT INTO tasks (id, user_id, note_id, title, done, due_date,
			version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		task.ID,
		task.UserID,
		task.NoteID,
		task.Title,
		boolToInt(task.Done),
		timeToNullUnix(task.DueDate),
		task.Version,
		task.CreatedAt.Unix(),
		task.UpdatedAt.Unix(),
	)

	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}

	return nil
}

// GetTask retrieves a single task owned by userID
func (s *Storage) GetTask(ctx context.Context, userID, id string) (*models.Task, error) {
	query := `
		SELECT id, user_id, note_id, title, done, due_date,
		       version, created_at, updated_at
		FROM tasks
		WHERE id = ? AND user_id = ?
	`

	task, err := s.scanTask(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// ListTasks retrieves all tasks for a user
func (s *Storage) ListTasks(ctx context.Context, userID string) ([]*models.Task, error) {
	query := `
		SELECT id, user_id, note_id, title, done, due_date,
		       version, created_at, updated_at
		FROM tasks
		WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var tasks []*models.Task

	for rows.Next() {
		task, err := s.scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tasks, nil
}

// UpdateTask updates task fields and bumps version
func (s *Storage) UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	query := `
		UPDATE tasks
		SET note_id = ?, title = ?, done = ?, due_date = ?,
		    version = version + 1, updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		task.NoteID,
		task.Title,
		boolToInt(task.Done),
		timeToNullUnix(task.DueDate),
		time.Now().Unix(),
		task.ID,
		task.UserID,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return nil, storage.ErrTaskNotFound
	}

	return s.GetTask(ctx, task.UserID, task.ID)
}

// DeleteTask deletes task by ID
func (s *Storage) DeleteTask(ctx context.Context, userID, id string) error {
	query := `DELETE FROM tasks WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrTaskNotFound
	}

	return nil
}

// scanTask читает одну строку tasks
func (s *Storage) scanTask(row scanner) (*models.Task, error) {
	task := &models.Task{}
	var done int
	var dueDate sql.NullInt64
	var createdAt, updatedAt int64

	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.NoteID,
		&task.Title,
		&done,
		&dueDate,
		&task.Version,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	task.Done = done != 0
	if dueDate.Valid {
		due := time.Unix(dueDate.Int64, 0)
		task.DueDate = &due
	}
	task.CreatedAt = time.Unix(createdAt, 0)
	task.UpdatedAt = time.Unix(updatedAt, 0)

	return task, nil
}

// Helper functions for sqlite column conversion
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func timeToNullUnix(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}
