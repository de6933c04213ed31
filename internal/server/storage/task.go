package storage

import (
	"context"

	"github.com/iudanet/gophnotes/internal/models"
)

// TaskStorage defines interface for task persistence
type TaskStorage interface {
	// CreateTask inserts a new task with version 1.
	// The stored version and timestamps are written back into task.
	CreateTask(ctx context.Context, task *models.Task) error

	// GetTask retrieves a single task owned by userID
	// Returns ErrTaskNotFound if task doesn't exist
	GetTask(ctx context.Context, userID, id string) (*models.Task, error)

	// ListTasks retrieves all tasks for a user
	// Returns empty slice if no tasks found
	ListTasks(ctx context.Context, userID string) ([]*models.Task, error)

	// UpdateTask updates task fields and bumps version.
	// Returns the stored task, ErrTaskNotFound if task doesn't exist
	UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error)

	// DeleteTask deletes task by ID
	// Returns ErrTaskNotFound if task doesn't exist
	DeleteTask(ctx context.Context, userID, id string) error
}
