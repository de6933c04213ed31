package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/gophnotes/internal/models"
)

// RunTask обрабатывает подкоманды task
func (c *Cli) RunTask(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: task add|done|rm")
	}

	switch args[0] {
	case "add":
		return c.taskAdd(ctx)
	case "done":
		if len(args) < 2 {
			return fmt.Errorf("usage: task done <id>")
		}
		return c.taskDone(ctx, args[1])
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: task rm <id>")
		}
		return c.taskRemove(ctx, args[1])
	default:
		return fmt.Errorf("unknown task subcommand: %s", args[0])
	}
}

func (c *Cli) taskAdd(ctx context.Context) error {
	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	noteID, err := c.io.ReadInput("Attach to note id (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read note id: %w", err)
	}

	now := time.Now()
	task := models.Task{
		CreatedAt: now,
		UpdatedAt: now,
		ID:        uuid.New().String(),
		NoteID:    noteID,
		Title:     title,
	}

	if err := c.enqueueTaskOp(ctx, models.OpCreateTask, task); err != nil {
		return err
	}

	c.io.Printf("Task created: %s\n", task.ID)
	return nil
}

func (c *Cli) taskDone(ctx context.Context, id string) error {
	task := models.Task{
		UpdatedAt: time.Now(),
		ID:        id,
		Done:      true,
	}
	if err := c.enqueueTaskOp(ctx, models.OpUpdateTask, task); err != nil {
		return err
	}

	c.io.Println("Task marked as done")
	return nil
}

func (c *Cli) taskRemove(ctx context.Context, id string) error {
	data, err := json.Marshal(models.Deletion{ID: id})
	if err != nil {
		return fmt.Errorf("failed to marshal deletion: %w", err)
	}
	if _, err := c.manager.Enqueue(ctx, models.SyncOperation{
		Type: models.OpDeleteTask,
		Data: data,
	}); err != nil {
		return fmt.Errorf("failed to queue deletion: %w", err)
	}

	c.io.Println("Task deleted")
	return nil
}

func (c *Cli) enqueueTaskOp(ctx context.Context, opType models.OperationType, task models.Task) error {
	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}
	if _, err := c.manager.Enqueue(ctx, models.SyncOperation{
		Type: opType,
		Data: data,
	}); err != nil {
		return fmt.Errorf("failed to queue operation: %w", err)
	}
	return nil
}
