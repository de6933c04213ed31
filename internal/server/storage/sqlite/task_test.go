package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophnotes/internal/models"
	"github.com/iudanet/gophnotes/internal/server/storage"
)

func TestTaskStorage_CreateAndGetTask(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	due := time.Now().Add(24 * time.Hour).Truncate(time.Second)

	task := &models.Task{
		ID:      uuid.New().String(),
		UserID:  userID,
		Title:   "buy milk",
		DueDate: &due,
	}

	require.NoError(t, s.CreateTask(ctx, task))
	assert.Equal(t, int64(1), task.Version)

	retrieved, err := s.GetTask(ctx, userID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", retrieved.Title)
	assert.False(t, retrieved.Done)
	require.NotNil(t, retrieved.DueDate)
	assert.Equal(t, due.Unix(), retrieved.DueDate.Unix())
}

func TestTaskStorage_GetTask_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	_, err := s.GetTask(ctx, userID, "nonexistent-id")
	assert.ErrorIs(t, err, storage.ErrTaskNotFound)
}

func TestTaskStorage_ListTasks(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	otherID := createTestUser(t, ctx, s)

	for _, title := range []string{"one", "two", "three"} {
		require.NoError(t, s.CreateTask(ctx, &models.Task{
			ID:     uuid.New().String(),
			UserID: userID,
			Title:  title,
		}))
	}
	require.NoError(t, s.CreateTask(ctx, &models.Task{
		ID:     uuid.New().String(),
		UserID: otherID,
		Title:  "foreign",
	}))

	tasks, err := s.ListTasks(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
}

func TestTaskStorage_UpdateTask_MarksDone(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	task := &models.Task{
		ID:     uuid.New().String(),
		UserID: userID,
		Title:  "finish report",
	}
	require.NoError(t, s.CreateTask(ctx, task))

	task.Done = true
	updated, err := s.UpdateTask(ctx, task)
	require.NoError(t, err)
	assert.True(t, updated.Done)
	assert.Equal(t, int64(2), updated.Version)
}

func TestTaskStorage_UpdateTask_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	_, err := s.UpdateTask(ctx, &models.Task{
		ID:     "nonexistent-id",
		UserID: userID,
		Title:  "ghost",
	})
	assert.ErrorIs(t, err, storage.ErrTaskNotFound)
}

func TestTaskStorage_DeleteTask(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	task := &models.Task{
		ID:     uuid.New().String(),
		UserID: userID,
		Title:  "temp",
	}
	require.NoError(t, s.CreateTask(ctx, task))

	require.NoError(t, s.DeleteTask(ctx, userID, task.ID))

	_, err := s.GetTask(ctx, userID, task.ID)
	assert.ErrorIs(t, err, storage.ErrTaskNotFound)

	err = s.DeleteTask(ctx, userID, task.ID)
	assert.ErrorIs(t, err, storage.ErrTaskNotFound)
}
