package storage

import (
	"context"
	"time"

	"github.com/iudanet/gophnotes/internal/models"
)

//go:generate moq -out queue_mock.go . QueueStorage FailedStorage

// QueueStorage defines the persistence contract for the sync queue
type QueueStorage interface {
	// SaveQueue persists the whole queue snapshot
	SaveQueue(ctx context.Context, items []models.SyncQueueItem) error

	// LoadQueue loads the persisted queue.
	// Returns an empty slice when nothing is persisted yet.
	LoadQueue(ctx context.Context) ([]models.SyncQueueItem, error)

	// SaveLastSyncTime persists the time of the last drain pass
	SaveLastSyncTime(ctx context.Context, t time.Time) error

	// GetLastSyncTime returns the time of the last drain pass.
	// Returns zero time when no sync has happened yet.
	GetLastSyncTime(ctx context.Context) (time.Time, error)
}

// FailedStorage defines the persistence contract for the failed-item log
type FailedStorage interface {
	// SaveFailed persists the whole failed log
	SaveFailed(ctx context.Context, items []models.FailedSyncItem) error

	// LoadFailed loads the persisted failed log.
	// Returns an empty slice when nothing is persisted yet.
	LoadFailed(ctx context.Context) ([]models.FailedSyncItem, error)
}
