package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophnotes/internal/models"
)

// QueueStore реализует QueueStorage и FailedStorage поверх произвольного KV.
// Очередь и failed log сериализуются в JSON целиком: очереди короткие,
// а атомарность snapshot-записи важнее экономии на частичных апдейтах.
type QueueStore struct {
	kv KV
}

// NewQueueStore creates queue persistence on top of a KV store
func NewQueueStore(kv KV) *QueueStore {
	return &QueueStore{kv: kv}
}

// SaveQueue persists the whole queue snapshot
func (s *QueueStore) SaveQueue(ctx context.Context, items []models.SyncQueueItem) error {
	if items == nil {
		items = []models.SyncQueueItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal queue: %w", err)
	}

	if err := s.kv.Set(ctx, NamespaceSyncQueue, KeyQueue, data); err != nil {
		return fmt.Errorf("failed to save queue: %w", err)
	}

	return nil
}

// LoadQueue loads the persisted queue
func (s *QueueStore) LoadQueue(ctx context.Context) ([]models.SyncQueueItem, error) {
	data, err := s.kv.Get(ctx, NamespaceSyncQueue, KeyQueue)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []models.SyncQueueItem{}, nil
		}
		return nil, fmt.Errorf("failed to load queue: %w", err)
	}

	var items []models.SyncQueueItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal queue: %w", err)
	}

	return items, nil
}

// SaveLastSyncTime persists the time of the last drain pass
func (s *QueueStore) SaveLastSyncTime(ctx context.Context, t time.Time) error {
	data, err := t.MarshalText()
	if err != nil {
		return fmt.Errorf("failed to marshal last sync time: %w", err)
	}

	if err := s.kv.Set(ctx, NamespaceSyncQueue, KeyLastSyncTime, data); err != nil {
		return fmt.Errorf("failed to save last sync time: %w", err)
	}

	return nil
}

// GetLastSyncTime returns the time of the last drain pass,
// zero time if no sync has happened yet
func (s *QueueStore) GetLastSyncTime(ctx context.Context) (time.Time, error) {
	data, err := s.kv.Get(ctx, NamespaceSyncQueue, KeyLastSyncTime)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to load last sync time: %w", err)
	}

	var t time.Time
	if err := t.UnmarshalText(data); err != nil {
		return time.Time{}, fmt.Errorf("failed to unmarshal last sync time: %w", err)
	}

	return t, nil
}

// SaveFailed persists the whole failed log
func (s *QueueStore) SaveFailed(ctx context.Context, items []models.FailedSyncItem) error {
	if items == nil {
		items = []models.FailedSyncItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal failed items: %w", err)
	}

	if err := s.kv.Set(ctx, NamespaceFailedSyncs, KeyFailedItems, data); err != nil {
		return fmt.Errorf("failed to save failed items: %w", err)
	}

	return nil
}

// LoadFailed loads the persisted failed log
func (s *QueueStore) LoadFailed(ctx context.Context) ([]models.FailedSyncItem, error) {
	data, err := s.kv.Get(ctx, NamespaceFailedSyncs, KeyFailedItems)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []models.FailedSyncItem{}, nil
		}
		return nil, fmt.Errorf("failed to load failed items: %w", err)
	}

	var items []models.FailedSyncItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal failed items: %w", err)
	}

	return items, nil
}
