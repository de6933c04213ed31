package sync

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/gophnotes/internal/client/api"
	"github.com/iudanet/gophnotes/internal/client/cache"
	"github.com/iudanet/gophnotes/internal/client/storage"
	"github.com/iudanet/gophnotes/internal/models"
	"github.com/iudanet/gophnotes/pkg/api"
)

// testEnv собирает менеджер с мок-хранилищами, состояние которых
// хранится в замыканиях.
type testEnv struct {
	manager  *Manager
	client   *httpClient.ClientAPIMock
	notifier *NotifierMock
	tree     *cache.Tree

	queue    *[]models.SyncQueueItem
	failed   *[]models.FailedSyncItem
	lastSync *time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	var (
		queue    []models.SyncQueueItem
		failed   []models.FailedSyncItem
		lastSync time.Time
	)

	queueStore := &storage.QueueStorageMock{
		SaveQueueFunc: func(ctx context.Context, items []models.SyncQueueItem) error {
			queue = items
			return nil
		},
		LoadQueueFunc: func(ctx context.Context) ([]models.SyncQueueItem, error) {
			return queue, nil
		},
		SaveLastSyncTimeFunc: func(ctx context.Context, ts time.Time) error {
			lastSync = ts
			return nil
		},
		GetLastSyncTimeFunc: func(ctx context.Context) (time.Time, error) {
			return lastSync, nil
		},
	}
	failedStore := &storage.FailedStorageMock{
		SaveFailedFunc: func(ctx context.Context, items []models.FailedSyncItem) error {
			failed = items
			return nil
		},
		LoadFailedFunc: func(ctx context.Context) ([]models.FailedSyncItem, error) {
			return failed, nil
		},
	}
	tokens := &TokenProviderMock{
		AccessTokenFunc: func(ctx context.Context) (string, error) {
			return "test-token", nil
		},
	}
	notifier := &NotifierMock{
		SyncFailedFunc:       func(item models.FailedSyncItem) {},
		ConflictDetectedFunc: func(conflict models.VersionConflict) {},
	}
	client := &httpClient.ClientAPIMock{}
	tree := cache.NewTree()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	manager := NewManager(client, queueStore, failedStore, tokens, tree, notifier, logger)

	return &testEnv{
		manager:  manager,
		client:   client,
		notifier: notifier,
		tree:     tree,
		queue:    &queue,
		failed:   &failed,
		lastSync: &lastSync,
	}
}

func contentOp(t *testing.T, id, content string, version int64) models.SyncOperation {
	t.Helper()
	data, err := json.Marshal(models.ContentUpdate{
		ID:              id,
		Content:         content,
		Direction:       models.DirectionLTR,
		ExpectedVersion: version,
	})
	require.NoError(t, err)
	return models.SyncOperation{Type: models.OpUpdateContent, Data: data}
}

func noteOp(t *testing.T, opType models.OperationType, note models.Note) models.SyncOperation {
	t.Helper()
	data, err := json.Marshal(note)
	require.NoError(t, err)
	return models.SyncOperation{Type: opType, Data: data}
}

func TestNewManager_NilNotifier(t *testing.T) {
	env := newTestEnv(t)
	m := NewManager(env.client, nil, nil, nil, env.tree, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NotNil(t, m)
	assert.NotNil(t, m.notifier)
}

func TestEnqueue_Offline_Accumulates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id1, err := env.manager.Enqueue(ctx, contentOp(t, "n1", "hello", 1))
	require.NoError(t, err)
	id2, err := env.manager.Enqueue(ctx, contentOp(t, "n2", "world", 1))
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, env.manager.Pending())
	// В офлайне ни одного сетевого вызова
	assert.Empty(t, env.client.PatchContentCalls())
	// Но очередь уже на диске
	require.Len(t, *env.queue, 2)
	assert.Equal(t, models.DefaultMaxAttempts, (*env.queue)[0].MaxAttempts)
}

func TestEnqueue_Online_DrainsImmediately(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.client.PatchContentFunc = func(ctx context.Context, token, id string, req api.ContentPatchRequest) (*api.ItemPayload, error) {
		return &api.ItemPayload{ID: id, Content: req.Content, Version: req.ExpectedVersion + 1}, nil
	}
	env.manager.SetOnline(ctx, true)

	_, err := env.manager.Enqueue(ctx, contentOp(t, "n1", "hello", 1))
	require.NoError(t, err)

	assert.Equal(t, 0, env.manager.Pending())
	require.Len(t, env.client.PatchContentCalls(), 1)
	assert.Equal(t, "test-token", env.client.PatchContentCalls()[0].Token)
	assert.False(t, (*env.lastSync).IsZero())
}

func TestDrain_FIFO(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	var order []string
	env.client.PatchContentFunc = func(ctx context.Context, token, id string, req api.ContentPatchRequest) (*api.ItemPayload, error) {
		order = append(order, id)
		return &api.ItemPayload{ID: id, Version: req.ExpectedVersion + 1}, nil
	}

	for _, id := range []string{"a", "b", "c"} {
		_, err := env.manager.Enqueue(ctx, contentOp(t, id, "x", 1))
		require.NoError(t, err)
	}

	env.manager.online.Store(true)
	require.NoError(t, env.manager.Drain(ctx))

	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 0, env.manager.Pending())
}

func TestDrain_Offline_NoCalls(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.manager.Enqueue(ctx, contentOp(t, "n1", "x", 1))
	require.NoError(t, err)

	require.NoError(t, env.manager.Drain(ctx))

	assert.Equal(t, 1, env.manager.Pending())
	assert.Empty(t, env.client.PatchContentCalls())
}

func TestDrain_TransientRetriedOnNextPass(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	calls := 0
	env.client.PatchContentFunc = func(ctx context.Context, token, id string, req api.ContentPatchRequest) (*api.ItemPayload, error) {
		calls++
		if calls <= 2 {
			return nil, &httpClient.TransientError{Err: errors.New("connection refused")}
		}
		return &api.ItemPayload{ID: id, Version: 2}, nil
	}

	_, err := env.manager.Enqueue(ctx, contentOp(t, "n1", "x", 1))
	require.NoError(t, err)
	env.manager.online.Store(true)

	// Первый проход: попытка 1 неудачна, элемент остаётся
	require.Error(t, env.manager.Drain(ctx))
	require.Equal(t, 1, env.manager.Pending())
	assert.Equal(t, 1, (*env.queue)[0].Attempts)

	// Второй проход: попытка 2 неудачна
	require.Error(t, env.manager.Drain(ctx))
	require.Equal(t, 1, env.manager.Pending())
	assert.Equal(t, 2, (*env.queue)[0].Attempts)

	// Третий проход: успех, элемент удалён и не попал в failed log
	require.NoError(t, env.manager.Drain(ctx))
	assert.Equal(t, 0, env.manager.Pending())
	assert.Empty(t, *env.failed)
	assert.Empty(t, env.notifier.SyncFailedCalls())
}

func TestDrain_ExhaustedMovesToFailedLog(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.client.PatchContentFunc = func(ctx context.Context, token, id string, req api.ContentPatchRequest) (*api.ItemPayload, error) {
		return nil, &httpClient.TransientError{StatusCode: 503, Err: errors.New("unavailable")}
	}

	_, err := env.manager.Enqueue(ctx, contentOp(t, "n1", "x", 1))
	require.NoError(t, err)
	env.manager.online.Store(true)

	for range models.DefaultMaxAttempts {
		_ = env.manager.Drain(ctx)
	}

	assert.Equal(t, 0, env.manager.Pending())
	require.Len(t, *env.failed, 1)
	assert.Equal(t, models.DefaultMaxAttempts, (*env.failed)[0].Attempts)
	assert.False(t, (*env.failed)[0].FailedAt.IsZero())
	// Уведомление ровно одно
	assert.Len(t, env.notifier.SyncFailedCalls(), 1)
}

func TestDrain_PermanentErrorNotRetried(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.client.PatchContentFunc = func(ctx context.Context, token, id string, req api.ContentPatchRequest) (*api.ItemPayload, error) {
		return nil, &httpClient.PermanentError{StatusCode: 400, Message: "bad request"}
	}

	_, err := env.manager.Enqueue(ctx, contentOp(t, "n1", "x", 1))
	require.NoError(t, err)
	env.manager.online.Store(true)

	require.Error(t, env.manager.Drain(ctx))

	// С первого захода в failed log, без повторов
	assert.Equal(t, 0, env.manager.Pending())
	require.Len(t, *env.failed, 1)
	assert.Len(t, env.client.PatchContentCalls(), 1)
	assert.Len(t, env.notifier.SyncFailedCalls(), 1)
}

func TestDrain_ConflictNotifiesAndRemoves(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	serverItem := &models.Item{ID: "n1", Content: "server text", Version: 5}
	env.client.PatchContentFunc = func(ctx context.Context, token, id string, req api.ContentPatchRequest) (*api.ItemPayload, error) {
		return nil, &httpClient.ConflictError{
			Conflict: models.VersionConflict{
				ItemID:        id,
				ClientVersion: req.ExpectedVersion,
				ServerVersion: 5,
				ServerItem:    serverItem,
			},
		}
	}

	_, err := env.manager.Enqueue(ctx, contentOp(t, "n1", "client text", 3))
	require.NoError(t, err)
	env.manager.online.Store(true)

	require.Error(t, env.manager.Drain(ctx))

	assert.Equal(t, 0, env.manager.Pending())
	// Конфликт не попадает в failed log: его разрешает пользователь
	assert.Empty(t, *env.failed)
	assert.Empty(t, env.notifier.SyncFailedCalls())
	require.Len(t, env.notifier.ConflictDetectedCalls(), 1)
	conflict := env.notifier.ConflictDetectedCalls()[0].Conflict
	assert.Equal(t, "n1", conflict.ItemID)
	assert.Equal(t, int64(3), conflict.ClientVersion)
	assert.Equal(t, int64(5), conflict.ServerVersion)
}

func TestDrain_SnapshotSemantics(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	var patched []string
	env.client.PatchContentFunc = func(ctx context.Context, token, id string, req api.ContentPatchRequest) (*api.ItemPayload, error) {
		patched = append(patched, id)
		if id == "a" {
			// Во время обработки первого элемента появляется новый
			_, err := env.manager.Enqueue(ctx, contentOp(t, "late", "x", 1))
			require.NoError(t, err)
		}
		return &api.ItemPayload{ID: id, Version: 2}, nil
	}

	_, err := env.manager.Enqueue(ctx, contentOp(t, "a", "x", 1))
	require.NoError(t, err)
	env.manager.online.Store(true)

	require.NoError(t, env.manager.Drain(ctx))

	// Добавленный во время прохода элемент ждёт следующего
	assert.Equal(t, []string{"a"}, patched)
	assert.Equal(t, 1, env.manager.Pending())

	require.NoError(t, env.manager.Drain(ctx))
	assert.Equal(t, []string{"a", "late"}, patched)
	assert.Equal(t, 0, env.manager.Pending())
}

func TestSetOnline_TransitionDrains(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.client.PatchContentFunc = func(ctx context.Context, token, id string, req api.ContentPatchRequest) (*api.ItemPayload, error) {
		return &api.ItemPayload{ID: id, Version: 2}, nil
	}

	_, err := env.manager.Enqueue(ctx, contentOp(t, "n1", "x", 1))
	require.NoError(t, err)

	env.manager.SetOnline(ctx, true)
	assert.Equal(t, 0, env.manager.Pending())

	// Повторный SetOnline(true) не запускает лишний проход
	env.manager.SetOnline(ctx, true)
	assert.Len(t, env.client.PatchContentCalls(), 1)
}

func TestLoad_RestoresQueueAndPrunesFailed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	*env.queue = []models.SyncQueueItem{
		{ID: "q1", Operation: contentOp(t, "n1", "x", 1), MaxAttempts: 3},
	}
	*env.failed = []models.FailedSyncItem{
		{SyncQueueItem: models.SyncQueueItem{ID: "old"}, FailedAt: time.Now().Add(-8 * 24 * time.Hour)},
		{SyncQueueItem: models.SyncQueueItem{ID: "fresh"}, FailedAt: time.Now().Add(-time.Hour)},
	}

	require.NoError(t, env.manager.Load(ctx))

	assert.Equal(t, 1, env.manager.Pending())
	require.Len(t, *env.failed, 1)
	assert.Equal(t, "fresh", (*env.failed)[0].ID)
}

func TestExecute_UnknownOperationType(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.manager.Enqueue(ctx, models.SyncOperation{Type: "UNKNOWN_OP", Data: json.RawMessage(`{}`)})
	require.NoError(t, err)
	env.manager.online.Store(true)

	require.Error(t, env.manager.Drain(ctx))

	// Неизвестный тип — постоянная ошибка, сразу в failed log
	assert.Equal(t, 0, env.manager.Pending())
	assert.Len(t, *env.failed, 1)
}

func TestExecute_TokenFailureIsTransient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.manager.tokens = &TokenProviderMock{
		AccessTokenFunc: func(ctx context.Context) (string, error) {
			return "", storage.ErrSessionNotFound
		},
	}

	_, err := env.manager.Enqueue(ctx, contentOp(t, "n1", "x", 1))
	require.NoError(t, err)
	env.manager.online.Store(true)

	require.Error(t, env.manager.Drain(ctx))

	// Элемент остаётся в очереди до следующей попытки
	assert.Equal(t, 1, env.manager.Pending())
	assert.Equal(t, 1, (*env.queue)[0].Attempts)
}

func TestDrain_ContentSuccessUpdatesCache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.tree.Put(&models.Note{ID: "n1", Title: "note", Content: "old", Version: 1})

	env.client.PatchContentFunc = func(ctx context.Context, token, id string, req api.ContentPatchRequest) (*api.ItemPayload, error) {
		return &api.ItemPayload{ID: id, Content: req.Content, Version: req.ExpectedVersion + 1}, nil
	}

	_, err := env.manager.Enqueue(ctx, contentOp(t, "n1", "new text", 1))
	require.NoError(t, err)
	env.manager.online.Store(true)
	require.NoError(t, env.manager.Drain(ctx))

	note, ok := env.tree.Get("n1")
	require.True(t, ok)
	assert.Equal(t, "new text", note.Content)
	assert.Equal(t, int64(2), note.Version)
}

func TestDrain_NoteCreatePutsServerCopy(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.client.CreateNoteFunc = func(ctx context.Context, token string, req api.NoteRequest) (*api.NoteResponse, error) {
		return &api.NoteResponse{
			ID:      req.ID,
			Title:   req.Title,
			Content: req.Content,
			Version: 1,
		}, nil
	}

	op := noteOp(t, models.OpCreateNote, models.Note{ID: "n1", Title: "shopping", Content: "milk"})
	_, err := env.manager.Enqueue(ctx, op)
	require.NoError(t, err)
	env.manager.online.Store(true)
	require.NoError(t, env.manager.Drain(ctx))

	note, ok := env.tree.Get("n1")
	require.True(t, ok)
	assert.Equal(t, "shopping", note.Title)
	assert.Equal(t, int64(1), note.Version)
}

func TestStartDestroy(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	env.manager.Start(ctx)
	env.manager.Destroy()
	// Повторный Destroy безопасен
	env.manager.Destroy()
}
