// Package sync реализует очередь отложенных операций синхронизации.
//
// Все изменения, сделанные пользователем, попадают в очередь и доставляются
// на сервер строго в порядке добавления. Очередь переживает перезапуск
// клиента: каждое изменение немедленно сохраняется в локальное хранилище.
package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	httpClient "github.com/iudanet/gophnotes/internal/client/api"
	"github.com/iudanet/gophnotes/internal/client/cache"
	"github.com/iudanet/gophnotes/internal/client/storage"
	"github.com/iudanet/gophnotes/internal/models"
	"github.com/iudanet/gophnotes/pkg/api"
)

// drainInterval — период фоновой попытки разгрузить очередь.
const drainInterval = 30 * time.Second

// Manager владеет очередью операций и журналом окончательных сбоев.
//
// Очередь разгружается в трёх случаях: при добавлении операции в онлайне,
// при переходе из офлайна в онлайн и по фоновому таймеру. В офлайне
// операции только накапливаются.
type Manager struct {
	client      httpClient.ClientAPI
	queueStore  storage.QueueStorage
	failedStore storage.FailedStorage
	tokens      TokenProvider
	tree        *cache.Tree
	notifier    Notifier
	logger      *slog.Logger

	mu       sync.Mutex
	queue    []models.SyncQueueItem
	draining bool

	online atomic.Bool

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewManager создает менеджер очереди. notifier может быть nil.
func NewManager(
	client httpClient.ClientAPI,
	queueStore storage.QueueStorage,
	failedStore storage.FailedStorage,
	tokens TokenProvider,
	tree *cache.Tree,
	notifier Notifier,
	logger *slog.Logger,
) *Manager {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Manager{
		client:      client,
		queueStore:  queueStore,
		failedStore: failedStore,
		tokens:      tokens,
		tree:        tree,
		notifier:    notifier,
		logger:      logger,
		stopCh:      make(chan struct{}),
	}
}

// Load восстанавливает очередь из хранилища и чистит журнал сбоев
// от записей старше срока хранения. Вызывается один раз при старте.
func (m *Manager) Load(ctx context.Context) error {
	queue, err := m.queueStore.LoadQueue(ctx)
	if err != nil {
		return fmt.Errorf("load queue: %w", err)
	}

	m.mu.Lock()
	m.queue = queue
	m.mu.Unlock()

	if err := m.pruneFailed(ctx); err != nil {
		return err
	}

	m.logger.Info("sync queue loaded", "pending", len(queue))
	return nil
}

func (m *Manager) pruneFailed(ctx context.Context) error {
	failed, err := m.failedStore.LoadFailed(ctx)
	if err != nil {
		return fmt.Errorf("load failed log: %w", err)
	}

	now := time.Now()
	kept := failed[:0]
	for _, item := range failed {
		if !item.Expired(now) {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(failed) {
		return nil
	}

	if err := m.failedStore.SaveFailed(ctx, kept); err != nil {
		return fmt.Errorf("save failed log: %w", err)
	}
	m.logger.Info("expired failed syncs pruned", "removed", len(failed)-len(kept))
	return nil
}

// Enqueue добавляет операцию в хвост очереди, сохраняет очередь
// и, если клиент в онлайне, сразу пытается её разгрузить.
// Возвращает идентификатор элемента очереди.
func (m *Manager) Enqueue(ctx context.Context, op models.SyncOperation) (string, error) {
	item := models.SyncQueueItem{
		Timestamp:   time.Now(),
		ID:          uuid.New().String(),
		Operation:   op,
		Attempts:    0,
		MaxAttempts: models.DefaultMaxAttempts,
	}

	m.mu.Lock()
	m.queue = append(m.queue, item)
	snapshot := make([]models.SyncQueueItem, len(m.queue))
	copy(snapshot, m.queue)
	m.mu.Unlock()

	if err := m.queueStore.SaveQueue(ctx, snapshot); err != nil {
		return "", fmt.Errorf("save queue: %w", err)
	}

	if m.online.Load() {
		if err := m.Drain(ctx); err != nil {
			m.logger.Warn("drain after enqueue failed", "error", err)
		}
	}
	return item.ID, nil
}

// Drain проходит по снимку очереди в порядке FIFO и выполняет операции.
// Элементы, добавленные во время прохода, будут обработаны следующим.
// В офлайне разгрузка не выполняется. Повторный вызов во время
// активного прохода возвращается сразу.
func (m *Manager) Drain(ctx context.Context) error {
	if !m.online.Load() {
		return nil
	}

	m.mu.Lock()
	if m.draining {
		m.mu.Unlock()
		return nil
	}
	m.draining = true
	snapshot := make([]models.SyncQueueItem, len(m.queue))
	copy(snapshot, m.queue)
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.draining = false
		m.mu.Unlock()
	}()

	var firstErr error
	for _, item := range snapshot {
		outcome := m.process(ctx, item)
		if outcome != nil && firstErr == nil {
			firstErr = outcome
		}
		if ctx.Err() != nil {
			break
		}
	}

	m.mu.Lock()
	persisted := make([]models.SyncQueueItem, len(m.queue))
	copy(persisted, m.queue)
	m.mu.Unlock()

	if err := m.queueStore.SaveQueue(ctx, persisted); err != nil {
		return fmt.Errorf("save queue: %w", err)
	}
	if err := m.queueStore.SaveLastSyncTime(ctx, time.Now()); err != nil {
		return fmt.Errorf("save last sync time: %w", err)
	}
	return firstErr
}

// process выполняет одну операцию и решает её судьбу в очереди.
func (m *Manager) process(ctx context.Context, item models.SyncQueueItem) error {
	err := m.execute(ctx, item.Operation)
	if err == nil {
		m.remove(item.ID)
		return nil
	}

	if conflict, ok := httpClient.AsConflict(err); ok {
		// Конфликт версий не повторяется: его разрешает пользователь,
		// а не очередь.
		m.remove(item.ID)
		m.logger.Warn("version conflict detected",
			"queue_id", item.ID,
			"item_id", conflict.Conflict.ItemID,
		)
		m.notifier.ConflictDetected(conflict.Conflict)
		return err
	}

	if httpClient.IsTransient(err) {
		item.Attempts++
		if item.Exhausted() {
			m.remove(item.ID)
			m.logger.Error("sync attempts exhausted",
				"queue_id", item.ID,
				"type", item.Operation.Type,
				"attempts", item.Attempts,
			)
			m.moveToFailed(ctx, item)
			return err
		}
		m.updateAttempts(item.ID, item.Attempts)
		m.logger.Warn("sync attempt failed, will retry",
			"queue_id", item.ID,
			"attempts", item.Attempts,
			"error", err,
		)
		return err
	}

	// Постоянная ошибка: повторы бессмысленны.
	m.remove(item.ID)
	m.logger.Error("sync rejected by server",
		"queue_id", item.ID,
		"type", item.Operation.Type,
		"error", err,
	)
	m.moveToFailed(ctx, item)
	return err
}

func (m *Manager) moveToFailed(ctx context.Context, item models.SyncQueueItem) {
	failed := models.FailedSyncItem{
		SyncQueueItem: item,
		FailedAt:      time.Now(),
	}

	existing, err := m.failedStore.LoadFailed(ctx)
	if err != nil {
		m.logger.Error("load failed log", "error", err)
		existing = nil
	}
	existing = append(existing, failed)
	if err := m.failedStore.SaveFailed(ctx, existing); err != nil {
		m.logger.Error("save failed log", "error", err)
	}
	m.notifier.SyncFailed(failed)
}

// execute отправляет операцию на сервер и применяет результат к кэшу.
func (m *Manager) execute(ctx context.Context, op models.SyncOperation) error {
	token, err := m.tokens.AccessToken(ctx)
	if err != nil {
		// Без токена сеть недостижима по определению: повторим позже.
		return &httpClient.TransientError{Err: fmt.Errorf("access token: %w", err)}
	}

	switch op.Type {
	case models.OpCreateNote, models.OpUpdateNote:
		var note models.Note
		if err := json.Unmarshal(op.Data, &note); err != nil {
			return &httpClient.PermanentError{Message: fmt.Sprintf("decode note payload: %v", err)}
		}
		return m.syncNote(ctx, token, op.Type, &note)
	case models.OpUpdateContent:
		var upd models.ContentUpdate
		if err := json.Unmarshal(op.Data, &upd); err != nil {
			return &httpClient.PermanentError{Message: fmt.Sprintf("decode content payload: %v", err)}
		}
		return m.syncContent(ctx, token, upd)
	case models.OpDeleteNote:
		var del models.Deletion
		if err := json.Unmarshal(op.Data, &del); err != nil {
			return &httpClient.PermanentError{Message: fmt.Sprintf("decode deletion payload: %v", err)}
		}
		if err := m.client.DeleteNote(ctx, token, del.ID); err != nil {
			return err
		}
		m.tree.Remove(del.ID)
		return nil
	case models.OpCreateTask, models.OpUpdateTask:
		var task models.Task
		if err := json.Unmarshal(op.Data, &task); err != nil {
			return &httpClient.PermanentError{Message: fmt.Sprintf("decode task payload: %v", err)}
		}
		return m.syncTask(ctx, token, op.Type, &task)
	case models.OpDeleteTask:
		var del models.Deletion
		if err := json.Unmarshal(op.Data, &del); err != nil {
			return &httpClient.PermanentError{Message: fmt.Sprintf("decode deletion payload: %v", err)}
		}
		return m.client.DeleteTask(ctx, token, del.ID)
	default:
		return &httpClient.PermanentError{Message: fmt.Sprintf("unknown operation type %q", op.Type)}
	}
}

func (m *Manager) syncNote(ctx context.Context, token string, opType models.OperationType, note *models.Note) error {
	req := api.NoteRequest{
		ID:        note.ID,
		ParentID:  note.ParentID,
		Title:     note.Title,
		Content:   note.Content,
		Direction: note.Direction,
	}

	var (
		resp *api.NoteResponse
		err  error
	)
	if opType == models.OpCreateNote {
		resp, err = m.client.CreateNote(ctx, token, req)
	} else {
		resp, err = m.client.UpdateNote(ctx, token, note.ID, req)
	}
	if err != nil {
		return err
	}

	// Сервер — источник истины для версии и времён.
	m.tree.Put(&models.Note{
		CreatedAt: resp.CreatedAt,
		UpdatedAt: resp.UpdatedAt,
		ID:        resp.ID,
		ParentID:  resp.ParentID,
		Title:     resp.Title,
		Content:   resp.Content,
		Direction: resp.Direction,
		Version:   resp.Version,
		Deleted:   resp.Deleted,
	})
	return nil
}

func (m *Manager) syncContent(ctx context.Context, token string, upd models.ContentUpdate) error {
	req := api.ContentPatchRequest{
		Content:         upd.Content,
		Direction:       upd.Direction,
		ExpectedVersion: upd.ExpectedVersion,
	}
	resp, err := m.client.PatchContent(ctx, token, upd.ID, req)
	if err != nil {
		return err
	}
	m.tree.ApplyContent(upd.ID, upd.Content, upd.Direction, resp.Version)
	return nil
}

func (m *Manager) syncTask(ctx context.Context, token string, opType models.OperationType, task *models.Task) error {
	req := api.TaskRequest{
		DueDate: task.DueDate,
		ID:      task.ID,
		NoteID:  task.NoteID,
		Title:   task.Title,
		Done:    task.Done,
	}
	if opType == models.OpCreateTask {
		_, err := m.client.CreateTask(ctx, token, req)
		return err
	}
	_, err := m.client.UpdateTask(ctx, token, task.ID, req)
	return err
}

// remove убирает элемент очереди по идентификатору.
func (m *Manager) remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.queue {
		if it.ID == id {
			m.queue = append(m.queue[:i], m.queue[i+1:]...)
			return
		}
	}
}

// updateAttempts записывает счётчик попыток обратно в очередь.
func (m *Manager) updateAttempts(id string, attempts int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.queue {
		if m.queue[i].ID == id {
			m.queue[i].Attempts = attempts
			return
		}
	}
}

// SetOnline меняет состояние сети. Переход из офлайна в онлайн
// запускает разгрузку очереди.
func (m *Manager) SetOnline(ctx context.Context, online bool) {
	wasOnline := m.online.Swap(online)
	if online && !wasOnline {
		m.logger.Info("connection restored, draining queue")
		if err := m.Drain(ctx); err != nil {
			m.logger.Warn("drain after reconnect failed", "error", err)
		}
	}
}

// Online сообщает текущее состояние сети.
func (m *Manager) Online() bool {
	return m.online.Load()
}

// Start запускает фоновый таймер разгрузки очереди.
func (m *Manager) Start(ctx context.Context) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(drainInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-m.stopCh:
				return
			case <-ticker.C:
				if err := m.Drain(ctx); err != nil {
					m.logger.Warn("periodic drain failed", "error", err)
				}
			}
		}
	}()
}

// Destroy останавливает фоновый таймер и дожидается его завершения.
func (m *Manager) Destroy() {
	m.stopOnce.Do(func() { close(m.stopCh) })
	m.wg.Wait()
}

// Pending возвращает число операций, ожидающих отправки.
func (m *Manager) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// Failed возвращает журнал окончательных сбоев.
func (m *Manager) Failed(ctx context.Context) ([]models.FailedSyncItem, error) {
	return m.failedStore.LoadFailed(ctx)
}

// LastSyncTime возвращает время последней разгрузки очереди.
func (m *Manager) LastSyncTime(ctx context.Context) (time.Time, error) {
	return m.queueStore.GetLastSyncTime(ctx)
}
