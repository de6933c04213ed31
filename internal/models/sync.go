package models

import (
	"encoding/json"
	"time"
)

// OperationType тип отложенной мутации
type OperationType string

// Типы операций синхронизации
const (
	OpCreateNote    OperationType = "CREATE_NOTE"
	OpUpdateNote    OperationType = "UPDATE_NOTE"
	OpUpdateContent OperationType = "UPDATE_CONTENT"
	OpDeleteNote    OperationType = "DELETE_NOTE"
	OpCreateTask    OperationType = "CREATE_TASK"
	OpUpdateTask    OperationType = "UPDATE_TASK"
	OpDeleteTask    OperationType = "DELETE_TASK"
)

// DefaultMaxAttempts — число попыток отправки операции до перемещения
// в failed log
const DefaultMaxAttempts = 3

// FailedItemRetention — срок хранения записей в failed log
const FailedItemRetention = 7 * 24 * time.Hour

// SyncOperation представляет одну отложенную мутацию.
// Data содержит JSON payload, зависящий от Type:
// Note для *_NOTE, Task для *_TASK, ContentUpdate для UPDATE_CONTENT,
// Deletion для DELETE_*.
// Операция неизменяема после создания.
type SyncOperation struct {
	Type OperationType   `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ContentUpdate — payload операции UPDATE_CONTENT
type ContentUpdate struct {
	ID              string `json:"id"`                         // ID элемента
	Content         string `json:"content"`                    // новый контент
	Direction       string `json:"direction,omitempty"`        // направление текста
	ExpectedVersion int64  `json:"expected_version,omitempty"` // версия, на которой основана правка
}

// Deletion — payload операций DELETE_NOTE / DELETE_TASK
type Deletion struct {
	ID string `json:"id"`
}

// SyncQueueItem представляет элемент очереди синхронизации.
// Создается, когда мутация не может быть отправлена немедленно;
// изменяется только инкрементом Attempts; удаляется при успехе или
// после исчерпания MaxAttempts (тогда превращается в FailedSyncItem).
type SyncQueueItem struct {
	Timestamp   time.Time     `json:"timestamp"`    // время создания
	ID          string        `json:"id"`           // UUID элемента очереди
	Operation   SyncOperation `json:"operation"`    // отложенная операция
	Attempts    int           `json:"attempts"`     // число неудачных попыток
	MaxAttempts int           `json:"max_attempts"` // лимит попыток (default 3)
}

// Exhausted сообщает, что элемент исчерпал все попытки отправки
func (i *SyncQueueItem) Exhausted() bool {
	max := i.MaxAttempts
	if max <= 0 {
		max = DefaultMaxAttempts
	}
	return i.Attempts >= max
}

// FailedSyncItem — элемент очереди, исчерпавший все попытки.
// Хранится отдельно от живой очереди в течение FailedItemRetention.
type FailedSyncItem struct {
	SyncQueueItem
	FailedAt time.Time `json:"failed_at"` // время перемещения в failed log
}

// Expired сообщает, что запись пережила срок хранения failed log
func (f *FailedSyncItem) Expired(now time.Time) bool {
	return now.Sub(f.FailedAt) > FailedItemRetention
}

// PendingEdit — несохраненная правка активной editor-сессии.
// Существует ровно одна на сессию; перезаписывается при каждом
// изменении контента; очищается при успешном сохранении или reset.
type PendingEdit struct {
	ID              string `json:"id"`               // ID редактируемого элемента
	Content         string `json:"content"`          // текущий (несохраненный) контент
	Direction       string `json:"direction"`        // направление текста
	ExpectedVersion int64  `json:"expected_version"` // версия, на которой основана правка
}

// Clone создает копию правки
func (e *PendingEdit) Clone() *PendingEdit {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

// VersionConflict создается, когда сервер отклоняет запись из-за
// несовпадения версий. Потребляется разрешением конфликта
// (accept server / force client), после чего отбрасывается.
type VersionConflict struct {
	ServerItem    *Item  `json:"server_item"`    // актуальное состояние на сервере
	ItemID        string `json:"item_id"`        // ID конфликтующего элемента
	ClientVersion int64  `json:"client_version"` // версия, на которой основана правка клиента
	ServerVersion int64  `json:"server_version"` // текущая версия на сервере
}

// SaveState — состояние editor-сессии с точки зрения сохранения
type SaveState string

// Состояния save scheduler
const (
	SaveStateIdle     SaveState = "idle"     // нет несохраненных изменений
	SaveStatePending  SaveState = "pending"  // есть правка, сохранение не начато
	SaveStateSaving   SaveState = "saving"   // сохранение в полете
	SaveStateSaved    SaveState = "saved"    // последняя правка сохранена
	SaveStateError    SaveState = "error"    // сохранение завершилось ошибкой
	SaveStateConflict SaveState = "conflict" // сервер сообщил о конфликте версий
)
