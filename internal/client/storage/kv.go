package storage

import "context"

// Namespaces хранилища. Каждый namespace — изолированное пространство ключей
// (bucket в BoltDB, map в in-memory реализации).
const (
	NamespaceSyncQueue   = "syncQueue"   // очередь синхронизации
	NamespaceFailedSyncs = "failedSyncs" // failed log
	NamespaceAuth        = "auth"        // сессия клиента
	NamespaceNotes       = "notes"       // локальный кэш заметок
)

// Ключи внутри namespaces
const (
	KeyQueue        = "queue"        // сериализованная очередь (NamespaceSyncQueue)
	KeyLastSyncTime = "lastSyncTime" // время последнего прохода drain (NamespaceSyncQueue)
	KeyFailedItems  = "items"        // сериализованный failed log (NamespaceFailedSyncs)
	KeySession      = "session"      // сериализованная сессия (NamespaceAuth)
	KeyNoteItems    = "items"        // сериализованный снимок заметок (NamespaceNotes)
)

//go:generate moq -out kv_mock.go . KV

// KV defines the low-level durable key/value contract.
// Implementations must survive process restarts (BoltDB) or explicitly
// document that they do not (in-memory fallback).
type KV interface {
	// Get retrieves the value for key within namespace.
	// Returns ErrKeyNotFound if no value exists.
	Get(ctx context.Context, namespace, key string) ([]byte, error)

	// Set stores the value for key within namespace,
	// creating the namespace if needed.
	Set(ctx context.Context, namespace, key string, value []byte) error

	// Remove deletes the value for key within namespace.
	// Removing a missing key is not an error.
	Remove(ctx context.Context, namespace, key string) error
}
