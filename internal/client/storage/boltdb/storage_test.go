package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/gophnotes/internal/client/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestNew_Success(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "testdb.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Проверяем, что базовые buckets существуют
	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, ns := range defaultNamespaces {
			if tx.Bucket([]byte(ns)) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	ctx := context.Background()
	// Путь с нулевым символом даст ошибку открытия
	invalidPath := string([]byte{0})
	store, err := New(ctx, invalidPath)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestStorage_SetGet(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	err := store.Set(ctx, storage.NamespaceSyncQueue, storage.KeyQueue, []byte(`[]`))
	require.NoError(t, err)

	value, err := store.Get(ctx, storage.NamespaceSyncQueue, storage.KeyQueue)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), value)
}

func TestStorage_Get_NotFound(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	_, err := store.Get(ctx, storage.NamespaceSyncQueue, "missing")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// Неизвестный namespace тоже дает ErrKeyNotFound
	_, err = store.Get(ctx, "unknown", "missing")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestStorage_Set_CreatesNamespace(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	err := store.Set(ctx, "customNamespace", "key", []byte("value"))
	require.NoError(t, err)

	value, err := store.Get(ctx, "customNamespace", "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)
}

func TestStorage_Remove(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.NamespaceAuth, storage.KeySession, []byte("{}")))
	require.NoError(t, store.Remove(ctx, storage.NamespaceAuth, storage.KeySession))

	_, err := store.Get(ctx, storage.NamespaceAuth, storage.KeySession)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// Повторное удаление и удаление из неизвестного namespace — не ошибка
	assert.NoError(t, store.Remove(ctx, storage.NamespaceAuth, storage.KeySession))
	assert.NoError(t, store.Remove(ctx, "unknown", "key"))
}

func TestStorage_SurvivesReopen(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "testdb.db")
	ctx := context.Background()

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.NamespaceSyncQueue, storage.KeyQueue, []byte(`[{"id":"q1"}]`)))
	require.NoError(t, store.Close())

	// Данные должны пережить переоткрытие файла
	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	value, err := reopened.Get(ctx, storage.NamespaceSyncQueue, storage.KeyQueue)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"q1"}]`), value)
}
