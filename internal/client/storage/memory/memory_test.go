package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophnotes/internal/client/storage"
)

func TestStorage_SetGetRemove(t *testing.T) {
	store := New()
	ctx := context.Background()

	_, err := store.Get(ctx, "ns", "key")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "ns", "key", []byte("value")))

	value, err := store.Get(ctx, "ns", "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)

	require.NoError(t, store.Remove(ctx, "ns", "key"))

	_, err = store.Get(ctx, "ns", "key")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// Удаление несуществующего ключа — не ошибка
	assert.NoError(t, store.Remove(ctx, "other", "key"))
}

func TestStorage_CopiesValues(t *testing.T) {
	store := New()
	ctx := context.Background()

	original := []byte("value")
	require.NoError(t, store.Set(ctx, "ns", "key", original))

	// Изменение исходного буфера не должно влиять на хранимое значение
	original[0] = 'X'

	stored, err := store.Get(ctx, "ns", "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), stored)

	// Изменение прочитанного значения не должно влиять на хранилище
	stored[0] = 'Y'

	again, err := store.Get(ctx, "ns", "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), again)
}

func TestStorage_NamespaceIsolation(t *testing.T) {
	store := New()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "nsA", "key", []byte("a")))
	require.NoError(t, store.Set(ctx, "nsB", "key", []byte("b")))

	a, err := store.Get(ctx, "nsA", "key")
	require.NoError(t, err)
	b, err := store.Get(ctx, "nsB", "key")
	require.NoError(t, err)

	assert.Equal(t, []byte("a"), a)
	assert.Equal(t, []byte("b"), b)
}
