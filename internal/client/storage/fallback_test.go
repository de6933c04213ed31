package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFallbackKV_PrimaryHealthy(t *testing.T) {
	primary := newMapKV()
	fallback := newMapKV()
	kv := NewFallbackKV(primary, fallback, discardLogger())
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "ns", "key", []byte("value")))

	value, err := kv.Get(ctx, "ns", "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)

	// Запись продублирована в fallback, чтобы Get работал при деградации
	shadow, err := fallback.Get(ctx, "ns", "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), shadow)
}

func TestFallbackKV_PrimarySetFails(t *testing.T) {
	primaryErr := errors.New("bolt: database closed")
	primary := &KVMock{
		SetFunc: func(ctx context.Context, namespace, key string, value []byte) error {
			return primaryErr
		},
		GetFunc: func(ctx context.Context, namespace, key string) ([]byte, error) {
			return nil, primaryErr
		},
	}
	fallback := newMapKV()
	kv := NewFallbackKV(primary, fallback, discardLogger())
	ctx := context.Background()

	// Ошибка primary не видна вызывающему
	require.NoError(t, kv.Set(ctx, "ns", "key", []byte("value")))

	value, err := kv.Get(ctx, "ns", "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)
}

func TestFallbackKV_Get_MissingEverywhere(t *testing.T) {
	kv := NewFallbackKV(newMapKV(), newMapKV(), discardLogger())

	_, err := kv.Get(context.Background(), "ns", "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFallbackKV_Remove_PrimaryFails(t *testing.T) {
	primaryErr := errors.New("bolt: database closed")
	primary := &KVMock{
		RemoveFunc: func(ctx context.Context, namespace, key string) error {
			return primaryErr
		},
	}
	fallback := newMapKV()
	ctx := context.Background()
	require.NoError(t, fallback.Set(ctx, "ns", "key", []byte("value")))

	kv := NewFallbackKV(primary, fallback, discardLogger())
	require.NoError(t, kv.Remove(ctx, "ns", "key"))

	_, err := fallback.Get(ctx, "ns", "key")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
