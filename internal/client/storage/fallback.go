package storage

import (
	"context"
	"errors"
	"log/slog"
)

// FallbackKV связывает основное хранилище с резервным.
// Любая ошибка основного хранилища логируется и операция молча уходит
// в резервное, поэтому остальной движок может считать, что storage
// "всегда работает". Типичная цепочка: BoltDB -> in-memory.
type FallbackKV struct {
	primary  KV
	fallback KV
	logger   *slog.Logger
}

// NewFallbackKV creates a KV that degrades to fallback on primary errors
func NewFallbackKV(primary, fallback KV, logger *slog.Logger) *FallbackKV {
	return &FallbackKV{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Get читает из основного хранилища; при ошибке (кроме отсутствия ключа)
// пробует резервное.
func (f *FallbackKV) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	value, err := f.primary.Get(ctx, namespace, key)
	if err == nil {
		return value, nil
	}
	if errors.Is(err, ErrKeyNotFound) {
		// Ключа нет в primary — ищем в fallback (мог попасть туда
		// во время деградации)
		return f.fallback.Get(ctx, namespace, key)
	}

	f.logger.Warn("primary storage get failed, using fallback",
		"namespace", namespace,
		"key", key,
		"error", err)

	return f.fallback.Get(ctx, namespace, key)
}

// Set пишет в основное хранилище; при ошибке — в резервное.
// Резервная запись дублируется всегда, чтобы Get при деградации
// видел актуальное значение.
func (f *FallbackKV) Set(ctx context.Context, namespace, key string, value []byte) error {
	if err := f.primary.Set(ctx, namespace, key, value); err != nil {
		f.logger.Warn("primary storage set failed, using fallback",
			"namespace", namespace,
			"key", key,
			"error", err)
	}

	return f.fallback.Set(ctx, namespace, key, value)
}

// Remove удаляет из обоих хранилищ
func (f *FallbackKV) Remove(ctx context.Context, namespace, key string) error {
	if err := f.primary.Remove(ctx, namespace, key); err != nil {
		f.logger.Warn("primary storage remove failed",
			"namespace", namespace,
			"key", key,
			"error", err)
	}

	return f.fallback.Remove(ctx, namespace, key)
}
