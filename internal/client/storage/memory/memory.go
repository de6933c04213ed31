package memory

import (
	"context"
	"sync"

	"github.com/iudanet/gophnotes/internal/client/storage"
)

// Storage — in-memory реализация storage.KV.
// Не переживает перезапуск процесса; используется как резервное
// хранилище при деградации BoltDB и в тестах.
type Storage struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		data: make(map[string]map[string][]byte),
	}
}

// Get retrieves the value for key within namespace
func (s *Storage) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ns, ok := s.data[namespace]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}

	value, ok := ns[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}

	// Копируем, чтобы вызывающий не мог изменить хранимое значение
	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

// Set stores the value for key within namespace
func (s *Storage) Set(ctx context.Context, namespace, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.data[namespace]
	if !ok {
		ns = make(map[string][]byte)
		s.data[namespace] = ns
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	ns[key] = stored
	return nil
}

// Remove deletes the value for key within namespace
func (s *Storage) Remove(ctx context.Context, namespace, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ns, ok := s.data[namespace]; ok {
		delete(ns, key)
	}
	return nil
}
