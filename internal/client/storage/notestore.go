package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/gophnotes/internal/models"
)

//go:generate moq -out notestore_mock.go . NotesStorage

// NotesStorage defines persistence for the local notes cache.
// Снимок сохраняется целиком: кэш невелик, а атомарность записи проще,
// чем поэлементные обновления.
type NotesStorage interface {
	// SaveNotes persists the full notes snapshot
	SaveNotes(ctx context.Context, notes []models.Note) error

	// LoadNotes retrieves the notes snapshot; empty if none was saved
	LoadNotes(ctx context.Context) ([]models.Note, error)
}

// NotesStore реализует NotesStorage поверх KV
type NotesStore struct {
	kv KV
}

// NewNotesStore creates notes persistence on top of a KV store
func NewNotesStore(kv KV) *NotesStore {
	return &NotesStore{kv: kv}
}

// SaveNotes persists the full notes snapshot
func (s *NotesStore) SaveNotes(ctx context.Context, notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}

	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("failed to marshal notes: %w", err)
	}

	if err := s.kv.Set(ctx, NamespaceNotes, KeyNoteItems, data); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}

	return nil
}

// LoadNotes retrieves the notes snapshot
func (s *NotesStore) LoadNotes(ctx context.Context) ([]models.Note, error) {
	data, err := s.kv.Get(ctx, NamespaceNotes, KeyNoteItems)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return []models.Note{}, nil
		}
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}

	var notes []models.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notes: %w", err)
	}

	return notes, nil
}
