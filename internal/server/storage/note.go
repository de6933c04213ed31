package storage

import (
	"context"

	"github.com/iudanet/gophnotes/internal/models"
)

// ContentWrite описывает версионированную запись контента заметки.
// ExpectedVersion == 0 означает запись без проверки версии.
// Пустой Direction оставляет сохраненное направление без изменений.
type ContentWrite struct {
	Content         string
	Direction       string
	ExpectedVersion int64
}

// NoteStorage defines interface for note persistence.
// Every write bumps the note version by exactly one.
type NoteStorage interface {
	// CreateNote inserts a new note with version 1.
	// The stored version and timestamps are written back into note.
	CreateNote(ctx context.Context, note *models.Note) error

	// GetNote retrieves a single note owned by userID
	// Returns ErrNoteNotFound if note doesn't exist or is deleted
	GetNote(ctx context.Context, userID, id string) (*models.Note, error)

	// ListNotes retrieves all non-deleted notes for a user
	// Returns empty slice if no notes found
	ListNotes(ctx context.Context, userID string) ([]*models.Note, error)

	// UpdateNote updates note fields and bumps version.
	// Returns the stored note, ErrNoteNotFound if note doesn't exist
	UpdateNote(ctx context.Context, note *models.Note) (*models.Note, error)

	// UpdateContent performs a versioned content write: the update is
	// applied only if the stored version equals write.ExpectedVersion
	// (or ExpectedVersion is 0). Returns ErrVersionMismatch when the
	// stored version differs, ErrNoteNotFound when the note is missing.
	UpdateContent(ctx context.Context, userID, id string, write ContentWrite) (*models.Note, error)

	// DeleteNote marks note as deleted (soft delete) and bumps version
	// Returns ErrNoteNotFound if note doesn't exist
	DeleteNote(ctx context.Context, userID, id string) error
}
