package sqlite

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophnotes/internal/models"
	"github.com/iudanet/gophnotes/internal/server/storage"
)

func TestNoteStorage_CreateNote(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	note := &models.Note{
		ID:      uuid.New().String(),
		UserID:  userID,
		Title:   "First note",
		Content: "hello",
	}

	require.NoError(t, s.CreateNote(ctx, note))
	assert.Equal(t, int64(1), note.Version)

	retrieved, err := s.GetNote(ctx, userID, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "First note", retrieved.Title)
	assert.Equal(t, "hello", retrieved.Content)
	assert.Equal(t, int64(1), retrieved.Version)
}

func TestNoteStorage_GetNote_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	_, err := s.GetNote(ctx, userID, "nonexistent-id")
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)
}

func TestNoteStorage_GetNote_OwnerIsolation(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	owner := createTestUser(t, ctx, s)
	stranger := createTestUser(t, ctx, s)

	note := createTestNote(t, ctx, s, owner, "private")

	// Чужая заметка недоступна
	_, err := s.GetNote(ctx, stranger, note.ID)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)
}

func TestNoteStorage_ListNotes(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	createTestNote(t, ctx, s, userID, "one")
	createTestNote(t, ctx, s, userID, "two")
	deletedNote := createTestNote(t, ctx, s, userID, "gone")
	require.NoError(t, s.DeleteNote(ctx, userID, deletedNote.ID))

	notes, err := s.ListNotes(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, notes, 2)
}

func TestNoteStorage_UpdateNote_BumpsVersion(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	note := createTestNote(t, ctx, s, userID, "draft")

	note.Title = "final"
	updated, err := s.UpdateNote(ctx, note)
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, int64(2), updated.Version)
}

func TestNoteStorage_UpdateContent(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	note := createTestNote(t, ctx, s, userID, "versioned")

	tests := []struct {
		wantError   error
		name        string
		content     string
		expected    int64
		wantVersion int64
	}{
		{
			name:        "matching expected version",
			content:     "v2 content",
			expected:    1,
			wantVersion: 2,
		},
		{
			name:      "stale expected version",
			content:   "lost write",
			expected:  1,
			wantError: storage.ErrVersionMismatch,
		},
		{
			name:        "force write without version check",
			content:     "forced",
			expected:    0,
			wantVersion: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, err := s.UpdateContent(ctx, userID, note.ID, storage.ContentWrite{
				Content:         tt.content,
				ExpectedVersion: tt.expected,
			})
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.content, updated.Content)
			assert.Equal(t, tt.wantVersion, updated.Version)
		})
	}
}

func TestNoteStorage_UpdateContent_KeepsDirectionWhenOmitted(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	note := &models.Note{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     "rtl note",
		Content:   "original",
		Direction: "rtl",
	}
	require.NoError(t, s.CreateNote(ctx, note))

	// Запись без direction не стирает сохраненное направление
	updated, err := s.UpdateContent(ctx, userID, note.ID, storage.ContentWrite{
		Content:         "edited",
		ExpectedVersion: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "rtl", updated.Direction)
	assert.Equal(t, "edited", updated.Content)

	// Явный direction по-прежнему применяется
	updated, err = s.UpdateContent(ctx, userID, note.ID, storage.ContentWrite{
		Content:         "edited again",
		Direction:       "ltr",
		ExpectedVersion: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "ltr", updated.Direction)
}

func TestNoteStorage_UpdateContent_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	_, err := s.UpdateContent(ctx, userID, "nonexistent-id", storage.ContentWrite{
		Content:         "whatever",
		ExpectedVersion: 1,
	})
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)
}

func TestNoteStorage_DeleteNote(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	note := createTestNote(t, ctx, s, userID, "doomed")

	require.NoError(t, s.DeleteNote(ctx, userID, note.ID))

	_, err := s.GetNote(ctx, userID, note.ID)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)

	// Повторное удаление — заметки уже нет
	err = s.DeleteNote(ctx, userID, note.ID)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)
}

func createTestNote(t *testing.T, ctx context.Context, s *Storage, userID, title string) *models.Note {
	note := &models.Note{
		ID:      uuid.New().String(),
		UserID:  userID,
		Title:   title,
		Content: "content of " + title,
	}
	require.NoError(t, s.CreateNote(ctx, note))
	return note
}
