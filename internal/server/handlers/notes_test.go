package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophnotes/internal/models"
	"github.com/iudanet/gophnotes/internal/server/storage"
	"github.com/iudanet/gophnotes/pkg/api"
)

// mockNoteStorage is an in-memory implementation of NoteStorage for testing.
// Воспроизводит версионную семантику sqlite реализации.
type mockNoteStorage struct {
	notes map[string]*models.Note // id -> Note
}

func newMockNoteStorage() *mockNoteStorage {
	return &mockNoteStorage{notes: make(map[string]*models.Note)}
}

func (m *mockNoteStorage) CreateNote(ctx context.Context, note *models.Note) error {
	now := time.Now()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = now
	note.Version = 1
	clone := *note
	m.notes[note.ID] = &clone
	return nil
}

func (m *mockNoteStorage) GetNote(ctx context.Context, userID, id string) (*models.Note, error) {
	note, ok := m.notes[id]
	if !ok || note.UserID != userID || note.Deleted {
		return nil, storage.ErrNoteNotFound
	}
	clone := *note
	return &clone, nil
}

func (m *mockNoteStorage) ListNotes(ctx context.Context, userID string) ([]*models.Note, error) {
	var notes []*models.Note
	for _, note := range m.notes {
		if note.UserID == userID && !note.Deleted {
			clone := *note
			notes = append(notes, &clone)
		}
	}
	return notes, nil
}

func (m *mockNoteStorage) UpdateNote(ctx context.Context, note *models.Note) (*models.Note, error) {
	stored, ok := m.notes[note.ID]
	if !ok || stored.UserID != note.UserID || stored.Deleted {
		return nil, storage.ErrNoteNotFound
	}
	stored.ParentID = note.ParentID
	stored.Title = note.Title
	stored.Content = note.Content
	stored.Direction = note.Direction
	stored.Version++
	stored.UpdatedAt = time.Now()
	clone := *stored
	return &clone, nil
}

func (m *mockNoteStorage) UpdateContent(ctx context.Context, userID, id string, write storage.ContentWrite) (*models.Note, error) {
	stored, ok := m.notes[id]
	if !ok || stored.UserID != userID || stored.Deleted {
		return nil, storage.ErrNoteNotFound
	}
	if write.ExpectedVersion != 0 && stored.Version != write.ExpectedVersion {
		return nil, storage.ErrVersionMismatch
	}
	stored.Content = write.Content
	if write.Direction != "" {
		stored.Direction = write.Direction
	}
	stored.Version++
	stored.UpdatedAt = time.Now()
	clone := *stored
	return &clone, nil
}

func (m *mockNoteStorage) DeleteNote(ctx context.Context, userID, id string) error {
	stored, ok := m.notes[id]
	if !ok || stored.UserID != userID || stored.Deleted {
		return storage.ErrNoteNotFound
	}
	stored.Deleted = true
	stored.Version++
	return nil
}

const testUserID = "user-1"

// authedRequest добавляет user_id в контекст, как это делает AuthMiddleware
func authedRequest(req *http.Request) *http.Request {
	ctx := context.WithValue(req.Context(), UserIDKey, testUserID)
	ctx = context.WithValue(ctx, UsernameKey, "alice")
	return req.WithContext(ctx)
}

func withVars(req *http.Request, id string) *http.Request {
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func TestNotesHandler_Create(t *testing.T) {
	noteStorage := newMockNoteStorage()
	h := NewNotesHandler(testLogger(), noteStorage)

	req := authedRequest(jsonRequest(t, http.MethodPost, "/api/v1/notes", api.NoteRequest{
		ID:    "note-1",
		Title: "Shopping list",
	}))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.NoteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "note-1", resp.ID)
	assert.Equal(t, int64(1), resp.Version)
}

func TestNotesHandler_Create_IdempotentReplay(t *testing.T) {
	noteStorage := newMockNoteStorage()
	h := NewNotesHandler(testLogger(), noteStorage)

	body := api.NoteRequest{ID: "note-1", Title: "Shopping list"}

	rec := httptest.NewRecorder()
	h.Create(rec, authedRequest(jsonRequest(t, http.MethodPost, "/api/v1/notes", body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	// Повтор той же операции из клиентской очереди не создает дубликат
	rec = httptest.NewRecorder()
	h.Create(rec, authedRequest(jsonRequest(t, http.MethodPost, "/api/v1/notes", body)))
	require.Equal(t, http.StatusOK, rec.Code)

	notes, err := noteStorage.ListNotes(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestNotesHandler_Create_MissingTitle(t *testing.T) {
	h := NewNotesHandler(testLogger(), newMockNoteStorage())

	req := authedRequest(jsonRequest(t, http.MethodPost, "/api/v1/notes", api.NoteRequest{}))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotesHandler_Create_Unauthenticated(t *testing.T) {
	h := NewNotesHandler(testLogger(), newMockNoteStorage())

	req := jsonRequest(t, http.MethodPost, "/api/v1/notes", api.NoteRequest{Title: "x"})
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNotesHandler_List(t *testing.T) {
	noteStorage := newMockNoteStorage()
	require.NoError(t, noteStorage.CreateNote(context.Background(), &models.Note{
		ID: "note-1", UserID: testUserID, Title: "one",
	}))
	require.NoError(t, noteStorage.CreateNote(context.Background(), &models.Note{
		ID: "note-2", UserID: "someone-else", Title: "foreign",
	}))

	h := NewNotesHandler(testLogger(), noteStorage)

	req := authedRequest(httptest.NewRequest(http.MethodGet, "/api/v1/notes", nil))
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []api.NoteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "note-1", resp[0].ID)
}

func TestNotesHandler_Get_NotFound(t *testing.T) {
	h := NewNotesHandler(testLogger(), newMockNoteStorage())

	req := withVars(authedRequest(httptest.NewRequest(http.MethodGet, "/api/v1/notes/missing", nil)), "missing")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotesHandler_Update(t *testing.T) {
	noteStorage := newMockNoteStorage()
	require.NoError(t, noteStorage.CreateNote(context.Background(), &models.Note{
		ID: "note-1", UserID: testUserID, Title: "draft",
	}))

	h := NewNotesHandler(testLogger(), noteStorage)

	req := withVars(authedRequest(jsonRequest(t, http.MethodPut, "/api/v1/notes/note-1", api.NoteRequest{
		Title: "final",
	})), "note-1")
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.NoteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "final", resp.Title)
	assert.Equal(t, int64(2), resp.Version)
}

func TestNotesHandler_Delete_Idempotent(t *testing.T) {
	noteStorage := newMockNoteStorage()
	require.NoError(t, noteStorage.CreateNote(context.Background(), &models.Note{
		ID: "note-1", UserID: testUserID, Title: "doomed",
	}))

	h := NewNotesHandler(testLogger(), noteStorage)

	rec := httptest.NewRecorder()
	h.Delete(rec, withVars(authedRequest(httptest.NewRequest(http.MethodDelete, "/api/v1/notes/note-1", nil)), "note-1"))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Повторное удаление — тоже 204, операция из очереди может повториться
	rec = httptest.NewRecorder()
	h.Delete(rec, withVars(authedRequest(httptest.NewRequest(http.MethodDelete, "/api/v1/notes/note-1", nil)), "note-1"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
