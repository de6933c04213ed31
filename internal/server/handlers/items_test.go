package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophnotes/internal/models"
	"github.com/iudanet/gophnotes/pkg/api"
)

func setupItemsEnv(t *testing.T) (*ItemsHandler, *mockNoteStorage) {
	t.Helper()

	noteStorage := newMockNoteStorage()
	require.NoError(t, noteStorage.CreateNote(context.Background(), &models.Note{
		ID:      "item-1",
		UserID:  testUserID,
		Title:   "Meeting notes",
		Content: "initial",
	}))

	return NewItemsHandler(testLogger(), noteStorage), noteStorage
}

func patchRequest(t *testing.T, id string, body api.ContentPatchRequest) *http.Request {
	t.Helper()

	req := jsonRequest(t, http.MethodPatch, "/api/v1/items/"+id, body)
	return withVars(authedRequest(req), id)
}

func TestItemsHandler_PatchContent(t *testing.T) {
	h, _ := setupItemsEnv(t)

	rec := httptest.NewRecorder()
	h.PatchContent(rec, patchRequest(t, "item-1", api.ContentPatchRequest{
		Content:         "updated",
		ExpectedVersion: 1,
	}))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.ItemPayload
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "updated", resp.Content)
	assert.Equal(t, int64(2), resp.Version)
}

func TestItemsHandler_PatchContent_KeepsDirectionWhenOmitted(t *testing.T) {
	h, noteStorage := setupItemsEnv(t)
	require.NoError(t, noteStorage.CreateNote(context.Background(), &models.Note{
		ID:        "rtl-1",
		UserID:    testUserID,
		Title:     "rtl note",
		Content:   "original",
		Direction: "rtl",
	}))

	rec := httptest.NewRecorder()
	h.PatchContent(rec, patchRequest(t, "rtl-1", api.ContentPatchRequest{
		Content:         "edited",
		ExpectedVersion: 1,
	}))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.ItemPayload
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "rtl", resp.Direction)
	assert.Equal(t, "edited", resp.Content)
}

func TestItemsHandler_PatchContent_Conflict(t *testing.T) {
	h, noteStorage := setupItemsEnv(t)

	// Другой клиент успел записать версию 2
	rec := httptest.NewRecorder()
	h.PatchContent(rec, patchRequest(t, "item-1", api.ContentPatchRequest{
		Content:         "from other device",
		ExpectedVersion: 1,
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	// Запись со stale expected_version отклоняется с состоянием сервера
	rec = httptest.NewRecorder()
	h.PatchContent(rec, patchRequest(t, "item-1", api.ContentPatchRequest{
		Content:         "stale write",
		ExpectedVersion: 1,
	}))

	require.Equal(t, http.StatusConflict, rec.Code)

	var conflict api.ConflictResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&conflict))
	assert.Equal(t, int64(2), conflict.ServerVersion)
	assert.Equal(t, "from other device", conflict.ServerItem.Content)

	// Контент на сервере не изменился
	note, err := noteStorage.GetNote(context.Background(), testUserID, "item-1")
	require.NoError(t, err)
	assert.Equal(t, "from other device", note.Content)
}

func TestItemsHandler_PatchContent_ForceWrite(t *testing.T) {
	h, _ := setupItemsEnv(t)

	// expected_version == 0 — запись без проверки версии
	rec := httptest.NewRecorder()
	h.PatchContent(rec, patchRequest(t, "item-1", api.ContentPatchRequest{
		Content: "forced",
	}))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.ItemPayload
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "forced", resp.Content)
	assert.Equal(t, int64(2), resp.Version)
}

func TestItemsHandler_PatchContent_NotFound(t *testing.T) {
	h, _ := setupItemsEnv(t)

	rec := httptest.NewRecorder()
	h.PatchContent(rec, patchRequest(t, "missing", api.ContentPatchRequest{
		Content:         "x",
		ExpectedVersion: 1,
	}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestItemsHandler_PatchContent_OwnerIsolation(t *testing.T) {
	h, noteStorage := setupItemsEnv(t)
	require.NoError(t, noteStorage.CreateNote(context.Background(), &models.Note{
		ID:     "foreign-1",
		UserID: "someone-else",
		Title:  "not yours",
	}))

	rec := httptest.NewRecorder()
	h.PatchContent(rec, patchRequest(t, "foreign-1", api.ContentPatchRequest{
		Content:         "hijack",
		ExpectedVersion: 1,
	}))

	// Чужой элемент неотличим от несуществующего
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestItemsHandler_PatchContent_InvalidDirection(t *testing.T) {
	h, _ := setupItemsEnv(t)

	rec := httptest.NewRecorder()
	h.PatchContent(rec, patchRequest(t, "item-1", api.ContentPatchRequest{
		Content:   "x",
		Direction: "sideways",
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
