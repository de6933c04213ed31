package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/iudanet/gophnotes/internal/models"
	"github.com/iudanet/gophnotes/internal/server/storage"
	"github.com/iudanet/gophnotes/pkg/api"
)

// ItemsHandler обрабатывает версионированные записи контента:
// PATCH /api/v1/items/{id} применяет правку, только если сохраненная
// версия совпадает с expected_version клиента. При гонке версий клиент
// получает 409 с актуальным состоянием сервера и разрешает конфликт сам.
type ItemsHandler struct {
	logger   *slog.Logger
	storage  storage.NoteStorage
	validate *validator.Validate
}

// NewItemsHandler создает новый handler для content sync
func NewItemsHandler(logger *slog.Logger, noteStorage storage.NoteStorage) *ItemsHandler {
	return &ItemsHandler{
		logger:   logger,
		storage:  noteStorage,
		validate: validator.New(),
	}
}

// PatchContent обрабатывает PATCH /api/v1/items/{id}
func (h *ItemsHandler) PatchContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]

	var req api.ContentPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		sendError(h.logger, w, "invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.storage.UpdateContent(ctx, userID, id, storage.ContentWrite{
		Content:         req.Content,
		Direction:       req.Direction,
		ExpectedVersion: req.ExpectedVersion,
	})

	switch {
	case err == nil:
		h.logger.InfoContext(ctx, "content updated",
			slog.String("item_id", id),
			slog.Int64("version", updated.Version))
		sendJSON(h.logger, w, itemPayload(updated), http.StatusOK)

	case errors.Is(err, storage.ErrVersionMismatch):
		h.sendConflict(ctx, w, userID, id, req.ExpectedVersion)

	case errors.Is(err, storage.ErrNoteNotFound):
		sendError(h.logger, w, "item not found", http.StatusNotFound)

	default:
		h.logger.ErrorContext(ctx, "failed to update content", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
	}
}

// sendConflict отвечает 409 с актуальным состоянием сервера
func (h *ItemsHandler) sendConflict(ctx context.Context, w http.ResponseWriter, userID, id string, expectedVersion int64) {
	note, err := h.storage.GetNote(ctx, userID, id)
	if err != nil {
		// Между UPDATE и SELECT заметку удалили
		h.logger.ErrorContext(ctx, "failed to load conflicting item", slog.Any("error", err))
		sendError(h.logger, w, "item not found", http.StatusNotFound)
		return
	}

	h.logger.WarnContext(ctx, "version conflict",
		slog.String("item_id", id),
		slog.Int64("expected_version", expectedVersion),
		slog.Int64("server_version", note.Version))

	resp := api.ConflictResponse{
		ServerItem:    itemPayload(note),
		ServerVersion: note.Version,
	}

	sendJSON(h.logger, w, resp, http.StatusConflict)
}

// itemPayload конвертирует заметку в wire-формат content sync
func itemPayload(note *models.Note) api.ItemPayload {
	return api.ItemPayload{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Direction: note.Direction,
		Version:   note.Version,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
