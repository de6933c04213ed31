package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/iudanet/gophnotes/internal/models"
	"github.com/iudanet/gophnotes/internal/server/storage"
	"github.com/iudanet/gophnotes/pkg/api"
)

// NotesHandler обрабатывает CRUD запросы для заметок
type NotesHandler struct {
	logger   *slog.Logger
	storage  storage.NoteStorage
	validate *validator.Validate
}

// NewNotesHandler создает новый handler для заметок
func NewNotesHandler(logger *slog.Logger, noteStorage storage.NoteStorage) *NotesHandler {
	return &NotesHandler{
		logger:   logger,
		storage:  noteStorage,
		validate: validator.New(),
	}
}

// Create обрабатывает POST /api/v1/notes.
// Клиент может прислать собственный UUID (offline-создание); повтор
// запроса с тем же ID возвращает уже существующую заметку, а не дубликат.
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		sendError(h.logger, w, "invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.ID != "" {
		if existing, err := h.storage.GetNote(ctx, userID, req.ID); err == nil {
			sendJSON(h.logger, w, noteResponse(existing), http.StatusOK)
			return
		}
	}

	note := &models.Note{
		ID:        req.ID,
		UserID:    userID,
		ParentID:  req.ParentID,
		Title:     req.Title,
		Content:   req.Content,
		Direction: req.Direction,
	}
	if note.ID == "" {
		note.ID = uuid.New().String()
	}

	if err := h.storage.CreateNote(ctx, note); err != nil {
		h.logger.ErrorContext(ctx, "failed to create note", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "note created",
		slog.String("note_id", note.ID),
		slog.String("user_id", userID))

	sendJSON(h.logger, w, noteResponse(note), http.StatusCreated)
}

// List обрабатывает GET /api/v1/notes
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	notes, err := h.storage.ListNotes(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list notes", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.NoteResponse, 0, len(notes))
	for _, note := range notes {
		resp = append(resp, noteResponse(note))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Get обрабатывает GET /api/v1/notes/{id}
func (h *NotesHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]

	note, err := h.storage.GetNote(ctx, userID, id)
	if err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			sendError(h.logger, w, "note not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get note", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, noteResponse(note), http.StatusOK)
}

// Update обрабатывает PUT /api/v1/notes/{id}
func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]

	var req api.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		sendError(h.logger, w, "invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	note := &models.Note{
		ID:        id,
		UserID:    userID,
		ParentID:  req.ParentID,
		Title:     req.Title,
		Content:   req.Content,
		Direction: req.Direction,
	}

	updated, err := h.storage.UpdateNote(ctx, note)
	if err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			sendError(h.logger, w, "note not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update note", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, noteResponse(updated), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/notes/{id}.
// Идемпотентен: удаление уже удаленной заметки тоже возвращает 204,
// чтобы повтор операции из клиентской очереди не считался ошибкой.
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]

	if err := h.storage.DeleteNote(ctx, userID, id); err != nil && !errors.Is(err, storage.ErrNoteNotFound) {
		h.logger.ErrorContext(ctx, "failed to delete note", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// noteResponse конвертирует модель в wire-формат
func noteResponse(note *models.Note) api.NoteResponse {
	return api.NoteResponse{
		ID:        note.ID,
		ParentID:  note.ParentID,
		Title:     note.Title,
		Content:   note.Content,
		Direction: note.Direction,
		Version:   note.Version,
		Deleted:   note.Deleted,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
