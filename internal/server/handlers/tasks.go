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

// TasksHandler обрабатывает CRUD запросы для задач
type TasksHandler struct {
	logger   *slog.Logger
	storage  storage.TaskStorage
	validate *validator.Validate
}

// NewTasksHandler создает новый handler для задач
func NewTasksHandler(logger *slog.Logger, taskStorage storage.TaskStorage) *TasksHandler {
	return &TasksHandler{
		logger:   logger,
		storage:  taskStorage,
		validate: validator.New(),
	}
}

// Create обрабатывает POST /api/v1/tasks.
// Повтор запроса с тем же клиентским ID возвращает существующую задачу.
func (h *TasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		sendError(h.logger, w, "invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.ID != "" {
		if existing, err := h.storage.GetTask(ctx, userID, req.ID); err == nil {
			sendJSON(h.logger, w, taskResponse(existing), http.StatusOK)
			return
		}
	}

	task := &models.Task{
		ID:      req.ID,
		UserID:  userID,
		NoteID:  req.NoteID,
		Title:   req.Title,
		Done:    req.Done,
		DueDate: req.DueDate,
	}
	if task.ID == "" {
		task.ID = uuid.New().String()
	}

	if err := h.storage.CreateTask(ctx, task); err != nil {
		h.logger.ErrorContext(ctx, "failed to create task", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "task created",
		slog.String("task_id", task.ID),
		slog.String("user_id", userID))

	sendJSON(h.logger, w, taskResponse(task), http.StatusCreated)
}

// List обрабатывает GET /api/v1/tasks
func (h *TasksHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	tasks, err := h.storage.ListTasks(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list tasks", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		resp = append(resp, taskResponse(task))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Update обрабатывает PUT /api/v1/tasks/{id}
func (h *TasksHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]

	var req api.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		sendError(h.logger, w, "invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	task := &models.Task{
		ID:      id,
		UserID:  userID,
		NoteID:  req.NoteID,
		Title:   req.Title,
		Done:    req.Done,
		DueDate: req.DueDate,
	}

	updated, err := h.storage.UpdateTask(ctx, task)
	if err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			sendError(h.logger, w, "task not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update task", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, taskResponse(updated), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/tasks/{id}.
// Идемпотентен, как и удаление заметок.
func (h *TasksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]

	if err := h.storage.DeleteTask(ctx, userID, id); err != nil && !errors.Is(err, storage.ErrTaskNotFound) {
		h.logger.ErrorContext(ctx, "failed to delete task", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// taskResponse конвертирует модель в wire-формат
func taskResponse(task *models.Task) api.TaskResponse {
	return api.TaskResponse{
		ID:        task.ID,
		NoteID:    task.NoteID,
		Title:     task.Title,
		Done:      task.Done,
		DueDate:   task.DueDate,
		Version:   task.Version,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}
