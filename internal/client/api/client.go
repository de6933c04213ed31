package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/gophnotes/internal/models"
	"github.com/iudanet/gophnotes/pkg/api"
)

// requestTimeout — верхняя граница одного сетевого запроса.
// По истечении запрос считается неудачным (TransientError), даже если
// сервер в итоге ответит.
const requestTimeout = 30 * time.Second

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines the REST contract consumed by the sync engine
type ClientAPI interface {
	// Register регистрирует нового пользователя
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// Login выполняет аутентификацию пользователя
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// CreateNote создает заметку (POST /notes)
	CreateNote(ctx context.Context, token string, req api.NoteRequest) (*api.NoteResponse, error)

	// UpdateNote обновляет заметку (PUT /notes/:id)
	UpdateNote(ctx context.Context, token, id string, req api.NoteRequest) (*api.NoteResponse, error)

	// DeleteNote удаляет заметку (DELETE /notes/:id)
	DeleteNote(ctx context.Context, token, id string) error

	// CreateTask создает задачу (POST /tasks)
	CreateTask(ctx context.Context, token string, req api.TaskRequest) (*api.TaskResponse, error)

	// UpdateTask обновляет задачу (PUT /tasks/:id)
	UpdateTask(ctx context.Context, token, id string, req api.TaskRequest) (*api.TaskResponse, error)

	// DeleteTask удаляет задачу (DELETE /tasks/:id)
	DeleteTask(ctx context.Context, token, id string) error

	// PatchContent — путь content sync (PATCH /items/:id).
	// При несовпадении версий возвращает *ConflictError.
	PatchContent(ctx context.Context, token, id string, req api.ContentPatchRequest) (*api.ItemPayload, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// CreateNote создает заметку
func (c *Client) CreateNote(ctx context.Context, token string, req api.NoteRequest) (*api.NoteResponse, error) {
	var resp api.NoteResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/notes", token, req, &resp); err != nil {
		return nil, fmt.Errorf("create note request failed: %w", err)
	}
	return &resp, nil
}

// UpdateNote обновляет заметку
func (c *Client) UpdateNote(ctx context.Context, token, id string, req api.NoteRequest) (*api.NoteResponse, error) {
	var resp api.NoteResponse
	path := "/api/v1/notes/" + id
	if err := c.doRequest(ctx, http.MethodPut, path, token, req, &resp); err != nil {
		return nil, fmt.Errorf("update note request failed: %w", err)
	}
	return &resp, nil
}

// DeleteNote удаляет заметку
func (c *Client) DeleteNote(ctx context.Context, token, id string) error {
	path := "/api/v1/notes/" + id
	if err := c.doRequest(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete note request failed: %w", err)
	}
	return nil
}

// CreateTask создает задачу
func (c *Client) CreateTask(ctx context.Context, token string, req api.TaskRequest) (*api.TaskResponse, error) {
	var resp api.TaskResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/tasks", token, req, &resp); err != nil {
		return nil, fmt.Errorf("create task request failed: %w", err)
	}
	return &resp, nil
}

// UpdateTask обновляет задачу
func (c *Client) UpdateTask(ctx context.Context, token, id string, req api.TaskRequest) (*api.TaskResponse, error) {
	var resp api.TaskResponse
	path := "/api/v1/tasks/" + id
	if err := c.doRequest(ctx, http.MethodPut, path, token, req, &resp); err != nil {
		return nil, fmt.Errorf("update task request failed: %w", err)
	}
	return &resp, nil
}

// DeleteTask удаляет задачу
func (c *Client) DeleteTask(ctx context.Context, token, id string) error {
	path := "/api/v1/tasks/" + id
	if err := c.doRequest(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete task request failed: %w", err)
	}
	return nil
}

// PatchContent выполняет версионированную запись контента.
// 409 транслируется в *ConflictError с заполненным VersionConflict.
func (c *Client) PatchContent(ctx context.Context, token, id string, req api.ContentPatchRequest) (*api.ItemPayload, error) {
	var resp api.ItemPayload
	path := "/api/v1/items/" + id
	err := c.doRequest(ctx, http.MethodPatch, path, token, req, &resp)
	if err != nil {
		if conflict, ok := AsConflict(err); ok {
			// Дозаполняем контекст конфликта тем, что знает клиент
			conflict.Conflict.ItemID = id
			conflict.Conflict.ClientVersion = req.ExpectedVersion
			return nil, conflict
		}
		return nil, fmt.Errorf("patch content request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос и классифицирует ошибки:
// сетевые сбои и 5xx — TransientError, 409 — ConflictError,
// прочие 4xx — PermanentError.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return &PermanentError{StatusCode: 0, Message: fmt.Sprintf("failed to marshal request body: %v", err)}
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return &PermanentError{StatusCode: 0, Message: fmt.Sprintf("failed to create request: %v", err)}
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Сетевая ошибка или таймаут
		return &TransientError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransientError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if result != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, result); err != nil {
				return &TransientError{Err: fmt.Errorf("failed to decode response: %w", err)}
			}
		}
		return nil

	case resp.StatusCode == http.StatusConflict:
		return newConflictError(respBody)

	case resp.StatusCode >= 500:
		return &TransientError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("server error: %s", errorMessage(respBody)),
		}

	default:
		return &PermanentError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody),
		}
	}
}

// newConflictError декодирует тело 409 в ConflictError
func newConflictError(body []byte) error {
	var conflictBody api.ConflictResponse
	if err := json.Unmarshal(body, &conflictBody); err != nil {
		// 409 без валидного тела — не можем разрешить, считаем permanent
		return &PermanentError{
			StatusCode: http.StatusConflict,
			Message:    "conflict response with unreadable body",
		}
	}

	serverItem := &models.Item{
		ID:        conflictBody.ServerItem.ID,
		Title:     conflictBody.ServerItem.Title,
		Content:   conflictBody.ServerItem.Content,
		Direction: conflictBody.ServerItem.Direction,
		Version:   conflictBody.ServerItem.Version,
		CreatedAt: conflictBody.ServerItem.CreatedAt,
		UpdatedAt: conflictBody.ServerItem.UpdatedAt,
	}

	return &ConflictError{
		Conflict: models.VersionConflict{
			ItemID:        conflictBody.ServerItem.ID,
			ServerVersion: conflictBody.ServerVersion,
			ServerItem:    serverItem,
		},
	}
}

// errorMessage извлекает сообщение из тела ошибки сервера
func errorMessage(body []byte) string {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	return string(body)
}
