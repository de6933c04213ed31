package api

import "time"

// ItemPayload — элемент в wire-формате content sync.
// Version назначается сервером и монотонно растет при каждой записи.
type ItemPayload struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Direction string    `json:"direction,omitempty"`
	Version   int64     `json:"version"`
}

// NoteRequest представляет тело POST /notes и PUT /notes/:id
type NoteRequest struct {
	ID        string `json:"id,omitempty"`        // клиентский UUID (offline-создание)
	ParentID  string `json:"parent_id,omitempty"` // родитель в дереве
	Title     string `json:"title" validate:"required,max=512"`
	Content   string `json:"content"`
	Direction string `json:"direction,omitempty" validate:"omitempty,oneof=ltr rtl"`
}

// NoteResponse представляет заметку в ответах сервера
type NoteResponse struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	ParentID  string    `json:"parent_id,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Direction string    `json:"direction,omitempty"`
	Version   int64     `json:"version"`
	Deleted   bool      `json:"deleted"`
}

// TaskRequest представляет тело POST /tasks и PUT /tasks/:id
type TaskRequest struct {
	DueDate *time.Time `json:"due_date,omitempty"`
	ID      string     `json:"id,omitempty"`      // клиентский UUID (offline-создание)
	NoteID  string     `json:"note_id,omitempty"` // привязка к заметке
	Title   string     `json:"title" validate:"required,max=512"`
	Done    bool       `json:"done"`
}

// TaskResponse представляет задачу в ответах сервера
type TaskResponse struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	ID        string     `json:"id"`
	NoteID    string     `json:"note_id,omitempty"`
	Title     string     `json:"title"`
	Version   int64      `json:"version"`
	Done      bool       `json:"done"`
}

// ContentPatchRequest представляет тело PATCH /items/:id — путь content sync.
// ExpectedVersion == 0 означает запись без проверки версии (force write).
type ContentPatchRequest struct {
	Content         string `json:"content"`
	Direction       string `json:"direction,omitempty" validate:"omitempty,oneof=ltr rtl"`
	ExpectedVersion int64  `json:"expected_version,omitempty"`
}

// ConflictResponse — тело ответа 409 при несовпадении версий.
// Клиент обязан превратить его в VersionConflict и отдать на разрешение.
type ConflictResponse struct {
	ServerItem    ItemPayload `json:"server_item"`    // актуальное состояние на сервере
	ServerVersion int64       `json:"server_version"` // текущая версия на сервере
}
