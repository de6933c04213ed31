package models

import "time"

// Направление текста для rich-text контента
const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// Note представляет заметку пользователя.
type Note struct {
	CreatedAt time.Time `json:"created_at"` // время создания
	UpdatedAt time.Time `json:"updated_at"` // время последнего обновления
	ID        string    `json:"id"`         // UUID заметки
	UserID    string    `json:"user_id"`    // ID владельца
	ParentID  string    `json:"parent_id,omitempty"` // ID родителя в дереве ("" = корень)
	Title     string    `json:"title"`      // заголовок
	Content   string    `json:"content"`    // rich-text контент (сериализованный)
	Direction string    `json:"direction,omitempty"` // направление текста: "ltr" | "rtl"
	Version   int64     `json:"version"`    // монотонно растущая версия (server-assigned)
	Deleted   bool      `json:"deleted"`    // флаг soft delete
}

// Task представляет задачу пользователя.
type Task struct {
	CreatedAt time.Time  `json:"created_at"`         // время создания
	UpdatedAt time.Time  `json:"updated_at"`         // время последнего обновления
	DueDate   *time.Time `json:"due_date,omitempty"` // опциональный дедлайн
	ID        string     `json:"id"`                 // UUID задачи
	UserID    string     `json:"user_id"`            // ID владельца
	NoteID    string     `json:"note_id,omitempty"`  // заметка, к которой привязана задача
	Title     string     `json:"title"`              // текст задачи
	Version   int64      `json:"version"`            // монотонно растущая версия
	Done      bool       `json:"done"`               // выполнена ли задача
}

// Item — версионируемое представление элемента для content sync
// (PATCH /items/:id). Это то, что возвращает сервер и с чем работает
// разрешение конфликтов.
type Item struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Direction string    `json:"direction,omitempty"`
	Version   int64     `json:"version"`
}

// LastModified возвращает момент последнего изменения элемента.
// Если UpdatedAt не заполнен, используется CreatedAt.
func (it *Item) LastModified() time.Time {
	if !it.UpdatedAt.IsZero() {
		return it.UpdatedAt
	}
	return it.CreatedAt
}

// Clone создает глубокую копию элемента
func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}
	clone := *it
	return &clone
}

// ToItem конвертирует заметку в Item для content sync
func (n *Note) ToItem() *Item {
	return &Item{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Direction: n.Direction,
		Version:   n.Version,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
