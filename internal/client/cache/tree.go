package cache

import (
	"sort"
	"sync"
	"time"

	"github.com/iudanet/gophnotes/internal/models"
)

// Tree — локальный кэш дерева заметок. UI читает из него, не дожидаясь
// round trip к серверу; операции UPDATE_CONTENT обновляют кэш сразу
// при отправке из очереди.
type Tree struct {
	mu    sync.RWMutex
	notes map[string]*models.Note
}

// NewTree creates an empty notes cache
func NewTree() *Tree {
	return &Tree{
		notes: make(map[string]*models.Note),
	}
}

// Put stores or replaces a note in the cache
func (t *Tree) Put(note *models.Note) {
	t.mu.Lock()
	defer t.mu.Unlock()

	clone := *note
	t.notes[note.ID] = &clone
}

// Get returns a copy of the cached note
func (t *Tree) Get(id string) (*models.Note, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	note, ok := t.notes[id]
	if !ok {
		return nil, false
	}

	clone := *note
	return &clone, true
}

// Remove deletes a note from the cache
func (t *Tree) Remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.notes, id)
}

// ApplyContent обновляет контент заметки в кэше после (или в момент)
// отправки UPDATE_CONTENT, чтобы чтения UI оставались согласованными.
// Неизвестный id молча игнорируется: заметка могла быть удалена.
func (t *Tree) ApplyContent(id, content, direction string, version int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	note, ok := t.notes[id]
	if !ok {
		return
	}

	note.Content = content
	if direction != "" {
		note.Direction = direction
	}
	if version > note.Version {
		note.Version = version
	}
	note.UpdatedAt = time.Now()
}

// Children возвращает копии дочерних заметок узла, отсортированные
// по заголовку. parentID == "" — корень дерева.
func (t *Tree) Children(parentID string) []*models.Note {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var children []*models.Note
	for _, note := range t.notes {
		if note.ParentID == parentID && !note.Deleted {
			clone := *note
			children = append(children, &clone)
		}
	}

	sort.Slice(children, func(i, j int) bool {
		return children[i].Title < children[j].Title
	})

	return children
}

// Load заменяет содержимое кэша снимком, прочитанным из хранилища.
func (t *Tree) Load(notes []models.Note) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.notes = make(map[string]*models.Note, len(notes))
	for i := range notes {
		clone := notes[i]
		t.notes[clone.ID] = &clone
	}
}

// Export возвращает снимок кэша для сохранения в хранилище.
func (t *Tree) Export() []models.Note {
	t.mu.RLock()
	defer t.mu.RUnlock()

	notes := make([]models.Note, 0, len(t.notes))
	for _, note := range t.notes {
		notes = append(notes, *note)
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].ID < notes[j].ID
	})

	return notes
}

// Len returns the number of cached notes
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.notes)
}
