package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophnotes/internal/models"
	"github.com/iudanet/gophnotes/internal/server/storage"
)

// CreateNote inserts a new note with version 1
func (s *Storage) CreateNote(ctx context.Context, note *models.Note) error {
	now := time.Now()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = now
	note.Version = 1

	query := `
		INSERT INTO notes (id, user_id, parent_id, title, content, direction,
			version, deleted, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		note.ID,
		note.UserID,
		note.ParentID,
		note.Title,
		note.Content,
		note.Direction,
		note.Version,
		note.CreatedAt.Unix(),
		note.UpdatedAt.Unix(),
	)

	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}

	return nil
}

// GetNote retrieves a single note owned by userID
func (s *Storage) GetNote(ctx context.Context, userID, id string) (*models.Note, error) {
	query := `
		SELECT id, user_id, parent_id, title, content, direction,
		       version, deleted, created_at, updated_at
		FROM notes
		WHERE id = ? AND user_id = ? AND deleted = 0
	`

	note, err := s.scanNote(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

// ListNotes retrieves all non-deleted notes for a user
func (s *Storage) ListNotes(ctx context.Context, userID string) ([]*models.Note, error) {
	query := `
		SELECT id, user_id, parent_id, title, content, direction,
		       version, deleted, created_at, updated_at
		FROM notes
		WHERE user_id = ? AND deleted = 0
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var notes []*models.Note

	for rows.Next() {
		note, err := s.scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return notes, nil
}

// UpdateNote updates note fields and bumps version
func (s *Storage) UpdateNote(ctx context.Context, note *models.Note) (*models.Note, error) {
	query := `
		UPDATE notes
		SET parent_id = ?, title = ?, content = ?, direction = ?,
		    version = version + 1, updated_at = ?
		WHERE id = ? AND user_id = ? AND deleted = 0
	`

	result, err := s.db.ExecContext(ctx, query,
		note.ParentID,
		note.Title,
		note.Content,
		note.Direction,
		time.Now().Unix(),
		note.ID,
		note.UserID,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return nil, storage.ErrNoteNotFound
	}

	return s.GetNote(ctx, note.UserID, note.ID)
}

// UpdateContent performs a versioned content write.
// Условный UPDATE применяется только когда сохраненная версия совпадает
// с ожидаемой (или ожидаемая равна 0 — force write); при промахе
// различаем отсутствие заметки и гонку версий отдельным SELECT.
// Пустой direction в запросе оставляет сохраненное значение, так же
// как это делает клиентский кэш.
func (s *Storage) UpdateContent(ctx context.Context, userID, id string, write storage.ContentWrite) (*models.Note, error) {
	query := `
		UPDATE notes
		SET content = ?,
		    direction = CASE WHEN ? = '' THEN direction ELSE ? END,
		    version = version + 1, updated_at = ?
		WHERE id = ? AND user_id = ? AND deleted = 0
		  AND (? = 0 OR version = ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		write.Content,
		write.Direction,
		write.Direction,
		time.Now().Unix(),
		id,
		userID,
		write.ExpectedVersion,
		write.ExpectedVersion,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to update content: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		// Заметка есть, но версия ушла вперед — конфликт
		if _, err := s.GetNote(ctx, userID, id); err == nil {
			return nil, storage.ErrVersionMismatch
		}
		return nil, storage.ErrNoteNotFound
	}

	return s.GetNote(ctx, userID, id)
}

// DeleteNote marks note as deleted (soft delete) and bumps version
func (s *Storage) DeleteNote(ctx context.Context, userID, id string) error {
	query := `
		UPDATE notes
		SET deleted = 1, version = version + 1, updated_at = ?
		WHERE id = ? AND user_id = ? AND deleted = 0
	`

	result, err := s.db.ExecContext(ctx, query, time.Now().Unix(), id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrNoteNotFound
	}

	return nil
}

// scanner абстрагирует sql.Row и sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// scanNote читает одну строку notes
func (s *Storage) scanNote(row scanner) (*models.Note, error) {
	note := &models.Note{}
	var deleted int
	var createdAt, updatedAt int64

	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.ParentID,
		&note.Title,
		&note.Content,
		&note.Direction,
		&note.Version,
		&deleted,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	note.Deleted = deleted != 0
	note.CreatedAt = time.Unix(createdAt, 0)
	note.UpdatedAt = time.Unix(updatedAt, 0)

	return note, nil
}
