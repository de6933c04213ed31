package api

import (
	"errors"
	"fmt"

	"github.com/iudanet/gophnotes/internal/models"
)

// TransientError — сетевой сбой, таймаут или 5xx.
// Кандидат на повторную отправку (retry).
type TransientError struct {
	Err        error
	StatusCode int // 0 для сетевых ошибок
}

func (e *TransientError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("transient server error (%d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("transient network error: %v", e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// PermanentError — 4xx (кроме 409) или некорректная операция.
// Повторная отправка бессмысленна.
type PermanentError struct {
	Message    string
	StatusCode int
}

func (e *PermanentError) Error() string {
	return fmt.Sprintf("permanent client error (%d): %s", e.StatusCode, e.Message)
}

// ConflictError — сервер отклонил запись из-за несовпадения версий (409).
// Никогда не ретраится автоматически; всегда отдается на разрешение.
type ConflictError struct {
	Conflict models.VersionConflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("version conflict on item %q: client version %d, server version %d",
		e.Conflict.ItemID, e.Conflict.ClientVersion, e.Conflict.ServerVersion)
}

// IsTransient сообщает, что ошибка является кандидатом на retry
func IsTransient(err error) bool {
	var transient *TransientError
	return errors.As(err, &transient)
}

// AsConflict извлекает конфликт версий из ошибки, если он там есть
func AsConflict(err error) (*ConflictError, bool) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict, true
	}
	return nil, false
}
