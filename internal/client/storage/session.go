package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Session — сохраненная сессия клиента
type Session struct {
	ExpiresAt   time.Time `json:"expires_at"`   // время истечения access token
	UserID      string    `json:"user_id"`      // UUID пользователя
	Username    string    `json:"username"`     // username
	AccessToken string    `json:"access_token"` // JWT access token
}

// Valid сообщает, что сессия еще не истекла
func (s *Session) Valid(now time.Time) bool {
	return s.AccessToken != "" && now.Before(s.ExpiresAt)
}

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines the persistence contract for the client session
type SessionStorage interface {
	// SaveSession persists the client session
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session.
	// Returns ErrSessionNotFound if no session exists.
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session
	DeleteSession(ctx context.Context) error
}

// SessionStore реализует SessionStorage поверх KV
type SessionStore struct {
	kv KV
}

// NewSessionStore creates session persistence on top of a KV store
func NewSessionStore(kv KV) *SessionStore {
	return &SessionStore{kv: kv}
}

// SaveSession persists the client session
func (s *SessionStore) SaveSession(ctx context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.kv.Set(ctx, NamespaceAuth, KeySession, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves the stored session
func (s *SessionStore) GetSession(ctx context.Context) (*Session, error) {
	data, err := s.kv.Get(ctx, NamespaceAuth, KeySession)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// DeleteSession removes the stored session
func (s *SessionStore) DeleteSession(ctx context.Context) error {
	if err := s.kv.Remove(ctx, NamespaceAuth, KeySession); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
