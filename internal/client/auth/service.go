// Package auth управляет клиентской сессией: логин, логаут
// и выдача access token остальным подсистемам.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	httpClient "github.com/iudanet/gophnotes/internal/client/api"
	"github.com/iudanet/gophnotes/internal/client/storage"
	"github.com/iudanet/gophnotes/internal/validation"
	pkgapi "github.com/iudanet/gophnotes/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service defines the interface for authentication operations.
// AccessToken makes the service usable as a token provider for
// the sync queue and the save scheduler.
type Service interface {
	// Register регистрирует нового пользователя
	Register(ctx context.Context, username, password string) (*RegisterResult, error)

	// Login выполняет аутентификацию и сохраняет сессию
	Login(ctx context.Context, username, password string) (*storage.Session, error)

	// Logout удаляет сохраненную сессию
	Logout(ctx context.Context) error

	// IsAuthenticated проверяет, есть ли действующая сессия
	IsAuthenticated(ctx context.Context) (bool, error)

	// AccessToken возвращает токен текущей сессии.
	// Возвращает ошибку, если сессии нет или она истекла.
	AccessToken(ctx context.Context) (string, error)
}

// ErrSessionExpired возвращается, когда сохраненная сессия истекла
// и требуется повторный вход
var ErrSessionExpired = errors.New("session expired, login required")

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	UserID   string // UUID пользователя
	Username string // username
}

// service реализует Service поверх API клиента и хранилища сессий
type service struct {
	client   httpClient.ClientAPI
	sessions storage.SessionStorage
}

// NewService создает новый сервис авторизации
func NewService(client httpClient.ClientAPI, sessions storage.SessionStorage) Service {
	return &service{
		client:   client,
		sessions: sessions,
	}
}

// Register регистрирует нового пользователя
func (s *service) Register(ctx context.Context, username, password string) (*RegisterResult, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.client.Register(ctx, pkgapi.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return &RegisterResult{
		UserID:   resp.UserID,
		Username: username,
	}, nil
}

// Login выполняет аутентификацию и сохраняет сессию в хранилище
func (s *service) Login(ctx context.Context, username, password string) (*storage.Session, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.client.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	session := &storage.Session{
		ExpiresAt:   time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
		UserID:      subjectClaim(resp.AccessToken),
		Username:    username,
		AccessToken: resp.AccessToken,
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// Logout удаляет сохраненную сессию
func (s *service) Logout(ctx context.Context) error {
	if err := s.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

// IsAuthenticated проверяет, есть ли действующая сессия
func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}
	return session.Valid(time.Now()), nil
}

// AccessToken возвращает токен текущей сессии
func (s *service) AccessToken(ctx context.Context) (string, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		return "", err
	}
	if !session.Valid(time.Now()) {
		return "", ErrSessionExpired
	}
	return session.AccessToken, nil
}

// subjectClaim извлекает user ID из unverified JWT.
// Подпись проверяет только сервер; клиенту claims нужны для отображения.
func subjectClaim(token string) string {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return ""
	}
	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return subject
}
