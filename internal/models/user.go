package models

import "time"

// User представляет пользователя в системе
type User struct {
	ID           string    `json:"id"`            // UUID пользователя
	Username     string    `json:"username"`      // уникальный username
	PasswordHash string    `json:"password_hash"` // argon2id хеш пароля (encoded)
	CreatedAt    time.Time `json:"created_at"`    // время создания
	UpdatedAt    time.Time `json:"updated_at"`    // время последнего обновления
}

// RefreshToken представляет refresh token для обновления access token
type RefreshToken struct {
	ExpiresAt time.Time `json:"expires_at"` // срок действия
	CreatedAt time.Time `json:"created_at"` // время создания
	Token     string    `json:"token"`      // случайный токен (base64)
	UserID    string    `json:"user_id"`    // владелец токена
}
