package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTokenNotFound indicates that refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrNoteNotFound indicates that note was not found or is deleted
	ErrNoteNotFound = errors.New("note not found")

	// ErrTaskNotFound indicates that task was not found
	ErrTaskNotFound = errors.New("task not found")

	// ErrVersionMismatch indicates that a versioned write lost the race:
	// the stored version differs from the expected one
	ErrVersionMismatch = errors.New("version mismatch")
)
