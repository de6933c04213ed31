package storage

import "errors"

// Common client storage errors
var (
	// ErrKeyNotFound indicates that no value exists for the key
	ErrKeyNotFound = errors.New("key not found")

	// ErrSessionNotFound indicates that no client session exists
	ErrSessionNotFound = errors.New("session not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
