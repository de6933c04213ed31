package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_SaveGetDelete(t *testing.T) {
	store := NewSessionStore(newMapKV())
	ctx := context.Background()

	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	session := &Session{
		UserID:      "user-1",
		Username:    "alice",
		AccessToken: "token",
		ExpiresAt:   time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}
	require.NoError(t, store.SaveSession(ctx, session))

	loaded, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, loaded.UserID)
	assert.Equal(t, session.Username, loaded.Username)
	assert.Equal(t, session.AccessToken, loaded.AccessToken)

	require.NoError(t, store.DeleteSession(ctx))

	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSession_Valid(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		session  Session
		expected bool
	}{
		{
			name:     "valid session",
			session:  Session{AccessToken: "token", ExpiresAt: now.Add(time.Hour)},
			expected: true,
		},
		{
			name:     "expired session",
			session:  Session{AccessToken: "token", ExpiresAt: now.Add(-time.Hour)},
			expected: false,
		},
		{
			name:     "empty token",
			session:  Session{ExpiresAt: now.Add(time.Hour)},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.session.Valid(now))
		})
	}
}
