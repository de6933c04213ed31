package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophnotes/internal/server/handlers"
	"github.com/iudanet/gophnotes/pkg/api"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testJWTConfig() handlers.JWTConfig {
	return handlers.JWTConfig{
		Secret:          []byte("test-secret-key"),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 30 * 24 * time.Hour,
	}
}

func TestAuthMiddleware_Success(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := handlers.GenerateAccessToken(cfg, "user-42", "alice")
	require.NoError(t, err)

	var gotUserID, gotUsername string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = handlers.GetUserID(r.Context())
		gotUsername, _ = handlers.GetUsername(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware(setupTestLogger(), cfg)(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notes", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", gotUserID)
	assert.Equal(t, "alice", gotUsername)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	cfg := testJWTConfig()

	expiredCfg := cfg
	expiredCfg.AccessTokenTTL = -time.Minute
	expiredToken, _, err := handlers.GenerateAccessToken(expiredCfg, "user-42", "alice")
	require.NoError(t, err)

	wrongKeyCfg := cfg
	wrongKeyCfg.Secret = []byte("another-secret")
	forgedToken, _, err := handlers.GenerateAccessToken(wrongKeyCfg, "user-42", "alice")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
	}{
		{name: "missing header", authHeader: ""},
		{name: "not bearer", authHeader: "Basic dXNlcjpwYXNz"},
		{name: "garbage token", authHeader: "Bearer not.a.jwt"},
		{name: "expired token", authHeader: "Bearer " + expiredToken},
		{name: "wrong signature", authHeader: "Bearer " + forgedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			handler := AuthMiddleware(setupTestLogger(), cfg)(next)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/notes", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, called, "next handler must not run")

			// Отказ приходит в том же JSON-формате, что и ошибки handlers
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			var errResp api.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
			assert.NotEmpty(t, errResp.Error)
		})
	}
}
