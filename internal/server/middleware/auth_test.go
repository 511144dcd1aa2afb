package middleware

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/vaultkeeper/internal/models"
	"github.com/iudanet/vaultkeeper/internal/server/handlers"
	"github.com/iudanet/vaultkeeper/internal/server/storage"
)

var testAddress = fmt.Sprintf("0x%064x", 0xa11ce)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testJWTConfig() handlers.JWTConfig {
	return handlers.JWTConfig{
		Secret:     []byte("test-secret-key-test-secret-key!"),
		SessionTTL: 15 * time.Minute,
	}
}

func activeSessions(sessions ...*models.LedgerSession) *handlers.SessionsMock {
	byID := make(map[string]*models.LedgerSession, len(sessions))
	for _, s := range sessions {
		byID[s.ID] = s
	}
	return &handlers.SessionsMock{
		GetSessionFunc: func(ctx context.Context, id string) (*models.LedgerSession, error) {
			s, ok := byID[id]
			if !ok {
				return nil, storage.ErrSessionNotFound
			}
			return s, nil
		},
	}
}

// sessionHandler проверяет, что адрес и ID сессии попали в контекст
func sessionHandler(t *testing.T, wantAddress, wantSession string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address, ok := handlers.GetAddress(r.Context())
		require.True(t, ok, "address should be in context")
		assert.Equal(t, wantAddress, address)

		sessionID, ok := handlers.GetSessionID(r.Context())
		require.True(t, ok, "session id should be in context")
		assert.Equal(t, wantSession, sessionID)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

func TestAuthMiddleware_Success(t *testing.T) {
	cfg := testJWTConfig()
	token, _, err := handlers.GenerateSessionToken(cfg, testAddress, "s1", time.Now())
	require.NoError(t, err)

	sessions := activeSessions(&models.LedgerSession{
		ID: "s1", Address: testAddress, ExpiresAt: time.Now().Add(time.Hour),
	})
	handler := AuthMiddleware(setupTestLogger(), cfg, sessions)(sessionHandler(t, testAddress, "s1"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	require.Len(t, sessions.GetSessionCalls(), 1)
	assert.Equal(t, "s1", sessions.GetSessionCalls()[0].ID)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now()

	valid, _, err := handlers.GenerateSessionToken(cfg, testAddress, "s1", now)
	require.NoError(t, err)
	revoked, _, err := handlers.GenerateSessionToken(cfg, testAddress, "gone", now)
	require.NoError(t, err)
	expired, _, err := handlers.GenerateSessionToken(cfg, testAddress, "s1", now.Add(-time.Hour))
	require.NoError(t, err)
	otherSecret, _, err := handlers.GenerateSessionToken(handlers.JWTConfig{
		Secret: []byte("another-secret-another-secret-!!"), SessionTTL: time.Hour,
	}, testAddress, "s1", now)
	require.NoError(t, err)
	stale, _, err := handlers.GenerateSessionToken(cfg, testAddress, "stale", now)
	require.NoError(t, err)
	foreign, _, err := handlers.GenerateSessionToken(cfg, fmt.Sprintf("0x%064x", 0xb0b), "s1", now)
	require.NoError(t, err)

	sessions := activeSessions(
		&models.LedgerSession{ID: "s1", Address: testAddress, ExpiresAt: now.Add(time.Hour)},
		&models.LedgerSession{ID: "stale", Address: testAddress, ExpiresAt: now.Add(-time.Second)},
	)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic " + valid},
		{name: "no token", header: "Bearer"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
		{name: "expired token", header: "Bearer " + expired},
		{name: "wrong secret", header: "Bearer " + otherSecret},
		{name: "revoked session", header: "Bearer " + revoked},
		{name: "expired session", header: "Bearer " + stale},
		{name: "address mismatch", header: "Bearer " + foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := AuthMiddleware(setupTestLogger(), cfg, sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, called)
		})
	}
}

func TestAuthMiddleware_SessionStoreError(t *testing.T) {
	cfg := testJWTConfig()
	token, _, err := handlers.GenerateSessionToken(cfg, testAddress, "s1", time.Now())
	require.NoError(t, err)

	sessions := &handlers.SessionsMock{
		GetSessionFunc: func(ctx context.Context, id string) (*models.LedgerSession, error) {
			return nil, errors.New("database is locked")
		},
	}
	handler := AuthMiddleware(setupTestLogger(), cfg, sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
