package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/vaultkeeper/internal/client/ledger"
	"github.com/iudanet/vaultkeeper/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.BaseURL())
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_CreateSession проверяет подключение кошелька
func TestClient_CreateSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/session", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req api.SessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "0xabc", req.Address)
		assert.Equal(t, int64(1700000000), req.Timestamp)

		_ = json.NewEncoder(w).Encode(api.SessionResponse{Token: "jwt", Address: req.Address, ExpiresIn: 3600})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.CreateSession(context.Background(), api.SessionRequest{
		Address:   "0xabc",
		PublicKey: "pk",
		Signature: "sig",
		Timestamp: 1700000000,
	})

	require.NoError(t, err)
	assert.Equal(t, "jwt", resp.Token)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
}

// TestClient_SubmitTransaction проверяет отправку транзакции с токеном
func TestClient_SubmitTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/transactions", r.URL.Path)
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

		var req api.TransactionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "record_withdrawal", req.Operation)
		assert.JSONEq(t, `{"amount":5}`, string(req.Params))

		// Прерывание контракта приходит как 200 со статусом failure
		_ = json.NewEncoder(w).Encode(api.TransactionResponse{
			Digest: "abc",
			Status: "failure",
			Error:  "insufficient balance",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.SubmitTransaction(context.Background(), "session-token", api.TransactionRequest{
		Operation: "record_withdrawal",
		Params:    json.RawMessage(`{"amount":5}`),
	})

	require.NoError(t, err)
	assert.Equal(t, "failure", resp.Status)
	assert.Equal(t, "insufficient balance", resp.Error)
}

func TestClient_OwnedObjects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/owners/0xowner/objects", r.URL.Path)
		assert.Equal(t, "vault", r.URL.Query().Get("type"))

		_ = json.NewEncoder(w).Encode(api.OwnedObjectsResponse{
			Owner: "0xowner",
			Type:  "vault",
			Objects: []api.ObjectResponse{
				{ObjectID: "0x1", Type: "vault", Owner: "0xowner", Version: 3, Content: json.RawMessage(`{"name":"a"}`)},
			},
		})
	}))
	defer server.Close()

	resp, err := NewClient(server.URL).OwnedObjects(context.Background(), "0xowner", "vault")

	require.NoError(t, err)
	require.Len(t, resp.Objects, 1)
	assert.Equal(t, uint64(3), resp.Objects[0].Version)
}

func TestClient_SummaryAndFortune(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/vaults/0x1/summary", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.SummaryResponse{VaultID: "0x1", Balance: 10, MemoryCount: 2})
	})
	mux.HandleFunc("/api/v1/vaults/0x1/fortune", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.FortuneResponse{VaultID: "0x1", Fortune: "patience pays"})
	})
	mux.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.HealthResponse{Status: "ok", Checkpoint: 7})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	summary, err := client.VaultSummary(ctx, "0x1")
	require.NoError(t, err)
	assert.Equal(t, uint64(10), summary.Balance)

	fortune, err := client.VaultFortune(ctx, "0x1")
	require.NoError(t, err)
	assert.Equal(t, "patience pays", fortune.Fortune)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), health.Checkpoint)
}

// TestClient_ErrorClasses проверяет отображение HTTP статусов в классы ошибок леджера
func TestClient_ErrorClasses(t *testing.T) {
	tests := []struct {
		responseBody   any
		wantClass      error
		name           string
		expectedErrMsg string
		statusCode     int
	}{
		{
			name:           "not found",
			statusCode:     http.StatusNotFound,
			responseBody:   api.ErrorResponse{Error: "Not Found", Message: "object not found"},
			wantClass:      ledger.ErrObjectNotFound,
			expectedErrMsg: "server error (404): object not found",
		},
		{
			name:           "bad signature",
			statusCode:     http.StatusBadRequest,
			responseBody:   api.ErrorResponse{Error: "Bad Request", Message: "invalid signature"},
			wantClass:      ledger.ErrRejected,
			expectedErrMsg: "server error (400): invalid signature",
		},
		{
			name:           "session expired",
			statusCode:     http.StatusUnauthorized,
			responseBody:   api.ErrorResponse{Error: "Unauthorized"},
			wantClass:      ledger.ErrNotConnected,
			expectedErrMsg: "server error (401): Unauthorized",
		},
		{
			name:           "rate limited",
			statusCode:     http.StatusTooManyRequests,
			responseBody:   api.ErrorResponse{Error: "rate limit exceeded, please try again later"},
			wantClass:      ledger.ErrNetwork,
			expectedErrMsg: "rate limit exceeded",
		},
		{
			name:           "internal error",
			statusCode:     http.StatusInternalServerError,
			responseBody:   "Internal Server Error",
			wantClass:      ledger.ErrNetwork,
			expectedErrMsg: "request failed with status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				if errResp, ok := tt.responseBody.(api.ErrorResponse); ok {
					_ = json.NewEncoder(w).Encode(errResp)
				} else {
					_, _ = w.Write([]byte(tt.responseBody.(string)))
				}
			}))
			defer server.Close()

			resp, err := NewClient(server.URL).GetObject(context.Background(), "0x1")

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantClass)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(url).Health(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrNetwork)
}

func TestClient_Cancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(server.URL).Health(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ledger.ErrNetwork)
}

func TestClient_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{broken"))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).GetObject(context.Background(), "0x1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}
