package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/vaultkeeper/internal/models"
	"github.com/iudanet/vaultkeeper/internal/server/ledger"
	"github.com/iudanet/vaultkeeper/internal/server/storage"
	"github.com/iudanet/vaultkeeper/pkg/api"
)

func signedTransaction(t *testing.T, w testWallet) api.TransactionRequest {
	t.Helper()
	req := api.TransactionRequest{
		Params:    json.RawMessage(`{"name":"Trip","color":"blue","story":"s"}`),
		Operation: string(models.OpCreateVault),
		Sender:    w.address,
		Nonce:     "nonce-1",
		PublicKey: w.pubB64,
	}
	req.Signature = w.sign(t, req.SigningBytes())
	return req
}

func submit(t *testing.T, h *TransactionHandler, address string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if s, ok := body.(string); ok {
		req = httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(s))
	} else {
		req = httptest.NewRequest(http.MethodPost, "/api/v1/transactions", jsonBody(t, body))
	}
	if address != "" {
		req = req.WithContext(WithSession(req.Context(), address, "s1"))
	}
	w := httptest.NewRecorder()
	h.Submit(w, req)
	return w
}

func TestTransactionHandler_Submit_Receipts(t *testing.T) {
	wallet := newTestWallet(t)
	vaultID := fmt.Sprintf("0x%064x", 7)

	tests := []struct {
		name string
		tx   *models.Transaction
		want api.TransactionResponse
	}{
		{
			name: "success",
			tx: &models.Transaction{
				Digest:     "d1",
				Status:     models.ReceiptSuccess,
				Checkpoint: 4,
				Changes: []models.ObjectChange{{
					Kind: models.ChangeCreated, ObjectID: vaultID, ObjectType: models.ObjectTypeVault,
					Owner: wallet.address, Version: 1,
				}},
			},
			want: api.TransactionResponse{
				Digest:     "d1",
				Status:     "success",
				Checkpoint: 4,
				ObjectChanges: []api.ObjectChange{{
					Kind: "created", ObjectID: vaultID, ObjectType: "vault", Owner: wallet.address, Version: 1,
				}},
			},
		},
		{
			name: "contract abort is still 200",
			tx:   &models.Transaction{Digest: "d2", Status: models.ReceiptFailure, Error: "insufficient balance", Checkpoint: 5},
			want: api.TransactionResponse{Digest: "d2", Status: "failure", Error: "insufficient balance", Checkpoint: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &LedgerMock{
				ExecuteFunc: func(ctx context.Context, req *api.TransactionRequest) (*models.Transaction, error) {
					return tt.tx, nil
				},
			}
			h := NewTransactionHandler(setupTestLogger(), l)

			req := signedTransaction(t, wallet)
			w := submit(t, h, wallet.address, req)

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, tt.want, decodeBody[api.TransactionResponse](t, w))

			require.Len(t, l.ExecuteCalls(), 1)
			assert.Equal(t, req.Nonce, l.ExecuteCalls()[0].Req.Nonce)
		})
	}
}

func TestTransactionHandler_Submit_Rejects(t *testing.T) {
	wallet := newTestWallet(t)
	other := newTestWallet(t)

	valid := signedTransaction(t, wallet)

	tampered := valid
	tampered.Params = json.RawMessage(`{"name":"Other","color":"blue","story":"s"}`)

	foreignKey := valid
	foreignKey.PublicKey = other.pubB64

	tests := []struct {
		body       any
		name       string
		address    string
		wantStatus int
	}{
		{name: "no session", body: valid, wantStatus: http.StatusUnauthorized},
		{name: "malformed json", address: wallet.address, body: "{", wantStatus: http.StatusBadRequest},
		{name: "sender is not session wallet", address: other.address, body: valid, wantStatus: http.StatusForbidden},
		{name: "tampered params", address: wallet.address, body: tampered, wantStatus: http.StatusBadRequest},
		{name: "key does not match sender", address: wallet.address, body: foreignKey, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &LedgerMock{}
			h := NewTransactionHandler(setupTestLogger(), l)

			w := submit(t, h, tt.address, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Empty(t, l.ExecuteCalls())
		})
	}
}

func TestTransactionHandler_Submit_LedgerErrors(t *testing.T) {
	wallet := newTestWallet(t)

	tests := []struct {
		err        error
		name       string
		wantStatus int
	}{
		{name: "invalid transaction", err: fmt.Errorf("unknown operation: %w", ledger.ErrInvalidTransaction), wantStatus: http.StatusBadRequest},
		{name: "replayed nonce", err: fmt.Errorf("commit: %w", storage.ErrDuplicateNonce), wantStatus: http.StatusConflict},
		{name: "storage failure", err: errors.New("database is locked"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &LedgerMock{
				ExecuteFunc: func(ctx context.Context, req *api.TransactionRequest) (*models.Transaction, error) {
					return nil, tt.err
				},
			}
			h := NewTransactionHandler(setupTestLogger(), l)

			w := submit(t, h, wallet.address, signedTransaction(t, wallet))

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeBody[api.ErrorResponse](t, w)
			assert.Equal(t, http.StatusText(tt.wantStatus), resp.Error)
		})
	}
}

func TestTransactionHandler_Get(t *testing.T) {
	l := &LedgerMock{
		TransactionFunc: func(ctx context.Context, digest string) (*models.Transaction, error) {
			if digest == "known" {
				return &models.Transaction{Digest: "known", Status: models.ReceiptSuccess, Checkpoint: 9}, nil
			}
			return nil, storage.ErrTransactionNotFound
		},
	}
	h := NewTransactionHandler(setupTestLogger(), l)

	w := httptest.NewRecorder()
	h.Get(w, withURLParams(httptest.NewRequest(http.MethodGet, "/api/v1/transactions/known", nil), "digest", "known"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(9), decodeBody[api.TransactionResponse](t, w).Checkpoint)

	w = httptest.NewRecorder()
	h.Get(w, withURLParams(httptest.NewRequest(http.MethodGet, "/api/v1/transactions/nope", nil), "digest", "nope"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
