package handlers

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/vaultkeeper/internal/crypto"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testWallet пара ключей и адрес для подписи запросов
type testWallet struct {
	priv    ed25519.PrivateKey
	address string
	pubB64  string
}

func newTestWallet(t *testing.T) testWallet {
	t.Helper()
	pub, priv, err := crypto.GenerateKeypair()
	require.NoError(t, err)
	address, err := crypto.AddressFromPublicKey(pub)
	require.NoError(t, err)
	return testWallet{
		priv:    priv,
		address: address,
		pubB64:  base64.StdEncoding.EncodeToString(pub),
	}
}

func (w testWallet) sign(t *testing.T, msg []byte) string {
	t.Helper()
	sig, err := crypto.SignBase64(w.priv, msg)
	require.NoError(t, err)
	return sig
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

// withURLParams добавляет chi параметры пути к запросу
func withURLParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
