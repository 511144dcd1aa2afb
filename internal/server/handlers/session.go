package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/vaultkeeper/internal/clock"
	"github.com/iudanet/vaultkeeper/internal/crypto"
	"github.com/iudanet/vaultkeeper/internal/models"
	"github.com/iudanet/vaultkeeper/internal/server/storage"
	"github.com/iudanet/vaultkeeper/internal/validation"
	"github.com/iudanet/vaultkeeper/pkg/api"
)

// MaxConnectSkew насколько подпись connect сообщения может отличаться от часов сервера
const MaxConnectSkew = 5 * time.Minute

// SessionHandler выдает и отзывает сессии кошельков
type SessionHandler struct {
	responder
	sessions  Sessions
	clock     clock.Clock
	jwtConfig JWTConfig
}

// NewSessionHandler создает handler сессий. clk может быть nil.
func NewSessionHandler(logger *slog.Logger, sessions Sessions, jwtConfig JWTConfig, clk clock.Clock) *SessionHandler {
	if clk == nil {
		clk = clock.Real{}
	}
	return &SessionHandler{
		responder: responder{logger: logger},
		sessions:  sessions,
		clock:     clk,
		jwtConfig: jwtConfig,
	}
}

// Create обрабатывает POST /api/v1/session
// Кошелек подписывает connect сообщение, в ответ получает JWT сессии
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode session request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateAddress(req.Address); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.PublicKey == "" || req.Signature == "" {
		h.sendError(w, "public_key and signature are required", http.StatusBadRequest)
		return
	}

	now := h.clock.Now()
	signedAt := time.Unix(req.Timestamp, 0)
	if skew := now.Sub(signedAt); skew > MaxConnectSkew || skew < -MaxConnectSkew {
		h.logger.WarnContext(ctx, "stale connect signature",
			slog.String("address", req.Address),
			slog.Duration("skew", skew))
		h.sendError(w, "connect signature timestamp is out of range", http.StatusUnauthorized)
		return
	}

	msg := crypto.ConnectMessage(req.Address, req.Timestamp)
	if err := crypto.VerifyBase64(req.Address, req.PublicKey, req.Signature, msg); err != nil {
		h.logger.WarnContext(ctx, "connect signature rejected",
			slog.String("address", req.Address),
			slog.Any("error", err))
		h.sendError(w, "invalid connect signature", http.StatusUnauthorized)
		return
	}

	sessionID := uuid.NewString()
	token, expiresIn, err := GenerateSessionToken(h.jwtConfig, req.Address, sessionID, now)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate session token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	session := &models.LedgerSession{
		ID:        sessionID,
		Address:   req.Address,
		ExpiresAt: now.Add(h.jwtConfig.SessionTTL),
		CreatedAt: now,
	}
	if err := h.sessions.SaveSession(ctx, session); err != nil {
		h.logger.ErrorContext(ctx, "failed to save session", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "wallet connected",
		slog.String("address", req.Address),
		slog.String("session_id", sessionID))

	h.sendJSON(w, api.SessionResponse{
		Token:     token,
		Address:   req.Address,
		ExpiresIn: expiresIn,
	}, http.StatusOK)
}

// Revoke обрабатывает DELETE /api/v1/session
// Отзывает текущую сессию, токен перестает приниматься
func (h *SessionHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, ok := GetSessionID(ctx)
	if !ok {
		h.sendError(w, "session is required", http.StatusUnauthorized)
		return
	}

	if err := h.sessions.DeleteSession(ctx, sessionID); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		h.logger.ErrorContext(ctx, "failed to delete session", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	address, _ := GetAddress(ctx)
	h.logger.InfoContext(ctx, "wallet disconnected",
		slog.String("address", address),
		slog.String("session_id", sessionID))

	w.WriteHeader(http.StatusNoContent)
}
