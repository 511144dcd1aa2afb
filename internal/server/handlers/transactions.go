package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/vaultkeeper/internal/crypto"
	"github.com/iudanet/vaultkeeper/internal/models"
	"github.com/iudanet/vaultkeeper/internal/server/ledger"
	"github.com/iudanet/vaultkeeper/internal/server/storage"
	"github.com/iudanet/vaultkeeper/pkg/api"
)

// maxTransactionBody ограничение размера тела транзакции
const maxTransactionBody = 1 << 20

// TransactionHandler принимает подписанные транзакции
type TransactionHandler struct {
	responder
	ledger Ledger
}

// NewTransactionHandler создает handler транзакций
func NewTransactionHandler(logger *slog.Logger, l Ledger) *TransactionHandler {
	return &TransactionHandler{
		responder: responder{logger: logger},
		ledger:    l,
	}
}

// Submit обрабатывает POST /api/v1/transactions
// Прерывание контракта возвращается с 200 и status failure
func (h *TransactionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	address, ok := GetAddress(ctx)
	if !ok {
		h.sendError(w, "session is required", http.StatusUnauthorized)
		return
	}

	var req api.TransactionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxTransactionBody)).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode transaction", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Sender != address {
		h.logger.WarnContext(ctx, "sender does not match session",
			slog.String("sender", req.Sender),
			slog.String("address", address))
		h.sendError(w, "sender does not match session address", http.StatusForbidden)
		return
	}

	if err := crypto.VerifyBase64(req.Sender, req.PublicKey, req.Signature, req.SigningBytes()); err != nil {
		h.logger.WarnContext(ctx, "transaction signature rejected",
			slog.String("sender", req.Sender),
			slog.Any("error", err))
		h.sendError(w, "invalid transaction signature", http.StatusBadRequest)
		return
	}

	tx, err := h.ledger.Execute(ctx, &req)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidTransaction):
			h.sendError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, storage.ErrDuplicateNonce):
			h.sendError(w, "transaction nonce already used", http.StatusConflict)
		default:
			h.logger.ErrorContext(ctx, "failed to execute transaction",
				slog.String("operation", req.Operation),
				slog.Any("error", err))
			h.sendError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.sendJSON(w, toTransactionResponse(tx), http.StatusOK)
}

// Get обрабатывает GET /api/v1/transactions/{digest}
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	digest := chi.URLParam(r, "digest")

	tx, err := h.ledger.Transaction(ctx, digest)
	if err != nil {
		if errors.Is(err, storage.ErrTransactionNotFound) {
			h.sendError(w, "transaction not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get transaction", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, toTransactionResponse(tx), http.StatusOK)
}

func toTransactionResponse(tx *models.Transaction) api.TransactionResponse {
	resp := api.TransactionResponse{
		Digest:     tx.Digest,
		Status:     string(tx.Status),
		Error:      tx.Error,
		Checkpoint: tx.Checkpoint,
	}
	for _, ch := range tx.Changes {
		resp.ObjectChanges = append(resp.ObjectChanges, api.ObjectChange{
			Kind:       string(ch.Kind),
			ObjectID:   ch.ObjectID,
			ObjectType: ch.ObjectType,
			Owner:      ch.Owner,
			Version:    ch.Version,
		})
	}
	return resp
}
