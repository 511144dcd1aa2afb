package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/vaultkeeper/pkg/api"
)

// Pinger проверка доступности базы
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	responder
	db      Pinger
	ledger  Ledger
	version string
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, db Pinger, l Ledger, version string) *HealthHandler {
	return &HealthHandler{
		responder: responder{logger: logger},
		db:        db,
		ledger:    l,
		version:   version,
	}
}

// Health обрабатывает GET /api/v1/health
// Health check endpoint для мониторинга
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.ErrorContext(ctx, "database is unavailable", slog.Any("error", err))
		h.sendJSON(w, api.HealthResponse{Status: "unavailable", Version: h.version}, http.StatusServiceUnavailable)
		return
	}

	checkpoint, err := h.ledger.Checkpoint(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read checkpoint", slog.Any("error", err))
		h.sendJSON(w, api.HealthResponse{Status: "unavailable", Version: h.version}, http.StatusServiceUnavailable)
		return
	}

	h.sendJSON(w, api.HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Checkpoint: checkpoint,
	}, http.StatusOK)
}
