// Package handlers HTTP обработчики API леджера.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/vaultkeeper/internal/models"
	"github.com/iudanet/vaultkeeper/pkg/api"
)

//go:generate moq -out ledger_mock.go . Ledger
//go:generate moq -out sessions_mock.go . Sessions

// Ledger операции леджера, доступные через API
type Ledger interface {
	Execute(ctx context.Context, req *api.TransactionRequest) (*models.Transaction, error)
	Transaction(ctx context.Context, digest string) (*models.Transaction, error)
	Object(ctx context.Context, id string) (*models.LedgerObject, error)
	Owned(ctx context.Context, owner, objectType string) ([]*models.LedgerObject, error)
	Summary(ctx context.Context, vaultID string) (*api.SummaryResponse, error)
	Fortune(ctx context.Context, vaultID string) (string, error)
	Checkpoint(ctx context.Context) (int64, error)
}

// Sessions хранилище выданных сессий
type Sessions interface {
	SaveSession(ctx context.Context, session *models.LedgerSession) error
	GetSession(ctx context.Context, id string) (*models.LedgerSession, error)
	DeleteSession(ctx context.Context, id string) error
}

// contextKey тип для ключей контекста
type contextKey string

const (
	// AddressKey ключ для хранения адреса кошелька в контексте
	AddressKey contextKey = "address"
	// SessionIDKey ключ для хранения ID сессии в контексте
	SessionIDKey contextKey = "session_id"
)

// WithSession кладет адрес и ID сессии в контекст запроса
func WithSession(ctx context.Context, address, sessionID string) context.Context {
	ctx = context.WithValue(ctx, AddressKey, address)
	return context.WithValue(ctx, SessionIDKey, sessionID)
}

// GetAddress извлекает адрес кошелька из контекста запроса
func GetAddress(ctx context.Context) (string, bool) {
	address, ok := ctx.Value(AddressKey).(string)
	return address, ok && address != ""
}

// GetSessionID извлекает ID сессии из контекста запроса
func GetSessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionIDKey).(string)
	return id, ok && id != ""
}

// responder общая отправка ответов для всех обработчиков
type responder struct {
	logger *slog.Logger
}

// sendJSON отправляет JSON ответ
func (h responder) sendJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h responder) sendError(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}, statusCode)
}
