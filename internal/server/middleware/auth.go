package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/vaultkeeper/internal/models"
	"github.com/iudanet/vaultkeeper/internal/server/handlers"
	"github.com/iudanet/vaultkeeper/internal/server/storage"
)

// SessionLookup чтение сессии по ID из токена
type SessionLookup interface {
	GetSession(ctx context.Context, id string) (*models.LedgerSession, error)
}

// AuthMiddleware создает middleware для проверки токена сессии.
// Токен должен быть валидным JWT, а сессия из jti не отозвана и не истекла.
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig, sessions SessionLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header")
				http.Error(w, "Unauthorized: missing token", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("Invalid Authorization header format")
				http.Error(w, "Unauthorized: invalid token format", http.StatusUnauthorized)
				return
			}

			claims, err := handlers.ValidateSessionToken(jwtConfig, parts[1])
			if err != nil {
				logger.Warn("Invalid session token", "error", err)
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			session, err := sessions.GetSession(r.Context(), claims.ID)
			if err != nil {
				if errors.Is(err, storage.ErrSessionNotFound) {
					logger.Warn("Session revoked", "session_id", claims.ID)
					http.Error(w, "Unauthorized: session revoked", http.StatusUnauthorized)
					return
				}
				logger.Error("Failed to load session", "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			if session.Address != claims.Address || time.Now().After(session.ExpiresAt) {
				logger.Warn("Session expired or mismatched", "session_id", claims.ID)
				http.Error(w, "Unauthorized: session expired", http.StatusUnauthorized)
				return
			}

			ctx := handlers.WithSession(r.Context(), claims.Address, claims.ID)

			logger.Debug("Wallet authenticated", "address", claims.Address, "session_id", claims.ID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
