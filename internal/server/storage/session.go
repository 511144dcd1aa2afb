package storage

import (
	"context"
	"time"

	"github.com/iudanet/vaultkeeper/internal/models"
)

// SessionStorage defines interface for wallet session persistence
type SessionStorage interface {
	// SaveSession stores issued session
	SaveSession(ctx context.Context, session *models.LedgerSession) error

	// GetSession retrieves session by ID
	// Returns ErrSessionNotFound if session doesn't exist or was revoked
	GetSession(ctx context.Context, id string) (*models.LedgerSession, error)

	// DeleteSession revokes session by ID
	// Returns ErrSessionNotFound if session doesn't exist
	DeleteSession(ctx context.Context, id string) error

	// DeleteExpiredSessions removes sessions expired before now
	// Returns number of deleted sessions
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error)
}
