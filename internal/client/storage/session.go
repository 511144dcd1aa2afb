package storage

import (
	"context"
	"time"
)

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines interface for storing the ledger session token
type SessionStorage interface {
	// SaveSession stores session data, replacing any existing session
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves stored session data
	// Returns ErrSessionNotFound if wallet is not connected
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes stored session (disconnect)
	DeleteSession(ctx context.Context) error
}

// Session represents a connected wallet session
type Session struct {
	Address   string `json:"address"`
	Token     string `json:"token"`
	Server    string `json:"server"`
	ExpiresAt int64  `json:"expires_at"` // unix seconds
}

// Expired reports whether the session token is no longer valid at now
func (s *Session) Expired(now time.Time) bool {
	return s == nil || now.Unix() >= s.ExpiresAt
}
