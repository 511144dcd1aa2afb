package storage

import "errors"

// Common client storage errors
var (
	// ErrKeyNotFound indicates that no wallet key has been created or imported
	ErrKeyNotFound = errors.New("wallet key not found")

	// ErrSessionNotFound indicates that the wallet is not connected to a ledger
	ErrSessionNotFound = errors.New("session not found")

	// ErrViewNotFound indicates that no owned-objects snapshot was saved for the owner
	ErrViewNotFound = errors.New("owned view not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
