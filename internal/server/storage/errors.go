package storage

import "errors"

// Common storage errors
var (
	// ErrObjectNotFound indicates that ledger object was not found
	ErrObjectNotFound = errors.New("object not found")

	// ErrVersionConflict indicates that object was changed by another commit
	ErrVersionConflict = errors.New("object version conflict")

	// ErrDuplicateNonce indicates that transaction with this nonce was already committed
	ErrDuplicateNonce = errors.New("transaction nonce already used")

	// ErrTransactionNotFound indicates that transaction was not found
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrSessionNotFound indicates that session was not found or revoked
	ErrSessionNotFound = errors.New("session not found")
)
