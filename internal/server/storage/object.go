package storage

import (
	"context"
	"time"

	"github.com/iudanet/vaultkeeper/internal/models"
)

// ObjectStorage defines interface for ledger object reads
type ObjectStorage interface {
	// GetObject retrieves current version of object by ID
	// Returns ErrObjectNotFound if object doesn't exist
	GetObject(ctx context.Context, id string) (*models.LedgerObject, error)

	// OwnedObjects returns objects as the owner index saw them at indexedAt:
	// ownership changes after indexedAt are not visible yet.
	// Empty objectType means all types. Returns empty slice if nothing found
	OwnedObjects(ctx context.Context, owner, objectType string, indexedAt time.Time) ([]*models.LedgerObject, error)
}

// TransactionStorage defines interface for atomic commits
type TransactionStorage interface {
	// Commit records transaction and writes all changed objects atomically.
	// Objects with Version 1 are inserted, others must have stored version Version-1.
	// Returns assigned checkpoint, ErrDuplicateNonce or ErrVersionConflict
	Commit(ctx context.Context, tx *models.Transaction, objects []*models.LedgerObject) (int64, error)

	// GetTransaction retrieves committed transaction by digest
	// Returns ErrTransactionNotFound if transaction doesn't exist
	GetTransaction(ctx context.Context, digest string) (*models.Transaction, error)

	// LastCheckpoint returns checkpoint of the latest commit, 0 for empty ledger
	LastCheckpoint(ctx context.Context) (int64, error)
}

// LedgerStorage объединяет чтение объектов и коммиты
type LedgerStorage interface {
	ObjectStorage
	TransactionStorage
}
