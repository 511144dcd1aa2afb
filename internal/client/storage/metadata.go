package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastCheckpoint saves the ledger checkpoint of the last observed transaction
	SaveLastCheckpoint(ctx context.Context, checkpoint int64) error

	// GetLastCheckpoint retrieves the last observed checkpoint
	// Returns 0 if no transaction has been observed yet
	GetLastCheckpoint(ctx context.Context) (int64, error)
}
