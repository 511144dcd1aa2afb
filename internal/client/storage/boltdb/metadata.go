package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

const (
	keyLastCheckpoint = "last_checkpoint"
)

// SaveLastCheckpoint saves the ledger checkpoint of the last observed transaction.
// Меньший checkpoint не перезаписывает больший.
func (s *Storage) SaveLastCheckpoint(ctx context.Context, checkpoint int64) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if current := bucket.Get([]byte(keyLastCheckpoint)); current != nil {
			if int64(binary.BigEndian.Uint64(current)) >= checkpoint {
				return nil
			}
		}

		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(checkpoint))

		if err := bucket.Put([]byte(keyLastCheckpoint), buf); err != nil {
			return fmt.Errorf("failed to save last checkpoint: %w", err)
		}
		return nil
	})
}

// GetLastCheckpoint retrieves the last observed checkpoint
// Returns 0 if no transaction has been observed yet
func (s *Storage) GetLastCheckpoint(ctx context.Context) (int64, error) {
	var checkpoint int64

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := bucket.Get([]byte(keyLastCheckpoint))
		if buf == nil {
			checkpoint = 0
			return nil
		}

		checkpoint = int64(binary.BigEndian.Uint64(buf))
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get last checkpoint: %w", err)
	}

	return checkpoint, nil
}
