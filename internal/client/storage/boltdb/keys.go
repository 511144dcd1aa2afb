package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/vaultkeeper/internal/client/storage"
)

var walletKey = []byte("wallet")

// SaveKey stores the encrypted wallet key
func (s *Storage) SaveKey(ctx context.Context, key *storage.KeyData) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketKeys)
		if bucket == nil {
			return fmt.Errorf("keys bucket not found")
		}

		data, err := json.Marshal(key)
		if err != nil {
			return fmt.Errorf("failed to marshal key data: %w", err)
		}

		if err := bucket.Put(walletKey, data); err != nil {
			return fmt.Errorf("failed to save key data: %w", err)
		}
		return nil
	})
}

// GetKey retrieves the encrypted wallet key
func (s *Storage) GetKey(ctx context.Context) (*storage.KeyData, error) {
	var key *storage.KeyData

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketKeys)
		if bucket == nil {
			return fmt.Errorf("keys bucket not found")
		}

		data := bucket.Get(walletKey)
		if data == nil {
			return storage.ErrKeyNotFound
		}

		key = &storage.KeyData{}
		if err := json.Unmarshal(data, key); err != nil {
			return fmt.Errorf("failed to unmarshal key data: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return key, nil
}
