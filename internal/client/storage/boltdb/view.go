package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/vaultkeeper/internal/client/storage"
	"github.com/iudanet/vaultkeeper/internal/models"
)

// SaveView stores the owned-objects snapshot keyed by owner address
func (s *Storage) SaveView(ctx context.Context, view *models.OwnedView) error {
	if view == nil || view.Owner == "" {
		return fmt.Errorf("view owner is required")
	}

	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketViews)
		if bucket == nil {
			return fmt.Errorf("views bucket not found")
		}

		data, err := json.Marshal(view)
		if err != nil {
			return fmt.Errorf("failed to marshal view: %w", err)
		}

		if err := bucket.Put([]byte(view.Owner), data); err != nil {
			return fmt.Errorf("failed to save view: %w", err)
		}
		return nil
	})
}

// GetView retrieves the snapshot for owner
func (s *Storage) GetView(ctx context.Context, owner string) (*models.OwnedView, error) {
	var view *models.OwnedView

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketViews)
		if bucket == nil {
			return fmt.Errorf("views bucket not found")
		}

		data := bucket.Get([]byte(owner))
		if data == nil {
			return storage.ErrViewNotFound
		}

		view = &models.OwnedView{}
		if err := json.Unmarshal(data, view); err != nil {
			return fmt.Errorf("failed to unmarshal view: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}
