package storage

import (
	"context"

	"github.com/iudanet/vaultkeeper/internal/models"
)

//go:generate moq -out view_mock.go . ViewStorage

// ViewStorage defines interface for persisting the local owned-objects snapshot.
// The snapshot lets the CLI show the last known state before the first ledger read.
type ViewStorage interface {
	// SaveView stores the snapshot for view.Owner
	SaveView(ctx context.Context, view *models.OwnedView) error

	// GetView retrieves the snapshot for owner
	// Returns ErrViewNotFound if nothing was saved
	GetView(ctx context.Context, owner string) (*models.OwnedView, error)
}
