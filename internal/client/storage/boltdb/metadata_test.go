package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func TestSaveAndGetLastCheckpoint(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Изначально checkpoint не сохранён
	cp, err := store.GetLastCheckpoint(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cp)

	require.NoError(t, store.SaveLastCheckpoint(ctx, 42))
	cp, err = store.GetLastCheckpoint(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cp)

	// Меньший checkpoint игнорируется
	require.NoError(t, store.SaveLastCheckpoint(ctx, 10))
	cp, err = store.GetLastCheckpoint(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cp)
}

func TestGetLastCheckpoint_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	})
	require.NoError(t, err)

	_, err = store.GetLastCheckpoint(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")

	err = store.SaveLastCheckpoint(ctx, 42)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")
}
