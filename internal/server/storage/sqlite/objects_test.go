package sqlite

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/vaultkeeper/internal/models"
	"github.com/iudanet/vaultkeeper/internal/server/storage"
)

func TestObjectStorage_GetObject(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	at := time.UnixMilli(1_700_000_000_000).UTC()
	obj := newTestObject(testAddress(100), testAddress(1), at)
	_, err := s.Commit(ctx, newTestTx("n1", at), []*models.LedgerObject{obj})
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "existing object", id: testAddress(100)},
		{name: "missing object", id: testAddress(999), wantErr: storage.ErrObjectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.GetObject(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, obj.ID, got.ID)
			assert.Equal(t, obj.Type, got.Type)
			assert.Equal(t, obj.Digest, got.Digest)
			assert.Equal(t, uint64(1), got.Version)
			assert.Equal(t, at, got.CreatedAt)
			assert.JSONEq(t, string(obj.Content), string(got.Content))
		})
	}
}

func TestObjectStorage_VersionConflict(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	at := time.UnixMilli(1_700_000_000_000).UTC()
	obj := newTestObject(testAddress(100), testAddress(1), at)
	_, err := s.Commit(ctx, newTestTx("n1", at), []*models.LedgerObject{obj})
	require.NoError(t, err)

	// Версия 2 поверх версии 1
	updated := *obj
	updated.Version = 2
	updated.Content = json.RawMessage(`{"name":"Car"}`)
	_, err = s.Commit(ctx, newTestTx("n2", at), []*models.LedgerObject{&updated})
	require.NoError(t, err)

	// Повторная запись версии 2 должна провалиться и не оставить транзакцию
	stale := updated
	_, err = s.Commit(ctx, newTestTx("n3", at), []*models.LedgerObject{&stale})
	require.ErrorIs(t, err, storage.ErrVersionConflict)

	_, err = s.GetTransaction(ctx, newTestTx("n3", at).Digest)
	require.ErrorIs(t, err, storage.ErrTransactionNotFound)

	// Повторное создание того же ID
	_, err = s.Commit(ctx, newTestTx("n4", at), []*models.LedgerObject{newTestObject(testAddress(100), testAddress(1), at)})
	require.ErrorIs(t, err, storage.ErrVersionConflict)

	got, err := s.GetObject(ctx, testAddress(100))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got.Version)
	assert.JSONEq(t, `{"name":"Car"}`, string(got.Content))
}

func TestObjectStorage_OwnedObjectsLag(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	alice, bob := testAddress(1), testAddress(2)
	t0 := time.UnixMilli(1_700_000_000_000).UTC()

	vault := newTestObject(testAddress(100), alice, t0)
	art := newTestObject(testAddress(101), alice, t0)
	art.Type = models.ObjectTypeVaultArt
	_, err := s.Commit(ctx, newTestTx("n1", t0), []*models.LedgerObject{vault, art})
	require.NoError(t, err)

	// Передача bob в момент t1
	t1 := t0.Add(10 * time.Second)
	moved := *vault
	moved.Version = 2
	moved.PrevOwner = alice
	moved.PrevOwnerSince = vault.OwnerSince
	moved.Owner = bob
	moved.OwnerSince = t1
	moved.UpdatedAt = t1
	_, err = s.Commit(ctx, newTestTx("n2", t1), []*models.LedgerObject{&moved})
	require.NoError(t, err)

	tests := []struct {
		name      string
		owner     string
		typ       string
		indexedAt time.Time
		wantIDs   []string
	}{
		{
			name:      "before creation indexed nothing",
			owner:     alice,
			indexedAt: t0.Add(-time.Second),
			wantIDs:   []string{},
		},
		{
			name:      "alice before transfer indexed",
			owner:     alice,
			indexedAt: t0.Add(5 * time.Second),
			wantIDs:   []string{testAddress(100), testAddress(101)},
		},
		{
			name:      "alice vaults only",
			owner:     alice,
			typ:       models.ObjectTypeVault,
			indexedAt: t0.Add(5 * time.Second),
			wantIDs:   []string{testAddress(100)},
		},
		{
			name:      "bob before transfer indexed",
			owner:     bob,
			indexedAt: t0.Add(5 * time.Second),
			wantIDs:   []string{},
		},
		{
			name:      "alice after transfer indexed",
			owner:     alice,
			indexedAt: t1,
			wantIDs:   []string{testAddress(101)},
		},
		{
			name:      "bob after transfer indexed",
			owner:     bob,
			indexedAt: t1,
			wantIDs:   []string{testAddress(100)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			objects, err := s.OwnedObjects(ctx, tt.owner, tt.typ, tt.indexedAt)
			require.NoError(t, err)

			ids := make([]string, 0, len(objects))
			for _, obj := range objects {
				ids = append(ids, obj.ID)
				assert.Equal(t, tt.owner, obj.Owner)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
