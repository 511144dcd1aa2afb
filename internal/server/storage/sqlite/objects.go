package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/vaultkeeper/internal/models"
	"github.com/iudanet/vaultkeeper/internal/server/storage"
)

const objectColumns = `id, type, owner, prev_owner, owner_since, prev_owner_since, content, version, digest, created_at, updated_at`

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// GetObject retrieves current version of object by ID
func (s *Storage) GetObject(ctx context.Context, id string) (*models.LedgerObject, error) {
	query := `SELECT ` + objectColumns + ` FROM objects WHERE id = ?`

	obj, err := scanObject(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	return obj, nil
}

// OwnedObjects returns objects owned by owner as seen by the owner index at indexedAt.
// Объект, перешедший к owner позже indexedAt, еще не виден,
// а объект, ушедший от owner позже indexedAt, все еще числится за ним.
func (s *Storage) OwnedObjects(ctx context.Context, owner, objectType string, indexedAt time.Time) ([]*models.LedgerObject, error) {
	query := `
		SELECT ` + objectColumns + `
		FROM objects
		WHERE (? = '' OR type = ?)
		  AND ((owner = ? AND owner_since <= ?) OR (prev_owner = ? AND owner_since > ? AND prev_owner_since <= ?))
		ORDER BY created_at ASC, id ASC
	`

	cutoff := toMillis(indexedAt)
	rows, err := s.db.QueryContext(ctx, query,
		objectType, objectType,
		owner, cutoff,
		owner, cutoff, cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query owned objects: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	objects := make([]*models.LedgerObject, 0)
	for rows.Next() {
		obj, err := scanObject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan object: %w", err)
		}
		// Для индекса объект все еще у прежнего владельца
		if obj.Owner != owner {
			obj.Owner = owner
		}
		objects = append(objects, obj)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating objects: %w", err)
	}

	return objects, nil
}

func scanObject(row rowScanner) (*models.LedgerObject, error) {
	obj := &models.LedgerObject{}
	var ownerSince, prevOwnerSince, createdAt, updatedAt int64
	var content []byte

	err := row.Scan(
		&obj.ID,
		&obj.Type,
		&obj.Owner,
		&obj.PrevOwner,
		&ownerSince,
		&prevOwnerSince,
		&content,
		&obj.Version,
		&obj.Digest,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	obj.Content = content
	obj.OwnerSince = fromMillis(ownerSince)
	if obj.PrevOwner != "" {
		obj.PrevOwnerSince = fromMillis(prevOwnerSince)
	}
	obj.CreatedAt = fromMillis(createdAt)
	obj.UpdatedAt = fromMillis(updatedAt)
	return obj, nil
}

// writeObject вставляет новый объект или обновляет существующий с проверкой версии
func writeObject(ctx context.Context, tx *sql.Tx, obj *models.LedgerObject) error {
	if obj.Version == 1 {
		query := `INSERT INTO objects (` + objectColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		_, err := tx.ExecContext(ctx, query,
			obj.ID,
			obj.Type,
			obj.Owner,
			obj.PrevOwner,
			toMillis(obj.OwnerSince),
			prevOwnerSince(obj),
			[]byte(obj.Content),
			obj.Version,
			obj.Digest,
			toMillis(obj.CreatedAt),
			toMillis(obj.UpdatedAt),
		)
		if err != nil {
			if isUniqueViolation(err, "objects.id") {
				return fmt.Errorf("object %s: %w", obj.ID, storage.ErrVersionConflict)
			}
			return fmt.Errorf("failed to insert object: %w", err)
		}
		return nil
	}

	query := `
		UPDATE objects
		SET owner = ?, prev_owner = ?, owner_since = ?, prev_owner_since = ?, content = ?,
		    version = ?, digest = ?, updated_at = ?
		WHERE id = ? AND version = ?
	`
	result, err := tx.ExecContext(ctx, query,
		obj.Owner,
		obj.PrevOwner,
		toMillis(obj.OwnerSince),
		prevOwnerSince(obj),
		[]byte(obj.Content),
		obj.Version,
		obj.Digest,
		toMillis(obj.UpdatedAt),
		obj.ID,
		obj.Version-1,
	)
	if err != nil {
		return fmt.Errorf("failed to update object: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("object %s at version %d: %w", obj.ID, obj.Version-1, storage.ErrVersionConflict)
	}
	return nil
}

func prevOwnerSince(obj *models.LedgerObject) int64 {
	if obj.PrevOwner == "" {
		return 0
	}
	return toMillis(obj.PrevOwnerSince)
}
