package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/vaultkeeper/internal/models"
	"github.com/iudanet/vaultkeeper/internal/server/storage"
)

// Commit records transaction and writes changed objects in one SQL transaction.
// Checkpoint присваивается транзакции и записывается в tx.Checkpoint.
func (s *Storage) Commit(ctx context.Context, tx *models.Transaction, objects []*models.LedgerObject) (int64, error) {
	changes, err := json.Marshal(tx.Changes)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal changes: %w", err)
	}

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = sqlTx.Rollback()
	}()

	query := `
		INSERT INTO transactions (digest, nonce, sender, operation, status, error, changes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := sqlTx.ExecContext(ctx, query,
		tx.Digest,
		tx.Nonce,
		tx.Sender,
		string(tx.Operation),
		string(tx.Status),
		tx.Error,
		changes,
		toMillis(tx.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err, "transactions.nonce") || isUniqueViolation(err, "transactions.digest") {
			return 0, storage.ErrDuplicateNonce
		}
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	checkpoint, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get checkpoint: %w", err)
	}

	for _, obj := range objects {
		if err := writeObject(ctx, sqlTx, obj); err != nil {
			return 0, err
		}
	}

	if err := sqlTx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	tx.Checkpoint = checkpoint
	return checkpoint, nil
}

// GetTransaction retrieves committed transaction by digest
func (s *Storage) GetTransaction(ctx context.Context, digest string) (*models.Transaction, error) {
	query := `
		SELECT checkpoint, digest, nonce, sender, operation, status, error, changes, created_at
		FROM transactions
		WHERE digest = ?
	`

	tx := &models.Transaction{}
	var operation, status string
	var changes []byte
	var createdAt int64

	err := s.db.QueryRowContext(ctx, query, digest).Scan(
		&tx.Checkpoint,
		&tx.Digest,
		&tx.Nonce,
		&tx.Sender,
		&operation,
		&status,
		&tx.Error,
		&changes,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	tx.Operation = models.Operation(operation)
	tx.Status = models.ReceiptStatus(status)
	tx.CreatedAt = fromMillis(createdAt)
	if len(changes) > 0 {
		if err := json.Unmarshal(changes, &tx.Changes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal changes: %w", err)
		}
	}

	return tx, nil
}

// LastCheckpoint returns checkpoint of the latest commit
func (s *Storage) LastCheckpoint(ctx context.Context) (int64, error) {
	var checkpoint sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(checkpoint) FROM transactions`).Scan(&checkpoint); err != nil {
		return 0, fmt.Errorf("failed to get last checkpoint: %w", err)
	}
	return checkpoint.Int64, nil
}
