// Package ledger исполняет вызовы контракта хранилищ и отвечает на чтения объектов.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/vaultkeeper/internal/clock"
	"github.com/iudanet/vaultkeeper/internal/crypto"
	"github.com/iudanet/vaultkeeper/internal/models"
	"github.com/iudanet/vaultkeeper/internal/server/storage"
	"github.com/iudanet/vaultkeeper/internal/validation"
	"github.com/iudanet/vaultkeeper/pkg/api"
)

// Config параметры леджера
type Config struct {
	Clock clock.Clock
	// IndexLag насколько индекс владельцев отстает от коммитов
	IndexLag time.Duration
}

// Ledger исполняет транзакции по одной и хранит результат в storage
type Ledger struct {
	store    storage.LedgerStorage
	clock    clock.Clock
	metrics  *Metrics
	logger   *slog.Logger
	indexLag time.Duration
	mu       sync.Mutex
}

// New создает леджер поверх хранилища. metrics может быть nil.
func New(store storage.LedgerStorage, cfg Config, metrics *Metrics, logger *slog.Logger) *Ledger {
	if cfg.Clock == nil {
		cfg.Clock = clock.Real{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		store:    store,
		clock:    cfg.Clock,
		metrics:  metrics,
		logger:   logger,
		indexLag: cfg.IndexLag,
	}
}

// Execute исполняет подписанную транзакцию отправителя.
// Подпись и сессия проверяются до вызова. Прерывание контракта возвращается
// как транзакция со статусом failure, ошибка означает, что транзакция не записана.
func (l *Ledger) Execute(ctx context.Context, req *api.TransactionRequest) (*models.Transaction, error) {
	op := models.Operation(req.Operation)
	handler, ok := contract[op]
	if !ok {
		return nil, invalid("unknown operation %q", req.Operation)
	}
	if req.Nonce == "" {
		return nil, invalid("nonce is required")
	}
	if err := validation.ValidateAddress(req.Sender); err != nil {
		return nil, invalid("sender: %v", err)
	}

	// Один писатель: чтение-изменение-запись объектов не должно пересекаться
	l.mu.Lock()
	defer l.mu.Unlock()

	start := time.Now()
	now := l.clock.Now()
	c := &call{
		ctx:      ctx,
		store:    l.store,
		sender:   req.Sender,
		entityID: req.EntityID,
		digest:   crypto.Digest(req.SigningBytes(), []byte(req.Signature)),
		now:      now,
	}

	tx := &models.Transaction{
		Digest:    c.digest,
		Nonce:     req.Nonce,
		Sender:    req.Sender,
		Operation: op,
		Status:    models.ReceiptSuccess,
		CreatedAt: now,
	}

	err := handler(c, req.Params)
	var abortErr *AbortError
	switch {
	case errors.As(err, &abortErr):
		tx.Status = models.ReceiptFailure
		tx.Error = abortErr.Reason
		c.writes = nil
	case err != nil:
		return nil, err
	default:
		tx.Changes = c.changes
	}

	if _, err := l.store.Commit(ctx, tx, c.writes); err != nil {
		return nil, fmt.Errorf("commit %s: %w", op, err)
	}

	l.metrics.observe(tx, time.Since(start))
	l.logger.InfoContext(ctx, "Transaction committed",
		"digest", tx.Digest,
		"operation", tx.Operation,
		"sender", tx.Sender,
		"status", tx.Status,
		"checkpoint", tx.Checkpoint,
		"changes", len(tx.Changes))
	if tx.Status == models.ReceiptFailure {
		l.logger.WarnContext(ctx, "Contract aborted", "operation", op, "reason", tx.Error)
	}
	return tx, nil
}

// Object читает текущую версию объекта
func (l *Ledger) Object(ctx context.Context, id string) (*models.LedgerObject, error) {
	return l.store.GetObject(ctx, id)
}

// Owned возвращает объекты владельца по индексу, который отстает на IndexLag
func (l *Ledger) Owned(ctx context.Context, owner, objectType string) ([]*models.LedgerObject, error) {
	return l.store.OwnedObjects(ctx, owner, objectType, l.clock.Now().Add(-l.indexLag))
}

// Checkpoint номер последнего коммита
func (l *Ledger) Checkpoint(ctx context.Context) (int64, error) {
	checkpoint, err := l.store.LastCheckpoint(ctx)
	if err != nil {
		return 0, err
	}
	l.metrics.setCheckpoint(checkpoint)
	return checkpoint, nil
}

// Transaction читает записанную транзакцию по digest
func (l *Ledger) Transaction(ctx context.Context, digest string) (*models.Transaction, error) {
	return l.store.GetTransaction(ctx, digest)
}
