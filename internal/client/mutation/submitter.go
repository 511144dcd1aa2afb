package mutation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/vaultkeeper/internal/client/ledger"
	"github.com/iudanet/vaultkeeper/internal/models"
)

//go:generate moq -out ledger_mock.go . Ledger

// Ledger изменяющая часть контракта леджера, которая нужна Submitter
type Ledger interface {
	Submit(ctx context.Context, req models.MutationRequest) (*models.Receipt, error)
}

// Submitter отправляет мутацию ровно один раз и приводит результат к типизированным ошибкам
type Submitter struct {
	ledger Ledger
	logger *slog.Logger
}

// NewSubmitter создает Submitter
func NewSubmitter(l Ledger, logger *slog.Logger) *Submitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Submitter{ledger: l, logger: logger}
}

// Submit отправляет запрос. Возвращает квитанцию успешной транзакции,
// *SubmitError при сбое отправки или *LogicalFailure если квитанция со статусом failure.
func (s *Submitter) Submit(ctx context.Context, req models.MutationRequest) (*models.Receipt, error) {
	s.logger.Info("Submitting mutation", "operation", req.Operation, "entity_id", req.EntityID)

	receipt, err := s.ledger.Submit(ctx, req)
	if err != nil {
		submitErr := &SubmitError{Operation: req.Operation, Kind: classify(err), Err: err}
		s.logger.Warn("Mutation submit failed",
			"operation", req.Operation,
			"entity_id", req.EntityID,
			"kind", submitErr.Kind,
			"error", err)
		return nil, submitErr
	}

	if receipt == nil {
		return nil, &SubmitError{
			Operation: req.Operation,
			Kind:      SubmitNetwork,
			Err:       fmt.Errorf("%w: empty receipt", ledger.ErrNetwork),
		}
	}

	if !receipt.Succeeded() {
		reason := receipt.Error
		if reason == "" {
			reason = "unknown error"
		}
		s.logger.Warn("Mutation rejected by contract",
			"operation", req.Operation,
			"entity_id", req.EntityID,
			"digest", receipt.Digest,
			"reason", reason)
		return nil, &LogicalFailure{Operation: req.Operation, Reason: reason, Receipt: receipt}
	}

	s.logger.Info("Mutation committed",
		"operation", req.Operation,
		"entity_id", req.EntityID,
		"digest", receipt.Digest,
		"changes", len(receipt.ObjectChanges))

	return receipt, nil
}

func classify(err error) SubmitKind {
	switch {
	case errors.Is(err, ledger.ErrUserCancelled), errors.Is(err, context.Canceled):
		return SubmitUserCancelled
	case errors.Is(err, ledger.ErrRejected), errors.Is(err, ledger.ErrNotConnected):
		return SubmitRejected
	default:
		return SubmitNetwork
	}
}
