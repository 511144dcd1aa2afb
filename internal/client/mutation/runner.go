package mutation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/vaultkeeper/internal/models"
)

// RollbackReadTimeout ограничивает авторитетное чтение при откате.
// Откат выполняется даже если контекст вызова уже отменен.
const RollbackReadTimeout = 10 * time.Second

// State состояние жизненного цикла мутации
type State string

const (
	StateIdle                  State = "idle"
	StateSubmitting            State = "submitting"
	StateOptimisticallyUpdated State = "optimistically_updated"
	StatePolling               State = "polling"
	StateConverged             State = "converged"
	StateTimedOut              State = "timed_out"
	StateFailed                State = "failed"
	StateRolledBack            State = "rolled_back"
	StateCancelled             State = "cancelled"
)

// Terminal сообщает, завершен ли жизненный цикл в этом состоянии
func (s State) Terminal() bool {
	switch s {
	case StateConverged, StateTimedOut, StateRolledBack, StateCancelled:
		return true
	}
	return false
}

// Mutation описание одной изменяющей операции
type Mutation[S any] struct {
	// Optimistic чистый патч ожидаемого результата (nil - без оптимистичного изменения)
	Optimistic func(S) S
	// Converged проверяет, отражает ли авторитетное чтение результат транзакции
	Converged func(S, *models.Receipt) bool
	Request   models.MutationRequest
}

// Outcome итог жизненного цикла
type Outcome struct {
	Receipt *models.Receipt
	// Notice необязательное уведомление (*TimeoutSoftFailure), не ошибка
	Notice   error
	State    State
	History  []State
	Attempts int
}

// Runner проводит мутацию через submit, оптимистичное изменение и поллинг или откат
type Runner[S any] struct {
	store     *Store[S]
	guard     *Guard
	submitter *Submitter
	poller    *Poller[S]
	read      Reader[S]
	logger    *slog.Logger
}

// NewRunner создает Runner. read выполняет авторитетное чтение всего представления.
func NewRunner[S any](store *Store[S], submitter *Submitter, poller *Poller[S], read Reader[S], logger *slog.Logger) *Runner[S] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner[S]{
		store:     store,
		guard:     NewGuard(),
		submitter: submitter,
		poller:    poller,
		read:      read,
		logger:    logger,
	}
}

// Store возвращает контейнер локального представления
func (r *Runner[S]) Store() *Store[S] {
	return r.store
}

// Busy сообщает, выполняется ли сейчас мутация над сущностью
func (r *Runner[S]) Busy(entityID string) bool {
	return r.guard.Busy(entityID)
}

type lifecycle struct {
	logger  *slog.Logger
	outcome Outcome
}

func (l *lifecycle) enter(s State) {
	l.outcome.State = s
	l.outcome.History = append(l.outcome.History, s)
	l.logger.Debug("Mutation state", "state", s)
}

// Run выполняет мутацию. Возвращаемая ошибка:
//   - ErrEntityBusy если над сущностью уже идет мутация (ничего не отправлено);
//   - *SubmitError или *LogicalFailure после отката;
//   - ошибка контекста, если жизненный цикл отменен (отката нет).
//
// TimedOut не является ошибкой, см. Outcome.Notice.
func (r *Runner[S]) Run(ctx context.Context, m Mutation[S]) (Outcome, error) {
	req := m.Request
	lc := &lifecycle{
		logger: r.logger.With("operation", req.Operation, "entity_id", req.EntityID),
	}
	lc.enter(StateIdle)

	if m.Converged == nil {
		return lc.outcome, fmt.Errorf("mutation %s has no convergence check", req.Operation)
	}

	release, err := r.guard.Acquire(req.EntityID)
	if err != nil {
		lc.logger.Warn("Mutation rejected, entity busy")
		return lc.outcome, err
	}
	defer release()

	lc.enter(StateSubmitting)

	prior := r.store.State()
	if m.Optimistic != nil {
		if _, err := r.store.Dispatch(OptimisticApply(req.EntityID, m.Optimistic)); err != nil {
			return lc.outcome, fmt.Errorf("failed to apply optimistic update: %w", err)
		}
	}
	lc.enter(StateOptimisticallyUpdated)

	receipt, err := r.submitter.Submit(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			// Транзакция могла примениться: представление не трогаем,
			// но запомненное исходное состояние больше не достоверно
			r.store.Forget(req.EntityID)
			lc.enter(StateCancelled)
			lc.logger.Warn("Mutation cancelled during submit, view left as is", "error", err)
			return lc.outcome, fmt.Errorf("%s cancelled: %w", req.Operation, ctx.Err())
		}

		lc.enter(StateFailed)
		if rbErr := r.rollback(ctx, req.EntityID, prior); rbErr != nil {
			lc.logger.Error("Rollback read failed, restored recorded prior view", "error", rbErr)
		}
		lc.enter(StateRolledBack)
		return lc.outcome, err
	}
	lc.outcome.Receipt = receipt

	lc.enter(StatePolling)
	result, err := r.poller.Poll(ctx, r.read,
		func(s S) bool { return m.Converged(s, receipt) },
		func(s S) {
			if _, err := r.store.Dispatch(AuthoritativeReplace(req.EntityID, s)); err != nil {
				lc.logger.Error("Failed to apply authoritative read", "error", err)
			}
		})
	lc.outcome.Attempts = result.Attempts
	if err != nil {
		r.store.Forget(req.EntityID)
		lc.enter(StateCancelled)
		lc.logger.Warn("Mutation cancelled during polling", "attempts", result.Attempts, "error", err)
		return lc.outcome, fmt.Errorf("%s cancelled: %w", req.Operation, err)
	}

	if result.Converged {
		lc.enter(StateConverged)
		lc.logger.Info("Mutation converged", "attempts", result.Attempts, "waited", result.Waited)
		return lc.outcome, nil
	}

	lc.enter(StateTimedOut)
	lc.outcome.Notice = &TimeoutSoftFailure{
		Operation: req.Operation,
		EntityID:  req.EntityID,
		Attempts:  result.Attempts,
		Waited:    result.Waited,
	}
	lc.logger.Warn("Mutation not observed within poll budget",
		"attempts", result.Attempts,
		"waited", result.Waited,
		"any_read_succeeded", result.HaveLast)
	return lc.outcome, nil
}

// Rollback восстанавливает представление сущности свежим авторитетным чтением.
// Если чтение не удалось, используется состояние до оптимистичного изменения,
// а при его отсутствии представление не меняется и возвращается *ReadError.
func (r *Runner[S]) Rollback(ctx context.Context, entityID string) error {
	prior, ok := r.store.Prior(entityID)
	if !ok {
		state, err := r.readDetached(ctx)
		if err != nil {
			return &ReadError{Err: err}
		}
		_, err = r.store.Dispatch(Rollback(entityID, state))
		return err
	}
	return r.rollback(ctx, entityID, prior)
}

func (r *Runner[S]) rollback(ctx context.Context, entityID string, prior S) error {
	state, readErr := r.readDetached(ctx)
	if readErr != nil {
		state = prior
	}
	if _, err := r.store.Dispatch(Rollback(entityID, state)); err != nil {
		return errors.Join(readErr, err)
	}
	if readErr != nil {
		return &ReadError{Err: readErr}
	}
	return nil
}

func (r *Runner[S]) readDetached(ctx context.Context) (S, error) {
	rbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), RollbackReadTimeout)
	defer cancel()
	return r.read(rbCtx)
}
