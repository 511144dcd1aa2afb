package mutation

import (
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/vaultkeeper/internal/models"
)

// ErrEntityBusy над сущностью уже выполняется другая мутация.
// Вторая мутация не отправляется и локальное состояние не меняется.
var ErrEntityBusy = errors.New("entity has a mutation in flight")

// SubmitKind класс ошибки отправки
type SubmitKind string

const (
	SubmitNetwork       SubmitKind = "network"
	SubmitRejected      SubmitKind = "rejected"
	SubmitUserCancelled SubmitKind = "user_cancelled"
)

// SubmitError запрос не дошел до леджера или был им отклонен.
// Автоматически не повторяется.
type SubmitError struct {
	Err       error
	Operation models.Operation
	Kind      SubmitKind
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("submit %s failed (%s): %v", e.Operation, e.Kind, e.Err)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// Transient сообщает, имеет ли смысл повторить отправку вручную
func (e *SubmitError) Transient() bool {
	return e.Kind == SubmitNetwork
}

// LogicalFailure вызов завершился, но квитанция говорит что операция не применилась.
// Для отката обрабатывается так же, как SubmitError.
type LogicalFailure struct {
	Receipt   *models.Receipt
	Operation models.Operation
	Reason    string
}

func (e *LogicalFailure) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Reason)
}

// ReadError авторитетное чтение при поллинге или откате не удалось
type ReadError struct {
	Err     error
	Attempt int
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("authoritative read failed (attempt %d): %v", e.Attempt, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// TimeoutSoftFailure сходимость не подтверждена за отведенный бюджет попыток.
// Мутация считается примененной, это не ошибка для пользователя.
type TimeoutSoftFailure struct {
	Operation models.Operation
	EntityID  string
	Attempts  int
	Waited    time.Duration
}

func (e *TimeoutSoftFailure) Error() string {
	return fmt.Sprintf("%s on %s not observed after %d attempts (%s)", e.Operation, e.EntityID, e.Attempts, e.Waited)
}

// IsRollbackCause сообщает, вызывает ли ошибка откат оптимистичного изменения
func IsRollbackCause(err error) bool {
	var submitErr *SubmitError
	var logical *LogicalFailure
	return errors.As(err, &submitErr) || errors.As(err, &logical)
}

// Reason возвращает человекочитаемую причину неудачи мутации
func Reason(err error) string {
	var logical *LogicalFailure
	if errors.As(err, &logical) {
		return logical.Reason
	}
	var submitErr *SubmitError
	if errors.As(err, &submitErr) {
		return submitErr.Err.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
