package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransaction запрос не может быть исполнен: неизвестная операция,
	// битые параметры или несогласованные поля. Транзакция не записывается.
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrNotVault объект существует, но не является хранилищем
	ErrNotVault = errors.New("object is not a vault")
)

// AbortError контракт прервал вызов. Транзакция записывается с квитанцией failure,
// объекты не меняются.
type AbortError struct {
	Reason string
}

func (e *AbortError) Error() string {
	return "contract aborted: " + e.Reason
}

func abort(format string, args ...any) error {
	return &AbortError{Reason: fmt.Sprintf(format, args...)}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTransaction, fmt.Sprintf(format, args...))
}
