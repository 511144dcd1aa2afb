package ledger

import "errors"

// Классы ошибок вызовов леджера.
// Реализации Client оборачивают свои ошибки в один из них через %w.
var (
	// ErrNetwork запрос не дошел до леджера или ответ потерян (transient)
	ErrNetwork = errors.New("ledger unreachable")

	// ErrRejected леджер отклонил запрос (невалидная подпись, формат, сессия), повтор не поможет
	ErrRejected = errors.New("rejected by ledger")

	// ErrUserCancelled пользователь отказался подписывать транзакцию
	ErrUserCancelled = errors.New("cancelled by user")

	// ErrObjectNotFound объект с таким ID не существует
	ErrObjectNotFound = errors.New("object not found")

	// ErrNotConnected кошелек не подключен (нет сессии)
	ErrNotConnected = errors.New("wallet not connected")
)
