package wallet

import (
	"context"

	"github.com/iudanet/vaultkeeper/internal/client/storage"
	"github.com/iudanet/vaultkeeper/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service управляет ключом кошелька и сессией с леджером.
// Create/Unlock работают локально, Connect обращается к леджеру.
type Service interface {
	// Create генерирует ключ и сохраняет его зашифрованным под passphrase
	Create(ctx context.Context, passphrase string) (string, error)

	// Unlock расшифровывает приватный ключ для подписи
	Unlock(ctx context.Context, passphrase string) error

	// Lock забывает расшифрованный ключ
	Lock()

	// Address адрес кошелька (не требует Unlock)
	Address(ctx context.Context) (string, error)

	// Connect подписывает connect сообщение и сохраняет токен сессии
	Connect(ctx context.Context) (*storage.Session, error)

	// Disconnect удаляет сессию
	Disconnect(ctx context.Context) error

	// Session возвращает действующую сессию или ErrNotConnected
	Session(ctx context.Context) (*storage.Session, error)

	// SignTransaction запрашивает подтверждение и подписывает транзакцию
	SignTransaction(ctx context.Context, tx *api.TransactionRequest, summary string) error
}
