package ledger

import (
	"context"

	"github.com/iudanet/vaultkeeper/internal/models"
)

//go:generate moq -out ledger_mock.go . Client

// Client контракт внешнего леджера, с которым работает клиент.
// Submit отправляет ровно один изменяющий вызов, остальные методы только читают.
type Client interface {
	// Submit подписывает и отправляет транзакцию, возвращает квитанцию.
	// Квитанция со статусом failure возвращается без ошибки.
	Submit(ctx context.Context, req models.MutationRequest) (*models.Receipt, error)

	// Address возвращает адрес подключенного кошелька или ErrNotConnected
	Address(ctx context.Context) (string, error)

	// GetVault читает хранилище по ID. ErrObjectNotFound если его нет.
	GetVault(ctx context.Context, id string) (*models.Vault, error)

	// OwnedVaults список хранилищ владельца по индексу леджера
	OwnedVaults(ctx context.Context, owner string) ([]models.Vault, error)

	// OwnedArt список NFT владельца по индексу леджера
	OwnedArt(ctx context.Context, owner string) ([]models.VaultArt, error)

	// VaultSummary read-only вызов get_vault_summary
	VaultSummary(ctx context.Context, id string) (*models.VaultSummary, error)

	// VaultFortune read-only вызов generate_vault_fortune
	VaultFortune(ctx context.Context, id string) (string, error)
}
