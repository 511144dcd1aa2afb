// Package remote реализует ledger.Client поверх HTTP API леджера и кошелька.
package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/iudanet/vaultkeeper/internal/client/ledger"
	"github.com/iudanet/vaultkeeper/internal/client/storage"
	"github.com/iudanet/vaultkeeper/internal/client/wallet"
	"github.com/iudanet/vaultkeeper/internal/models"
	"github.com/iudanet/vaultkeeper/pkg/api"
)

// API HTTP методы леджера, которые использует Remote
type API interface {
	SubmitTransaction(ctx context.Context, token string, req api.TransactionRequest) (*api.TransactionResponse, error)
	GetObject(ctx context.Context, id string) (*api.ObjectResponse, error)
	OwnedObjects(ctx context.Context, owner, objectType string) (*api.OwnedObjectsResponse, error)
	VaultSummary(ctx context.Context, vaultID string) (*api.SummaryResponse, error)
	VaultFortune(ctx context.Context, vaultID string) (*api.FortuneResponse, error)
}

// Signer часть кошелька, нужная для отправки транзакций
type Signer interface {
	Session(ctx context.Context) (*storage.Session, error)
	SignTransaction(ctx context.Context, tx *api.TransactionRequest, summary string) error
}

// Remote клиент леджера
type Remote struct {
	api    API
	signer Signer
	logger *slog.Logger
}

var _ ledger.Client = (*Remote)(nil)

// New создает Remote
func New(a API, signer Signer, logger *slog.Logger) *Remote {
	return &Remote{api: a, signer: signer, logger: logger}
}

// Submit подписывает и отправляет транзакцию
func (r *Remote) Submit(ctx context.Context, req models.MutationRequest) (*models.Receipt, error) {
	session, err := r.signer.Session(ctx)
	if err != nil {
		return nil, err
	}

	tx := api.TransactionRequest{
		Operation: string(req.Operation),
		EntityID:  req.EntityID,
		Params:    req.Params,
		Sender:    session.Address,
		Nonce:     uuid.NewString(),
	}

	if err := r.signer.SignTransaction(ctx, &tx, describe(req)); err != nil {
		if errors.Is(err, wallet.ErrDeclined) {
			return nil, fmt.Errorf("%w: %w", ledger.ErrUserCancelled, err)
		}
		return nil, fmt.Errorf("%w: failed to sign transaction: %w", ledger.ErrRejected, err)
	}

	resp, err := r.api.SubmitTransaction(ctx, session.Token, tx)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Transaction executed",
		"operation", req.Operation,
		"digest", resp.Digest,
		"status", resp.Status,
		"checkpoint", resp.Checkpoint)

	return receiptFromResponse(resp), nil
}

// Address адрес подключенного кошелька
func (r *Remote) Address(ctx context.Context) (string, error) {
	session, err := r.signer.Session(ctx)
	if err != nil {
		return "", err
	}
	return session.Address, nil
}

// GetVault читает хранилище по ID
func (r *Remote) GetVault(ctx context.Context, id string) (*models.Vault, error) {
	obj, err := r.api.GetObject(ctx, id)
	if err != nil {
		return nil, err
	}
	if obj.Type != api.ObjectTypeVault {
		return nil, fmt.Errorf("%w: %s is a %s", ledger.ErrObjectNotFound, id, obj.Type)
	}
	v, err := vaultFromObject(*obj)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// OwnedVaults хранилища владельца по индексу леджера
func (r *Remote) OwnedVaults(ctx context.Context, owner string) ([]models.Vault, error) {
	resp, err := r.api.OwnedObjects(ctx, owner, api.ObjectTypeVault)
	if err != nil {
		return nil, err
	}

	vaults := make([]models.Vault, 0, len(resp.Objects))
	for _, obj := range resp.Objects {
		v, err := vaultFromObject(obj)
		if err != nil {
			// Поврежденный объект не должен скрывать остальные
			r.logger.Warn("Skipping undecodable vault", "object_id", obj.ObjectID, "error", err)
			continue
		}
		vaults = append(vaults, v)
	}
	return vaults, nil
}

// OwnedArt NFT владельца по индексу леджера
func (r *Remote) OwnedArt(ctx context.Context, owner string) ([]models.VaultArt, error) {
	resp, err := r.api.OwnedObjects(ctx, owner, api.ObjectTypeVaultArt)
	if err != nil {
		return nil, err
	}

	nfts := make([]models.VaultArt, 0, len(resp.Objects))
	for _, obj := range resp.Objects {
		a, err := artFromObject(obj)
		if err != nil {
			r.logger.Warn("Skipping undecodable vault art", "object_id", obj.ObjectID, "error", err)
			continue
		}
		nfts = append(nfts, a)
	}
	return nfts, nil
}

// VaultSummary read-only вызов get_vault_summary
func (r *Remote) VaultSummary(ctx context.Context, id string) (*models.VaultSummary, error) {
	resp, err := r.api.VaultSummary(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.VaultSummary{
		VaultID:          resp.VaultID,
		Name:             resp.Name,
		Balance:          resp.Balance,
		TotalDeposits:    resp.TotalDeposits,
		TotalWithdrawals: resp.TotalWithdrawals,
		DepositCount:     resp.DepositCount,
		WithdrawalCount:  resp.WithdrawalCount,
		MemoryCount:      resp.MemoryCount,
	}, nil
}

// VaultFortune read-only вызов generate_vault_fortune
func (r *Remote) VaultFortune(ctx context.Context, id string) (string, error) {
	resp, err := r.api.VaultFortune(ctx, id)
	if err != nil {
		return "", err
	}
	return resp.Fortune, nil
}

// describe текст для подтверждения подписи
func describe(req models.MutationRequest) string {
	if req.EntityID == "" {
		return fmt.Sprintf("%s %s", req.Operation, req.Params)
	}
	return fmt.Sprintf("%s on %s %s", req.Operation, req.EntityID, req.Params)
}
