package vault

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/vaultkeeper/internal/client/ledger"
	"github.com/iudanet/vaultkeeper/internal/models"
	"github.com/iudanet/vaultkeeper/internal/validation"
)

// GetVault читает хранилище напрямую из леджера
func (s *Service) GetVault(ctx context.Context, vaultID string) (*models.Vault, error) {
	if err := validation.ValidateObjectID(vaultID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return s.ledger.GetVault(ctx, vaultID)
}

// GetVaultSummary агрегированная информация о хранилище
func (s *Service) GetVaultSummary(ctx context.Context, vaultID string) (*models.VaultSummary, error) {
	if err := validation.ValidateObjectID(vaultID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return s.ledger.VaultSummary(ctx, vaultID)
}

// GenerateVaultFortune предсказание для хранилища
func (s *Service) GenerateVaultFortune(ctx context.Context, vaultID string) (string, error) {
	if err := validation.ValidateObjectID(vaultID); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return s.ledger.VaultFortune(ctx, vaultID)
}

// ListOwnedVaults обновляет представление и возвращает хранилища кошелька
func (s *Service) ListOwnedVaults(ctx context.Context) ([]models.Vault, error) {
	view, err := s.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	return view.Vaults, nil
}

// ListOwnedNFTs обновляет представление и возвращает NFT кошелька
func (s *Service) ListOwnedNFTs(ctx context.Context) ([]models.VaultArt, error) {
	view, err := s.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	return view.NFTs, nil
}

// IsVaultOwner проверяет, принадлежит ли хранилище подключенному кошельку
func (s *Service) IsVaultOwner(ctx context.Context, vaultID string) (bool, error) {
	_, _, err := s.ownedVault(ctx, vaultID)
	if err == nil {
		return true, nil
	}
	if IsOwnership(err, CodeNotOwner) {
		return false, nil
	}
	return false, err
}

// GetOwnedVaultByID читает хранилище и проверяет, что им владеет подключенный кошелек.
// Ошибки *OwnershipError: NOT_OWNER, VAULT_NOT_FOUND, WALLET_NOT_CONNECTED.
func (s *Service) GetOwnedVaultByID(ctx context.Context, vaultID string) (*models.Vault, error) {
	v, _, err := s.ownedVault(ctx, vaultID)
	return v, err
}

// ownedVault читает объект напрямую (без индекса владельцев) и возвращает его вместе с адресом кошелька
func (s *Service) ownedVault(ctx context.Context, vaultID string) (*models.Vault, string, error) {
	if err := validation.ValidateObjectID(vaultID); err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	owner, err := s.ledger.Address(ctx)
	if err != nil {
		if errors.Is(err, ledger.ErrNotConnected) {
			return nil, "", &OwnershipError{Code: CodeWalletNotConnected, VaultID: vaultID, Err: err}
		}
		return nil, "", err
	}

	v, err := s.ledger.GetVault(ctx, vaultID)
	if err != nil {
		if errors.Is(err, ledger.ErrObjectNotFound) {
			return nil, owner, &OwnershipError{Code: CodeVaultNotFound, VaultID: vaultID, Err: err}
		}
		return nil, owner, fmt.Errorf("failed to read vault %s: %w", vaultID, err)
	}

	if v.Owner != owner {
		return nil, owner, &OwnershipError{Code: CodeNotOwner, VaultID: vaultID}
	}
	return v, owner, nil
}
