// Package cli команды vaultctl поверх кошелька и сервиса хранилищ.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/iudanet/vaultkeeper/internal/client/iocli"
	"github.com/iudanet/vaultkeeper/internal/client/vault"
	"github.com/iudanet/vaultkeeper/internal/client/wallet"
	"github.com/iudanet/vaultkeeper/internal/models"
)

// PassphraseEnv переменная окружения с паролем кошелька
const PassphraseEnv = "VAULTKEEPER_PASSPHRASE"

//go:generate moq -out vault_mock.go . VaultService

// VaultService операции над хранилищами, которые вызывает CLI
type VaultService interface {
	Load(ctx context.Context) error
	Refresh(ctx context.Context) (models.OwnedView, error)
	CreateVault(ctx context.Context, name, color, story string) (vault.Result, error)
	RecordDeposit(ctx context.Context, vaultID string, amount uint64, note string, multiplier *uint64) (vault.Result, error)
	RecordWithdrawal(ctx context.Context, vaultID string, amount uint64, note string, multiplier *uint64) (vault.Result, error)
	CustomizeVault(ctx context.Context, vaultID, name, color, story string) (vault.Result, error)
	TransferVault(ctx context.Context, vaultID, recipient string) (vault.Result, error)
	CreateVaultArt(ctx context.Context, in vault.ArtInput) (vault.Result, error)
	CreateMemoryArt(ctx context.Context, in vault.ArtInput, memoryIndex uint64) (vault.Result, error)
	CreateFortuneArt(ctx context.Context, in vault.ArtInput) (vault.Result, error)
	GetVault(ctx context.Context, vaultID string) (*models.Vault, error)
	GetVaultSummary(ctx context.Context, vaultID string) (*models.VaultSummary, error)
	GenerateVaultFortune(ctx context.Context, vaultID string) (string, error)
	ListOwnedVaults(ctx context.Context) ([]models.Vault, error)
	ListOwnedNFTs(ctx context.Context) ([]models.VaultArt, error)
	IsVaultOwner(ctx context.Context, vaultID string) (bool, error)
}

var _ VaultService = (*vault.Service)(nil)

// Cli состояние одного запуска vaultctl
type Cli struct {
	io             iocli.IO
	wallet         wallet.Service
	vaults         VaultService
	logger         *slog.Logger
	closers        []func() error
	passphraseFile string
	serverURL      string
}

// New создает Cli с готовыми зависимостями
func New(io iocli.IO, w wallet.Service, vaults VaultService, logger *slog.Logger) *Cli {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cli{
		io:     io,
		wallet: w,
		vaults: vaults,
		logger: logger,
	}
}

// Close освобождает ресурсы, открытые при запуске команды
func (c *Cli) Close() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}

// getPassphrase retrieves the wallet passphrase with priority:
// 1. Environment variable VAULTKEEPER_PASSPHRASE
// 2. File from --passphrase-file
// 3. Interactive prompt (fallback)
func (c *Cli) getPassphrase(repeat bool) (string, error) {
	if env := os.Getenv(PassphraseEnv); env != "" {
		return env, nil
	}

	if c.passphraseFile != "" {
		content, err := os.ReadFile(c.passphraseFile)
		if err != nil {
			return "", fmt.Errorf("failed to read passphrase file: %w", err)
		}
		passphrase := strings.TrimSpace(string(content))
		if passphrase == "" {
			return "", fmt.Errorf("passphrase file is empty")
		}
		return passphrase, nil
	}

	passphrase, err := c.io.ReadPassword("Wallet passphrase: ")
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}
	if passphrase == "" {
		return "", fmt.Errorf("passphrase cannot be empty")
	}

	if repeat {
		again, err := c.io.ReadPassword("Repeat passphrase: ")
		if err != nil {
			return "", fmt.Errorf("failed to read passphrase: %w", err)
		}
		if again != passphrase {
			return "", fmt.Errorf("passphrases do not match")
		}
	}
	return passphrase, nil
}

// unlock расшифровывает ключ кошелька для подписи
func (c *Cli) unlock(ctx context.Context) error {
	passphrase, err := c.getPassphrase(false)
	if err != nil {
		return err
	}
	return c.wallet.Unlock(ctx, passphrase)
}
