package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/iudanet/vaultkeeper/internal/client/ledger"
	"github.com/iudanet/vaultkeeper/internal/client/wallet"
)

func (c *Cli) newWalletCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage the local wallet and its ledger session",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "create",
			Short: "Generate a new wallet key protected by a passphrase",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runWalletCreate(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "connect",
			Short: "Sign a connect message and open a ledger session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runWalletConnect(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "disconnect",
			Short: "Forget the ledger session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runWalletDisconnect(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show wallet address and session state",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runWalletStatus(cmd.Context())
			},
		},
	)
	return cmd
}

func (c *Cli) runWalletCreate(ctx context.Context) error {
	c.io.Println("=== Create Wallet ===")
	c.io.Println()

	passphrase, err := c.getPassphrase(true)
	if err != nil {
		return err
	}

	address, err := c.wallet.Create(ctx, passphrase)
	if err != nil {
		if errors.Is(err, wallet.ErrWalletExists) {
			return fmt.Errorf("wallet already exists. Use 'vaultctl wallet status' to see its address")
		}
		return fmt.Errorf("failed to create wallet: %w", err)
	}

	c.io.Println("✓ Wallet created")
	c.io.Printf("Address: %s\n", address)
	c.io.Println()
	c.io.Println("Run 'vaultctl wallet connect' to open a session with the ledger.")
	return nil
}

func (c *Cli) runWalletConnect(ctx context.Context) error {
	if err := c.unlock(ctx); err != nil {
		return walletError(err)
	}
	defer c.wallet.Lock()

	session, err := c.wallet.Connect(ctx)
	if err != nil {
		return err
	}

	c.io.Println("✓ Wallet connected")
	c.io.Printf("Address: %s\n", session.Address)
	c.io.Printf("Server:  %s\n", session.Server)
	c.io.Printf("Session expires %s\n", humanize.Time(time.Unix(session.ExpiresAt, 0)))
	return nil
}

func (c *Cli) runWalletDisconnect(ctx context.Context) error {
	if err := c.wallet.Disconnect(ctx); err != nil {
		return err
	}
	c.io.Println("✓ Wallet disconnected")
	return nil
}

func (c *Cli) runWalletStatus(ctx context.Context) error {
	c.io.Println("=== Wallet Status ===")
	c.io.Println()

	address, err := c.wallet.Address(ctx)
	if err != nil {
		if errors.Is(err, wallet.ErrNoWallet) {
			c.io.Println("Status: No wallet")
			c.io.Println()
			c.io.Println("Run 'vaultctl wallet create' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read wallet: %w", err)
	}
	c.io.Printf("Address: %s\n", address)

	session, err := c.wallet.Session(ctx)
	if err != nil {
		if errors.Is(err, ledger.ErrNotConnected) {
			c.io.Printf("Status:  Not connected (%v)\n", err)
			c.io.Println()
			c.io.Println("Run 'vaultctl wallet connect' to open a session.")
			return nil
		}
		return err
	}

	c.io.Println("Status:  Connected")
	c.io.Printf("Server:  %s\n", session.Server)
	c.io.Printf("Session expires %s\n", humanize.Time(time.Unix(session.ExpiresAt, 0)))
	return nil
}

// walletError добавляет подсказку к типовым ошибкам кошелька
func walletError(err error) error {
	if errors.Is(err, wallet.ErrNoWallet) {
		return fmt.Errorf("%w. Run 'vaultctl wallet create' first", err)
	}
	return err
}
