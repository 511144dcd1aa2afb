package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/vaultkeeper/internal/client/api"
	"github.com/iudanet/vaultkeeper/internal/client/config"
	"github.com/iudanet/vaultkeeper/internal/client/iocli"
	"github.com/iudanet/vaultkeeper/internal/client/ledger/remote"
	"github.com/iudanet/vaultkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/vaultkeeper/internal/client/vault"
	"github.com/iudanet/vaultkeeper/internal/client/wallet"
)

// skipSetup аннотация команд, которым не нужны БД и кошелек
const skipSetup = "vaultctl/skip-setup"

// BuildInfo версия бинаря, задается через ldflags
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// NewRootCommand собирает дерево команд vaultctl.
// Зависимости открываются в PersistentPreRunE после разбора флагов,
// возвращаемая функция закрывает их, даже если команда завершилась ошибкой.
func NewRootCommand(info BuildInfo, stdio iocli.IO) (*cobra.Command, func() error) {
	v := viper.New()
	c := &Cli{io: stdio, logger: slog.Default()}

	root := &cobra.Command{
		Use:           "vaultctl",
		Short:         "vaultctl manages vaults and vault art on a VaultKeeper ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: `
  # Create a wallet and open a session with the ledger
  vaultctl wallet create
  vaultctl --server http://localhost:8080 wallet connect

  # Create a vault and record a deposit
  vaultctl vault create --name Trip --color blue --story "Saving for a trip"
  vaultctl vault deposit 0x<vault-id> 1500 --note salary

  # Passphrase from a file, auto-approve signatures (automation)
  vaultctl --passphrase-file ~/.vaultkeeper-pass --auto-approve vault list
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipSetup] == "true" {
				return nil
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
			c.closers = append(c.closers, func() error { cancel(); return nil })
			cmd.SetContext(ctx)
			return c.open(ctx, cfg)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.Close()
		},
	}

	if err := config.RegisterFlags(v, root.PersistentFlags()); err != nil {
		panic(err)
	}

	c.addCommands(root)
	root.AddCommand(newVersionCommand(info))
	return root, c.Close
}

// addCommands регистрирует команды, работающие с кошельком и леджером
func (c *Cli) addCommands(root *cobra.Command) {
	root.AddCommand(
		c.newWalletCommand(),
		c.newVaultCommand(),
		c.newNFTCommand(),
		c.newRefreshCommand(),
	)
}

// open собирает зависимости команды: BoltDB, HTTP клиент, кошелек, сервис хранилищ
func (c *Cli) open(ctx context.Context, cfg config.Config) error {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	c.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	c.passphraseFile = cfg.PassphraseFile
	c.serverURL = cfg.Server

	store, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	c.closers = append(c.closers, store.Close)

	apiClient := api.NewClient(cfg.Server)

	opts := []wallet.Option{wallet.WithConfirm(c.confirmSignature)}
	if cfg.AutoApprove {
		opts = append(opts, wallet.WithAutoApprove())
	}
	w := wallet.New(store, store, apiClient, c.logger, opts...)
	c.wallet = w

	svc, err := vault.NewService(
		remote.New(apiClient, w, c.logger),
		store,
		store,
		vault.Config{Poll: cfg.Poll()},
		c.logger,
	)
	if err != nil {
		return err
	}
	c.vaults = svc

	c.logger.Debug("vaultctl ready",
		"server", cfg.Server,
		"db", cfg.DBPath,
		"poll_base_delay", cfg.PollBaseDelay,
		"poll_max_attempts", cfg.PollMaxAttempts,
		"config_file", cfg.ConfigFile)
	return nil
}

// confirmSignature спрашивает пользователя перед подписью транзакции
func (c *Cli) confirmSignature(summary string) (bool, error) {
	c.io.Println()
	c.io.Printf("Sign transaction: %s\n", summary)
	return c.io.Confirm("Approve? [y/N]: ")
}

func newVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the vaultctl version",
		Annotations: map[string]string{skipSetup: "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "VaultKeeper Client\n")
			fmt.Fprintf(out, "Version:    %s\n", info.Version)
			fmt.Fprintf(out, "Build Date: %s\n", info.BuildDate)
			_, err := fmt.Fprintf(out, "Git Commit: %s\n", info.GitCommit)
			return err
		},
	}
}
