package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iudanet/vaultkeeper/internal/client/vault"
)

// vaultFields флаги create и customize
type vaultFields struct {
	name  string
	color string
	story string
}

func (f *vaultFields) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "vault name")
	cmd.Flags().StringVar(&f.color, "color", "", "vault color")
	cmd.Flags().StringVar(&f.story, "story", "", "vault story")
}

// recordFlags флаги deposit и withdraw
type recordFlags struct {
	note       string
	multiplier uint64
}

func (f *recordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.note, "note", "", "memory note")
	cmd.Flags().Uint64Var(&f.multiplier, "multiplier", 0, "optional memory multiplier")
}

func (f *recordFlags) multiplierPtr(cmd *cobra.Command) *uint64 {
	if !cmd.Flags().Changed("multiplier") {
		return nil
	}
	m := f.multiplier
	return &m
}

func (c *Cli) newVaultCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Create, change and inspect vaults",
	}

	var create vaultFields
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a vault owned by the connected wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVaultCreate(cmd.Context(), create)
		},
	}
	create.register(createCmd)

	var deposit recordFlags
	depositCmd := &cobra.Command{
		Use:   "deposit <vault-id> <amount>",
		Short: "Record a deposit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVaultRecord(cmd.Context(), true, args, deposit.note, deposit.multiplierPtr(cmd))
		},
	}
	deposit.register(depositCmd)

	var withdraw recordFlags
	withdrawCmd := &cobra.Command{
		Use:   "withdraw <vault-id> <amount>",
		Short: "Record a withdrawal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVaultRecord(cmd.Context(), false, args, withdraw.note, withdraw.multiplierPtr(cmd))
		},
	}
	withdraw.register(withdrawCmd)

	var customize vaultFields
	customizeCmd := &cobra.Command{
		Use:   "customize <vault-id>",
		Short: "Change vault name, color and story",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVaultCustomize(cmd.Context(), args[0], customize)
		},
	}
	customize.register(customizeCmd)

	cmd.AddCommand(
		createCmd,
		depositCmd,
		withdrawCmd,
		customizeCmd,
		&cobra.Command{
			Use:   "transfer <vault-id> <recipient>",
			Short: "Transfer a vault to another address",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runVaultTransfer(cmd.Context(), args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "show <vault-id>",
			Short: "Show a vault with its memories",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runVaultShow(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "summary <vault-id>",
			Short: "Show vault totals",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runVaultSummary(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "fortune <vault-id>",
			Short: "Generate the vault fortune",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runVaultFortune(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List vaults owned by the connected wallet",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runVaultList(cmd.Context())
			},
		},
	)
	return cmd
}

func (c *Cli) newRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Replace the local view with a fresh read from the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRefresh(cmd.Context())
		},
	}
}

// prepareMutation разблокирует кошелек и поднимает сохраненный снимок
func (c *Cli) prepareMutation(ctx context.Context) error {
	if err := c.unlock(ctx); err != nil {
		return walletError(err)
	}
	if err := c.vaults.Load(ctx); err != nil {
		// Снимок только ускоряет отображение, операция идет и без него
		c.logger.Debug("Cached view not loaded", "error", err)
	}
	return nil
}

func (c *Cli) runVaultCreate(ctx context.Context, f vaultFields) error {
	if err := c.promptVaultFields(&f); err != nil {
		return err
	}
	if err := c.prepareMutation(ctx); err != nil {
		return err
	}
	defer c.wallet.Lock()

	res, err := c.vaults.CreateVault(ctx, f.name, f.color, f.story)
	return c.report("Vault creation", res, err)
}

func (c *Cli) runVaultRecord(ctx context.Context, isDeposit bool, args []string, note string, multiplier *uint64) error {
	vaultID := args[0]
	value, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: must be a positive integer", args[1])
	}

	if err := c.prepareMutation(ctx); err != nil {
		return err
	}
	defer c.wallet.Lock()

	var res vault.Result
	action := "Deposit"
	if isDeposit {
		res, err = c.vaults.RecordDeposit(ctx, vaultID, value, note, multiplier)
	} else {
		action = "Withdrawal"
		res, err = c.vaults.RecordWithdrawal(ctx, vaultID, value, note, multiplier)
	}
	if err := c.report(action, res, err); err != nil {
		return err
	}
	c.io.Printf("Amount: %s\n", amount(value))
	return nil
}

func (c *Cli) runVaultCustomize(ctx context.Context, vaultID string, f vaultFields) error {
	if err := c.promptVaultFields(&f); err != nil {
		return err
	}
	if err := c.prepareMutation(ctx); err != nil {
		return err
	}
	defer c.wallet.Lock()

	res, err := c.vaults.CustomizeVault(ctx, vaultID, f.name, f.color, f.story)
	return c.report("Customization", res, err)
}

func (c *Cli) runVaultTransfer(ctx context.Context, vaultID, recipient string) error {
	ok, err := c.io.Confirm(fmt.Sprintf("Transfer vault %s to %s? This cannot be undone [y/N]: ", vaultID, recipient))
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Transfer cancelled.")
		return nil
	}

	if err := c.prepareMutation(ctx); err != nil {
		return err
	}
	defer c.wallet.Lock()

	res, err := c.vaults.TransferVault(ctx, vaultID, recipient)
	return c.report("Transfer", res, err)
}

func (c *Cli) runVaultShow(ctx context.Context, vaultID string) error {
	v, err := c.vaults.GetVault(ctx, vaultID)
	if err != nil {
		return err
	}

	c.printVault(v)
	c.printMemories(v)

	owned, err := c.vaults.IsVaultOwner(ctx, vaultID)
	if err == nil && !owned {
		c.io.Println()
		c.io.Println("Note: this vault is not owned by your wallet.")
	}
	return nil
}

func (c *Cli) runVaultSummary(ctx context.Context, vaultID string) error {
	s, err := c.vaults.GetVaultSummary(ctx, vaultID)
	if err != nil {
		return err
	}

	c.io.Printf("=== %s ===\n", s.Name)
	c.io.Printf("Balance:     %s\n", amount(s.Balance))
	c.io.Printf("Deposits:    %s (%d)\n", amount(s.TotalDeposits), s.DepositCount)
	c.io.Printf("Withdrawals: %s (%d)\n", amount(s.TotalWithdrawals), s.WithdrawalCount)
	c.io.Printf("Memories:    %d\n", s.MemoryCount)
	return nil
}

func (c *Cli) runVaultFortune(ctx context.Context, vaultID string) error {
	fortune, err := c.vaults.GenerateVaultFortune(ctx, vaultID)
	if err != nil {
		return err
	}
	c.io.Printf("🔮 %s\n", fortune)
	return nil
}

func (c *Cli) runVaultList(ctx context.Context) error {
	c.io.Println("=== Owned Vaults ===")
	c.io.Println()

	vaults, err := c.vaults.ListOwnedVaults(ctx)
	if err != nil {
		return fmt.Errorf("failed to list vaults: %w", err)
	}

	if len(vaults) == 0 {
		c.io.Println("No vaults found.")
		c.io.Println()
		c.io.Println("Use 'vaultctl vault create' to create your first vault.")
		return nil
	}

	c.io.Printf("Found %d vault(s):\n", len(vaults))
	c.io.Println()
	for i := range vaults {
		c.io.Printf("%d. ", i+1)
		c.printVault(&vaults[i])
		c.io.Println()
	}
	return nil
}

func (c *Cli) runRefresh(ctx context.Context) error {
	view, err := c.vaults.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}
	c.io.Printf("✓ %d vault(s), %d NFT(s) owned by %s\n", len(view.Vaults), len(view.NFTs), view.Owner)
	return nil
}

// promptVaultFields спрашивает незаполненные флаги интерактивно
func (c *Cli) promptVaultFields(f *vaultFields) error {
	prompts := []struct {
		value  *string
		prompt string
	}{
		{&f.name, "Name: "},
		{&f.color, "Color: "},
		{&f.story, "Story: "},
	}
	for _, p := range prompts {
		if *p.value != "" {
			continue
		}
		v, err := c.io.ReadInput(p.prompt)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		*p.value = v
	}
	return nil
}
