package cli

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/iudanet/vaultkeeper/internal/client/ledger"
	"github.com/iudanet/vaultkeeper/internal/client/mutation"
	"github.com/iudanet/vaultkeeper/internal/client/vault"
	"github.com/iudanet/vaultkeeper/internal/models"
)

// amount форматирует сумму с разделителями разрядов
func amount(v uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(v))
}

// when относительное время для человека
func when(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return humanize.Time(t)
}

func (c *Cli) printVault(v *models.Vault) {
	name := v.Name
	if v.Pending {
		name += " (pending)"
	}
	c.io.Printf("%s\n", name)
	c.io.Printf("   ID:          %s\n", v.ObjectID)
	c.io.Printf("   Owner:       %s\n", v.Owner)
	c.io.Printf("   Color:       %s\n", v.Color)
	c.io.Printf("   Balance:     %s\n", amount(v.Balance()))
	c.io.Printf("   Deposits:    %s\n", amount(v.TotalDeposits))
	c.io.Printf("   Withdrawals: %s\n", amount(v.TotalWithdrawals))
	c.io.Printf("   Version:     %d\n", v.Version)
	c.io.Printf("   Created:     %s\n", when(v.CreatedAt))
	if v.Story != "" {
		c.io.Printf("   Story:       %s\n", v.Story)
	}
}

func (c *Cli) printMemories(v *models.Vault) {
	if len(v.Memories) == 0 {
		c.io.Println("   No memories yet.")
		return
	}
	c.io.Printf("   Memories (%d):\n", len(v.Memories))
	for i, m := range v.Memories {
		sign := "-"
		if m.IsDeposit {
			sign = "+"
		}
		line := fmt.Sprintf("   [%d] %s%s", i, sign, amount(m.Amount))
		if m.Multiplier != nil {
			line += fmt.Sprintf(" x%d", *m.Multiplier)
		}
		if m.Note != "" {
			line += "  " + m.Note
		}
		line += "  (" + when(m.Timestamp) + ")"
		c.io.Println(line)
	}
}

func (c *Cli) printNFT(n *models.VaultArt) {
	name := n.Name
	if n.Pending {
		name += " (pending)"
	}
	c.io.Printf("%s [%s, %s]\n", name, n.Kind, n.Rarity)
	c.io.Printf("   ID:      %s\n", n.ObjectID)
	c.io.Printf("   Vault:   %s\n", n.VaultID)
	if n.MemoryIndex != nil {
		c.io.Printf("   Memory:  #%d\n", *n.MemoryIndex)
	}
	if n.Description != "" {
		c.io.Printf("   About:   %s\n", n.Description)
	}
	c.io.Printf("   URL:     %s\n", n.URL)
	c.io.Printf("   Creator: %s\n", n.Creator)
	c.io.Printf("   Minted:  %s\n", when(n.Timestamp))
}

// report печатает итог изменяющей операции и возвращает ошибку для кода выхода
func (c *Cli) report(action string, res vault.Result, err error) error {
	if err != nil {
		return c.reportFailure(action, res, err)
	}

	switch res.Outcome.State {
	case mutation.StateConverged:
		c.io.Printf("✓ %s confirmed", action)
		if res.Outcome.Attempts > 1 {
			c.io.Printf(" after %d polls", res.Outcome.Attempts)
		}
		c.io.Println()
	case mutation.StateTimedOut:
		c.io.Printf("⚠️  %s submitted but not visible yet", action)
		var soft *mutation.TimeoutSoftFailure
		if errors.As(res.Outcome.Notice, &soft) {
			c.io.Printf(" (checked %d times over %s)", soft.Attempts, soft.Waited)
		}
		c.io.Println()
		c.io.Println("The ledger accepted the transaction. Run 'vaultctl refresh' later to see it.")
	default:
		c.io.Printf("%s finished in state %s\n", action, res.Outcome.State)
	}

	if res.ObjectID != "" {
		c.io.Printf("Object ID: %s\n", res.ObjectID)
	}
	if res.Outcome.Receipt != nil && res.Outcome.Receipt.Digest != "" {
		c.io.Printf("Transaction: %s\n", res.Outcome.Receipt.Digest)
	}
	return nil
}

func (c *Cli) reportFailure(action string, res vault.Result, err error) error {
	switch {
	case errors.Is(err, mutation.ErrEntityBusy):
		return fmt.Errorf("%s rejected: another change to this vault is still in flight", action)
	case vault.IsOwnership(err, vault.CodeWalletNotConnected), errors.Is(err, ledger.ErrNotConnected):
		return fmt.Errorf("wallet not connected. Run 'vaultctl wallet connect' first")
	case vault.IsOwnership(err, vault.CodeNotOwner), vault.IsOwnership(err, vault.CodeVaultNotFound):
		return err
	case errors.Is(err, vault.ErrInvalidInput):
		return err
	}

	if res.Outcome.State == mutation.StateCancelled {
		c.io.Printf("✗ %s cancelled while %s\n", action, lastActiveState(res.Outcome.History))
		c.io.Println("The transaction may still be committed. Run 'vaultctl refresh' to check.")
		return err
	}

	if mutation.IsRollbackCause(err) {
		c.io.Printf("✗ %s failed: %s\n", action, mutation.Reason(err))
		c.io.Println("Local view restored from the ledger.")

		var submitErr *mutation.SubmitError
		if errors.As(err, &submitErr) && submitErr.Transient() {
			c.io.Println("The ledger was unreachable, it is safe to retry.")
		}
		return fmt.Errorf("%s failed: %s", strings.ToLower(action), mutation.Reason(err))
	}
	return err
}

func lastActiveState(history []mutation.State) mutation.State {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i] != mutation.StateCancelled {
			return history[i]
		}
	}
	return mutation.StateIdle
}
