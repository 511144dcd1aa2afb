package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/vaultkeeper/internal/client/vault"
	"github.com/iudanet/vaultkeeper/internal/models"
)

type mintFlags struct {
	name        string
	description string
	url         string
	rarity      string
	creator     string
	memoryIndex uint64
}

func (c *Cli) newNFTCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nft",
		Short: "Mint and list vault art",
	}

	var f mintFlags
	mintCmd := &cobra.Command{
		Use:   "mint <vault|memory|fortune> <vault-id>",
		Short: "Mint an NFT for a vault, one of its memories, or its fortune",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var memoryIndex *uint64
			if cmd.Flags().Changed("memory-index") {
				memoryIndex = &f.memoryIndex
			}
			return c.runNFTMint(cmd.Context(), models.ArtKind(args[0]), args[1], f, memoryIndex)
		},
	}
	mintCmd.Flags().StringVar(&f.name, "name", "", "NFT name")
	mintCmd.Flags().StringVar(&f.description, "description", "", "NFT description (ignored for fortune)")
	mintCmd.Flags().StringVar(&f.url, "url", "", "image URL")
	mintCmd.Flags().StringVar(&f.rarity, "rarity", "common", "rarity label")
	mintCmd.Flags().StringVar(&f.creator, "creator", "", "creator name")
	mintCmd.Flags().Uint64Var(&f.memoryIndex, "memory-index", 0, "memory index (memory kind only)")

	cmd.AddCommand(
		mintCmd,
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List NFTs owned by the connected wallet",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runNFTList(cmd.Context())
			},
		},
	)
	return cmd
}

func (c *Cli) runNFTMint(ctx context.Context, kind models.ArtKind, vaultID string, f mintFlags, memoryIndex *uint64) error {
	if kind == models.ArtKindMemory && memoryIndex == nil {
		return fmt.Errorf("--memory-index is required for memory art")
	}
	if kind != models.ArtKindMemory && memoryIndex != nil {
		return fmt.Errorf("--memory-index applies to memory art only")
	}

	in := vault.ArtInput{
		VaultID:     vaultID,
		Name:        f.name,
		Description: f.description,
		URL:         f.url,
		Rarity:      f.rarity,
		Creator:     f.creator,
	}

	var (
		res vault.Result
		err error
	)
	switch kind {
	case models.ArtKindVault, models.ArtKindMemory, models.ArtKindFortune:
	default:
		return fmt.Errorf("unknown art kind %q. Use: vault, memory or fortune", kind)
	}

	if err := c.prepareMutation(ctx); err != nil {
		return err
	}
	defer c.wallet.Lock()

	switch kind {
	case models.ArtKindVault:
		res, err = c.vaults.CreateVaultArt(ctx, in)
	case models.ArtKindMemory:
		res, err = c.vaults.CreateMemoryArt(ctx, in, *memoryIndex)
	case models.ArtKindFortune:
		res, err = c.vaults.CreateFortuneArt(ctx, in)
	}
	return c.report("Mint", res, err)
}

func (c *Cli) runNFTList(ctx context.Context) error {
	c.io.Println("=== Owned Vault Art ===")
	c.io.Println()

	nfts, err := c.vaults.ListOwnedNFTs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list NFTs: %w", err)
	}
	if len(nfts) == 0 {
		c.io.Println("No NFTs found.")
		return nil
	}

	c.io.Printf("Found %d NFT(s):\n", len(nfts))
	c.io.Println()
	for i := range nfts {
		c.io.Printf("%d. ", i+1)
		c.printNFT(&nfts[i])
		c.io.Println()
	}
	return nil
}
