package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/vaultkeeper/internal/client/iocli"
	"github.com/iudanet/vaultkeeper/internal/client/ledger"
	"github.com/iudanet/vaultkeeper/internal/client/mutation"
	"github.com/iudanet/vaultkeeper/internal/client/storage"
	"github.com/iudanet/vaultkeeper/internal/client/vault"
	"github.com/iudanet/vaultkeeper/internal/client/wallet"
	"github.com/iudanet/vaultkeeper/internal/models"
)

const (
	testOwner   = "0x1111111111111111111111111111111111111111111111111111111111111111"
	testVaultID = "0x2222222222222222222222222222222222222222222222222222222222222222"
)

func connectedWallet() *wallet.ServiceMock {
	session := &storage.Session{
		Address:   testOwner,
		Token:     "token",
		Server:    "http://localhost:8080",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}
	return &wallet.ServiceMock{
		UnlockFunc:     func(ctx context.Context, passphrase string) error { return nil },
		LockFunc:       func() {},
		AddressFunc:    func(ctx context.Context) (string, error) { return testOwner, nil },
		SessionFunc:    func(ctx context.Context) (*storage.Session, error) { return session, nil },
		ConnectFunc:    func(ctx context.Context) (*storage.Session, error) { return session, nil },
		DisconnectFunc: func(ctx context.Context) error { return nil },
	}
}

func newTestCli(t *testing.T, out *output, vaults *VaultServiceMock, confirm bool) (*Cli, *wallet.ServiceMock) {
	t.Helper()
	t.Setenv(PassphraseEnv, "test-passphrase")
	w := connectedWallet()
	if vaults.LoadFunc == nil {
		vaults.LoadFunc = func(ctx context.Context) error { return nil }
	}
	return New(newMockIO(out, nil, confirm), w, vaults, discardLogger()), w
}

func converged(objectID string, attempts int) vault.Result {
	return vault.Result{
		ObjectID: objectID,
		Outcome: mutation.Outcome{
			State:    mutation.StateConverged,
			Attempts: attempts,
			Receipt:  &models.Receipt{Digest: "digest-1", Status: models.ReceiptSuccess},
		},
	}
}

func TestRunVaultRecord_Deposit(t *testing.T) {
	// Setup
	out := &output{}
	vaults := &VaultServiceMock{
		RecordDepositFunc: func(ctx context.Context, vaultID string, amount uint64, note string, multiplier *uint64) (vault.Result, error) {
			return converged(vaultID, 3), nil
		},
	}
	c, w := newTestCli(t, out, vaults, true)

	// Execute
	mult := uint64(2)
	err := c.runVaultRecord(context.Background(), true, []string{testVaultID, "1500"}, "salary", &mult)

	// Assert
	require.NoError(t, err)
	calls := vaults.RecordDepositCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, testVaultID, calls[0].VaultID)
	assert.Equal(t, uint64(1500), calls[0].Amount)
	assert.Equal(t, "salary", calls[0].Note)
	require.NotNil(t, calls[0].Multiplier)
	assert.Equal(t, uint64(2), *calls[0].Multiplier)

	assert.Contains(t, out.String(), "✓ Deposit confirmed after 3 polls")
	assert.Contains(t, out.String(), "Transaction: digest-1")
	assert.Contains(t, out.String(), "Amount: 1,500")
	assert.Len(t, vaults.LoadCalls(), 1)
	assert.Len(t, w.LockCalls(), 1)
}

func TestRunVaultRecord_InvalidAmount(t *testing.T) {
	out := &output{}
	vaults := &VaultServiceMock{}
	c, w := newTestCli(t, out, vaults, true)

	err := c.runVaultRecord(context.Background(), true, []string{testVaultID, "-5"}, "", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amount")
	assert.Empty(t, w.UnlockCalls())
	assert.Empty(t, vaults.RecordDepositCalls())
}

func TestRunVaultRecord_RolledBack(t *testing.T) {
	out := &output{}
	vaults := &VaultServiceMock{
		RecordWithdrawalFunc: func(ctx context.Context, vaultID string, amount uint64, note string, multiplier *uint64) (vault.Result, error) {
			res := vault.Result{ObjectID: vaultID, Outcome: mutation.Outcome{State: mutation.StateRolledBack}}
			return res, &mutation.LogicalFailure{Operation: models.OpRecordWithdrawal, Reason: "insufficient balance"}
		},
	}
	c, _ := newTestCli(t, out, vaults, true)

	err := c.runVaultRecord(context.Background(), false, []string{testVaultID, "900"}, "", nil)

	require.Error(t, err)
	assert.Equal(t, "withdrawal failed: insufficient balance", err.Error())
	assert.Contains(t, out.String(), "✗ Withdrawal failed: insufficient balance")
	assert.Contains(t, out.String(), "Local view restored")
	assert.NotContains(t, out.String(), "Amount:")
}

func TestRunVaultRecord_NetworkFailureIsRetryable(t *testing.T) {
	out := &output{}
	vaults := &VaultServiceMock{
		RecordDepositFunc: func(ctx context.Context, vaultID string, amount uint64, note string, multiplier *uint64) (vault.Result, error) {
			return vault.Result{}, &mutation.SubmitError{
				Err:       ledger.ErrNetwork,
				Operation: models.OpRecordDeposit,
				Kind:      mutation.SubmitNetwork,
			}
		},
	}
	c, _ := newTestCli(t, out, vaults, true)

	err := c.runVaultRecord(context.Background(), true, []string{testVaultID, "10"}, "", nil)

	require.Error(t, err)
	assert.Contains(t, out.String(), "safe to retry")
}

func TestReport_Failures(t *testing.T) {
	tests := []struct {
		name    string
		res     vault.Result
		err     error
		wantErr string
		wantOut string
	}{
		{
			name:    "busy",
			err:     mutation.ErrEntityBusy,
			wantErr: "still in flight",
		},
		{
			name:    "not connected",
			err:     ledger.ErrNotConnected,
			wantErr: "wallet connect",
		},
		{
			name:    "not owner",
			err:     &vault.OwnershipError{Err: errors.New("owned by someone else"), Code: vault.CodeNotOwner, VaultID: testVaultID},
			wantErr: "owned by someone else",
		},
		{
			name:    "cancelled",
			res:     vault.Result{Outcome: mutation.Outcome{State: mutation.StateCancelled, History: []mutation.State{mutation.StateIdle, mutation.StatePolling, mutation.StateCancelled}}},
			err:     context.Canceled,
			wantErr: "context canceled",
			wantOut: "cancelled while polling",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &output{}
			c := &Cli{io: newMockIO(out, nil, true)}

			err := c.report("Deposit", tt.res, tt.err)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			if tt.wantOut != "" {
				assert.Contains(t, out.String(), tt.wantOut)
			}
		})
	}
}

func TestReport_TimedOut(t *testing.T) {
	out := &output{}
	c := &Cli{io: newMockIO(out, nil, true)}

	res := vault.Result{
		ObjectID: testVaultID,
		Outcome: mutation.Outcome{
			State:  mutation.StateTimedOut,
			Notice: &mutation.TimeoutSoftFailure{Attempts: 10, Waited: 1023 * time.Second},
		},
	}

	require.NoError(t, c.report("Deposit", res, nil))
	assert.Contains(t, out.String(), "submitted but not visible yet (checked 10 times")
	assert.Contains(t, out.String(), "vaultctl refresh")
	assert.Contains(t, out.String(), "Object ID: "+testVaultID)
}

func TestRunVaultCreate_PromptsMissingFields(t *testing.T) {
	out := &output{}
	vaults := &VaultServiceMock{
		CreateVaultFunc: func(ctx context.Context, name, color, story string) (vault.Result, error) {
			return converged("pending-1", 1), nil
		},
	}
	c, _ := newTestCli(t, out, vaults, true)
	mockIO := c.io.(*iocli.IOMock)

	err := c.runVaultCreate(context.Background(), vaultFields{name: "Trip", color: "blue"})

	require.NoError(t, err)
	require.Len(t, mockIO.ReadInputCalls(), 1)
	assert.Equal(t, "Story: ", mockIO.ReadInputCalls()[0].Prompt)
	calls := vaults.CreateVaultCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Trip", calls[0].Name)
	assert.Equal(t, "blue", calls[0].Color)
	assert.Contains(t, out.String(), "✓ Vault creation confirmed")
	assert.NotContains(t, out.String(), "after")
}

func TestRunVaultCreate_LoadFailureIsNotFatal(t *testing.T) {
	out := &output{}
	vaults := &VaultServiceMock{
		LoadFunc: func(ctx context.Context) error { return errors.New("corrupt cache") },
		CreateVaultFunc: func(ctx context.Context, name, color, story string) (vault.Result, error) {
			return converged("pending-1", 1), nil
		},
	}
	c, _ := newTestCli(t, out, vaults, true)

	require.NoError(t, c.runVaultCreate(context.Background(), vaultFields{name: "a", color: "b", story: "c"}))
	assert.Len(t, vaults.CreateVaultCalls(), 1)
}

func TestRunVaultTransfer_Declined(t *testing.T) {
	out := &output{}
	vaults := &VaultServiceMock{}
	c, w := newTestCli(t, out, vaults, false)

	require.NoError(t, c.runVaultTransfer(context.Background(), testVaultID, testOwner))

	assert.Contains(t, out.String(), "Transfer cancelled.")
	assert.Empty(t, vaults.TransferVaultCalls())
	assert.Empty(t, w.UnlockCalls())
}

func TestRunVaultTransfer_Confirmed(t *testing.T) {
	out := &output{}
	vaults := &VaultServiceMock{
		TransferVaultFunc: func(ctx context.Context, vaultID, recipient string) (vault.Result, error) {
			return converged(vaultID, 2), nil
		},
	}
	c, _ := newTestCli(t, out, vaults, true)

	require.NoError(t, c.runVaultTransfer(context.Background(), testVaultID, testOwner))
	require.Len(t, vaults.TransferVaultCalls(), 1)
	assert.Contains(t, out.String(), "✓ Transfer confirmed after 2 polls")
}

func TestRunVaultList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		out := &output{}
		vaults := &VaultServiceMock{
			ListOwnedVaultsFunc: func(ctx context.Context) ([]models.Vault, error) { return nil, nil },
		}
		c, _ := newTestCli(t, out, vaults, true)

		require.NoError(t, c.runVaultList(context.Background()))
		assert.Contains(t, out.String(), "No vaults found.")
	})

	t.Run("with vaults", func(t *testing.T) {
		out := &output{}
		vaults := &VaultServiceMock{
			ListOwnedVaultsFunc: func(ctx context.Context) ([]models.Vault, error) {
				return []models.Vault{
					{ObjectID: testVaultID, Name: "Trip", Owner: testOwner, TotalDeposits: 12000, TotalWithdrawals: 2000},
					{ObjectID: "pending-x", Name: "Car", Owner: testOwner, Pending: true},
				}, nil
			},
		}
		c, _ := newTestCli(t, out, vaults, true)

		require.NoError(t, c.runVaultList(context.Background()))
		assert.Contains(t, out.String(), "Found 2 vault(s)")
		assert.Contains(t, out.String(), "Balance:     10,000")
		assert.Contains(t, out.String(), "Car (pending)")
	})

	t.Run("error", func(t *testing.T) {
		vaults := &VaultServiceMock{
			ListOwnedVaultsFunc: func(ctx context.Context) ([]models.Vault, error) { return nil, ledger.ErrNetwork },
		}
		c, _ := newTestCli(t, &output{}, vaults, true)

		require.ErrorIs(t, c.runVaultList(context.Background()), ledger.ErrNetwork)
	})
}

func TestRunVaultShow_NotOwned(t *testing.T) {
	out := &output{}
	mult := uint64(3)
	vaults := &VaultServiceMock{
		GetVaultFunc: func(ctx context.Context, vaultID string) (*models.Vault, error) {
			return &models.Vault{
				ObjectID: vaultID,
				Name:     "Trip",
				Memories: []models.Memory{
					{Amount: 500, IsDeposit: true, Note: "salary", Multiplier: &mult},
					{Amount: 100},
				},
			}, nil
		},
		IsVaultOwnerFunc: func(ctx context.Context, vaultID string) (bool, error) { return false, nil },
	}
	c, _ := newTestCli(t, out, vaults, true)

	require.NoError(t, c.runVaultShow(context.Background(), testVaultID))
	assert.Contains(t, out.String(), "[0] +500 x3  salary")
	assert.Contains(t, out.String(), "[1] -100")
	assert.Contains(t, out.String(), "not owned by your wallet")
}

func TestRunVaultSummary(t *testing.T) {
	out := &output{}
	vaults := &VaultServiceMock{
		GetVaultSummaryFunc: func(ctx context.Context, vaultID string) (*models.VaultSummary, error) {
			return &models.VaultSummary{VaultID: vaultID, Name: "Trip", Balance: 1234567, DepositCount: 2, MemoryCount: 3}, nil
		},
	}
	c, _ := newTestCli(t, out, vaults, true)

	require.NoError(t, c.runVaultSummary(context.Background(), testVaultID))
	assert.Contains(t, out.String(), "=== Trip ===")
	assert.Contains(t, out.String(), "Balance:     1,234,567")
}

func TestRunRefresh(t *testing.T) {
	out := &output{}
	vaults := &VaultServiceMock{
		RefreshFunc: func(ctx context.Context) (models.OwnedView, error) {
			return models.OwnedView{Owner: testOwner, Vaults: []models.Vault{{ObjectID: testVaultID}}}, nil
		},
	}
	c, _ := newTestCli(t, out, vaults, true)

	require.NoError(t, c.runRefresh(context.Background()))
	assert.Contains(t, out.String(), "1 vault(s), 0 NFT(s)")
}

func TestRunNFTMint(t *testing.T) {
	idx := uint64(1)

	tests := []struct {
		name        string
		kind        models.ArtKind
		memoryIndex *uint64
		wantErr     string
	}{
		{name: "memory requires index", kind: models.ArtKindMemory, wantErr: "--memory-index is required"},
		{name: "index only for memory", kind: models.ArtKindVault, memoryIndex: &idx, wantErr: "memory art only"},
		{name: "unknown kind", kind: models.ArtKind("poster"), wantErr: "unknown art kind"},
		{name: "vault", kind: models.ArtKindVault},
		{name: "memory", kind: models.ArtKindMemory, memoryIndex: &idx},
		{name: "fortune", kind: models.ArtKindFortune},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &output{}
			mint := func(ctx context.Context, in vault.ArtInput) (vault.Result, error) {
				assert.Equal(t, testVaultID, in.VaultID)
				return converged("pending-art", 1), nil
			}
			vaults := &VaultServiceMock{
				CreateVaultArtFunc:   mint,
				CreateFortuneArtFunc: mint,
				CreateMemoryArtFunc: func(ctx context.Context, in vault.ArtInput, memoryIndex uint64) (vault.Result, error) {
					assert.Equal(t, idx, memoryIndex)
					return mint(ctx, in)
				},
			}
			c, w := newTestCli(t, out, vaults, true)

			err := c.runNFTMint(context.Background(), tt.kind, testVaultID, mintFlags{name: "Art", rarity: "rare"}, tt.memoryIndex)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, w.UnlockCalls())
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), "✓ Mint confirmed")
		})
	}
}

func TestRunNFTList(t *testing.T) {
	out := &output{}
	idx := uint64(0)
	vaults := &VaultServiceMock{
		ListOwnedNFTsFunc: func(ctx context.Context) ([]models.VaultArt, error) {
			return []models.VaultArt{
				{ObjectID: "0xart", VaultID: testVaultID, Name: "First", Kind: models.ArtKindMemory, Rarity: "rare", MemoryIndex: &idx},
			}, nil
		},
	}
	c, _ := newTestCli(t, out, vaults, true)

	require.NoError(t, c.runNFTList(context.Background()))
	assert.Contains(t, out.String(), "First [memory, rare]")
	assert.Contains(t, out.String(), "Memory:  #0")
}
