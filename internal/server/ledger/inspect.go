package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"

	"github.com/iudanet/vaultkeeper/internal/models"
	"github.com/iudanet/vaultkeeper/pkg/api"
)

// fortunes по ступеням баланса, внутри ступени выбор зависит от хранилища
var fortunes = [][]string{
	{
		"An empty vault is a story waiting for its first chapter.",
		"Every fortune starts with a single coin.",
	},
	{
		"Small steps fill deep vaults.",
		"The seed you planted is already taking root.",
	},
	{
		"Your patience is compounding quietly.",
		"Steady hands build tall towers.",
	},
	{
		"Fortune favours the steady saver.",
		"The vault remembers every promise you kept.",
	},
}

// balanceTiers нижние границы ступеней для fortunes[1:]
var balanceTiers = []uint64{1, 1_000, 100_000}

// Fortune детерминированное предсказание по состоянию хранилища.
// Один и тот же vaultID и содержимое всегда дают один и тот же текст.
func Fortune(vaultID string, v *api.VaultContent) string {
	bal := balance(v)
	tier := 0
	for i, floor := range balanceTiers {
		if bal >= floor {
			tier = i + 1
		}
	}

	h := fnv.New32a()
	_, _ = fmt.Fprintf(h, "%s:%d", vaultID, len(v.Memories))
	options := fortunes[tier]
	line := options[h.Sum32()%uint32(len(options))]

	switch n := len(v.Memories); n {
	case 0:
		return fmt.Sprintf("%s %s has no memories yet.", line, v.Name)
	case 1:
		return fmt.Sprintf("%s %s holds 1 memory.", line, v.Name)
	default:
		return fmt.Sprintf("%s %s holds %d memories.", line, v.Name, n)
	}
}

// Summary get_vault_summary: итоги хранилища без изменения состояния
func (l *Ledger) Summary(ctx context.Context, vaultID string) (*api.SummaryResponse, error) {
	vault, err := l.vaultContent(ctx, vaultID)
	if err != nil {
		return nil, err
	}

	s := &api.SummaryResponse{
		VaultID:          vaultID,
		Name:             vault.Name,
		Balance:          balance(vault),
		TotalDeposits:    vault.TotalDeposits,
		TotalWithdrawals: vault.TotalWithdrawals,
		MemoryCount:      len(vault.Memories),
	}
	for _, m := range vault.Memories {
		if m.IsDeposit {
			s.DepositCount++
		} else {
			s.WithdrawalCount++
		}
	}
	return s, nil
}

// Fortune generate_vault_fortune для хранилища по ID
func (l *Ledger) Fortune(ctx context.Context, vaultID string) (string, error) {
	vault, err := l.vaultContent(ctx, vaultID)
	if err != nil {
		return "", err
	}
	return Fortune(vaultID, vault), nil
}

func (l *Ledger) vaultContent(ctx context.Context, vaultID string) (*api.VaultContent, error) {
	obj, err := l.store.GetObject(ctx, vaultID)
	if err != nil {
		return nil, err
	}
	if obj.Type != models.ObjectTypeVault {
		return nil, fmt.Errorf("%s: %w", vaultID, ErrNotVault)
	}

	var vault api.VaultContent
	if err := json.Unmarshal(obj.Content, &vault); err != nil {
		return nil, fmt.Errorf("decode vault %s: %w", vaultID, err)
	}
	return &vault, nil
}
