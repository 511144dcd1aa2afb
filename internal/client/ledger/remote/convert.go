package remote

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/vaultkeeper/internal/models"
	"github.com/iudanet/vaultkeeper/pkg/api"
)

func receiptFromResponse(resp *api.TransactionResponse) *models.Receipt {
	r := &models.Receipt{
		Digest:     resp.Digest,
		Status:     models.ReceiptStatus(resp.Status),
		Error:      resp.Error,
		Checkpoint: resp.Checkpoint,
	}
	for _, ch := range resp.ObjectChanges {
		r.ObjectChanges = append(r.ObjectChanges, models.ObjectChange{
			Kind:       models.ChangeKind(ch.Kind),
			ObjectID:   ch.ObjectID,
			ObjectType: ch.ObjectType,
			Owner:      ch.Owner,
			Version:    ch.Version,
		})
	}
	return r
}

func vaultFromObject(obj api.ObjectResponse) (models.Vault, error) {
	if obj.Type != api.ObjectTypeVault {
		return models.Vault{}, fmt.Errorf("object %s is %q, not a vault", obj.ObjectID, obj.Type)
	}

	var content api.VaultContent
	if err := json.Unmarshal(obj.Content, &content); err != nil {
		return models.Vault{}, fmt.Errorf("failed to decode vault %s: %w", obj.ObjectID, err)
	}

	v := models.Vault{
		ObjectID:         obj.ObjectID,
		Version:          obj.Version,
		Digest:           obj.Digest,
		Owner:            obj.Owner,
		Name:             content.Name,
		Color:            content.Color,
		Story:            content.Story,
		TotalDeposits:    content.TotalDeposits,
		TotalWithdrawals: content.TotalWithdrawals,
		CreatedAt:        time.UnixMilli(content.CreatedAt).UTC(),
		Memories:         make([]models.Memory, 0, len(content.Memories)),
	}
	for _, m := range content.Memories {
		v.Memories = append(v.Memories, models.Memory{
			Amount:     m.Amount,
			Note:       m.Note,
			IsDeposit:  m.IsDeposit,
			Multiplier: m.Multiplier,
			Timestamp:  time.UnixMilli(m.Timestamp).UTC(),
		})
	}
	return v, nil
}

func artFromObject(obj api.ObjectResponse) (models.VaultArt, error) {
	if obj.Type != api.ObjectTypeVaultArt {
		return models.VaultArt{}, fmt.Errorf("object %s is %q, not vault art", obj.ObjectID, obj.Type)
	}

	var content api.VaultArtContent
	if err := json.Unmarshal(obj.Content, &content); err != nil {
		return models.VaultArt{}, fmt.Errorf("failed to decode vault art %s: %w", obj.ObjectID, err)
	}

	return models.VaultArt{
		ObjectID:    obj.ObjectID,
		Version:     obj.Version,
		Owner:       obj.Owner,
		VaultID:     content.VaultID,
		Kind:        models.ArtKind(content.Kind),
		Name:        content.Name,
		Description: content.Description,
		URL:         content.URL,
		Rarity:      content.Rarity,
		Creator:     content.Creator,
		MemoryIndex: content.MemoryIndex,
		Timestamp:   time.UnixMilli(content.Timestamp).UTC(),
	}, nil
}
