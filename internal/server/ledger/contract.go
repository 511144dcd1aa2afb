package ledger

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/iudanet/vaultkeeper/internal/crypto"
	"github.com/iudanet/vaultkeeper/internal/models"
	"github.com/iudanet/vaultkeeper/internal/server/storage"
	"github.com/iudanet/vaultkeeper/internal/validation"
	"github.com/iudanet/vaultkeeper/pkg/api"
)

type operation func(c *call, params json.RawMessage) error

// contract точки входа модуля хранилищ
var contract = map[models.Operation]operation{
	models.OpCreateVault:      createVault,
	models.OpRecordDeposit:    recordDeposit,
	models.OpRecordWithdrawal: recordWithdrawal,
	models.OpCustomizeVault:   customizeVault,
	models.OpTransferVault:    transferVault,
	models.OpCreateVaultArt:   createVaultArt,
	models.OpCreateMemoryArt:  createMemoryArt,
	models.OpCreateFortuneArt: createFortuneArt,
}

// call состояние одного исполнения: прочитанные и измененные объекты
type call struct {
	ctx      context.Context
	store    storage.ObjectStorage
	now      time.Time
	sender   string
	entityID string
	digest   string
	writes   []*models.LedgerObject
	changes  []models.ObjectChange
	created  int
}

func decode[P any](raw json.RawMessage) (P, error) {
	var p P
	if len(raw) == 0 {
		return p, invalid("params are required")
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, invalid("decode params: %v", err)
	}
	return p, nil
}

// target проверяет, что entity_id транзакции совпадает с vault_id из параметров
func (c *call) target(vaultID string) error {
	if c.entityID != "" && c.entityID != vaultID {
		return invalid("entity_id %s does not match vault_id %s", c.entityID, vaultID)
	}
	return nil
}

// loadVault читает хранилище, отсутствие объекта прерывает вызов
func (c *call) loadVault(id string) (*models.LedgerObject, *api.VaultContent, error) {
	obj, err := c.store.GetObject(c.ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, abort("vault %s not found", id)
		}
		return nil, nil, fmt.Errorf("load vault: %w", err)
	}
	if obj.Type != models.ObjectTypeVault {
		return nil, nil, abort("object %s is not a vault", id)
	}

	var content api.VaultContent
	if err := json.Unmarshal(obj.Content, &content); err != nil {
		return nil, nil, fmt.Errorf("decode vault %s: %w", id, err)
	}
	return obj, &content, nil
}

// ownedVault читает хранилище отправителя
func (c *call) ownedVault(id string) (*models.LedgerObject, *api.VaultContent, error) {
	if err := c.target(id); err != nil {
		return nil, nil, err
	}
	obj, content, err := c.loadVault(id)
	if err != nil {
		return nil, nil, err
	}
	if obj.Owner != c.sender {
		return nil, nil, abort("sender does not own vault %s", id)
	}
	return obj, content, nil
}

// create добавляет новый объект, принадлежащий отправителю
func (c *call) create(objectType string, content any) (*models.LedgerObject, error) {
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", objectType, err)
	}

	obj := &models.LedgerObject{
		ID:         crypto.ObjectID(c.digest, c.created),
		Type:       objectType,
		Owner:      c.sender,
		OwnerSince: c.now,
		Content:    raw,
		Version:    1,
		CreatedAt:  c.now,
		UpdatedAt:  c.now,
	}
	c.created++
	obj.Digest = objectDigest(obj)

	c.record(obj, models.ChangeCreated)
	return obj, nil
}

// mutate записывает новую версию объекта
func (c *call) mutate(obj *models.LedgerObject, content any, kind models.ChangeKind) error {
	raw, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("encode %s: %w", obj.Type, err)
	}

	obj.Content = raw
	obj.Version++
	obj.UpdatedAt = c.now
	obj.Digest = objectDigest(obj)

	c.record(obj, kind)
	return nil
}

func (c *call) record(obj *models.LedgerObject, kind models.ChangeKind) {
	c.writes = append(c.writes, obj)
	c.changes = append(c.changes, models.ObjectChange{
		Kind:       kind,
		ObjectID:   obj.ID,
		ObjectType: obj.Type,
		Owner:      obj.Owner,
		Version:    obj.Version,
	})
}

func objectDigest(obj *models.LedgerObject) string {
	version := make([]byte, 8)
	binary.BigEndian.PutUint64(version, obj.Version)
	return crypto.Digest([]byte(obj.ID), version, []byte(obj.Owner), obj.Content)
}

func createVault(c *call, raw json.RawMessage) error {
	p, err := decode[models.CreateVaultParams](raw)
	if err != nil {
		return err
	}
	if err := validation.ValidateVaultFields(p.Name, p.Color, p.Story); err != nil {
		return abort("%v", err)
	}

	_, err = c.create(models.ObjectTypeVault, api.VaultContent{
		Name:      p.Name,
		Color:     p.Color,
		Story:     p.Story,
		Memories:  []api.MemoryContent{},
		CreatedAt: c.now.UnixMilli(),
	})
	return err
}

func recordDeposit(c *call, raw json.RawMessage) error {
	return recordMemory(c, raw, true)
}

func recordWithdrawal(c *call, raw json.RawMessage) error {
	return recordMemory(c, raw, false)
}

func recordMemory(c *call, raw json.RawMessage, isDeposit bool) error {
	p, err := decode[models.RecordParams](raw)
	if err != nil {
		return err
	}
	obj, vault, err := c.ownedVault(p.VaultID)
	if err != nil {
		return err
	}
	if err := validation.ValidateAmount(p.Amount); err != nil {
		return abort("%v", err)
	}
	if err := validation.ValidateNote(p.Note); err != nil {
		return abort("%v", err)
	}

	if isDeposit {
		if vault.TotalDeposits > math.MaxUint64-p.Amount {
			return abort("deposit overflows vault total")
		}
		vault.TotalDeposits += p.Amount
	} else {
		if p.Amount > balance(vault) {
			return abort("insufficient balance")
		}
		vault.TotalWithdrawals += p.Amount
	}

	vault.Memories = append(vault.Memories, api.MemoryContent{
		Multiplier: p.Multiplier,
		Note:       p.Note,
		Amount:     p.Amount,
		Timestamp:  c.now.UnixMilli(),
		IsDeposit:  isDeposit,
	})
	return c.mutate(obj, vault, models.ChangeMutated)
}

func customizeVault(c *call, raw json.RawMessage) error {
	p, err := decode[models.CustomizeVaultParams](raw)
	if err != nil {
		return err
	}
	obj, vault, err := c.ownedVault(p.VaultID)
	if err != nil {
		return err
	}
	if err := validation.ValidateVaultFields(p.Name, p.Color, p.Story); err != nil {
		return abort("%v", err)
	}

	vault.Name = p.Name
	vault.Color = p.Color
	vault.Story = p.Story
	return c.mutate(obj, vault, models.ChangeMutated)
}

func transferVault(c *call, raw json.RawMessage) error {
	p, err := decode[models.TransferVaultParams](raw)
	if err != nil {
		return err
	}
	obj, vault, err := c.ownedVault(p.VaultID)
	if err != nil {
		return err
	}
	if err := validation.ValidateAddress(p.Recipient); err != nil {
		return abort("%v", err)
	}
	if p.Recipient == c.sender {
		return abort("cannot transfer vault to its current owner")
	}

	obj.PrevOwner = obj.Owner
	obj.PrevOwnerSince = obj.OwnerSince
	obj.Owner = p.Recipient
	obj.OwnerSince = c.now
	return c.mutate(obj, vault, models.ChangeTransferred)
}

func createVaultArt(c *call, raw json.RawMessage) error {
	p, err := decode[models.ArtParams](raw)
	if err != nil {
		return err
	}
	if p.MemoryIndex != nil {
		return invalid("memory_index is only valid for memory art")
	}
	if _, _, err := c.ownedVault(p.VaultID); err != nil {
		return err
	}
	return mintArt(c, p, models.ArtKindVault, p.Description)
}

func createMemoryArt(c *call, raw json.RawMessage) error {
	p, err := decode[models.ArtParams](raw)
	if err != nil {
		return err
	}
	if p.MemoryIndex == nil {
		return invalid("memory_index is required")
	}
	_, vault, err := c.ownedVault(p.VaultID)
	if err != nil {
		return err
	}
	if *p.MemoryIndex >= uint64(len(vault.Memories)) {
		return abort("memory index %d out of range (vault has %d memories)", *p.MemoryIndex, len(vault.Memories))
	}
	return mintArt(c, p, models.ArtKindMemory, p.Description)
}

func createFortuneArt(c *call, raw json.RawMessage) error {
	p, err := decode[models.ArtParams](raw)
	if err != nil {
		return err
	}
	if p.MemoryIndex != nil {
		return invalid("memory_index is only valid for memory art")
	}
	_, vault, err := c.ownedVault(p.VaultID)
	if err != nil {
		return err
	}
	// Описание fortune NFT всегда генерирует контракт
	return mintArt(c, p, models.ArtKindFortune, Fortune(p.VaultID, vault))
}

func mintArt(c *call, p models.ArtParams, kind models.ArtKind, description string) error {
	if err := validation.ValidateArtFields(p.Name, p.URL, p.Rarity, p.Creator); err != nil {
		return abort("%v", err)
	}

	timestamp := p.Timestamp
	if timestamp <= 0 {
		timestamp = c.now.UnixMilli()
	}

	_, err := c.create(models.ObjectTypeVaultArt, api.VaultArtContent{
		MemoryIndex: p.MemoryIndex,
		VaultID:     p.VaultID,
		Kind:        string(kind),
		Name:        p.Name,
		Description: description,
		URL:         p.URL,
		Rarity:      p.Rarity,
		Creator:     p.Creator,
		Timestamp:   timestamp,
	})
	return err
}

func balance(v *api.VaultContent) uint64 {
	if v.TotalWithdrawals > v.TotalDeposits {
		return 0
	}
	return v.TotalDeposits - v.TotalWithdrawals
}
