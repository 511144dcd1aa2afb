package models

import (
	"encoding/json"
	"fmt"
)

// Operation имя вызова контракта
type Operation string

// Операции контракта vault и nft_object
const (
	OpCreateVault      Operation = "create_vault"
	OpRecordDeposit    Operation = "record_deposit"
	OpRecordWithdrawal Operation = "record_withdrawal"
	OpCustomizeVault   Operation = "customize_vault"
	OpTransferVault    Operation = "transfer_vault"
	OpCreateVaultArt   Operation = "create_vault_art"
	OpCreateMemoryArt  Operation = "create_memory_art"
	OpCreateFortuneArt Operation = "create_fortune_art"
)

// Valid сообщает, известна ли операция контракту
func (o Operation) Valid() bool {
	switch o {
	case OpCreateVault, OpRecordDeposit, OpRecordWithdrawal, OpCustomizeVault,
		OpTransferVault, OpCreateVaultArt, OpCreateMemoryArt, OpCreateFortuneArt:
		return true
	}
	return false
}

// Типы объектов в леджере
const (
	ObjectTypeVault    = "vault"
	ObjectTypeVaultArt = "vault_art"
)

// MutationRequest описывает одну изменяющую операцию.
// После отправки запрос не изменяется.
type MutationRequest struct {
	EntityID  string          `json:"entity_id"` // EntityID целевой объект (пустой для create_vault)
	Operation Operation       `json:"operation"`
	Params    json.RawMessage `json:"params"` // Params аргументы вызова, см. *Params типы
}

// NewMutationRequest собирает запрос, сериализуя параметры операции
func NewMutationRequest(op Operation, entityID string, params any) (MutationRequest, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return MutationRequest{}, fmt.Errorf("failed to marshal %s params: %w", op, err)
	}
	return MutationRequest{
		EntityID:  entityID,
		Operation: op,
		Params:    raw,
	}, nil
}

// CreateVaultParams аргументы create_vault
type CreateVaultParams struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Story string `json:"story"`
}

// RecordParams аргументы record_deposit и record_withdrawal
type RecordParams struct {
	Multiplier *uint64 `json:"multiplier,omitempty"`
	VaultID    string  `json:"vault_id"`
	Note       string  `json:"note"`
	Amount     uint64  `json:"amount"`
}

// CustomizeVaultParams аргументы customize_vault
type CustomizeVaultParams struct {
	VaultID string `json:"vault_id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	Story   string `json:"story"`
}

// TransferVaultParams аргументы transfer_vault
type TransferVaultParams struct {
	VaultID   string `json:"vault_id"`
	Recipient string `json:"recipient"`
}

// ArtParams аргументы create_vault_art, create_memory_art и create_fortune_art.
// Description игнорируется для fortune (описанием становится предсказание),
// MemoryIndex обязателен только для memory.
type ArtParams struct {
	MemoryIndex *uint64 `json:"memory_index,omitempty"`
	VaultID     string  `json:"vault_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	URL         string  `json:"url"`
	Rarity      string  `json:"rarity"`
	Creator     string  `json:"creator"`
	Timestamp   int64   `json:"timestamp"` // Timestamp unix ms
}

// ReceiptStatus статус исполнения транзакции
type ReceiptStatus string

const (
	ReceiptSuccess ReceiptStatus = "success"
	ReceiptFailure ReceiptStatus = "failure"
)

// ChangeKind тип изменения объекта в квитанции
type ChangeKind string

const (
	ChangeCreated     ChangeKind = "created"
	ChangeMutated     ChangeKind = "mutated"
	ChangeTransferred ChangeKind = "transferred"
)

// ObjectChange одно изменение объекта, произведенное транзакцией
type ObjectChange struct {
	Kind       ChangeKind `json:"kind"`
	ObjectID   string     `json:"object_id"`
	ObjectType string     `json:"object_type"`
	Owner      string     `json:"owner"`
	Version    uint64     `json:"version"`
}

// Receipt подтверждение исполнения транзакции.
// Status "failure" означает, что транзакция не применилась,
// даже если сам вызов завершился без ошибки.
type Receipt struct {
	Digest        string         `json:"digest"`
	Status        ReceiptStatus  `json:"status"`
	Error         string         `json:"error,omitempty"`
	ObjectChanges []ObjectChange `json:"object_changes,omitempty"`
	Checkpoint    int64          `json:"checkpoint"`
}

// Succeeded сообщает, применилась ли транзакция
func (r *Receipt) Succeeded() bool {
	return r != nil && r.Status == ReceiptSuccess
}

// Created возвращает ID первого созданного объекта заданного типа
func (r *Receipt) Created(objectType string) (string, bool) {
	if r == nil {
		return "", false
	}
	for _, ch := range r.ObjectChanges {
		if ch.Kind == ChangeCreated && ch.ObjectType == objectType {
			return ch.ObjectID, true
		}
	}
	return "", false
}
