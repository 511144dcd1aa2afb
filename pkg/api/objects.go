package api

import (
	"encoding/json"
	"time"
)

// Типы объектов
const (
	ObjectTypeVault    = "vault"
	ObjectTypeVaultArt = "vault_art"
)

// ObjectResponse объект леджера с содержимым, зависящим от Type
type ObjectResponse struct {
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	ObjectID  string          `json:"object_id"`
	Type      string          `json:"type"`
	Owner     string          `json:"owner"`
	Digest    string          `json:"digest"`
	Content   json.RawMessage `json:"content"` // VaultContent или VaultArtContent
	Version   uint64          `json:"version"`
}

// OwnedObjectsResponse объекты владельца по индексу
type OwnedObjectsResponse struct {
	Owner   string           `json:"owner"`
	Type    string           `json:"type,omitempty"`
	Objects []ObjectResponse `json:"objects"`
}

// MemoryContent запись о депозите или списании
type MemoryContent struct {
	Multiplier *uint64 `json:"multiplier,omitempty"`
	Note       string  `json:"note"`
	Amount     uint64  `json:"amount"`
	Timestamp  int64   `json:"timestamp"` // unix ms
	IsDeposit  bool    `json:"is_deposit"`
}

// VaultContent поля объекта vault
type VaultContent struct {
	Name             string          `json:"name"`
	Color            string          `json:"color"`
	Story            string          `json:"story"`
	Memories         []MemoryContent `json:"memories"`
	TotalDeposits    uint64          `json:"total_deposits"`
	TotalWithdrawals uint64          `json:"total_withdrawals"`
	CreatedAt        int64           `json:"created_at"` // unix ms
}

// VaultArtContent поля объекта vault_art
type VaultArtContent struct {
	MemoryIndex *uint64 `json:"memory_index,omitempty"`
	VaultID     string  `json:"vault_id"`
	Kind        string  `json:"kind"` // vault, memory, fortune
	Name        string  `json:"name"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Rarity      string  `json:"rarity"`
	Creator     string  `json:"creator"`
	Timestamp   int64   `json:"timestamp"` // unix ms
}

// SummaryResponse ответ get_vault_summary
type SummaryResponse struct {
	VaultID          string `json:"vault_id"`
	Name             string `json:"name"`
	Balance          uint64 `json:"balance"`
	TotalDeposits    uint64 `json:"total_deposits"`
	TotalWithdrawals uint64 `json:"total_withdrawals"`
	DepositCount     int    `json:"deposit_count"`
	WithdrawalCount  int    `json:"withdrawal_count"`
	MemoryCount      int    `json:"memory_count"`
}

// FortuneResponse ответ generate_vault_fortune
type FortuneResponse struct {
	VaultID string `json:"vault_id"`
	Fortune string `json:"fortune"`
}
