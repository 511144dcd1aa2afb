package models

import (
	"encoding/json"
	"time"
)

// LedgerObject объект в хранилище леджера.
// PrevOwner и OwnerSince нужны индексу владельцев, который отстает от коммитов.
type LedgerObject struct {
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	OwnerSince     time.Time       `json:"owner_since"`      // OwnerSince момент перехода к текущему владельцу
	PrevOwnerSince time.Time       `json:"prev_owner_since"` // PrevOwnerSince момент, когда объект получил PrevOwner
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Owner          string          `json:"owner"`
	PrevOwner      string          `json:"prev_owner,omitempty"`
	Digest         string          `json:"digest"`
	Content        json.RawMessage `json:"content"`
	Version        uint64          `json:"version"`
}

// Transaction запись об исполненной транзакции, успешной или прерванной контрактом
type Transaction struct {
	CreatedAt  time.Time      `json:"created_at"`
	Digest     string         `json:"digest"`
	Nonce      string         `json:"nonce"`
	Sender     string         `json:"sender"`
	Operation  Operation      `json:"operation"`
	Status     ReceiptStatus  `json:"status"`
	Error      string         `json:"error,omitempty"`
	Changes    []ObjectChange `json:"changes,omitempty"`
	Checkpoint int64          `json:"checkpoint"` // Checkpoint порядковый номер коммита, выдается хранилищем
}

// Receipt квитанция транзакции для клиента
func (t *Transaction) Receipt() *Receipt {
	return &Receipt{
		Digest:        t.Digest,
		Status:        t.Status,
		Error:         t.Error,
		ObjectChanges: t.Changes,
		Checkpoint:    t.Checkpoint,
	}
}

// LedgerSession сессия кошелька, выданная леджером после проверки connect подписи
type LedgerSession struct {
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"` // ID совпадает с jti в JWT
	Address   string    `json:"address"`
}
