package api

import (
	"encoding/json"
	"fmt"
)

// TransactionRequest подписанный вызов контракта
type TransactionRequest struct {
	Params    json.RawMessage `json:"params"`
	Operation string          `json:"operation"`
	EntityID  string          `json:"entity_id,omitempty"`
	Sender    string          `json:"sender"`
	Nonce     string          `json:"nonce"`      // UUID, защищает от повторной отправки
	PublicKey string          `json:"public_key"` // base64
	Signature string          `json:"signature"`  // base64 подпись SigningBytes
}

// SigningBytes байты, которые подписывает кошелек
func (r TransactionRequest) SigningBytes() []byte {
	return []byte(fmt.Sprintf("vaultkeeper-tx\n%s\n%s\n%s\n%s\n%s",
		r.Sender, r.Nonce, r.Operation, r.EntityID, r.Params))
}

// ObjectChange изменение объекта транзакцией
type ObjectChange struct {
	Kind       string `json:"kind"` // created, mutated, transferred
	ObjectID   string `json:"object_id"`
	ObjectType string `json:"object_type"`
	Owner      string `json:"owner"`
	Version    uint64 `json:"version"`
}

// TransactionResponse квитанция исполнения.
// Status "failure" возвращается с HTTP 200, если контракт прервал вызов.
type TransactionResponse struct {
	Digest        string         `json:"digest"`
	Status        string         `json:"status"` // success или failure
	Error         string         `json:"error,omitempty"`
	ObjectChanges []ObjectChange `json:"object_changes,omitempty"`
	Checkpoint    int64          `json:"checkpoint"`
}
