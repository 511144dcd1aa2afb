package storage

import "context"

//go:generate moq -out keystore_mock.go . KeyStorage

// KeyStorage defines interface for storing the wallet key on client.
// The private key is stored encrypted, this layer never decrypts it.
type KeyStorage interface {
	// SaveKey stores the wallet key, replacing any existing one
	SaveKey(ctx context.Context, key *KeyData) error

	// GetKey retrieves the stored wallet key
	// Returns ErrKeyNotFound if no key exists
	GetKey(ctx context.Context) (*KeyData, error)
}

// KeyData represents the encrypted wallet key in storage.
// EncryptedKey is AES-GCM sealed ed25519 private key, Address is used as AAD.
type KeyData struct {
	Address      string `json:"address"`
	PublicKey    []byte `json:"public_key"`
	EncryptedKey []byte `json:"encrypted_key"`
	Salt         []byte `json:"salt"` // Argon2id salt
	CreatedAt    int64  `json:"created_at"`
}
