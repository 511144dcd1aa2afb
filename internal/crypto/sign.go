package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateKeypair создает новую пару ключей ed25519
func GenerateKeypair() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate keypair: %w", err)
	}
	return pub, priv, nil
}

// ConnectMessage строка, которую кошелек подписывает при подключении к леджеру
func ConnectMessage(address string, unix int64) []byte {
	return []byte(fmt.Sprintf("vaultkeeper-connect:%s:%d", address, unix))
}

// SignBase64 подписывает сообщение и возвращает подпись в Base64
func SignBase64(priv ed25519.PrivateKey, msg []byte) (string, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return "", fmt.Errorf("private key must be %d bytes, got %d", ed25519.PrivateKeySize, len(priv))
	}
	return base64.StdEncoding.EncodeToString(ed25519.Sign(priv, msg)), nil
}

// VerifyBase64 проверяет подпись и что публичный ключ соответствует адресу.
// pubBase64 и sigBase64 приходят от клиента в Base64.
func VerifyBase64(address, pubBase64, sigBase64 string, msg []byte) error {
	pub, err := base64.StdEncoding.DecodeString(pubBase64)
	if err != nil {
		return fmt.Errorf("failed to decode public key: %w", err)
	}
	sig, err := base64.StdEncoding.DecodeString(sigBase64)
	if err != nil {
		return fmt.Errorf("failed to decode signature: %w", err)
	}

	derived, err := AddressFromPublicKey(ed25519.PublicKey(pub))
	if err != nil {
		return err
	}
	if derived != address {
		return fmt.Errorf("public key does not match address %s", address)
	}

	if !ed25519.Verify(ed25519.PublicKey(pub), msg, sig) {
		return fmt.Errorf("invalid signature")
	}
	return nil
}
