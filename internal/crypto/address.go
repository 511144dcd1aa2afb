package crypto

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Ed25519Flag префикс схемы подписи при вычислении адреса
const Ed25519Flag byte = 0x00

// AddressFromPublicKey вычисляет адрес кошелька:
// 0x + hex(blake2b-256(flag || pubkey))
func AddressFromPublicKey(pub ed25519.PublicKey) (string, error) {
	if len(pub) != ed25519.PublicKeySize {
		return "", fmt.Errorf("public key must be %d bytes, got %d", ed25519.PublicKeySize, len(pub))
	}
	buf := make([]byte, 0, 1+len(pub))
	buf = append(buf, Ed25519Flag)
	buf = append(buf, pub...)
	sum := blake2b.Sum256(buf)
	return "0x" + hex.EncodeToString(sum[:]), nil
}

// Digest вычисляет hex-encoded blake2b-256 хеш произвольных частей.
// Используется для digest транзакций и версий объектов.
func Digest(parts ...[]byte) string {
	h, _ := blake2b.New256(nil) // без ключа ошибки не бывает
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ObjectID выводит 32-байтовый ID объекта из digest транзакции и порядкового номера
// созданного объекта внутри нее.
func ObjectID(txDigest string, index int) string {
	sum := blake2b.Sum256([]byte(fmt.Sprintf("%s:%d", txDigest, index)))
	return "0x" + hex.EncodeToString(sum[:])
}
