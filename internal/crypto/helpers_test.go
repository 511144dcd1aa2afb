package crypto

import (
	"crypto/ed25519"
	"encoding/base64"
)

func encodePub(pub ed25519.PublicKey) string {
	return base64.StdEncoding.EncodeToString(pub)
}
