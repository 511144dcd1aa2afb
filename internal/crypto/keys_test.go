package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	salt1, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt1, SaltSize)

	salt2, err := GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, salt1, salt2, "соли должны различаться")
}

func TestDeriveKey(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	tests := []struct {
		name       string
		passphrase string
		errMsg     string
		salt       []byte
		wantErr    bool
	}{
		{
			name:       "successful derivation",
			passphrase: "correct horse battery",
			salt:       salt,
		},
		{
			name:       "passphrase too short",
			passphrase: "short",
			salt:       salt,
			wantErr:    true,
			errMsg:     "passphrase must be at least",
		},
		{
			name:       "invalid salt size",
			passphrase: "correct horse battery",
			salt:       make([]byte, 16),
			wantErr:    true,
			errMsg:     "salt must be 32 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := DeriveKey(tt.passphrase, tt.salt)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, key)
				return
			}
			require.NoError(t, err)
			assert.Len(t, key, Argon2KeyLen)
		})
	}
}

func TestDeriveKey_Determinism(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	key1, err := DeriveKey("correct horse battery", salt)
	require.NoError(t, err)
	key2, err := DeriveKey("correct horse battery", salt)
	require.NoError(t, err)
	key3, err := DeriveKey("another passphrase", salt)
	require.NoError(t, err)

	assert.Equal(t, key1, key2)
	assert.NotEqual(t, key1, key3)
}
