package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt, SaltSize, "salt должен быть %d bytes", SaltSize)

	// Проверяем, что соль не состоит из одних нулей
	hasNonZero := false
	for _, b := range salt {
		if b != 0 {
			hasNonZero = true
			break
		}
	}
	assert.True(t, hasNonZero, "salt не должна состоять из одних нулей")

	// Две соли не совпадают
	other, err := GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, salt, other)
}

func TestGenerateSaltBase64(t *testing.T) {
	saltBase64, err := GenerateSaltBase64()
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(saltBase64)
	require.NoError(t, err)
	assert.Len(t, decoded, SaltSize)
}

func TestDeriveAuthKey(t *testing.T) {
	salt := make([]byte, SaltSize)
	for i := range salt {
		salt[i] = byte(i)
	}

	tests := []struct {
		name           string
		masterPassword string
		username       string
		salt           []byte
		wantErr        string
	}{
		{
			name:           "successful key derivation",
			masterPassword: "super_secret_password_123",
			username:       "alice",
			salt:           salt,
		},
		{
			name:           "empty master password",
			masterPassword: "",
			username:       "alice",
			salt:           salt,
			wantErr:        "master password cannot be empty",
		},
		{
			name:           "empty username",
			masterPassword: "password",
			username:       "",
			salt:           salt,
			wantErr:        "username cannot be empty",
		},
		{
			name:           "wrong salt size",
			masterPassword: "password",
			username:       "alice",
			salt:           salt[:8],
			wantErr:        "salt must be",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := DeriveAuthKey(tt.masterPassword, tt.username, tt.salt)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, key, Argon2KeyLen)
		})
	}
}

func TestDeriveAuthKey_Deterministic(t *testing.T) {
	salt := make([]byte, SaltSize)

	key1, err := DeriveAuthKey("password123", "alice", salt)
	require.NoError(t, err)
	key2, err := DeriveAuthKey("password123", "alice", salt)
	require.NoError(t, err)
	assert.Equal(t, key1, key2, "одинаковые входы дают одинаковый ключ")

	key3, err := DeriveAuthKey("password123", "bob", salt)
	require.NoError(t, err)
	assert.NotEqual(t, key1, key3, "другой username дает другой ключ")
}

func TestDeriveAuthKeyFromBase64Salt(t *testing.T) {
	saltBase64, err := GenerateSaltBase64()
	require.NoError(t, err)

	key, err := DeriveAuthKeyFromBase64Salt("password123", "alice", saltBase64)
	require.NoError(t, err)
	assert.Len(t, key, Argon2KeyLen)

	_, err = DeriveAuthKeyFromBase64Salt("password123", "alice", "not-base64!!!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode salt")
}
