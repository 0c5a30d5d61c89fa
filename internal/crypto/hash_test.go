package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAuthKey(t *testing.T) {
	tests := []struct {
		name    string
		errMsg  string
		authKey []byte
	}{
		{
			name:    "derived key hashes to hex string",
			authKey: []byte("argon2id-derived-key-bytes-0123456789"),
		},
		{
			name:    "empty key rejected",
			authKey: []byte{},
			errMsg:  "auth key cannot be empty",
		},
		{
			name:    "nil key rejected",
			authKey: nil,
			errMsg:  "auth key cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashAuthKey(tt.authKey)

			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Empty(t, hash)
				return
			}

			require.NoError(t, err)
			// SHA-256 в hex - всегда 64 символа
			assert.Regexp(t, "^[a-f0-9]{64}$", hash)
		})
	}
}

// Один и тот же ключ обязан давать одну и ту же строку на клиенте
// и сервере - на этом держится весь login-протокол
func TestHashAuthKey_Deterministic(t *testing.T) {
	key := []byte("wordle_fan_42-derived-key")

	first, err := HashAuthKey(key)
	require.NoError(t, err)

	second, err := HashAuthKey(key)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	other, err := HashAuthKey([]byte("different-key"))
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestHashAuthKey_KnownVector(t *testing.T) {
	// Стандартный вектор: SHA256("test")
	hash, err := HashAuthKey([]byte("test"))
	require.NoError(t, err)
	assert.Equal(t, "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08", hash)
}

func TestVerifyAuthKeyHash(t *testing.T) {
	stored, err := HashAuthKey([]byte("streak-keeper-auth-key"))
	require.NoError(t, err)

	tests := []struct {
		name      string
		presented string
		stored    string
		errMsg    string
	}{
		{
			name:      "matching hashes verify",
			presented: stored,
			stored:    stored,
		},
		{
			name:      "mismatched hash rejected",
			presented: "deadbeef",
			stored:    stored,
			errMsg:    "auth key hash mismatch",
		},
		{
			name:   "empty presented hash rejected",
			stored: stored,
			errMsg: "presented hash cannot be empty",
		},
		{
			name:      "empty stored hash rejected",
			presented: stored,
			errMsg:    "stored hash cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyAuthKeyHash(tt.presented, tt.stored)

			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

// Путь логина целиком: клиент хеширует ключ, сервер сверяет хеш
func TestHashAndVerify_LoginRoundTrip(t *testing.T) {
	authKey := []byte("per-account-derived-key")

	stored, err := HashAuthKey(authKey)
	require.NoError(t, err)

	presented, err := HashAuthKey(authKey)
	require.NoError(t, err)
	require.NoError(t, VerifyAuthKeyHash(presented, stored))

	wrong, err := HashAuthKey([]byte("guessed-key"))
	require.NoError(t, err)
	require.Error(t, VerifyAuthKeyHash(wrong, stored))
}
