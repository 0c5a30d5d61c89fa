package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// HashAuthKey сводит auth key к hex-строке SHA-256. Ключ уже прошел
// Argon2id на клиенте, поэтому здесь достаточно быстрого
// детерминированного хеша: клиент и сервер получают одну и ту же
// строку из одного ключа, на сервер сам ключ не уезжает.
func HashAuthKey(authKey []byte) (string, error) {
	if len(authKey) == 0 {
		return "", fmt.Errorf("auth key cannot be empty")
	}

	sum := sha256.Sum256(authKey)

	return hex.EncodeToString(sum[:]), nil
}

// VerifyAuthKeyHash сравнивает предъявленный клиентом хеш с
// сохраненным за постоянное время
func VerifyAuthKeyHash(presented, stored string) error {
	if presented == "" {
		return fmt.Errorf("presented hash cannot be empty")
	}
	if stored == "" {
		return fmt.Errorf("stored hash cannot be empty")
	}

	if subtle.ConstantTimeCompare([]byte(presented), []byte(stored)) != 1 {
		return fmt.Errorf("auth key hash mismatch")
	}

	return nil
}
