package handlers

import (
	"encoding/base64"
	"encoding/json"
)

// checkpoint — курсор инкрементального pull. Для клиента это opaque
// строка: формат может меняться без его участия.
type checkpoint struct {
	UserID string `json:"uid"`
	Since  int64  `json:"ts"` // unix millis последней отданной записи
}

// encodeCheckpoint упаковывает курсор в opaque token
func encodeCheckpoint(userID string, since int64) string {
	data, err := json.Marshal(checkpoint{UserID: userID, Since: since})
	if err != nil {
		// Структура из двух скалярных полей не может не сериализоваться
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

// decodeCheckpoint распаковывает checkpoint клиента.
// Пустой, нечитаемый или чужой (другой userID) token трактуется как
// отсутствие checkpoint: клиент получит полный resync вместо ошибки.
func decodeCheckpoint(token, userID string) int64 {
	if token == "" {
		return 0
	}

	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0
	}

	var cp checkpoint
	if err := json.Unmarshal(data, &cp); err != nil {
		return 0
	}

	if cp.UserID != userID || cp.Since < 0 {
		return 0
	}

	return cp.Since
}
