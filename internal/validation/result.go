package validation

import (
	"fmt"
	"time"
)

// MaxSharedTextLen ограничивает размер исходного shared текста
const MaxSharedTextLen = 4096

// ValidateResultRecord проверяет инварианты записи результата перед
// приемом на сервере. Нарушение любого из них — постоянная ошибка:
// повтор без изменений не поможет.
func ValidateResultRecord(id, gameID, date string, modifiedAt int64, sharedText string) error {
	if id == "" {
		return fmt.Errorf("id cannot be empty")
	}
	if gameID == "" {
		return fmt.Errorf("game_id cannot be empty")
	}
	if modifiedAt <= 0 {
		return fmt.Errorf("modified_at must be positive")
	}
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
		}
	}
	if len(sharedText) > MaxSharedTextLen {
		return fmt.Errorf("shared_text exceeds %d bytes", MaxSharedTextLen)
	}
	return nil
}
