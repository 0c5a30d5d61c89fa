package models

import "time"

// FieldPuzzleNumber ключ в Fields для номера пазла (например "1,234")
const FieldPuzzleNumber = "puzzle"

// PuzzleResult представляет результат одного ежедневного пазла.
// Это единица синхронизации: ID является join-ключом между локальной
// и серверной копиями одной логической записи, ModifiedAt строго растет
// при каждой мутации и служит единственным tie-breaker при конфликтах.
type PuzzleResult struct {
	CreatedAt   time.Time         `json:"created_at"`   // CreatedAt время создания записи (для информации)
	Fields      map[string]string `json:"fields"`       // Fields распарсенные key/value поля (номер пазла и т.п.)
	ID          string            `json:"id"`           // ID уникальный идентификатор записи (UUID)
	GameID      string            `json:"game_id"`      // GameID стабильный идентификатор игры
	GameName    string            `json:"game_name"`    // GameName отображаемое имя игры
	Date        string            `json:"date"`         // Date дата прохождения, формат YYYY-MM-DD
	SharedText  string            `json:"shared_text"`  // SharedText исходный shared текст как есть
	Score       *int              `json:"score"`        // Score числовой результат (nil = нет)
	ModifiedAt  int64             `json:"modified_at"`  // ModifiedAt unix millis последней мутации
	MaxAttempts int               `json:"max_attempts"` // MaxAttempts максимум попыток в игре
	Completed   bool              `json:"completed"`    // Completed флаг успешного прохождения
	Deleted     bool              `json:"deleted"`      // Deleted tombstone (запись удалена удаленно)
}

// IsNewerThan сравнивает две записи по ModifiedAt.
// Возвращает true, если current запись строго новее other.
// Правило ничьи (равные timestamps) решается на стороне вызывающего:
// pull-мерж отдает ничью удаленной записи, push-конфликт — серверу.
func (r *PuzzleResult) IsNewerThan(other *PuzzleResult) bool {
	return r.ModifiedAt > other.ModifiedAt
}

// Clone создает глубокую копию записи
func (r *PuzzleResult) Clone() *PuzzleResult {
	clone := *r

	if r.Fields != nil {
		clone.Fields = make(map[string]string, len(r.Fields))
		for k, v := range r.Fields {
			clone.Fields[k] = v
		}
	}

	if r.Score != nil {
		score := *r.Score
		clone.Score = &score
	}

	return &clone
}

// PuzzleNumber возвращает номер пазла из распарсенных полей (может быть пустым)
func (r *PuzzleResult) PuzzleNumber() string {
	if r.Fields == nil {
		return ""
	}
	return r.Fields[FieldPuzzleNumber]
}
