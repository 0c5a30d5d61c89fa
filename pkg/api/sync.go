package api

import "time"

// ResultRecord представляет один результат пазла для синхронизации
type ResultRecord struct {
	CreatedAt   time.Time         `json:"created_at"`
	Fields      map[string]string `json:"fields,omitempty"`
	ID          string            `json:"id"`
	GameID      string            `json:"game_id"`
	GameName    string            `json:"game_name"`
	Date        string            `json:"date"` // дата прохождения, YYYY-MM-DD
	SharedText  string            `json:"shared_text,omitempty"`
	Score       *int              `json:"score,omitempty"`
	ModifiedAt  int64             `json:"modified_at"` // unix millis, tie-breaker для конфликтов
	MaxAttempts int               `json:"max_attempts"`
	Completed   bool              `json:"completed"`
	Deleted     bool              `json:"deleted"` // tombstone
}

// PushRequest представляет батч локальных записей от клиента
type PushRequest struct {
	Records []ResultRecord `json:"records"`
}

// Статусы записи в PushResponse
const (
	PushStatusOK       = "ok"
	PushStatusConflict = "conflict"
	PushStatusError    = "error"
)

// PushOutcome представляет независимый исход записи в батче.
// Батч неатомарный: ошибка одной записи не откатывает остальные.
type PushOutcome struct {
	Server    *ResultRecord `json:"server,omitempty"` // выигравшая серверная версия при conflict
	ID        string        `json:"id"`
	Status    string        `json:"status"`
	Code      string        `json:"code,omitempty"`
	Message   string        `json:"message,omitempty"`
	Retryable bool          `json:"retryable,omitempty"`
}

// PushResponse представляет ответ сервера на батч
type PushResponse struct {
	Outcomes []PushOutcome `json:"outcomes"`
}

// ChangesResponse представляет инкрементальную выдачу изменений.
// Tombstones приходят как записи с Deleted=true.
type ChangesResponse struct {
	Records    []ResultRecord `json:"records"`
	Checkpoint string         `json:"checkpoint"` // opaque token, хранится клиентом как есть
}

// AccountResponse представляет идентичность удаленного аккаунта
type AccountResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
