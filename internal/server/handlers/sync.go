package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/streakbox/streakbox/internal/models"
	"github.com/streakbox/streakbox/internal/server/storage"
	"github.com/streakbox/streakbox/internal/validation"
	"github.com/streakbox/streakbox/pkg/api"
)

// contextKey тип для ключей контекста
type contextKey string

const (
	// UserIDKey ключ для хранения user_id в контексте
	UserIDKey contextKey = "user_id"
	// UsernameKey ключ для хранения username в контексте
	UsernameKey contextKey = "username"
)

// GetUserID извлекает user_id из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// GetUsername извлекает username из контекста запроса
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// Коды ошибок per-record исходов push
const (
	codeInvalidRecord  = "invalid_record"
	codeStorageError   = "storage_error"
	codeResultNotFound = "result_not_found"
)

// ResultStorage определяет интерфейс для работы с результатами
type ResultStorage interface {
	UpsertResult(ctx context.Context, userID string, result *models.PuzzleResult) (bool, error)
	GetResult(ctx context.Context, userID, id string) (*models.PuzzleResult, error)
	GetChangedSince(ctx context.Context, userID string, since int64) ([]*models.PuzzleResult, error)
	DeleteResult(ctx context.Context, userID, id string, modifiedAt int64) error
}

// SyncHandler handles synchronization requests
type SyncHandler struct {
	logger  *slog.Logger
	storage ResultStorage
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, storage ResultStorage) *SyncHandler {
	return &SyncHandler{
		logger:  logger,
		storage: storage,
	}
}

// Changes обрабатывает GET /api/v1/sync/changes?checkpoint=<token>
// Возвращает изменения начиная с checkpoint (граница включающая),
// включая tombstones. Пустой или нечитаемый checkpoint означает
// полный resync. Записи на границе могут прийти повторно; слияние
// по id на клиенте идемпотентно.
func (h *SyncHandler) Changes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("user ID not found in context")
		h.sendError(w, codeInvalidCredentials, "unauthorized", http.StatusUnauthorized)
		return
	}

	since := decodeCheckpoint(r.URL.Query().Get("checkpoint"), userID)

	h.logger.InfoContext(ctx, "changes request",
		slog.String("user_id", userID),
		slog.Int64("since", since))

	results, err := h.storage.GetChangedSince(ctx, userID, since)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get changed results",
			slog.Any("error", err), slog.String("user_id", userID))
		h.sendError(w, codeInternalError, "internal server error", http.StatusInternalServerError)
		return
	}

	// Конвертируем в API формат и отслеживаем максимальный timestamp
	records := make([]api.ResultRecord, 0, len(results))
	maxModified := since

	for _, result := range results {
		records = append(records, toAPIRecord(result))
		if result.ModifiedAt > maxModified {
			maxModified = result.ModifiedAt
		}
	}

	resp := api.ChangesResponse{
		Records:    records,
		Checkpoint: encodeCheckpoint(userID, maxModified),
	}

	h.sendJSON(w, resp, http.StatusOK)

	h.logger.InfoContext(ctx, "changes completed",
		slog.String("user_id", userID),
		slog.Int("records_count", len(records)))
}

// Push обрабатывает POST /api/v1/sync/push
// Принимает батч записей от клиента. Батч неатомарный: каждая запись
// получает независимый исход, ошибка одной не откатывает остальные.
func (h *SyncHandler) Push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("user ID not found in context")
		h.sendError(w, codeInvalidCredentials, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode push request", slog.Any("error", err))
		h.sendError(w, codeInvalidRequest, "invalid request body", http.StatusBadRequest)
		return
	}

	h.logger.InfoContext(ctx, "push request",
		slog.String("user_id", userID),
		slog.Int("records_count", len(req.Records)))

	outcomes := make([]api.PushOutcome, 0, len(req.Records))
	conflicts := 0

	for i := range req.Records {
		record := &req.Records[i]
		outcomes = append(outcomes, h.pushOne(ctx, userID, record))
		if outcomes[len(outcomes)-1].Status == api.PushStatusConflict {
			conflicts++
		}
	}

	h.sendJSON(w, api.PushResponse{Outcomes: outcomes}, http.StatusOK)

	h.logger.InfoContext(ctx, "push completed",
		slog.String("user_id", userID),
		slog.Int("records_count", len(req.Records)),
		slog.Int("conflicts", conflicts))
}

// pushOne обрабатывает одну запись батча
func (h *SyncHandler) pushOne(ctx context.Context, userID string, record *api.ResultRecord) api.PushOutcome {
	// Нарушение инвариантов записи — постоянная ошибка, повтор не поможет
	if err := validation.ValidateResultRecord(record.ID, record.GameID, record.Date, record.ModifiedAt, record.SharedText); err != nil {
		h.logger.WarnContext(ctx, "invalid record in push",
			slog.String("record_id", record.ID), slog.Any("error", err))
		return api.PushOutcome{
			ID:      record.ID,
			Status:  api.PushStatusError,
			Code:    codeInvalidRecord,
			Message: err.Error(),
		}
	}

	saved, err := h.storage.UpsertResult(ctx, userID, fromAPIRecord(record))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to upsert result",
			slog.String("record_id", record.ID), slog.Any("error", err))
		return api.PushOutcome{
			ID:        record.ID,
			Status:    api.PushStatusError,
			Code:      codeStorageError,
			Message:   "failed to save record",
			Retryable: true,
		}
	}

	if !saved {
		// Серверная копия новее (или ничья) — возвращаем ее клиенту
		server, err := h.storage.GetResult(ctx, userID, record.ID)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to load winning record",
				slog.String("record_id", record.ID), slog.Any("error", err))
			return api.PushOutcome{
				ID:        record.ID,
				Status:    api.PushStatusError,
				Code:      codeStorageError,
				Message:   "failed to load record",
				Retryable: true,
			}
		}
		winner := toAPIRecord(server)
		return api.PushOutcome{
			ID:     record.ID,
			Status: api.PushStatusConflict,
			Server: &winner,
		}
	}

	return api.PushOutcome{
		ID:     record.ID,
		Status: api.PushStatusOK,
	}
}

// Delete обрабатывает DELETE /api/v1/results/{id}
// Запись не удаляется физически: ставится tombstone, который
// разъедется по остальным устройствам через pull.
func (h *SyncHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("user ID not found in context")
		h.sendError(w, codeInvalidCredentials, "unauthorized", http.StatusUnauthorized)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		h.sendError(w, codeInvalidRequest, "result id is required", http.StatusBadRequest)
		return
	}

	err := h.storage.DeleteResult(ctx, userID, id, time.Now().UnixMilli())
	if err != nil {
		if errors.Is(err, storage.ErrResultNotFound) {
			h.sendError(w, codeResultNotFound, "result not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete result",
			slog.String("result_id", id), slog.Any("error", err))
		h.sendError(w, codeInternalError, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "result deleted",
		slog.String("user_id", userID),
		slog.String("result_id", id))

	w.WriteHeader(http.StatusNoContent)
}

// sendJSON отправляет JSON ответ
func (h *SyncHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *SyncHandler) sendError(w http.ResponseWriter, code, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   code,
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
