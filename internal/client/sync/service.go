package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	gosync "sync"
	"time"

	httpClient "github.com/streakbox/streakbox/internal/client/api"
	"github.com/streakbox/streakbox/internal/client/storage"
	"github.com/streakbox/streakbox/internal/client/tracker"
	"github.com/streakbox/streakbox/internal/models"
	"github.com/streakbox/streakbox/pkg/api"
)

// Status описывает фазу жизненного цикла синхронизации
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusSyncing    Status = "syncing"
	StatusSynced     Status = "synced"
	StatusFailed     Status = "failed"
	StatusOffline    Status = "offline"
)

// PushChunkSize — максимум записей в одном push-запросе.
// Большие наборы (первый upload истории) режутся на части.
const PushChunkSize = 400

// ErrSyncInProgress возвращается из Sync, когда цикл уже идет.
// Вызывающий трактует это как успех: идущий цикл заберет его записи.
var ErrSyncInProgress = errors.New("sync already in progress")

// ErrNotAuthenticated возвращается, когда нет сохраненной сессии
var ErrNotAuthenticated = errors.New("not authenticated")

// TokenSource отдает текущий access token залогиненного пользователя
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс sync engine
type Service interface {
	// Sync выполняет полный цикл: проверка аккаунта, pull, push.
	// Одновременно работает не более одного цикла; конкурентный вызов
	// возвращает ErrSyncInProgress, не блокируясь.
	Sync(ctx context.Context) (*SyncResult, error)

	// Status возвращает текущее состояние синхронизации
	Status() Status

	// PendingCount возвращает количество записей, ожидающих подтверждения
	PendingCount(ctx context.Context) (int, error)

	// PushBatch отправляет пачку немедленно, вне полного цикла.
	// Сбои не теряют записи: retryable уходит в офлайн-очередь.
	PushBatch(ctx context.Context, results []*models.PuzzleResult)

	// Delete помечает запись удаленной локально и, по возможности,
	// удаленно. Недоступность сервера не откатывает локальное удаление.
	Delete(ctx context.Context, id string) error
}

type service struct {
	apiClient httpClient.ClientAPI
	results   storage.ResultStorage
	syncState storage.SyncStateStorage
	queue     storage.QueueStorage
	tracker   tracker.Tracker
	tokens    TokenSource
	logger    *slog.Logger
	now       func() time.Time

	syncMu   gosync.Mutex
	statusMu gosync.RWMutex
	status   Status
}

// NewService creates a new sync engine.
func NewService(
	apiClient httpClient.ClientAPI,
	results storage.ResultStorage,
	syncState storage.SyncStateStorage,
	queue storage.QueueStorage,
	tr tracker.Tracker,
	tokens TokenSource,
	logger *slog.Logger,
) Service {
	return &service{
		apiClient: apiClient,
		results:   results,
		syncState: syncState,
		queue:     queue,
		tracker:   tr,
		tokens:    tokens,
		logger:    logger,
		now:       time.Now,
		status:    StatusNotStarted,
	}
}

// SyncResult contains sync operation results
type SyncResult struct {
	Pulled    int // количество полученных с сервера записей
	Merged    int // количество примененных локально записей
	Pushed    int // количество отправленных на сервер записей
	Confirmed int // количество подтвержденных сервером записей
	Conflicts int // количество конфликтов, разрешенных в пользу сервера
	Requeued  int // количество записей, вернувшихся в офлайн-очередь
	Failed    int // количество записей, отвергнутых сервером навсегда
}

func (s *service) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()

	return s.status
}

func (s *service) setStatus(status Status) {
	s.statusMu.Lock()
	s.status = status
	s.statusMu.Unlock()
}

// Sync performs the full cycle: account check, pull, push.
func (s *service) Sync(ctx context.Context) (*SyncResult, error) {
	if !s.syncMu.TryLock() {
		return nil, ErrSyncInProgress
	}
	defer s.syncMu.Unlock()

	s.setStatus(StatusSyncing)

	result, err := s.syncLocked(ctx)
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		s.setStatus(StatusFailed)
	case err != nil && httpClient.IsRetryable(err):
		s.setStatus(StatusOffline)
	case err != nil:
		s.setStatus(StatusFailed)
	case result.Failed > 0:
		s.setStatus(StatusFailed)
	default:
		s.setStatus(StatusSynced)
	}

	return result, err
}

func (s *service) syncLocked(ctx context.Context) (*SyncResult, error) {
	result := &SyncResult{}

	token, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}

	// Проверка идентичности аккаунта до любого обмена данными
	account, err := s.apiClient.Account(ctx, token)
	if err != nil {
		return result, fmt.Errorf("account check failed: %w", err)
	}

	if err := s.ensureAccount(ctx, account.UserID); err != nil {
		return result, err
	}

	if err := s.pull(ctx, token, result); err != nil {
		return result, err
	}

	if err := s.push(ctx, token, result); err != nil {
		return result, err
	}

	s.logger.Info("Synchronization completed",
		"pulled", result.Pulled,
		"merged", result.Merged,
		"pushed", result.Pushed,
		"confirmed", result.Confirmed,
		"conflicts", result.Conflicts,
		"requeued", result.Requeued,
		"failed", result.Failed)

	return result, nil
}

// ensureAccount сбрасывает все локальное состояние при смене удаленного
// аккаунта: данные одного аккаунта не должны утечь в другой.
func (s *service) ensureAccount(ctx context.Context, accountID string) error {
	known, err := s.syncState.GetAccountID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get known account: %w", err)
	}

	if known != "" && known != accountID {
		s.logger.Warn("Remote account changed, resetting local state",
			"old_account", known,
			"new_account", accountID)

		if err := s.results.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear results: %w", err)
		}
		if err := s.syncState.ClearCheckpoint(ctx); err != nil {
			return fmt.Errorf("failed to clear checkpoint: %w", err)
		}
		if err := s.queue.ClearQueue(ctx); err != nil {
			return fmt.Errorf("failed to clear queue: %w", err)
		}
		if err := s.tracker.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear tracker: %w", err)
		}
	}

	if known != accountID {
		if err := s.syncState.SaveAccountID(ctx, accountID); err != nil {
			return fmt.Errorf("failed to save account id: %w", err)
		}
	}

	return nil
}

// pull забирает изменения после checkpoint и мержит их локально.
// Checkpoint сохраняется только после применения всей выдачи: при
// сбое посередине следующий pull повторит ее целиком, мерж идемпотентен.
func (s *service) pull(ctx context.Context, token string, result *SyncResult) error {
	checkpoint, err := s.syncState.GetCheckpoint(ctx)
	if err != nil {
		s.logger.Warn("Failed to get checkpoint, doing full pull", "error", err)
		checkpoint = ""
	}

	resp, err := s.apiClient.Changes(ctx, token, checkpoint)
	if err != nil {
		return fmt.Errorf("pull failed: %w", err)
	}

	result.Pulled = len(resp.Records)

	for i := range resp.Records {
		remote := fromRecord(&resp.Records[i])

		applied, err := s.mergeRemote(ctx, remote)
		if err != nil {
			return fmt.Errorf("failed to merge record %s: %w", remote.ID, err)
		}
		if applied {
			result.Merged++
		}
	}

	if err := s.syncState.SaveCheckpoint(ctx, resp.Checkpoint); err != nil {
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}

	return nil
}

// mergeRemote применяет LWW: локальная копия выживает только если она
// строго новее. Ничья отдается удаленной записи, потому что она уже
// подтверждена облаком.
func (s *service) mergeRemote(ctx context.Context, remote *models.PuzzleResult) (bool, error) {
	local, err := s.results.GetResult(ctx, remote.ID)
	if err != nil && !errors.Is(err, storage.ErrResultNotFound) {
		return false, fmt.Errorf("failed to get local record: %w", err)
	}

	if local != nil && local.IsNewerThan(remote) {
		s.logger.Debug("Keeping local record (newer)",
			"result_id", remote.ID,
			"local_modified", local.ModifiedAt,
			"remote_modified", remote.ModifiedAt)
		return false, nil
	}

	if remote.Deleted {
		if err := s.results.DeleteResult(ctx, remote.ID); err != nil {
			return false, fmt.Errorf("failed to apply tombstone: %w", err)
		}
	} else {
		if err := s.results.SaveResult(ctx, remote); err != nil {
			return false, fmt.Errorf("failed to save remote record: %w", err)
		}
	}

	// Удаленная версия победила: локальная больше не ждет подтверждения
	if err := s.tracker.MarkSynced(ctx, remote.ID); err != nil {
		return false, fmt.Errorf("failed to ack record: %w", err)
	}

	return true, nil
}

// push собирает все ожидающие записи (офлайн-очередь плюс sweep по
// unsynced-множеству) и отправляет их чанками. Sweep закрывает дыру
// после падения: запись, принятая локально, но не дошедшая до пачки,
// будет найдена по unsynced-множеству.
func (s *service) push(ctx context.Context, token string, result *SyncResult) error {
	pending, err := s.collectPending(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	result.Pushed = len(pending)

	for start := 0; start < len(pending); start += PushChunkSize {
		end := start + PushChunkSize
		if end > len(pending) {
			end = len(pending)
		}
		chunk := pending[start:end]

		if err := s.pushChunk(ctx, token, chunk, result); err != nil {
			// Недоставленный остаток возвращается в очередь
			requeued := s.requeue(ctx, pending[start:])
			result.Requeued += requeued
			return err
		}
	}

	return nil
}

func (s *service) collectPending(ctx context.Context) ([]*models.PuzzleResult, error) {
	queued, err := s.queue.DrainQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to drain queue: %w", err)
	}

	pending := make([]*models.PuzzleResult, 0, len(queued))
	seen := make(map[string]struct{}, len(queued))

	for _, r := range queued {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		pending = append(pending, r)
	}

	// Sweep: неподтвержденные записи, не попавшие в очередь
	sweep := make([]*models.PuzzleResult, 0)
	for _, id := range s.tracker.Unsynced() {
		if _, ok := seen[id]; ok {
			continue
		}

		r, err := s.results.GetResult(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrResultNotFound) {
				// Запись исчезла локально, подтверждать нечего
				if err := s.tracker.MarkSynced(ctx, id); err != nil {
					return nil, fmt.Errorf("failed to drop stale id: %w", err)
				}
				continue
			}
			return nil, fmt.Errorf("failed to load unsynced record: %w", err)
		}
		sweep = append(sweep, r)
	}

	sort.Slice(sweep, func(i, j int) bool { return sweep[i].ID < sweep[j].ID })

	return append(pending, sweep...), nil
}

func (s *service) pushChunk(ctx context.Context, token string, chunk []*models.PuzzleResult, result *SyncResult) error {
	byID := make(map[string]*models.PuzzleResult, len(chunk))
	records := make([]api.ResultRecord, 0, len(chunk))
	for _, r := range chunk {
		byID[r.ID] = r
		records = append(records, *toRecord(r))
	}

	resp, err := s.apiClient.PushResults(ctx, token, api.PushRequest{Records: records})
	if err != nil {
		return fmt.Errorf("push failed: %w", err)
	}

	for i := range resp.Outcomes {
		outcome := &resp.Outcomes[i]

		switch outcome.Status {
		case api.PushStatusOK:
			if err := s.tracker.MarkSynced(ctx, outcome.ID); err != nil {
				return fmt.Errorf("failed to ack record: %w", err)
			}
			result.Confirmed++

		case api.PushStatusConflict:
			if err := s.acceptServerVersion(ctx, outcome); err != nil {
				return err
			}
			result.Conflicts++

		case api.PushStatusError:
			if outcome.Retryable {
				if r, ok := byID[outcome.ID]; ok {
					if err := s.queue.EnqueueResult(ctx, r); err != nil {
						return fmt.Errorf("failed to requeue record: %w", err)
					}
					result.Requeued++
				}
				continue
			}

			// Постоянный отказ: запись остается в unsynced-множестве,
			// чтобы проблема была видна в статусе
			s.logger.Error("Server permanently rejected record",
				"result_id", outcome.ID,
				"code", outcome.Code,
				"message", outcome.Message)
			result.Failed++

		default:
			s.logger.Warn("Unknown push outcome status",
				"result_id", outcome.ID,
				"status", outcome.Status)
			result.Failed++
		}
	}

	return nil
}

// acceptServerVersion применяет выигравшую серверную версию при
// push-конфликте. Сервер решает конфликты, клиент не переигрывает.
func (s *service) acceptServerVersion(ctx context.Context, outcome *api.PushOutcome) error {
	if outcome.Server != nil {
		server := fromRecord(outcome.Server)
		if server.Deleted {
			if err := s.results.DeleteResult(ctx, server.ID); err != nil {
				return fmt.Errorf("failed to apply server tombstone: %w", err)
			}
		} else {
			if err := s.results.SaveResult(ctx, server); err != nil {
				return fmt.Errorf("failed to save server version: %w", err)
			}
		}
	}

	if err := s.tracker.MarkSynced(ctx, outcome.ID); err != nil {
		return fmt.Errorf("failed to ack record: %w", err)
	}

	return nil
}

func (s *service) requeue(ctx context.Context, results []*models.PuzzleResult) int {
	requeued := 0
	for _, r := range results {
		if err := s.queue.EnqueueResult(ctx, r); err != nil {
			s.logger.Error("Failed to requeue record, sweep will recover it",
				"result_id", r.ID,
				"error", err)
			continue
		}
		requeued++
	}
	return requeued
}

// PushBatch отправляет пачку от батчера немедленно, вне полного цикла.
// Любой сбой переводит записи в офлайн-очередь: durability обеспечена
// unsynced-множеством еще на приеме, поэтому ошибки здесь не фатальны.
func (s *service) PushBatch(ctx context.Context, results []*models.PuzzleResult) {
	token, err := s.tokens.AccessToken(ctx)
	if err != nil {
		s.logger.Info("Not authenticated, queueing batch", "count", len(results))
		s.requeue(ctx, results)
		return
	}

	result := &SyncResult{}
	if err := s.pushChunk(ctx, token, results, result); err != nil {
		if httpClient.IsRetryable(err) {
			s.setStatus(StatusOffline)
		}
		s.logger.Warn("Batch push failed, queueing batch",
			"count", len(results),
			"error", err)
		s.requeue(ctx, results)
		return
	}

	s.logger.Debug("Batch pushed",
		"confirmed", result.Confirmed,
		"conflicts", result.Conflicts,
		"failed", result.Failed)
}

// Delete помечает запись tombstone локально, снимает ее с учёта
// незагруженных и пытается удалить удаленно. Удаление оптимистичное:
// сбой удаленного вызова логируется и не откатывает локальное
// (local-delete-wins). Tombstone с новым ModifiedAt страхует от
// воскрешения записи при следующем pull.
func (s *service) Delete(ctx context.Context, id string) error {
	local, err := s.results.GetResult(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	tombstone := local.Clone()
	tombstone.Deleted = true
	tombstone.ModifiedAt = s.now().UnixMilli()

	if err := s.results.SaveResult(ctx, tombstone); err != nil {
		return fmt.Errorf("failed to save tombstone: %w", err)
	}

	// Запись удалена локально - досылать ее создание уже не нужно
	if err := s.tracker.MarkDeleted(ctx, id); err != nil {
		return fmt.Errorf("failed to untrack deleted record: %w", err)
	}

	token, err := s.tokens.AccessToken(ctx)
	if err != nil {
		s.logger.Info("Not authenticated, remote delete skipped", "result_id", id)
		return nil
	}

	if err := s.apiClient.DeleteResult(ctx, token, id); err != nil {
		s.logger.Warn("Remote delete failed, local delete stands",
			"result_id", id,
			"error", err)
	}

	return nil
}

// PendingCount возвращает количество записей, ожидающих подтверждения
func (s *service) PendingCount(ctx context.Context) (int, error) {
	return len(s.tracker.Unsynced()), nil
}
