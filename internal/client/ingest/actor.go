package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/streakbox/streakbox/internal/client/storage"
	"github.com/streakbox/streakbox/internal/client/tracker"
	"github.com/streakbox/streakbox/internal/dedup"
	"github.com/streakbox/streakbox/internal/models"
)

// Forwarder передаёт принятую запись в сторону удалённого хранилища.
// Реализация сама решает, идёт ли запись в ближайшую пачку или в
// офлайн-очередь.
type Forwarder interface {
	Forward(ctx context.Context, result *models.PuzzleResult) error
}

// Actor — единственный писатель локального набора результатов.
// Все источники (почтовый ящик, прямой ввод, слияние при pull)
// проходят через него последовательно, поэтому проверка дубликатов
// и запись атомарны относительно друг друга.
type Actor struct {
	mu       sync.Mutex
	results  storage.ResultStorage
	detector *dedup.Detector
	tracker  tracker.Tracker
	forward  Forwarder
	notifier *Notifier
	logger   *slog.Logger
}

// NewActor creates the single-writer ingestion actor.
func NewActor(
	results storage.ResultStorage,
	detector *dedup.Detector,
	tr tracker.Tracker,
	forward Forwarder,
	notifier *Notifier,
	logger *slog.Logger,
) *Actor {
	return &Actor{
		results:  results,
		detector: detector,
		tracker:  tr,
		forward:  forward,
		notifier: notifier,
		logger:   logger,
	}
}

// Ingest принимает одну запись. Возвращает false без ошибки, если
// запись отброшена как дубликат. Порядок шагов фиксирован: сначала
// локальная запись и учёт в unsynced-множестве, потом передача дальше.
// Ошибка передачи не откатывает приём: запись уже durable и будет
// дослана при следующей синхронизации.
func (a *Actor) Ingest(ctx context.Context, result *models.PuzzleResult) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.ingestLocked(ctx, result)
}

// IngestBatch принимает записи по одной в исходном порядке.
// Возвращает число принятых. Первая ошибка останавливает обработку:
// непринятый остаток вернётся из источника повторно.
func (a *Actor) IngestBatch(ctx context.Context, results []*models.PuzzleResult) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	accepted := 0
	for _, r := range results {
		ok, err := a.ingestLocked(ctx, r)
		if err != nil {
			return accepted, err
		}
		if ok {
			accepted++
		}
	}

	return accepted, nil
}

func (a *Actor) ingestLocked(ctx context.Context, result *models.PuzzleResult) (bool, error) {
	if a.detector.IsDuplicate(result) {
		a.logger.Info("Dropping duplicate result",
			"result_id", result.ID,
			"game", result.GameName)
		return false, nil
	}

	if err := a.results.SaveResult(ctx, result); err != nil {
		return false, fmt.Errorf("failed to save result: %w", err)
	}

	a.detector.MarkIngested(result)

	if err := a.tracker.MarkForSync(ctx, result.ID); err != nil {
		return false, fmt.Errorf("failed to track result: %w", err)
	}

	if err := a.forward.Forward(ctx, result); err != nil {
		// Запись уже в unsynced-множестве, sweep её дошлёт
		a.logger.Warn("Failed to forward result, will retry on next sync",
			"result_id", result.ID,
			"error", err)
	}

	a.notifier.Publish()

	a.logger.Debug("Ingested result",
		"result_id", result.ID,
		"game", result.GameName)

	return true, nil
}
