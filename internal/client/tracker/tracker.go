package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/streakbox/streakbox/internal/client/storage"
)

// Tracker определяет интерфейс для учёта неподтверждённых записей.
// Запись считается unsynced с момента локального приёма и до явного
// подтверждения удалённым хранилищем.
type Tracker interface {
	// Load восстанавливает множество из хранилища после перезапуска
	Load(ctx context.Context) error

	// MarkForSync добавляет id в множество и синхронно персистит его
	MarkForSync(ctx context.Context, id string) error

	// MarkSynced убирает id из множества и синхронно персистит его
	MarkSynced(ctx context.Context, id string) error

	// MarkDeleted убирает id из множества при локальном удалении:
	// отложенная загрузка записи больше не нужна
	MarkDeleted(ctx context.Context, id string) error

	// IsUnsynced сообщает, ожидает ли запись подтверждения
	IsUnsynced(id string) bool

	// Unsynced возвращает отсортированный срез неподтверждённых id
	Unsynced() []string

	// Clear опустошает множество (смена аккаунта)
	Clear(ctx context.Context) error
}

type tracker struct {
	mu     sync.Mutex
	ids    map[string]struct{}
	store  storage.SyncStateStorage
	logger *slog.Logger
}

// New creates a sync tracker backed by the given sync-state storage.
func New(store storage.SyncStateStorage, logger *slog.Logger) Tracker {
	return &tracker{
		ids:    make(map[string]struct{}),
		store:  store,
		logger: logger,
	}
}

func (t *tracker) Load(ctx context.Context) error {
	ids, err := t.store.GetUnsynced(ctx)
	if err != nil {
		return fmt.Errorf("failed to load unsynced ids: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.ids = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		t.ids[id] = struct{}{}
	}

	if len(ids) > 0 {
		t.logger.Info("Restored unsynced set", "count", len(ids))
	}

	return nil
}

// MarkForSync идемпотентен: повторная пометка уже отслеживаемого id
// всё равно персистит множество, чтобы не потерять запись при сбое
// между добавлением и сохранением.
func (t *tracker) MarkForSync(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.ids[id] = struct{}{}

	return t.persistLocked(ctx)
}

func (t *tracker) MarkSynced(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.ids[id]; !ok {
		return nil
	}
	delete(t.ids, id)

	return t.persistLocked(ctx)
}

func (t *tracker) MarkDeleted(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.ids[id]; !ok {
		return nil
	}
	delete(t.ids, id)

	return t.persistLocked(ctx)
}

func (t *tracker) IsUnsynced(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.ids[id]
	return ok
}

func (t *tracker) Unsynced() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]string, 0, len(t.ids))
	for id := range t.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

func (t *tracker) Clear(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.ids = make(map[string]struct{})

	return t.persistLocked(ctx)
}

func (t *tracker) persistLocked(ctx context.Context) error {
	ids := make([]string, 0, len(t.ids))
	for id := range t.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	if err := t.store.SaveUnsynced(ctx, ids); err != nil {
		return fmt.Errorf("failed to persist unsynced ids: %w", err)
	}

	return nil
}
