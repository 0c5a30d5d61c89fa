package batcher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/streakbox/streakbox/internal/models"
)

const (
	// DefaultThreshold — размер пачки, при котором flush происходит немедленно
	DefaultThreshold = 5
	// DefaultDebounce — окно тишины перед flush неполной пачки
	DefaultDebounce = 2 * time.Second
)

// FlushFunc receives the accumulated batch in enqueue order.
type FlushFunc func(ctx context.Context, results []*models.PuzzleResult)

// Batcher накапливает принятые результаты и отдаёт их пачками:
// либо по достижении порога, либо после паузы в поступлениях.
// Буфер живёт только в памяти: durability обеспечивает unsynced-учёт,
// а не батчер.
type Batcher struct {
	mu        sync.Mutex
	pending   []*models.PuzzleResult
	timer     *time.Timer
	flush     FlushFunc
	threshold int
	debounce  time.Duration
	logger    *slog.Logger
	stopped   bool
}

// New creates a batcher that calls flush with accumulated results.
func New(flush FlushFunc, logger *slog.Logger) *Batcher {
	return &Batcher{
		flush:     flush,
		threshold: DefaultThreshold,
		debounce:  DefaultDebounce,
		logger:    logger,
	}
}

// NewWithConfig creates a batcher with explicit threshold and debounce window.
func NewWithConfig(flush FlushFunc, threshold int, debounce time.Duration, logger *slog.Logger) *Batcher {
	return &Batcher{
		flush:     flush,
		threshold: threshold,
		debounce:  debounce,
		logger:    logger,
	}
}

// Enqueue добавляет результат в пачку. Каждый вызов сбрасывает
// debounce-таймер; при достижении порога flush происходит сразу.
// Callback вызывается уже без мьютекса: медленный push не должен
// блокировать прием следующих результатов.
func (b *Batcher) Enqueue(ctx context.Context, result *models.PuzzleResult) {
	b.mu.Lock()

	if b.stopped {
		b.mu.Unlock()
		b.logger.Warn("Enqueue after stop, dropping result", "result_id", result.ID)
		return
	}

	b.pending = append(b.pending, result)

	if len(b.pending) >= b.threshold {
		batch := b.takeLocked()
		b.mu.Unlock()
		b.deliver(ctx, batch)
		return
	}

	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.debounce, func() {
		b.mu.Lock()
		if b.stopped {
			b.mu.Unlock()
			return
		}
		batch := b.takeLocked()
		b.mu.Unlock()
		b.deliver(context.Background(), batch)
	})
	b.mu.Unlock()
}

// Flush немедленно отдаёт накопленную пачку, не дожидаясь таймера.
func (b *Batcher) Flush(ctx context.Context) {
	b.mu.Lock()
	batch := b.takeLocked()
	b.mu.Unlock()

	b.deliver(ctx, batch)
}

// Pending возвращает размер текущей пачки.
func (b *Batcher) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.pending)
}

// Stop flushes the remaining batch and rejects further enqueues.
func (b *Batcher) Stop(ctx context.Context) {
	b.mu.Lock()
	batch := b.takeLocked()
	b.stopped = true
	b.mu.Unlock()

	b.deliver(ctx, batch)
}

// takeLocked забирает накопленную пачку и гасит таймер.
// Вызывается только под b.mu.
func (b *Batcher) takeLocked() []*models.PuzzleResult {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}

	batch := b.pending
	b.pending = nil

	return batch
}

func (b *Batcher) deliver(ctx context.Context, batch []*models.PuzzleResult) {
	if len(batch) == 0 {
		return
	}

	b.logger.Debug("Flushing batch", "count", len(batch))
	b.flush(ctx, batch)
}
