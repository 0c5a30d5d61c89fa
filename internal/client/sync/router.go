package sync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/streakbox/streakbox/internal/client/batcher"
	"github.com/streakbox/streakbox/internal/client/storage"
	"github.com/streakbox/streakbox/internal/models"
)

// Router направляет принятую запись либо в ближайшую пачку, либо,
// если engine в офлайне, сразу в durable очередь. Реализует
// ingest.Forwarder.
type Router struct {
	engine  Service
	batcher *batcher.Batcher
	queue   storage.QueueStorage
	logger  *slog.Logger
}

// NewRouter creates a forwarder that picks batcher or offline queue
// depending on the engine state.
func NewRouter(engine Service, b *batcher.Batcher, queue storage.QueueStorage, logger *slog.Logger) *Router {
	return &Router{
		engine:  engine,
		batcher: b,
		queue:   queue,
		logger:  logger,
	}
}

func (r *Router) Forward(ctx context.Context, result *models.PuzzleResult) error {
	if r.engine.Status() == StatusOffline {
		if err := r.queue.EnqueueResult(ctx, result); err != nil {
			return fmt.Errorf("failed to queue result: %w", err)
		}
		r.logger.Debug("Queued result while offline", "result_id", result.ID)
		return nil
	}

	r.batcher.Enqueue(ctx, result)
	return nil
}
