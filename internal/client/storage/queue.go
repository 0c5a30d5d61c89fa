package storage

import (
	"context"

	"github.com/streakbox/streakbox/internal/models"
)

//go:generate moq -out queuestorage_mock.go . QueueStorage

// QueueStorage defines interface for the durable offline queue:
// results that could not reach the remote store, kept until connectivity
// is restored. Every mutation persists synchronously.
type QueueStorage interface {
	// EnqueueResult appends a result to the queue and persists it
	EnqueueResult(ctx context.Context, result *models.PuzzleResult) error

	// DrainQueue atomically returns and clears all queued results
	// in enqueue order
	DrainQueue(ctx context.Context) ([]*models.PuzzleResult, error)

	// QueueLen returns the number of queued results
	QueueLen(ctx context.Context) (int, error)

	// ClearQueue removes all queued results
	// Used only on remote-account change to avoid cross-account leakage
	ClearQueue(ctx context.Context) error
}
