package storage

import (
	"context"

	"github.com/streakbox/streakbox/internal/models"
)

// ResultStorage defines interface for puzzle result persistence.
// Все операции скоупятся на userID: запись принадлежит ровно одному
// аккаунту, ID уникален в пределах аккаунта.
type ResultStorage interface {
	// UpsertResult creates or updates a result using last-write-wins logic:
	// the incoming record is saved only if it is strictly newer (ModifiedAt)
	// than the stored one. Returns true if the record was saved, false if
	// the existing record won (including ties).
	UpsertResult(ctx context.Context, userID string, result *models.PuzzleResult) (bool, error)

	// GetResult retrieves a single result by ID, including tombstones.
	// Returns ErrResultNotFound if the result doesn't exist.
	GetResult(ctx context.Context, userID, id string) (*models.PuzzleResult, error)

	// GetUserResults retrieves all non-deleted results for a user
	// Returns empty slice if no results found
	GetUserResults(ctx context.Context, userID string) ([]*models.PuzzleResult, error)

	// GetChangedSince retrieves all results (including tombstones) for a user
	// modified at or after the given unix-millis timestamp, ordered by
	// ModifiedAt ascending. The boundary is inclusive so a record committed
	// in the same millisecond after a feed snapshot is not skipped forever;
	// boundary records are re-delivered and merged idempotently by id.
	GetChangedSince(ctx context.Context, userID string, since int64) ([]*models.PuzzleResult, error)

	// DeleteResult marks result as deleted (tombstone) with new timestamp
	// Returns ErrResultNotFound if result doesn't exist
	DeleteResult(ctx context.Context, userID, id string, modifiedAt int64) error
}
