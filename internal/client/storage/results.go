package storage

import (
	"context"

	"github.com/streakbox/streakbox/internal/models"
)

//go:generate moq -out resultstorage_mock.go . ResultStorage

// ResultStorage defines interface for storing puzzle results on client
type ResultStorage interface {
	// SaveResult stores or replaces a puzzle result
	SaveResult(ctx context.Context, result *models.PuzzleResult) error

	// GetResult retrieves a puzzle result by ID
	// Returns ErrResultNotFound if result doesn't exist
	GetResult(ctx context.Context, id string) (*models.PuzzleResult, error)

	// GetAllResults returns all locally stored results
	GetAllResults(ctx context.Context) ([]*models.PuzzleResult, error)

	// DeleteResult removes the local copy of a result.
	// Deleting a missing result is not an error (idempotent).
	DeleteResult(ctx context.Context, id string) error

	// Clear removes all results from storage
	// Used for testing and full re-sync
	Clear(ctx context.Context) error
}
