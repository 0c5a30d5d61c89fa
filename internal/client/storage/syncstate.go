package storage

import "context"

//go:generate moq -out syncstate_mock.go . SyncStateStorage

// SyncStateStorage defines interface for durable sync bookkeeping:
// the checkpoint token, the last-known remote account identity and
// the unacknowledged id set. Each value is independently recoverable.
type SyncStateStorage interface {
	// SaveCheckpoint persists the opaque checkpoint token
	SaveCheckpoint(ctx context.Context, token string) error

	// GetCheckpoint retrieves the stored checkpoint token
	// Returns empty string if no checkpoint exists yet
	GetCheckpoint(ctx context.Context) (string, error)

	// ClearCheckpoint removes the checkpoint, forcing a full resync
	ClearCheckpoint(ctx context.Context) error

	// SaveAccountID persists the last-known remote account identity
	SaveAccountID(ctx context.Context, accountID string) error

	// GetAccountID retrieves the last-known remote account identity
	// Returns empty string if no sync has been performed yet
	GetAccountID(ctx context.Context) (string, error)

	// SaveUnsynced persists the full unacknowledged id set (last write wins)
	SaveUnsynced(ctx context.Context, ids []string) error

	// GetUnsynced retrieves the unacknowledged id set
	GetUnsynced(ctx context.Context) ([]string, error)
}
