package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/streakbox/streakbox/internal/client/storage"
)

const (
	keyCheckpoint = "checkpoint"
	keyAccountID  = "account_id"
	keyUnsynced   = "unsynced"
)

// SaveCheckpoint persists the opaque checkpoint token
func (s *Storage) SaveCheckpoint(ctx context.Context, token string) error {
	return s.putSyncStateKey(keyCheckpoint, []byte(token))
}

// GetCheckpoint retrieves the stored checkpoint token
// Returns empty string if no checkpoint exists yet
func (s *Storage) GetCheckpoint(ctx context.Context) (string, error) {
	data, err := s.getSyncStateKey(keyCheckpoint)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ClearCheckpoint removes the checkpoint, forcing a full resync
func (s *Storage) ClearCheckpoint(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return fmt.Errorf("syncstate bucket not found")
		}
		if err := bucket.Delete([]byte(keyCheckpoint)); err != nil {
			return fmt.Errorf("failed to clear checkpoint: %w", err)
		}
		return nil
	})
}

// SaveAccountID persists the last-known remote account identity
func (s *Storage) SaveAccountID(ctx context.Context, accountID string) error {
	return s.putSyncStateKey(keyAccountID, []byte(accountID))
}

// GetAccountID retrieves the last-known remote account identity
// Returns empty string if no sync has been performed yet
func (s *Storage) GetAccountID(ctx context.Context) (string, error) {
	data, err := s.getSyncStateKey(keyAccountID)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SaveUnsynced persists the full unacknowledged id set.
// Плоская last-write-wins запись: сам set идемпотентен, транзакционность
// сверх этого не нужна.
func (s *Storage) SaveUnsynced(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal unsynced ids: %w", err)
	}

	return s.putSyncStateKey(keyUnsynced, data)
}

// GetUnsynced retrieves the unacknowledged id set
func (s *Storage) GetUnsynced(ctx context.Context) ([]string, error) {
	data, err := s.getSyncStateKey(keyUnsynced)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal unsynced ids: %w", err)
	}

	return ids, nil
}

// putSyncStateKey сохраняет значение по ключу в syncstate bucket
func (s *Storage) putSyncStateKey(key string, value []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return fmt.Errorf("syncstate bucket not found")
		}
		if err := bucket.Put([]byte(key), value); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
		return nil
	})
}

// getSyncStateKey читает значение по ключу; nil если ключа нет
func (s *Storage) getSyncStateKey(key string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var value []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return fmt.Errorf("syncstate bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data != nil {
			value = make([]byte, len(data))
			copy(value, data)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return value, nil
}
