package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/streakbox/streakbox/internal/client/storage"
	"github.com/streakbox/streakbox/internal/models"
)

// EnqueueResult appends a result to the offline queue.
// Порядок поступления сохраняется через монотонный sequence ключ.
func (s *Storage) EnqueueResult(ctx context.Context, result *models.PuzzleResult) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal queued result: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to get queue sequence: %w", err)
		}

		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to enqueue result: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("enqueue transaction failed: %w", err)
	}

	return nil
}

// DrainQueue atomically returns and clears all queued results in enqueue order
func (s *Storage) DrainQueue(ctx context.Context) ([]*models.PuzzleResult, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var results []*models.PuzzleResult

	// Чтение и очистка в одной транзакции - атомарность drain
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		cursor := bucket.Cursor()
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			var result models.PuzzleResult
			if err := json.Unmarshal(v, &result); err != nil {
				return fmt.Errorf("failed to unmarshal queued result: %w", err)
			}
			results = append(results, &result)

			if err := cursor.Delete(); err != nil {
				return fmt.Errorf("failed to remove queued result: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("drain transaction failed: %w", err)
	}

	return results, nil
}

// QueueLen returns the number of queued results
func (s *Storage) QueueLen(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var count int

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}
		count = bucket.Stats().KeyN
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get queue length: %w", err)
	}

	return count, nil
}

// ClearQueue removes all queued results
func (s *Storage) ClearQueue(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketQueue); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete bucket: %w", err)
		}
		if _, err := tx.CreateBucket(bucketQueue); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("clear queue transaction failed: %w", err)
	}

	return nil
}
