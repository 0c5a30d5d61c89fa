package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/streakbox/streakbox/internal/client/storage"
	"github.com/streakbox/streakbox/internal/models"
)

// SaveResult stores or replaces a puzzle result in BoltDB
func (s *Storage) SaveResult(ctx context.Context, result *models.PuzzleResult) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем result в JSON
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketResults)
		if bucket == nil {
			return fmt.Errorf("results bucket not found")
		}

		// Сохраняем по ключу ID
		if err := bucket.Put([]byte(result.ID), data); err != nil {
			return fmt.Errorf("failed to save result: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetResult retrieves a puzzle result by ID
func (s *Storage) GetResult(ctx context.Context, id string) (*models.PuzzleResult, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var result *models.PuzzleResult

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketResults)
		if bucket == nil {
			return storage.ErrResultNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrResultNotFound
		}

		// Десериализуем
		result = &models.PuzzleResult{}
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("failed to unmarshal result: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetAllResults returns all locally stored results
func (s *Storage) GetAllResults(ctx context.Context) ([]*models.PuzzleResult, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var results []*models.PuzzleResult

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketResults)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var result models.PuzzleResult
			if err := json.Unmarshal(v, &result); err != nil {
				return fmt.Errorf("failed to unmarshal result: %w", err)
			}
			results = append(results, &result)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get all results: %w", err)
	}

	return results, nil
}

// DeleteResult removes the local copy of a result.
// Deleting a missing result is not an error.
func (s *Storage) DeleteResult(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketResults)
		if bucket == nil {
			return nil
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete result: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("delete transaction failed: %w", err)
	}

	return nil
}

// Clear removes all results from storage
func (s *Storage) Clear(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		// Удаляем bucket полностью
		if err := tx.DeleteBucket(bucketResults); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete bucket: %w", err)
		}

		// Создаем заново пустой bucket
		if _, err := tx.CreateBucket(bucketResults); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("clear transaction failed: %w", err)
	}

	return nil
}
