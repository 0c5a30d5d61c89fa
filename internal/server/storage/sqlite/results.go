package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/streakbox/streakbox/internal/models"
	"github.com/streakbox/streakbox/internal/server/storage"
)

// UpsertResult creates or updates a result using last-write-wins logic.
// Входящая запись сохраняется только если она строго новее существующей:
// при равных ModifiedAt выигрывает серверная копия.
func (s *Storage) UpsertResult(ctx context.Context, userID string, result *models.PuzzleResult) (bool, error) {
	existing, err := s.GetResult(ctx, userID, result.ID)
	if err != nil && !errors.Is(err, storage.ErrResultNotFound) {
		return false, fmt.Errorf("failed to check existing result: %w", err)
	}

	fields, err := marshalFields(result.Fields)
	if err != nil {
		return false, err
	}

	if existing != nil {
		// Существующая запись не старее — не сохраняем
		if !result.IsNewerThan(existing) {
			return false, nil
		}

		query := `
			UPDATE results
			SET game_id = ?, game_name = ?, date = ?, shared_text = ?,
			    score = ?, max_attempts = ?, completed = ?, deleted = ?,
			    fields = ?, modified_at = ?
			WHERE id = ? AND user_id = ?
		`

		_, err := s.db.ExecContext(ctx, query,
			result.GameID,
			result.GameName,
			result.Date,
			result.SharedText,
			scoreToNull(result.Score),
			result.MaxAttempts,
			boolToInt(result.Completed),
			boolToInt(result.Deleted),
			fields,
			result.ModifiedAt,
			result.ID,
			userID,
		)

		if err != nil {
			return false, fmt.Errorf("failed to update result: %w", err)
		}

		return true, nil
	}

	query := `
		INSERT INTO results (
			id, user_id, game_id, game_name, date, shared_text,
			score, max_attempts, completed, deleted, fields,
			modified_at, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := result.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = s.db.ExecContext(ctx, query,
		result.ID,
		userID,
		result.GameID,
		result.GameName,
		result.Date,
		result.SharedText,
		scoreToNull(result.Score),
		result.MaxAttempts,
		boolToInt(result.Completed),
		boolToInt(result.Deleted),
		fields,
		result.ModifiedAt,
		createdAt.Unix(),
	)

	if err != nil {
		return false, fmt.Errorf("failed to insert result: %w", err)
	}

	return true, nil
}

// GetResult retrieves a single result by ID, including tombstones
func (s *Storage) GetResult(ctx context.Context, userID, id string) (*models.PuzzleResult, error) {
	query := `
		SELECT id, game_id, game_name, date, shared_text,
		       score, max_attempts, completed, deleted, fields,
		       modified_at, created_at
		FROM results
		WHERE id = ? AND user_id = ?
	`

	result, err := scanResult(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	return result, nil
}

// GetUserResults retrieves all non-deleted results for a user
func (s *Storage) GetUserResults(ctx context.Context, userID string) ([]*models.PuzzleResult, error) {
	query := `
		SELECT id, game_id, game_name, date, shared_text,
		       score, max_attempts, completed, deleted, fields,
		       modified_at, created_at
		FROM results
		WHERE user_id = ? AND deleted = 0
		ORDER BY date DESC, game_id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	return scanResults(rows)
}

// GetChangedSince retrieves all results (including tombstones) for a user
// modified at or after the given timestamp, ordered by modified_at.
// Граница включающая: запись, закоммиченная в ту же миллисекунду уже
// после выдачи checkpoint, не должна выпасть из ленты навсегда.
// Записи на границе приходят повторно; клиент мержит их идемпотентно.
func (s *Storage) GetChangedSince(ctx context.Context, userID string, since int64) ([]*models.PuzzleResult, error) {
	query := `
		SELECT id, game_id, game_name, date, shared_text,
		       score, max_attempts, completed, deleted, fields,
		       modified_at, created_at
		FROM results
		WHERE user_id = ? AND modified_at >= ?
		ORDER BY modified_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query changed results: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	return scanResults(rows)
}

// DeleteResult marks result as deleted (tombstone) with new timestamp
func (s *Storage) DeleteResult(ctx context.Context, userID, id string, modifiedAt int64) error {
	query := `
		UPDATE results
		SET deleted = 1, modified_at = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := s.db.ExecContext(ctx, query, modifiedAt, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrResultNotFound
	}

	return nil
}

// rowScanner покрывает sql.Row и sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (*models.PuzzleResult, error) {
	result := &models.PuzzleResult{}
	var score sql.NullInt64
	var completed, deleted int
	var fields string
	var createdAt int64

	err := row.Scan(
		&result.ID,
		&result.GameID,
		&result.GameName,
		&result.Date,
		&result.SharedText,
		&score,
		&result.MaxAttempts,
		&completed,
		&deleted,
		&fields,
		&result.ModifiedAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if score.Valid {
		v := int(score.Int64)
		result.Score = &v
	}
	result.Completed = intToBool(completed)
	result.Deleted = intToBool(deleted)
	result.CreatedAt = time.Unix(createdAt, 0)

	if err := json.Unmarshal([]byte(fields), &result.Fields); err != nil {
		return nil, fmt.Errorf("failed to decode fields: %w", err)
	}

	return result, nil
}

func scanResults(rows *sql.Rows) ([]*models.PuzzleResult, error) {
	var results []*models.PuzzleResult

	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return results, nil
}

func marshalFields(fields map[string]string) (string, error) {
	if fields == nil {
		return "{}", nil
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to encode fields: %w", err)
	}
	return string(data), nil
}

func scoreToNull(score *int) sql.NullInt64 {
	if score == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*score), Valid: true}
}

// Helper functions for bool/int conversion
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}
