package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streakbox/streakbox/internal/models"
	"github.com/streakbox/streakbox/internal/server/storage"
)

func TestResultStorage_UpsertResult_Create(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	score := 4

	result := &models.PuzzleResult{
		ID:          uuid.New().String(),
		GameID:      "wordle",
		GameName:    "Wordle",
		Date:        "2025-06-01",
		SharedText:  "Wordle 1,412 4/6",
		Score:       &score,
		MaxAttempts: 6,
		Completed:   true,
		Fields:      map[string]string{"puzzle": "1,412"},
		ModifiedAt:  100,
		CreatedAt:   time.Now(),
	}

	saved, err := s.UpsertResult(ctx, userID, result)
	require.NoError(t, err)
	assert.True(t, saved)

	retrieved, err := s.GetResult(ctx, userID, result.ID)
	require.NoError(t, err)
	assert.Equal(t, result.ID, retrieved.ID)
	assert.Equal(t, result.GameID, retrieved.GameID)
	assert.Equal(t, result.Date, retrieved.Date)
	assert.Equal(t, result.SharedText, retrieved.SharedText)
	require.NotNil(t, retrieved.Score)
	assert.Equal(t, 4, *retrieved.Score)
	assert.Equal(t, result.ModifiedAt, retrieved.ModifiedAt)
	assert.Equal(t, "1,412", retrieved.Fields["puzzle"])
	assert.True(t, retrieved.Completed)
	assert.False(t, retrieved.Deleted)
}

func TestResultStorage_UpsertResult_NilScore(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	result := &models.PuzzleResult{
		ID:         uuid.New().String(),
		GameID:     "mini-crossword",
		GameName:   "The Mini",
		Date:       "2025-06-01",
		ModifiedAt: 100,
	}

	saved, err := s.UpsertResult(ctx, userID, result)
	require.NoError(t, err)
	assert.True(t, saved)

	retrieved, err := s.GetResult(ctx, userID, result.ID)
	require.NoError(t, err)
	assert.Nil(t, retrieved.Score)
}

func TestResultStorage_UpsertResult_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	resultID := uuid.New().String()

	base := &models.PuzzleResult{
		ID:         resultID,
		GameID:     "wordle",
		GameName:   "Wordle",
		Date:       "2025-06-01",
		SharedText: "version1",
		ModifiedAt: 100,
	}

	saved, err := s.UpsertResult(ctx, userID, base)
	require.NoError(t, err)
	assert.True(t, saved)

	tests := []struct {
		name       string
		sharedText string
		modifiedAt int64
		wantSaved  bool
	}{
		{
			name:       "newer timestamp wins",
			sharedText: "version2_newer",
			modifiedAt: 200,
			wantSaved:  true,
		},
		{
			name:       "older timestamp loses",
			sharedText: "version3_older",
			modifiedAt: 50,
			wantSaved:  false,
		},
		{
			name:       "equal timestamp keeps stored copy",
			sharedText: "version4_tie",
			modifiedAt: 200,
			wantSaved:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			incoming := &models.PuzzleResult{
				ID:         resultID,
				GameID:     "wordle",
				GameName:   "Wordle",
				Date:       "2025-06-01",
				SharedText: tt.sharedText,
				ModifiedAt: tt.modifiedAt,
			}

			saved, err := s.UpsertResult(ctx, userID, incoming)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSaved, saved)

			retrieved, err := s.GetResult(ctx, userID, resultID)
			require.NoError(t, err)
			if tt.wantSaved {
				assert.Equal(t, tt.sharedText, retrieved.SharedText)
				assert.Equal(t, tt.modifiedAt, retrieved.ModifiedAt)
			}
		})
	}
}

func TestResultStorage_UpsertResult_ScopedByUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user1 := createTestUser(t, ctx, s)
	user2 := createTestUser(t, ctx, s)
	resultID := uuid.New().String()

	// Один и тот же ID у разных пользователей — независимые записи
	r1 := &models.PuzzleResult{ID: resultID, GameID: "wordle", SharedText: "user1", ModifiedAt: 100}
	r2 := &models.PuzzleResult{ID: resultID, GameID: "wordle", SharedText: "user2", ModifiedAt: 50}

	saved, err := s.UpsertResult(ctx, user1, r1)
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = s.UpsertResult(ctx, user2, r2)
	require.NoError(t, err)
	assert.True(t, saved)

	got1, err := s.GetResult(ctx, user1, resultID)
	require.NoError(t, err)
	assert.Equal(t, "user1", got1.SharedText)

	got2, err := s.GetResult(ctx, user2, resultID)
	require.NoError(t, err)
	assert.Equal(t, "user2", got2.SharedText)
}

func TestResultStorage_GetResult_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	_, err := s.GetResult(ctx, userID, "nonexistent")
	assert.ErrorIs(t, err, storage.ErrResultNotFound)
}

func TestResultStorage_GetUserResults_SkipsTombstones(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	live := &models.PuzzleResult{ID: uuid.New().String(), GameID: "wordle", Date: "2025-06-01", ModifiedAt: 100}
	dead := &models.PuzzleResult{ID: uuid.New().String(), GameID: "wordle", Date: "2025-06-02", ModifiedAt: 101, Deleted: true}

	for _, r := range []*models.PuzzleResult{live, dead} {
		saved, err := s.UpsertResult(ctx, userID, r)
		require.NoError(t, err)
		require.True(t, saved)
	}

	results, err := s.GetUserResults(ctx, userID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, live.ID, results[0].ID)
}

func TestResultStorage_GetChangedSince(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	ids := make([]string, 3)
	for i, ts := range []int64{100, 200, 300} {
		id := uuid.New().String()
		ids[i] = id
		r := &models.PuzzleResult{
			ID:         id,
			GameID:     "wordle",
			Date:       "2025-06-01",
			ModifiedAt: ts,
			Deleted:    ts == 300, // tombstone должен попасть в выдачу
		}
		saved, err := s.UpsertResult(ctx, userID, r)
		require.NoError(t, err)
		require.True(t, saved)
	}

	// Начиная со 150: записи 200 и 300, по возрастанию modified_at
	changed, err := s.GetChangedSince(ctx, userID, 150)
	require.NoError(t, err)
	require.Len(t, changed, 2)
	assert.Equal(t, ids[1], changed[0].ID)
	assert.Equal(t, ids[2], changed[1].ID)
	assert.True(t, changed[1].Deleted)

	// С нуля — вся история
	all, err := s.GetChangedSince(ctx, userID, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Граница включающая: запись ровно на checkpoint выдается снова
	boundary, err := s.GetChangedSince(ctx, userID, 300)
	require.NoError(t, err)
	require.Len(t, boundary, 1)
	assert.Equal(t, ids[2], boundary[0].ID)

	// Позже последней — пусто
	none, err := s.GetChangedSince(ctx, userID, 301)
	require.NoError(t, err)
	assert.Empty(t, none)
}

// Запись, закоммиченная в ту же миллисекунду после снапшота ленты,
// обязана попасть в следующий инкрементальный запрос.
func TestResultStorage_GetChangedSince_SameMillisecondCommit(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	first := &models.PuzzleResult{
		ID:         uuid.New().String(),
		GameID:     "wordle",
		Date:       "2025-06-01",
		ModifiedAt: 500,
	}
	saved, err := s.UpsertResult(ctx, userID, first)
	require.NoError(t, err)
	require.True(t, saved)

	// Снапшот ленты: checkpoint указывает на 500
	snapshot, err := s.GetChangedSince(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	checkpoint := snapshot[0].ModifiedAt

	// Вторая запись приземляется с тем же modified_at
	late := &models.PuzzleResult{
		ID:         uuid.New().String(),
		GameID:     "mini-crossword",
		Date:       "2025-06-01",
		ModifiedAt: 500,
	}
	saved, err = s.UpsertResult(ctx, userID, late)
	require.NoError(t, err)
	require.True(t, saved)

	changed, err := s.GetChangedSince(ctx, userID, checkpoint)
	require.NoError(t, err)

	seen := make(map[string]bool, len(changed))
	for _, r := range changed {
		seen[r.ID] = true
	}
	assert.True(t, seen[late.ID], "late same-millisecond record must appear in the feed")
}

func TestResultStorage_DeleteResult(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	resultID := uuid.New().String()

	r := &models.PuzzleResult{ID: resultID, GameID: "wordle", Date: "2025-06-01", ModifiedAt: 100}
	saved, err := s.UpsertResult(ctx, userID, r)
	require.NoError(t, err)
	require.True(t, saved)

	err = s.DeleteResult(ctx, userID, resultID, 200)
	require.NoError(t, err)

	// Tombstone остается читаемым с новым timestamp
	retrieved, err := s.GetResult(ctx, userID, resultID)
	require.NoError(t, err)
	assert.True(t, retrieved.Deleted)
	assert.Equal(t, int64(200), retrieved.ModifiedAt)

	// Удаление несуществующей записи
	err = s.DeleteResult(ctx, userID, "nonexistent", 200)
	assert.ErrorIs(t, err, storage.ErrResultNotFound)
}

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}

func createTestUser(t *testing.T, ctx context.Context, s *Storage) string {
	userID := uuid.New().String()
	user := &models.User{
		ID:          userID,
		Username:    "testuser_" + userID[:8],
		AuthKeyHash: "hash",
		PublicSalt:  "salt",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	err := s.CreateUser(ctx, user)
	require.NoError(t, err)

	return userID
}
