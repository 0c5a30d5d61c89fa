package mailbox

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streakbox/streakbox/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func makeResult(id, game string) *models.PuzzleResult {
	return &models.PuzzleResult{
		ID:       id,
		GameID:   "wordle",
		GameName: game,
		Date:     "2025-06-01",
	}
}

func TestWriteDrain_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	m := New(dir, testLogger())
	ctx := context.Background()

	require.NoError(t, m.Write(ctx, makeResult("r1", "Wordle")))
	require.NoError(t, m.Write(ctx, makeResult("r2", "Wordle")))
	require.NoError(t, m.Write(ctx, makeResult("r3", "Wordle")))

	assert.True(t, m.HasPending())

	results, err := m.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "r1", results[0].ID)
	assert.Equal(t, "r2", results[1].ID)
	assert.Equal(t, "r3", results[2].ID)

	// Очередь очищена атомарно
	assert.False(t, m.HasPending())

	again, err := m.Drain(ctx)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestDrain_LegacySingleSlotFallback(t *testing.T) {
	dir := t.TempDir()
	m := New(dir, testLogger())
	ctx := context.Background()

	// Старый продюсер пишет single-slot файл напрямую
	legacy := makeResult("legacy-1", "Wordle")
	data, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, legacyFileName), data, 0o600))

	results, err := m.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "legacy-1", results[0].ID)

	// Слот забран
	_, err = os.Stat(filepath.Join(dir, legacyFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestDrain_QueueTakesPriorityOverLegacy(t *testing.T) {
	dir := t.TempDir()
	m := New(dir, testLogger())
	ctx := context.Background()

	require.NoError(t, m.Write(ctx, makeResult("q1", "Wordle")))

	data, err := json.Marshal(makeResult("legacy-1", "Wordle"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, legacyFileName), data, 0o600))

	results, err := m.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "q1", results[0].ID)

	// Legacy слот остается до следующего drain
	second, err := m.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "legacy-1", second[0].ID)
}

func TestWrite_StorageUnavailable(t *testing.T) {
	m := New(filepath.Join(t.TempDir(), "does-not-exist"), testLogger())

	err := m.Write(context.Background(), makeResult("r1", "Wordle"))
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = m.Drain(context.Background())
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	assert.False(t, m.HasPending())
}

func TestWrite_CorruptedQueueDiscarded(t *testing.T) {
	dir := t.TempDir()
	m := New(dir, testLogger())
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, queueFileName), []byte("{not json"), 0o600))

	// Запись не падает: поврежденная очередь отбрасывается
	require.NoError(t, m.Write(ctx, makeResult("r1", "Wordle")))

	results, err := m.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "r1", results[0].ID)
}

func TestWatch_EmitsWakeSignal(t *testing.T) {
	dir := t.TempDir()
	m := New(dir, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wake, err := m.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, m.Write(ctx, makeResult("r1", "Wordle")))

	select {
	case _, ok := <-wake:
		assert.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("no wake signal received")
	}

	// Отмена контекста закрывает канал
	cancel()
	select {
	case _, ok := <-wake:
		for ok {
			_, ok = <-wake
		}
	case <-time.After(5 * time.Second):
		t.Fatal("wake channel not closed after cancel")
	}
}

func TestWatch_UnavailableDir(t *testing.T) {
	m := New(filepath.Join(t.TempDir(), "missing"), testLogger())

	_, err := m.Watch(context.Background())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
