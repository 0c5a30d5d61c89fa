package boltdb

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_DrainPreservesEnqueueOrder(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		require.NoError(t, s.EnqueueResult(ctx, testResult(fmt.Sprintf("r%d", i), int64(i*100))))
	}

	n, err := s.QueueLen(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	results, err := s.DrainQueue(ctx)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "r1", results[0].ID)
	assert.Equal(t, "r2", results[1].ID)
	assert.Equal(t, "r3", results[2].ID)

	// Drain атомарно очищает очередь
	n, err = s.QueueLen(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	again, err := s.DrainQueue(ctx)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestQueue_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := t.TempDir() + "/client.db"

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.EnqueueResult(ctx, testResult("r1", 100)))
	require.NoError(t, s.Close())

	// Очередь durable: переживает перезапуск процесса
	s, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, s.Close()) }()

	results, err := s.DrainQueue(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "r1", results[0].ID)
}

func TestClearQueue(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.EnqueueResult(ctx, testResult("r1", 100)))
	require.NoError(t, s.EnqueueResult(ctx, testResult("r2", 200)))
	require.NoError(t, s.ClearQueue(ctx))

	n, err := s.QueueLen(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
