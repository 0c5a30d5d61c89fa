package sync

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/streakbox/streakbox/internal/client/api"
	"github.com/streakbox/streakbox/internal/client/storage"
	"github.com/streakbox/streakbox/internal/client/tracker"
	"github.com/streakbox/streakbox/internal/models"
	"github.com/streakbox/streakbox/pkg/api"
)

type staticTokens string

func (s staticTokens) AccessToken(_ context.Context) (string, error) {
	if s == "" {
		return "", errors.New("not logged in")
	}
	return string(s), nil
}

// fixture собирает engine поверх in-memory состояния
type fixture struct {
	api        *httpClient.ClientAPIMock
	engine     Service
	tracker    tracker.Tracker
	results    map[string]*models.PuzzleResult
	queue      []*models.PuzzleResult
	checkpoint string
	accountID  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		results: make(map[string]*models.PuzzleResult),
	}

	resultStore := &storage.ResultStorageMock{
		SaveResultFunc: func(ctx context.Context, result *models.PuzzleResult) error {
			f.results[result.ID] = result
			return nil
		},
		GetResultFunc: func(ctx context.Context, id string) (*models.PuzzleResult, error) {
			r, ok := f.results[id]
			if !ok {
				return nil, storage.ErrResultNotFound
			}
			return r, nil
		},
		GetAllResultsFunc: func(ctx context.Context) ([]*models.PuzzleResult, error) {
			all := make([]*models.PuzzleResult, 0, len(f.results))
			for _, r := range f.results {
				all = append(all, r)
			}
			return all, nil
		},
		DeleteResultFunc: func(ctx context.Context, id string) error {
			delete(f.results, id)
			return nil
		},
		ClearFunc: func(ctx context.Context) error {
			f.results = make(map[string]*models.PuzzleResult)
			return nil
		},
	}

	var unsynced []string
	syncState := &storage.SyncStateStorageMock{
		SaveCheckpointFunc: func(ctx context.Context, token string) error {
			f.checkpoint = token
			return nil
		},
		GetCheckpointFunc: func(ctx context.Context) (string, error) {
			return f.checkpoint, nil
		},
		ClearCheckpointFunc: func(ctx context.Context) error {
			f.checkpoint = ""
			return nil
		},
		SaveAccountIDFunc: func(ctx context.Context, accountID string) error {
			f.accountID = accountID
			return nil
		},
		GetAccountIDFunc: func(ctx context.Context) (string, error) {
			return f.accountID, nil
		},
		SaveUnsyncedFunc: func(ctx context.Context, ids []string) error {
			unsynced = ids
			return nil
		},
		GetUnsyncedFunc: func(ctx context.Context) ([]string, error) {
			return unsynced, nil
		},
	}

	queueStore := &storage.QueueStorageMock{
		EnqueueResultFunc: func(ctx context.Context, result *models.PuzzleResult) error {
			f.queue = append(f.queue, result)
			return nil
		},
		DrainQueueFunc: func(ctx context.Context) ([]*models.PuzzleResult, error) {
			drained := f.queue
			f.queue = nil
			return drained, nil
		},
		QueueLenFunc: func(ctx context.Context) (int, error) {
			return len(f.queue), nil
		},
		ClearQueueFunc: func(ctx context.Context) error {
			f.queue = nil
			return nil
		},
	}

	f.api = &httpClient.ClientAPIMock{
		AccountFunc: func(ctx context.Context, accessToken string) (*api.AccountResponse, error) {
			return &api.AccountResponse{UserID: "user-1", Username: "alice"}, nil
		},
		ChangesFunc: func(ctx context.Context, accessToken, checkpoint string) (*api.ChangesResponse, error) {
			return &api.ChangesResponse{Checkpoint: "cp-1"}, nil
		},
		PushResultsFunc: func(ctx context.Context, accessToken string, req api.PushRequest) (*api.PushResponse, error) {
			outcomes := make([]api.PushOutcome, 0, len(req.Records))
			for _, rec := range req.Records {
				outcomes = append(outcomes, api.PushOutcome{ID: rec.ID, Status: api.PushStatusOK})
			}
			return &api.PushResponse{Outcomes: outcomes}, nil
		},
	}

	f.tracker = tracker.New(syncState, slog.Default())
	f.engine = NewService(f.api, resultStore, syncState, queueStore, f.tracker, staticTokens("token"), slog.Default())

	return f
}

func localResult(id string, modifiedAt int64) *models.PuzzleResult {
	score := 4
	return &models.PuzzleResult{
		ID:          id,
		GameID:      "wordle",
		GameName:    "Wordle",
		Date:        "2025-06-01",
		Score:       &score,
		MaxAttempts: 6,
		Completed:   true,
		ModifiedAt:  modifiedAt,
	}
}

func TestSync_PullMergesAndSavesCheckpoint(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.api.ChangesFunc = func(ctx context.Context, accessToken, checkpoint string) (*api.ChangesResponse, error) {
		assert.Equal(t, "", checkpoint)
		return &api.ChangesResponse{
			Records: []api.ResultRecord{
				{ID: "r1", GameID: "wordle", GameName: "Wordle", ModifiedAt: 100},
				{ID: "r2", GameID: "wordle", GameName: "Wordle", ModifiedAt: 200},
			},
			Checkpoint: "cp-next",
		}, nil
	}

	result, err := f.engine.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Pulled)
	assert.Equal(t, 2, result.Merged)
	assert.Contains(t, f.results, "r1")
	assert.Contains(t, f.results, "r2")
	assert.Equal(t, "cp-next", f.checkpoint)
	assert.Equal(t, StatusSynced, f.engine.Status())
}

func TestSync_PullLocalStrictlyNewerWins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.results["r1"] = localResult("r1", 300)
	f.api.ChangesFunc = func(ctx context.Context, accessToken, checkpoint string) (*api.ChangesResponse, error) {
		return &api.ChangesResponse{
			Records:    []api.ResultRecord{{ID: "r1", GameID: "wordle", ModifiedAt: 200}},
			Checkpoint: "cp-1",
		}, nil
	}

	result, err := f.engine.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Merged)
	assert.Equal(t, int64(300), f.results["r1"].ModifiedAt)
}

func TestSync_PullRemoteWinsTies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.results["r1"] = localResult("r1", 200)
	f.api.ChangesFunc = func(ctx context.Context, accessToken, checkpoint string) (*api.ChangesResponse, error) {
		return &api.ChangesResponse{
			Records:    []api.ResultRecord{{ID: "r1", GameID: "wordle", GameName: "Wordle (remote)", ModifiedAt: 200}},
			Checkpoint: "cp-1",
		}, nil
	}

	result, err := f.engine.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Merged)
	assert.Equal(t, "Wordle (remote)", f.results["r1"].GameName)
}

func TestSync_PullAppliesTombstone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.results["r1"] = localResult("r1", 100)
	require.NoError(t, f.tracker.MarkForSync(ctx, "r1"))

	f.api.ChangesFunc = func(ctx context.Context, accessToken, checkpoint string) (*api.ChangesResponse, error) {
		return &api.ChangesResponse{
			Records:    []api.ResultRecord{{ID: "r1", GameID: "wordle", ModifiedAt: 500, Deleted: true}},
			Checkpoint: "cp-1",
		}, nil
	}

	_, err := f.engine.Sync(ctx)
	require.NoError(t, err)

	assert.NotContains(t, f.results, "r1")
	// Удаленная tombstone снимает запись с учета
	assert.False(t, f.tracker.IsUnsynced("r1"))
}

func TestSync_PushConfirmsUnsynced(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.results["r1"] = localResult("r1", 100)
	require.NoError(t, f.tracker.MarkForSync(ctx, "r1"))

	result, err := f.engine.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Pushed)
	assert.Equal(t, 1, result.Confirmed)
	assert.False(t, f.tracker.IsUnsynced("r1"))
	require.Len(t, f.api.PushResultsCalls(), 1)
	assert.Equal(t, "r1", f.api.PushResultsCalls()[0].Req.Records[0].ID)
}

func TestSync_SweepRecoversOrphanedUnsynced(t *testing.T) {
	// Запись принята и учтена, но до пачки не дошла (процесс упал).
	// Полный цикл находит ее по unsynced-множеству.
	f := newFixture(t)
	ctx := context.Background()

	f.results["r1"] = localResult("r1", 100)
	f.results["r2"] = localResult("r2", 200)
	require.NoError(t, f.tracker.MarkForSync(ctx, "r1"))
	require.NoError(t, f.tracker.MarkForSync(ctx, "r2"))

	// r2 лежит и в офлайн-очереди: дубликат не должен отправиться дважды
	f.queue = append(f.queue, f.results["r2"])

	result, err := f.engine.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Pushed)
	require.Len(t, f.api.PushResultsCalls(), 1)
	records := f.api.PushResultsCalls()[0].Req.Records
	require.Len(t, records, 2)
	// Очередь идет первой, sweep добирает остальное
	assert.Equal(t, "r2", records[0].ID)
	assert.Equal(t, "r1", records[1].ID)
}

func TestSync_PushConflictAcceptsServerVersion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.results["r1"] = localResult("r1", 100)
	require.NoError(t, f.tracker.MarkForSync(ctx, "r1"))

	f.api.PushResultsFunc = func(ctx context.Context, accessToken string, req api.PushRequest) (*api.PushResponse, error) {
		return &api.PushResponse{
			Outcomes: []api.PushOutcome{{
				ID:     "r1",
				Status: api.PushStatusConflict,
				Server: &api.ResultRecord{ID: "r1", GameID: "wordle", GameName: "Wordle (server)", ModifiedAt: 999},
			}},
		}, nil
	}

	result, err := f.engine.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Conflicts)
	assert.Equal(t, "Wordle (server)", f.results["r1"].GameName)
	assert.False(t, f.tracker.IsUnsynced("r1"))
	assert.Equal(t, StatusSynced, f.engine.Status())
}

func TestSync_RetryablePushOutcomeRequeues(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.results["r1"] = localResult("r1", 100)
	require.NoError(t, f.tracker.MarkForSync(ctx, "r1"))

	f.api.PushResultsFunc = func(ctx context.Context, accessToken string, req api.PushRequest) (*api.PushResponse, error) {
		return &api.PushResponse{
			Outcomes: []api.PushOutcome{{
				ID:        "r1",
				Status:    api.PushStatusError,
				Code:      "storage_busy",
				Retryable: true,
			}},
		}, nil
	}

	result, err := f.engine.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Requeued)
	require.Len(t, f.queue, 1)
	assert.Equal(t, "r1", f.queue[0].ID)
	// Запись по-прежнему не подтверждена
	assert.True(t, f.tracker.IsUnsynced("r1"))
}

func TestSync_PermanentPushOutcomeSurfacesFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.results["r1"] = localResult("r1", 100)
	require.NoError(t, f.tracker.MarkForSync(ctx, "r1"))

	f.api.PushResultsFunc = func(ctx context.Context, accessToken string, req api.PushRequest) (*api.PushResponse, error) {
		return &api.PushResponse{
			Outcomes: []api.PushOutcome{{
				ID:     "r1",
				Status: api.PushStatusError,
				Code:   "validation_failed",
			}},
		}, nil
	}

	result, err := f.engine.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Failed)
	assert.Empty(t, f.queue)
	assert.Equal(t, StatusFailed, f.engine.Status())
}

func TestSync_TransportFailureGoesOffline(t *testing.T) {
	f := newFixture(t)

	f.api.AccountFunc = func(ctx context.Context, accessToken string) (*api.AccountResponse, error) {
		return nil, errors.New("dial tcp: connection refused")
	}

	_, err := f.engine.Sync(context.Background())
	require.Error(t, err)
	assert.Equal(t, StatusOffline, f.engine.Status())
}

func TestSync_PushTransportFailureRequeuesChunk(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.results["r1"] = localResult("r1", 100)
	require.NoError(t, f.tracker.MarkForSync(ctx, "r1"))

	f.api.PushResultsFunc = func(ctx context.Context, accessToken string, req api.PushRequest) (*api.PushResponse, error) {
		return nil, errors.New("connection reset")
	}

	result, err := f.engine.Sync(ctx)
	require.Error(t, err)

	assert.Equal(t, 1, result.Requeued)
	require.Len(t, f.queue, 1)
	assert.Equal(t, "r1", f.queue[0].ID)
	assert.Equal(t, StatusOffline, f.engine.Status())
}

func TestSync_AuthFailureIsPermanent(t *testing.T) {
	f := newFixture(t)

	f.api.AccountFunc = func(ctx context.Context, accessToken string) (*api.AccountResponse, error) {
		return nil, &httpClient.APIError{StatusCode: http.StatusUnauthorized, Code: "invalid_token"}
	}

	_, err := f.engine.Sync(context.Background())
	require.Error(t, err)
	assert.Equal(t, StatusFailed, f.engine.Status())
}

func TestSync_AccountChangeResetsLocalState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.accountID = "user-0"
	f.checkpoint = "cp-old"
	f.results["r1"] = localResult("r1", 100)
	f.queue = append(f.queue, localResult("r2", 200))
	require.NoError(t, f.tracker.MarkForSync(ctx, "r1"))

	f.api.ChangesFunc = func(ctx context.Context, accessToken, checkpoint string) (*api.ChangesResponse, error) {
		// Сброс произошел до pull: checkpoint пуст, полная выдача
		assert.Equal(t, "", checkpoint)
		return &api.ChangesResponse{Checkpoint: "cp-new"}, nil
	}

	_, err := f.engine.Sync(ctx)
	require.NoError(t, err)

	assert.Empty(t, f.results)
	assert.Empty(t, f.queue)
	assert.Empty(t, f.tracker.Unsynced())
	assert.Equal(t, "user-1", f.accountID)
	assert.Equal(t, "cp-new", f.checkpoint)
}

func TestSync_SameAccountKeepsState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.accountID = "user-1"
	f.checkpoint = "cp-old"
	f.results["r1"] = localResult("r1", 100)

	f.api.ChangesFunc = func(ctx context.Context, accessToken, checkpoint string) (*api.ChangesResponse, error) {
		assert.Equal(t, "cp-old", checkpoint)
		return &api.ChangesResponse{Checkpoint: "cp-new"}, nil
	}

	_, err := f.engine.Sync(ctx)
	require.NoError(t, err)

	assert.Contains(t, f.results, "r1")
}

func TestSync_ConcurrentCallCoalesces(t *testing.T) {
	f := newFixture(t)

	started := make(chan struct{})
	release := make(chan struct{})
	f.api.AccountFunc = func(ctx context.Context, accessToken string) (*api.AccountResponse, error) {
		close(started)
		<-release
		return &api.AccountResponse{UserID: "user-1"}, nil
	}

	done := make(chan error, 1)
	go func() {
		_, err := f.engine.Sync(context.Background())
		done <- err
	}()

	<-started
	_, err := f.engine.Sync(context.Background())
	assert.ErrorIs(t, err, ErrSyncInProgress)

	close(release)
	require.NoError(t, <-done)
}

func TestDelete_LocalTombstoneAndRemoteDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.results["r1"] = localResult("r1", 100)
	f.api.DeleteResultFunc = func(ctx context.Context, accessToken, id string) error {
		return nil
	}

	require.NoError(t, f.engine.Delete(ctx, "r1"))

	require.Contains(t, f.results, "r1")
	assert.True(t, f.results["r1"].Deleted)
	assert.Greater(t, f.results["r1"].ModifiedAt, int64(100))
	assert.False(t, f.tracker.IsUnsynced("r1"))
	require.Len(t, f.api.DeleteResultCalls(), 1)
}

// Локальное удаление снимает запись с учёта незагруженных,
// даже если она ещё ждала своей отправки.
func TestDelete_UnmarksPendingUpload(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.results["r1"] = localResult("r1", 100)
	require.NoError(t, f.tracker.MarkForSync(ctx, "r1"))
	f.api.DeleteResultFunc = func(ctx context.Context, accessToken, id string) error {
		return nil
	}

	require.NoError(t, f.engine.Delete(ctx, "r1"))

	assert.False(t, f.tracker.IsUnsynced("r1"))
	assert.Empty(t, f.tracker.Unsynced())
}

func TestDelete_RemoteFailureDoesNotRollBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.results["r1"] = localResult("r1", 100)
	require.NoError(t, f.tracker.MarkForSync(ctx, "r1"))
	f.api.DeleteResultFunc = func(ctx context.Context, accessToken, id string) error {
		return errors.New("connection refused")
	}

	// Сбой удаленного удаления не ошибка: local-delete-wins
	require.NoError(t, f.engine.Delete(ctx, "r1"))

	assert.True(t, f.results["r1"].Deleted)
	assert.False(t, f.tracker.IsUnsynced("r1"))
}

func TestDelete_MissingRecord(t *testing.T) {
	f := newFixture(t)

	err := f.engine.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrResultNotFound)
}

func TestPushBatch_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.tracker.MarkForSync(ctx, "r1"))
	f.engine.PushBatch(ctx, []*models.PuzzleResult{localResult("r1", 100)})

	assert.False(t, f.tracker.IsUnsynced("r1"))
	assert.Empty(t, f.queue)
}

func TestPushBatch_TransportFailureQueues(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.api.PushResultsFunc = func(ctx context.Context, accessToken string, req api.PushRequest) (*api.PushResponse, error) {
		return nil, errors.New("no route to host")
	}

	f.engine.PushBatch(ctx, []*models.PuzzleResult{localResult("r1", 100)})

	require.Len(t, f.queue, 1)
	assert.Equal(t, "r1", f.queue[0].ID)
	assert.Equal(t, StatusOffline, f.engine.Status())
}

func TestPushBatch_NotAuthenticatedQueues(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	noAuth := NewService(f.api, &storage.ResultStorageMock{}, &storage.SyncStateStorageMock{},
		&storage.QueueStorageMock{
			EnqueueResultFunc: func(ctx context.Context, result *models.PuzzleResult) error {
				f.queue = append(f.queue, result)
				return nil
			},
		}, f.tracker, staticTokens(""), slog.Default())

	noAuth.PushBatch(ctx, []*models.PuzzleResult{localResult("r1", 100)})

	require.Len(t, f.queue, 1)
}

func TestSync_LargePushSplitsIntoChunks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < PushChunkSize+1; i++ {
		r := localResult(resultID(i), int64(i+1))
		f.results[r.ID] = r
		require.NoError(t, f.tracker.MarkForSync(ctx, r.ID))
	}

	result, err := f.engine.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, PushChunkSize+1, result.Confirmed)
	calls := f.api.PushResultsCalls()
	require.Len(t, calls, 2)
	assert.Len(t, calls[0].Req.Records, PushChunkSize)
	assert.Len(t, calls[1].Req.Records, 1)
}

func resultID(i int) string {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour).Format("result-2006-01-02-15")
}
