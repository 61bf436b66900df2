package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pressekiosk/internal/domain"
)

// stubFetcher counts cycles and can block mid-cycle until released.
type stubFetcher struct {
	mu      sync.Mutex
	calls   int
	err     error
	results []domain.FetchResult

	started chan struct{}
	release chan struct{}
}

func (f *stubFetcher) FetchAllSources(_ context.Context) ([]domain.FetchResult, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return f.results, f.err
}

func (f *stubFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestStart_InvalidInterval(t *testing.T) {
	s := New(&stubFetcher{}, testLogger())

	err := s.Start(0)

	require.Error(t, err)
	assert.False(t, s.Status().Running)
}

func TestStart_SecondCallIsNoOp(t *testing.T) {
	s := New(&stubFetcher{}, testLogger())
	defer s.Stop()

	require.NoError(t, s.Start(60))
	first := s.cron

	require.NoError(t, s.Start(60))

	assert.Same(t, first, s.cron)
	assert.Len(t, s.cron.Entries(), 1)
}

func TestStop_SafeWhenIdle(t *testing.T) {
	s := New(&stubFetcher{}, testLogger())

	s.Stop()
	s.Stop()

	assert.False(t, s.Status().Running)
}

func TestStatus_ReportsNextRun(t *testing.T) {
	s := New(&stubFetcher{}, testLogger())
	defer s.Stop()

	require.NoError(t, s.Start(60))
	status := s.Status()

	assert.True(t, status.Running)
	assert.False(t, status.FetchInProgress)
	assert.False(t, status.NextRun.IsZero())

	s.Stop()
	assert.False(t, s.Status().Running)
}

func TestRunNow_RunsOneCycle(t *testing.T) {
	fetcher := &stubFetcher{results: []domain.FetchResult{{Success: true, ItemsFetched: 3}}}
	s := New(fetcher, testLogger())

	err := s.RunNow(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.callCount())
	assert.False(t, s.Status().FetchInProgress)
}

func TestRunNow_FailsFastWhileCycleRunning(t *testing.T) {
	fetcher := &stubFetcher{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	s := New(fetcher, testLogger())

	done := make(chan error, 1)
	go func() { done <- s.RunNow(context.Background()) }()
	<-fetcher.started

	err := s.RunNow(context.Background())
	assert.ErrorIs(t, err, ErrFetchInProgress)
	assert.True(t, s.Status().FetchInProgress)

	close(fetcher.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, fetcher.callCount())
}

func TestTick_SkipsWhileCycleRunning(t *testing.T) {
	fetcher := &stubFetcher{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	s := New(fetcher, testLogger())

	done := make(chan error, 1)
	go func() { done <- s.RunNow(context.Background()) }()
	<-fetcher.started

	// A tick landing mid-cycle must skip, not queue.
	s.tick()
	assert.Equal(t, 1, fetcher.callCount())

	close(fetcher.release)
	require.NoError(t, <-done)

	// The next tick after release runs normally.
	fetcher.release = nil
	fetcher.started = nil
	s.tick()
	assert.Equal(t, 2, fetcher.callCount())
}

func TestRunNow_PropagatesFetchError(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection refused")}
	s := New(fetcher, testLogger())

	err := s.RunNow(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "manual fetch")

	// The gate is released even after a failed cycle.
	require.NoError(t, func() error {
		fetcher.err = nil
		return s.RunNow(context.Background())
	}())
	assert.Equal(t, 2, fetcher.callCount())
}

func TestTick_GateReleasedAfterError(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection refused")}
	s := New(fetcher, testLogger())

	s.tick()

	assert.False(t, s.Status().FetchInProgress)
	assert.Equal(t, 1, fetcher.callCount())
}
