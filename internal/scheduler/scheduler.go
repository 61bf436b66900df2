// Package scheduler arms the periodic fetch trigger and guards against
// overlapping cycles.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"pressekiosk/internal/domain"
)

// ErrFetchInProgress is returned by RunNow when a cycle is already
// running. Scheduled ticks skip silently instead.
var ErrFetchInProgress = errors.New("a fetch is already in progress")

// Fetcher runs one full pass across all sources.
type Fetcher interface {
	FetchAllSources(ctx context.Context) ([]domain.FetchResult, error)
}

// Status reports the scheduler state to the trigger surface.
type Status struct {
	Running         bool      `json:"running"`
	FetchInProgress bool      `json:"fetch_in_progress"`
	NextRun         time.Time `json:"next_run,omitempty"`
}

// Scheduler owns the timer and the in-progress gate. The gate is a plain
// boolean under the mutex: a tick that finds it set skips the cycle
// entirely, it does not queue.
type Scheduler struct {
	fetcher Fetcher
	logger  *slog.Logger

	mu         sync.Mutex
	cron       *cron.Cron
	entryID    cron.EntryID
	inProgress bool
}

func New(fetcher Fetcher, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		fetcher: fetcher,
		logger:  logger.With("component", "scheduler"),
	}
}

// Start arms the periodic trigger. Calling it while already scheduled is
// a no-op warning; no second timer is created.
func (s *Scheduler) Start(intervalMinutes int) error {
	if intervalMinutes <= 0 {
		return fmt.Errorf("invalid scheduler interval: %d minutes", intervalMinutes)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		s.logger.Warn("scheduler already running")
		return nil
	}

	c := cron.New()
	entryID, err := c.AddFunc(fmt.Sprintf("@every %dm", intervalMinutes), s.tick)
	if err != nil {
		return fmt.Errorf("schedule fetch job: %w", err)
	}
	c.Start()

	s.cron = c
	s.entryID = entryID
	s.logger.Info("scheduler started", "interval_minutes", intervalMinutes)
	return nil
}

// Stop cancels the timer. Safe to call when already idle. Does not
// interrupt a cycle that is mid-flight.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		return
	}
	s.cron.Stop()
	s.cron = nil
	s.logger.Info("scheduler stopped")
}

// RunNow triggers an immediate cycle. Unlike a scheduled tick, a manual
// trigger during a running cycle fails fast so the operator sees it.
func (s *Scheduler) RunNow(ctx context.Context) error {
	if !s.begin() {
		return ErrFetchInProgress
	}
	defer s.end()

	s.logger.Info("manual fetch triggered")
	results, err := s.fetcher.FetchAllSources(ctx)
	if err != nil {
		return fmt.Errorf("manual fetch: %w", err)
	}
	s.logCompletion("manual fetch completed", results)
	return nil
}

// Status reports whether the timer is armed, whether a cycle is running
// and when the next tick fires.
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := Status{
		Running:         s.cron != nil,
		FetchInProgress: s.inProgress,
	}
	if s.cron != nil {
		status.NextRun = s.cron.Entry(s.entryID).Next
	}
	return status
}

func (s *Scheduler) tick() {
	if !s.begin() {
		s.logger.Warn("previous fetch still running, skipping this interval")
		return
	}
	defer s.end()

	s.logger.Info("scheduled fetch starting")
	results, err := s.fetcher.FetchAllSources(context.Background())
	if err != nil {
		s.logger.Error("scheduled fetch failed", "error", err)
		return
	}
	s.logCompletion("scheduled fetch completed", results)
}

func (s *Scheduler) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inProgress {
		return false
	}
	s.inProgress = true
	return true
}

func (s *Scheduler) end() {
	s.mu.Lock()
	s.inProgress = false
	s.mu.Unlock()
}

func (s *Scheduler) logCompletion(msg string, results []domain.FetchResult) {
	successes, items := 0, 0
	for _, r := range results {
		if r.Success {
			successes++
		}
		items += r.ItemsFetched
	}
	s.logger.Info(msg,
		"successful_sources", successes,
		"total_sources", len(results),
		"items", items,
	)
}
