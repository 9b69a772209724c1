// Package scheduler drives periodic batch execution and retention cleanup.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/askeland/newswatch/pkg/domain"
)

//go:generate moq -out mocks/batch_runner.go -pkg mocks -skip-ensure -fmt goimports . BatchRunner
//go:generate moq -out mocks/cleaner.go -pkg mocks -skip-ensure -fmt goimports . Cleaner

// BatchRunner executes one full batch and reports its statistics
type BatchRunner interface {
	Run(ctx context.Context) domain.RunStats
}

// Cleaner removes records older than the retention window
type Cleaner interface {
	CleanupOldRecords(ctx context.Context, retentionDays int) (int64, error)
}

// Config holds scheduler configuration
type Config struct {
	Interval        time.Duration // batch interval, default 30m
	CleanupInterval time.Duration // retention sweep interval, default 24h
	RetentionDays   int           // 0 disables cleanup
}

// Scheduler runs batches on an interval, with an immediate first run, and
// sweeps old records on a slower cadence. At most one batch runs at a time,
// a trigger arriving mid-batch is rejected.
type Scheduler struct {
	runner   BatchRunner
	cleaner  Cleaner
	interval time.Duration
	cleanup  time.Duration
	retain   int

	running bool
	mu      sync.Mutex
	wg      sync.WaitGroup
	cancel  context.CancelFunc
}

// NewScheduler creates a scheduler, filling interval defaults
func NewScheduler(runner BatchRunner, cleaner Cleaner, cfg Config) *Scheduler {
	if cfg.Interval == 0 {
		cfg.Interval = 30 * time.Minute
	}
	if cfg.CleanupInterval == 0 {
		cfg.CleanupInterval = 24 * time.Hour
	}
	return &Scheduler{
		runner:   runner,
		cleaner:  cleaner,
		interval: cfg.Interval,
		cleanup:  cfg.CleanupInterval,
		retain:   cfg.RetentionDays,
	}
}

// Start begins the batch and cleanup workers
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.batchWorker(ctx)

	if s.cleaner != nil && s.retain > 0 {
		s.wg.Add(1)
		go s.cleanupWorker(ctx)
	}

	lgr.Printf("[INFO] scheduler started, batch interval %v, retention %d days", s.interval, s.retain)
}

// Stop gracefully stops the scheduler, waiting for a batch in flight
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// RunNow triggers an immediate batch in the background. Returns an error if
// a batch is already in flight.
func (s *Scheduler) RunNow(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("batch already in progress")
	}
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.clearRunning()
		s.runner.Run(ctx)
	}()
	return nil
}

// batchWorker runs a batch immediately and then on every tick
func (s *Scheduler) batchWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runBatch(ctx)
		}
	}
}

// runBatch executes one batch unless another is in flight
func (s *Scheduler) runBatch(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		lgr.Printf("[WARN] previous batch still running, skipping this tick")
		return
	}
	s.running = true
	s.mu.Unlock()
	defer s.clearRunning()

	s.runner.Run(ctx)
}

func (s *Scheduler) clearRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// cleanupWorker sweeps old records on the cleanup cadence
func (s *Scheduler) cleanupWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.cleaner.CleanupOldRecords(ctx, s.retain)
			if err != nil {
				lgr.Printf("[ERROR] retention cleanup failed: %v", err)
				continue
			}
			if removed > 0 {
				lgr.Printf("[INFO] retention cleanup removed %d records older than %d days", removed, s.retain)
			}
		}
	}
}
