// Package scheduler runs background maintenance jobs on a fixed interval.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrInvalidConfig is returned when a job has no name, action or interval
var ErrInvalidConfig = errors.New("invalid job configuration")

// Job is a unit of periodic work
type Job struct {
	Name     string
	Interval time.Duration
	// RunOnStart runs the job once before the first tick
	RunOnStart bool
	Run        func(ctx context.Context) error
}

// PeriodicRunner runs one Job until stopped. Runs never overlap.
type PeriodicRunner struct {
	job    Job
	logger *zap.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
	lastRunAt time.Time
	lastErr   error
}

// NewPeriodicRunner validates job and creates a stopped runner
func NewPeriodicRunner(job Job, logger *zap.Logger) (*PeriodicRunner, error) {
	if job.Name == "" || job.Run == nil || job.Interval <= 0 {
		return nil, ErrInvalidConfig
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PeriodicRunner{job: job, logger: logger.With(zap.String("job", job.Name))}, nil
}

// Start launches the run loop. Starting a running runner is a no-op.
func (r *PeriodicRunner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.isRunning {
		return
	}
	r.isRunning = true

	ctx, r.cancel = context.WithCancel(ctx)
	r.wg.Add(1)
	go r.loop(ctx)

	r.logger.Info("Periodic job started", zap.Duration("interval", r.job.Interval))
}

// Stop cancels the loop and waits for an in-flight run, or for ctx
func (r *PeriodicRunner) Stop(ctx context.Context) error {
	r.mu.Lock()
	if !r.isRunning {
		r.mu.Unlock()
		return nil
	}
	r.isRunning = false
	cancel := r.cancel
	r.mu.Unlock()

	cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.logger.Info("Periodic job stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsRunning reports whether the loop is active
func (r *PeriodicRunner) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isRunning
}

// LastRun returns the time and error of the most recent run
func (r *PeriodicRunner) LastRun() (time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastRunAt, r.lastErr
}

func (r *PeriodicRunner) loop(ctx context.Context) {
	defer r.wg.Done()

	if r.job.RunOnStart {
		r.runOnce(ctx)
	}

	ticker := time.NewTicker(r.job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

func (r *PeriodicRunner) runOnce(ctx context.Context) {
	start := time.Now()
	err := r.job.Run(ctx)

	r.mu.Lock()
	r.lastRunAt = start
	r.lastErr = err
	r.mu.Unlock()

	switch {
	case err == nil:
		r.logger.Debug("Periodic job finished", zap.Duration("elapsed", time.Since(start)))
	case ctx.Err() != nil:
		// shutting down
	default:
		r.logger.Warn("Periodic job failed", zap.Error(err))
	}
}
