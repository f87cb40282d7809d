package tasks

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Scheduler runs the background completion for each task. A runner is bound
// 1:1 to a task at creation: it waits the task's remaining duration, then
// flips the registry entry to Completed. Nothing else writes a task's
// status, so the registry needs no per-entry locking beyond its own mutex.
//
// Runners are tracked with a WaitGroup and share a cancellation context, so
// shutdown has a defined path instead of dangling sleeps.
type Scheduler struct {
	registry *Registry
	logger   *log.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler creates a Scheduler completing tasks in the given registry.
func NewScheduler(registry *Registry, logger *log.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		registry: registry,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start spawns the runner for the given task and returns immediately.
// The runner waits Remaining rather than the full Duration, so late
// scheduling does not inflate the apparent wait.
func (s *Scheduler) Start(task Task) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		timer := time.NewTimer(task.Remaining(time.Now()))
		defer timer.Stop()

		select {
		case <-timer.C:
			s.registry.Complete(task.ID)
			s.logger.Debug("task completed", "id", task.ID, "duration", task.Duration)
		case <-s.ctx.Done():
			s.logger.Debug("task runner cancelled", "id", task.ID)
		}
	}()
}

// Shutdown cancels all outstanding runners and waits for them to exit.
// Returns the context's error if it expires before the runners drain.
// Tasks still waiting at shutdown are left Running; the registry does not
// survive the process anyway.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
