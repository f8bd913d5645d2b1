package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// CycleRunner is one unattended delivery cycle.
type CycleRunner interface {
	RunCycle(ctx context.Context) int
}

// Scheduler drives the delivery loop on a fixed interval, independent of
// the command surface. Cycle errors and timeouts never stop the loop.
type Scheduler struct {
	runner       CycleRunner
	warmupDelay  time.Duration
	interval     time.Duration
	cycleTimeout time.Duration
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

func NewScheduler(runner CycleRunner, warmupDelay, interval, cycleTimeout time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		runner:       runner,
		warmupDelay:  warmupDelay,
		interval:     interval,
		cycleTimeout: cycleTimeout,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		slog.Info("Scheduler started", "warmup", s.warmupDelay, "interval", s.interval)

		if !s.sleep(s.warmupDelay) {
			return
		}

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.runOnce()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.runOnce()
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) runOnce() {
	cycleCtx, cancel := context.WithTimeout(s.ctx, s.cycleTimeout)
	defer cancel()

	started := time.Now()
	sent := s.runner.RunCycle(cycleCtx)

	if err := cycleCtx.Err(); err != nil {
		slog.Warn("Cycle ended early", "sent", sent, "duration", time.Since(started), "reason", err)
		return
	}

	slog.Info("Scheduled cycle finished", "sent", sent, "duration", time.Since(started), "next_in", s.interval)
}

// sleep waits d unless the scheduler is stopped first.
func (s *Scheduler) sleep(d time.Duration) bool {
	if d <= 0 {
		return s.ctx.Err() == nil
	}
	select {
	case <-s.ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
