package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countingRunner struct {
	cycles atomic.Int32
	panics bool
}

func (r *countingRunner) RunCycle(ctx context.Context) int {
	r.cycles.Add(1)
	return 1
}

type slowRunner struct {
	cycles   atomic.Int32
	timedOut atomic.Bool
}

func (r *slowRunner) RunCycle(ctx context.Context) int {
	r.cycles.Add(1)
	select {
	case <-ctx.Done():
		r.timedOut.Store(true)
	case <-time.After(10 * time.Second):
	}
	return 0
}

func TestSchedulerRunsCycles(t *testing.T) {
	runner := &countingRunner{}
	s := NewScheduler(runner, 0, 20*time.Millisecond, time.Second)

	s.Start()
	time.Sleep(110 * time.Millisecond)
	s.Stop()

	got := runner.cycles.Load()
	if got < 3 {
		t.Errorf("Expected at least 3 cycles, got %d", got)
	}
}

func TestSchedulerWarmupDelay(t *testing.T) {
	runner := &countingRunner{}
	s := NewScheduler(runner, 200*time.Millisecond, 10*time.Millisecond, time.Second)

	s.Start()
	time.Sleep(50 * time.Millisecond)
	before := runner.cycles.Load()
	s.Stop()

	if before != 0 {
		t.Errorf("Expected no cycles during warmup, got %d", before)
	}
}

func TestSchedulerCycleTimeout(t *testing.T) {
	runner := &slowRunner{}
	s := NewScheduler(runner, 0, time.Hour, 30*time.Millisecond)

	s.Start()
	time.Sleep(150 * time.Millisecond)
	s.Stop()

	if runner.cycles.Load() != 1 {
		t.Errorf("Expected exactly 1 cycle, got %d", runner.cycles.Load())
	}
	if !runner.timedOut.Load() {
		t.Error("Expected the cycle context to hit its timeout")
	}
}

func TestSchedulerStopUnblocks(t *testing.T) {
	runner := &countingRunner{}
	s := NewScheduler(runner, time.Hour, time.Hour, time.Second)

	s.Start()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return while scheduler was in warmup sleep")
	}
}
