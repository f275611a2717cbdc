package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestTimers_ScheduleFires(t *testing.T) {
	timers := NewTimers(context.Background(), newTestLogger(t))
	defer timers.Stop()

	var fired atomic.Bool
	timers.Schedule("booking:b1", time.Now().Add(20*time.Millisecond), func(ctx context.Context) {
		fired.Store(true)
	})

	time.Sleep(60 * time.Millisecond)
	if !fired.Load() {
		t.Fatal("timer did not fire")
	}
}

func TestTimers_CancelDisarms(t *testing.T) {
	timers := NewTimers(context.Background(), newTestLogger(t))
	defer timers.Stop()

	var fired atomic.Bool
	timers.Schedule("booking:b1", time.Now().Add(20*time.Millisecond), func(ctx context.Context) {
		fired.Store(true)
	})
	timers.Cancel("booking:b1")

	time.Sleep(60 * time.Millisecond)
	if fired.Load() {
		t.Fatal("cancelled timer fired anyway")
	}
}

func TestTimers_CancelUnknownIsNoop(t *testing.T) {
	timers := NewTimers(context.Background(), newTestLogger(t))
	defer timers.Stop()

	timers.Cancel("booking:never-armed")
}

func TestTimers_RescheduleReplacesExisting(t *testing.T) {
	timers := NewTimers(context.Background(), newTestLogger(t))
	defer timers.Stop()

	var first, second atomic.Bool
	timers.Schedule("booking:b1", time.Now().Add(20*time.Millisecond), func(ctx context.Context) {
		first.Store(true)
	})
	timers.Schedule("booking:b1", time.Now().Add(40*time.Millisecond), func(ctx context.Context) {
		second.Store(true)
	})

	time.Sleep(100 * time.Millisecond)
	if first.Load() {
		t.Fatal("replaced timer fired")
	}
	if !second.Load() {
		t.Fatal("replacement timer did not fire")
	}
}

func TestTimers_PastDeadlineFiresImmediately(t *testing.T) {
	timers := NewTimers(context.Background(), newTestLogger(t))
	defer timers.Stop()

	fired := make(chan struct{})
	timers.Schedule("booking:b1", time.Now().Add(-time.Minute), func(ctx context.Context) {
		close(fired)
	})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("past-deadline timer did not fire")
	}
}

func TestTimers_StopDisarmsEverything(t *testing.T) {
	timers := NewTimers(context.Background(), newTestLogger(t))

	var fired atomic.Bool
	timers.Schedule("booking:b1", time.Now().Add(20*time.Millisecond), func(ctx context.Context) {
		fired.Store(true)
	})
	timers.Schedule("token:t1", time.Now().Add(20*time.Millisecond), func(ctx context.Context) {
		fired.Store(true)
	})
	timers.Stop()

	// Schedule after Stop must not arm anything either.
	timers.Schedule("booking:b2", time.Now().Add(20*time.Millisecond), func(ctx context.Context) {
		fired.Store(true)
	})

	time.Sleep(60 * time.Millisecond)
	if fired.Load() {
		t.Fatal("timer fired after Stop")
	}
}

func TestTimers_CancelledContextSuppressesCallback(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	timers := NewTimers(ctx, newTestLogger(t))
	defer timers.Stop()

	var fired atomic.Bool
	timers.Schedule("booking:b1", time.Now().Add(20*time.Millisecond), func(ctx context.Context) {
		fired.Store(true)
	})
	cancel()

	time.Sleep(60 * time.Millisecond)
	if fired.Load() {
		t.Fatal("callback ran after root context cancel")
	}
}
