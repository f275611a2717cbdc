package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"
)

// Timers is the best-effort one-shot side of the expiry design: each entry
// fires a callback near its deadline so expiry latency stays low, while
// the reconciliation sweep guarantees correctness when a timer is lost to
// a restart. It is an explicitly constructed, explicitly stopped resource
// so tests can run isolated instances.
type Timers struct {
	mu      sync.Mutex
	entries map[string]*time.Timer
	ctx     context.Context
	logger  logger.Logger
	stopped bool
}

func NewTimers(ctx context.Context, logger logger.Logger) *Timers {
	return &Timers{
		entries: make(map[string]*time.Timer),
		ctx:     ctx,
		logger:  logger,
	}
}

// Schedule arms fn for the given instant, replacing any timer already
// registered under the same key. A deadline in the past fires immediately.
func (t *Timers) Schedule(id string, at time.Time, fn func(context.Context)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}
	if old, ok := t.entries[id]; ok {
		old.Stop()
	}

	delay := time.Until(at)
	if delay < 0 {
		delay = 0
	}
	t.entries[id] = time.AfterFunc(delay, func() {
		t.remove(id)
		if t.ctx.Err() != nil {
			return
		}
		fn(t.ctx)
	})

	t.logger.Debug("one-shot timer armed",
		logger.String("id", id),
		logger.Duration("delay", delay),
	)
}

// Cancel disarms the timer for id; cancelling an unknown or already-fired
// timer is a no-op.
func (t *Timers) Cancel(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if timer, ok := t.entries[id]; ok {
		timer.Stop()
		delete(t.entries, id)
	}
}

// Stop disarms every pending timer. Callbacks already in flight finish on
// their own; the sweep covers anything they miss.
func (t *Timers) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopped = true
	for id, timer := range t.entries {
		timer.Stop()
		delete(t.entries, id)
	}
}

func (t *Timers) remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, id)
}
