package ports

import (
	"context"
	"time"
)

// ExpiryTimers arms best-effort one-shot callbacks for future instants.
// Timers may fire late or be lost across restarts; the reconciliation
// sweep is the correctness backstop, so every callback must be safe to
// run redundantly.
type ExpiryTimers interface {
	Schedule(id string, at time.Time, fn func(context.Context))
	Cancel(id string)
}
