package ports

import (
	"context"
	"time"
)

// AvailabilityCache caches a room's unavailable dates. A miss is (nil,
// false, nil); cache errors are surfaced so callers can log and fall
// through to the store.
type AvailabilityCache interface {
	GetUnavailable(ctx context.Context, roomID string) ([]time.Time, bool, error)
	SetUnavailable(ctx context.Context, roomID string, days []time.Time) error
	Invalidate(ctx context.Context, roomID string) error
}
