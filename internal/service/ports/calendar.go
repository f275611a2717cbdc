package ports

import (
	"context"
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
)

type CalendarRepo interface {
	CheckRange(ctx context.Context, roomID string, checkIn, checkOut time.Time) (domain.RangeCheck, error)
	Block(ctx context.Context, roomID string, days []time.Time) error
	Unblock(ctx context.Context, roomID string, days []time.Time) error
	UnavailableDates(ctx context.Context, roomID string, from time.Time) ([]time.Time, error)
}
