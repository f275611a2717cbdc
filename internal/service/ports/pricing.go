package ports

import (
	"context"
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
)

type AdjustmentRepo interface {
	Create(ctx context.Context, a *domain.PriceAdjustment) error
	// ListForRange returns every adjustment of the room that could touch a
	// date in [from, to), newest first.
	ListForRange(ctx context.Context, roomID string, from, to time.Time) ([]*domain.PriceAdjustment, error)
}

type Quoter interface {
	PriceForDate(ctx context.Context, roomID string, day time.Time) (float64, error)
	Quote(ctx context.Context, roomID string, checkIn, checkOut time.Time) (*domain.Quote, error)
}
