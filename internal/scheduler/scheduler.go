package scheduler

import (
	"context"
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type BookingSweeper interface {
	ExpireOverdue(ctx context.Context) ([]*domain.Booking, error)
	CompleteElapsed(ctx context.Context) ([]*domain.Booking, error)
}

type TokenSweeper interface {
	ExpireOverdue(ctx context.Context) ([]*domain.VerificationToken, error)
}

// Scheduler runs the periodic reconciliation sweep. The one-shot timers
// are only a latency optimization; this sweep is the source of truth for
// expiry, and because every action behind it is CAS-guarded, overlapping
// or redundant sweeps degrade to no-ops.
type Scheduler struct {
	bookings BookingSweeper
	tokens   TokenSweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	bookings BookingSweeper,
	tokens TokenSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookings: bookings,
		tokens:   tokens,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick logs failures and moves on; a failed pass is retried on the next
// interval rather than crashing the scheduler.
func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.bookings.ExpireOverdue(ctx)
	if err != nil {
		s.logger.Error("failed to expire overdue bookings",
			logger.String("error", err.Error()),
		)
	}
	for _, b := range expired {
		s.logger.Info("booking expired by sweep",
			logger.String("booking_id", b.ID),
			logger.String("room_id", b.RoomID),
			logger.String("user_id", b.UserID),
		)
	}

	completed, err := s.bookings.CompleteElapsed(ctx)
	if err != nil {
		s.logger.Error("failed to complete elapsed bookings",
			logger.String("error", err.Error()),
		)
	}
	for _, b := range completed {
		s.logger.Info("booking completed by sweep",
			logger.String("booking_id", b.ID),
		)
	}

	tokens, err := s.tokens.ExpireOverdue(ctx)
	if err != nil {
		s.logger.Error("failed to expire overdue tokens",
			logger.String("error", err.Error()),
		)
	}
	for _, t := range tokens {
		s.logger.Info("token expired by sweep",
			logger.String("token_id", t.ID),
		)
	}
}
