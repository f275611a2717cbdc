package ports

import (
	"context"
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
)

type BookingRepo interface {
	// Create inserts the booking and holds every night's calendar cell in
	// one transaction. A cell that is already blocked or held fails the
	// whole transaction with a *domain.DateConflictError.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByOrderCode(ctx context.Context, code string) (*domain.Booking, error)
	List(ctx context.Context, f domain.BookingFilter) ([]*domain.Booking, error)
	// Transition is the CAS-guarded status update: it succeeds only if the
	// row still carries the expected prior status, otherwise it reports a
	// *domain.StaleStatusError. expiresAt overwrites the deadline (nil
	// clears it).
	Transition(ctx context.Context, id string, from, to domain.BookingStatus, expiresAt *time.Time) error
	// Release performs a CAS transition to a terminal status and deletes
	// the booking's held calendar cells in the same transaction.
	Release(ctx context.Context, id string, from, to domain.BookingStatus) error
	// ExpireOverdue is the reconciliation sweep: every waiting_payment
	// booking whose deadline has passed flips to expired and its cells are
	// released, all in one statement batch.
	ExpireOverdue(ctx context.Context) ([]*domain.Booking, error)
	// CompleteElapsed flips processing bookings whose checkout date has
	// passed to completed.
	CompleteElapsed(ctx context.Context) ([]*domain.Booking, error)
}
