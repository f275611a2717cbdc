package ports

import (
	"context"
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
)

type ProofRepo interface {
	// Attach inserts the proof and CAS-moves the booking from
	// waiting_payment to waiting_confirmation in one transaction.
	Attach(ctx context.Context, p *domain.PaymentProof) error
	// Approve stamps the pending proof accepted and CAS-moves the booking
	// from waiting_confirmation to processing, clearing the deadline, all
	// in one transaction.
	Approve(ctx context.Context, bookingID, reviewerID string, at time.Time) error
	// Reject stamps the pending proof rejected. With rearmTo set the
	// booking CAS-moves back to waiting_payment with the new deadline;
	// with rearmTo nil it expires immediately and its cells are released.
	Reject(ctx context.Context, bookingID, reviewerID string, at time.Time, rearmTo *time.Time) error
	ActiveByBooking(ctx context.Context, bookingID string) (*domain.PaymentProof, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.PaymentProof, error)
}
