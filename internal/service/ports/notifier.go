package ports

import (
	"context"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
)

// BookingNotifier delivers lifecycle emails. Delivery is best-effort:
// implementations log failures and never propagate them, so a notification
// problem can never leave a booking stuck.
type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, booking *domain.Booking, room *domain.Room)
	NotifyPaymentConfirmed(ctx context.Context, user *domain.User, booking *domain.Booking, room *domain.Room)
	NotifyBookingCanceled(ctx context.Context, user *domain.User, booking *domain.Booking, room *domain.Room)
	NotifyBookingExpired(ctx context.Context, user *domain.User, booking *domain.Booking, room *domain.Room)
	NotifyProofRejected(ctx context.Context, user *domain.User, booking *domain.Booking, room *domain.Room)
}
