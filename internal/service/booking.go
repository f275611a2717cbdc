package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
	"github.com/fuadinadhif/staysane-sub002/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	roomRepo    ports.RoomRepo
	userRepo    ports.UserRepo
	quoter      ports.Quoter
	cache       ports.AvailabilityCache
	timers      ports.ExpiryTimers
	notifier    ports.BookingNotifier
	logger      logger.Logger
	paymentTTL  time.Duration
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	roomRepo ports.RoomRepo,
	userRepo ports.UserRepo,
	quoter ports.Quoter,
	cache ports.AvailabilityCache,
	timers ports.ExpiryTimers,
	notifier ports.BookingNotifier,
	logger logger.Logger,
	paymentTTL time.Duration,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		quoter:      quoter,
		cache:       cache,
		timers:      timers,
		notifier:    notifier,
		logger:      logger,
		paymentTTL:  paymentTTL,
	}
}

// Create quotes the stay, persists the booking with its calendar holds in
// one transaction, then arms the one-shot payment deadline. The quoted
// total is frozen on the row and never recomputed.
func (s *BookingService) Create(ctx context.Context, in domain.CreateBookingInput) (*domain.Booking, error) {
	checkIn, checkOut := domain.DayUTC(in.CheckIn), domain.DayUTC(in.CheckOut)
	today := domain.DayUTC(time.Now())
	if !checkIn.Before(checkOut) {
		return nil, fmt.Errorf("%w: check_in must be before check_out", domain.ErrValidation)
	}
	if checkIn.Before(today) {
		return nil, fmt.Errorf("%w: check_in must not be in the past", domain.ErrValidation)
	}
	if in.PaymentMethod != domain.PaymentMethodManualTransfer && in.PaymentMethod != domain.PaymentMethodGateway {
		return nil, fmt.Errorf("%w: unknown payment method %q", domain.ErrValidation, in.PaymentMethod)
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	room, err := s.roomRepo.GetByID(ctx, in.RoomID)
	if err != nil {
		return nil, fmt.Errorf("check room: %w", err)
	}

	quote, err := s.quoter.Quote(ctx, in.RoomID, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("quote stay: %w", err)
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.paymentTTL)
	booking := &domain.Booking{
		ID:            newID(),
		OrderCode:     newOrderCode(now),
		RoomID:        in.RoomID,
		UserID:        in.UserID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		TotalAmount:   quote.Total,
		PaymentMethod: in.PaymentMethod,
		Status:        domain.BookingStatusWaitingPayment,
		ExpiresAt:     &expiresAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.invalidate(ctx, booking.RoomID)
	s.timers.Schedule(bookingTimerKey(booking.ID), expiresAt, func(tctx context.Context) {
		s.expireFromTimer(tctx, booking.ID)
	})

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("order_code", booking.OrderCode),
		logger.String("room_id", booking.RoomID),
		logger.String("user_id", booking.UserID),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), user, booking, room)

	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, actorID, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.UserID == actorID {
		return booking, nil
	}

	room, err := s.roomRepo.GetByID(ctx, booking.RoomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room.TenantID != actorID {
		return nil, fmt.Errorf("%w: booking belongs to another guest", domain.ErrForbidden)
	}

	return booking, nil
}

// List rejects unknown status filters instead of silently matching nothing.
func (s *BookingService) List(ctx context.Context, f domain.BookingFilter) ([]*domain.Booking, error) {
	if f.Status != "" && !f.Status.Terminal() && !slices.Contains(domain.NonTerminalStatuses, f.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, f.Status)
	}

	return s.bookingRepo.List(ctx, f)
}

// Cancel releases a guest's own unpaid booking. The CAS guard inside
// Release rejects bookings that have already moved on.
func (s *BookingService) Cancel(ctx context.Context, actorID, id string) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}
	if booking.UserID != actorID {
		return fmt.Errorf("%w: booking belongs to another guest", domain.ErrForbidden)
	}

	if err = s.bookingRepo.Release(
		ctx, id,
		domain.BookingStatusWaitingPayment, domain.BookingStatusCanceled,
	); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.timers.Cancel(bookingTimerKey(id))
	s.invalidate(ctx, booking.RoomID)

	s.logger.Info("booking canceled",
		logger.String("booking_id", id),
		logger.String("user_id", actorID),
	)

	go s.notifyStatus(context.WithoutCancel(ctx), booking, s.notifier.NotifyBookingCanceled)

	return nil
}

// ConfirmGateway handles the payment-gateway callback: the booking moves
// straight to processing and its deadline is cleared.
func (s *BookingService) ConfirmGateway(ctx context.Context, id string) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}
	if booking.PaymentMethod != domain.PaymentMethodGateway {
		return fmt.Errorf("%w: booking does not use the payment gateway", domain.ErrValidation)
	}

	if err = s.bookingRepo.Transition(
		ctx, id,
		domain.BookingStatusWaitingPayment, domain.BookingStatusProcessing, nil,
	); err != nil {
		return fmt.Errorf("confirm payment: %w", err)
	}

	s.timers.Cancel(bookingTimerKey(id))

	s.logger.Info("gateway payment confirmed",
		logger.String("booking_id", id),
	)

	go s.notifyStatus(context.WithoutCancel(ctx), booking, s.notifier.NotifyPaymentConfirmed)

	return nil
}

// ExpireOverdue is the reconciliation sweep. Both it and the one-shot
// timers funnel into the same CAS-guarded expiry, so a redundant firing
// degrades to a logged no-op instead of a double release.
func (s *BookingService) ExpireOverdue(ctx context.Context) ([]*domain.Booking, error) {
	expired, err := s.bookingRepo.ExpireOverdue(ctx)
	if err != nil {
		return nil, fmt.Errorf("expire overdue: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("overdue bookings expired",
			logger.Int("count", len(expired)),
		)

		for _, b := range expired {
			s.timers.Cancel(bookingTimerKey(b.ID))
			s.invalidate(ctx, b.RoomID)
		}
		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return expired, nil
}

// CompleteElapsed flips processing bookings past their checkout date to
// completed on the sweep tick.
func (s *BookingService) CompleteElapsed(ctx context.Context) ([]*domain.Booking, error) {
	completed, err := s.bookingRepo.CompleteElapsed(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete elapsed: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("elapsed bookings completed",
			logger.Int("count", len(completed)),
		)
	}

	return completed, nil
}

// expireFromTimer is the one-shot path. The timer is a latency
// optimization only: losing the race against the sweep, or firing on a
// booking that paid in time, is expected and harmless.
func (s *BookingService) expireFromTimer(ctx context.Context, id string) {
	err := s.bookingRepo.Release(
		ctx, id,
		domain.BookingStatusWaitingPayment, domain.BookingStatusExpired,
	)
	if err != nil {
		if errors.Is(err, domain.ErrStaleStatus) || errors.Is(err, domain.ErrBookingNotFound) {
			s.logger.Debug("expiry timer lost the race",
				logger.String("booking_id", id),
			)
			return
		}
		s.logger.Error("expiry timer failed, sweep will retry",
			logger.String("booking_id", id),
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("booking expired",
		logger.String("booking_id", id),
	)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load expired booking",
			logger.String("booking_id", id),
			logger.String("error", err.Error()),
		)
		return
	}
	s.invalidate(ctx, booking.RoomID)
	s.notifyStatus(ctx, booking, s.notifier.NotifyBookingExpired)
}

func (s *BookingService) notifyExpired(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		s.notifyStatus(ctx, b, s.notifier.NotifyBookingExpired)
	}
}

func (s *BookingService) notifyStatus(
	ctx context.Context,
	booking *domain.Booking,
	notify func(context.Context, *domain.User, *domain.Booking, *domain.Room),
) {
	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", booking.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	room, err := s.roomRepo.GetByID(ctx, booking.RoomID)
	if err != nil {
		s.logger.Error("failed to get room for notification",
			logger.String("room_id", booking.RoomID),
			logger.String("error", err.Error()),
		)
		return
	}

	notify(ctx, user, booking, room)
}

func (s *BookingService) invalidate(ctx context.Context, roomID string) {
	if err := s.cache.Invalidate(ctx, roomID); err != nil {
		s.logger.Error("availability cache invalidation failed",
			logger.String("room_id", roomID),
			logger.String("error", err.Error()),
		)
	}
}

func bookingTimerKey(id string) string { return "booking:" + id }
