package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
	"github.com/fuadinadhif/staysane-sub002/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ProofService struct {
	proofRepo   ports.ProofRepo
	bookingRepo ports.BookingRepo
	roomRepo    ports.RoomRepo
	userRepo    ports.UserRepo
	uploader    ports.ProofUploader
	cache       ports.AvailabilityCache
	timers      ports.ExpiryTimers
	notifier    ports.BookingNotifier
	logger      logger.Logger
	paymentTTL  time.Duration
	rejectGrace time.Duration
}

func NewProofService(
	proofRepo ports.ProofRepo,
	bookingRepo ports.BookingRepo,
	roomRepo ports.RoomRepo,
	userRepo ports.UserRepo,
	uploader ports.ProofUploader,
	cache ports.AvailabilityCache,
	timers ports.ExpiryTimers,
	notifier ports.BookingNotifier,
	logger logger.Logger,
	paymentTTL time.Duration,
	rejectGrace time.Duration,
) *ProofService {
	return &ProofService{
		proofRepo:   proofRepo,
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		uploader:    uploader,
		cache:       cache,
		timers:      timers,
		notifier:    notifier,
		logger:      logger,
		paymentTTL:  paymentTTL,
		rejectGrace: rejectGrace,
	}
}

// Upload stores the image with the upload collaborator, then attaches the
// proof and moves the booking to waiting_confirmation in one transaction.
// The status is checked before the upload to fail fast, and re-checked by
// the CAS guard inside Attach.
func (s *ProofService) Upload(ctx context.Context, actorID, bookingID string, image []byte) (*domain.PaymentProof, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: image is required", domain.ErrValidation)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.UserID != actorID {
		return nil, fmt.Errorf("%w: booking belongs to another guest", domain.ErrForbidden)
	}
	if booking.PaymentMethod != domain.PaymentMethodManualTransfer {
		return nil, fmt.Errorf("%w: booking does not use manual transfer", domain.ErrValidation)
	}
	if booking.Status != domain.BookingStatusWaitingPayment {
		return nil, &domain.StaleStatusError{
			BookingID: bookingID,
			Expected:  domain.BookingStatusWaitingPayment,
			Current:   booking.Status,
		}
	}

	proofID := newID()
	url, err := s.uploader.Upload(ctx, image, proofID)
	if err != nil {
		return nil, fmt.Errorf("upload proof image: %w", err)
	}

	proof := &domain.PaymentProof{
		ID:         proofID,
		BookingID:  bookingID,
		UploadedBy: actorID,
		ImageURL:   url,
		UploadedAt: time.Now().UTC(),
	}
	if err = s.proofRepo.Attach(ctx, proof); err != nil {
		return nil, fmt.Errorf("attach proof: %w", err)
	}

	// The deadline is suspended while the tenant reviews.
	s.timers.Cancel(bookingTimerKey(bookingID))

	s.logger.Info("payment proof uploaded",
		logger.String("booking_id", bookingID),
		logger.String("proof_id", proof.ID),
	)

	return proof, nil
}

// Approve moves the booking to processing and stamps the proof accepted in
// one atomic update pair. Only the room's owning tenant may review.
func (s *ProofService) Approve(ctx context.Context, reviewerID, bookingID string) error {
	booking, err := s.authorizeReviewer(ctx, reviewerID, bookingID)
	if err != nil {
		return err
	}

	if err = s.proofRepo.Approve(ctx, bookingID, reviewerID, time.Now().UTC()); err != nil {
		return fmt.Errorf("approve proof: %w", err)
	}

	s.logger.Info("payment proof approved",
		logger.String("booking_id", bookingID),
		logger.String("reviewer_id", reviewerID),
	)

	go s.notify(context.WithoutCancel(ctx), booking, s.notifier.NotifyPaymentConfirmed)

	return nil
}

// Reject returns the booking to waiting_payment when the original payment
// window is still open, re-arming the deadline with the configured grace
// (capped at the original window); past the window the booking expires
// immediately and its cells are released.
func (s *ProofService) Reject(ctx context.Context, reviewerID, bookingID string) error {
	booking, err := s.authorizeReviewer(ctx, reviewerID, bookingID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	windowEnd := booking.CreatedAt.Add(s.paymentTTL)

	if now.Before(windowEnd) {
		rearmTo := now.Add(s.rejectGrace)
		if rearmTo.After(windowEnd) {
			rearmTo = windowEnd
		}
		if err = s.proofRepo.Reject(ctx, bookingID, reviewerID, now, &rearmTo); err != nil {
			return fmt.Errorf("reject proof: %w", err)
		}

		s.timers.Schedule(bookingTimerKey(bookingID), rearmTo, func(tctx context.Context) {
			s.expireFromTimer(tctx, bookingID, booking.RoomID)
		})
	} else {
		if err = s.proofRepo.Reject(ctx, bookingID, reviewerID, now, nil); err != nil {
			return fmt.Errorf("reject proof: %w", err)
		}
		s.invalidate(ctx, booking.RoomID)
		go s.notify(context.WithoutCancel(ctx), booking, s.notifier.NotifyBookingExpired)
	}

	s.logger.Info("payment proof rejected",
		logger.String("booking_id", bookingID),
		logger.String("reviewer_id", reviewerID),
	)

	go s.notify(context.WithoutCancel(ctx), booking, s.notifier.NotifyProofRejected)

	return nil
}

// Get returns the active proof, visible to the guest and the room's tenant.
func (s *ProofService) Get(ctx context.Context, actorID, bookingID string) (*domain.PaymentProof, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.UserID != actorID {
		room, rErr := s.roomRepo.GetByID(ctx, booking.RoomID)
		if rErr != nil {
			return nil, fmt.Errorf("get room: %w", rErr)
		}
		if room.TenantID != actorID {
			return nil, fmt.Errorf("%w: not a party to this booking", domain.ErrForbidden)
		}
	}

	return s.proofRepo.ActiveByBooking(ctx, bookingID)
}

func (s *ProofService) History(ctx context.Context, actorID, bookingID string) ([]*domain.PaymentProof, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.UserID != actorID {
		room, rErr := s.roomRepo.GetByID(ctx, booking.RoomID)
		if rErr != nil {
			return nil, fmt.Errorf("get room: %w", rErr)
		}
		if room.TenantID != actorID {
			return nil, fmt.Errorf("%w: not a party to this booking", domain.ErrForbidden)
		}
	}

	return s.proofRepo.ListByBooking(ctx, bookingID)
}

// expireFromTimer mirrors the booking orchestrator's one-shot path for the
// re-armed post-rejection deadline; the sweep remains the backstop.
func (s *ProofService) expireFromTimer(ctx context.Context, bookingID, roomID string) {
	err := s.bookingRepo.Release(
		ctx, bookingID,
		domain.BookingStatusWaitingPayment, domain.BookingStatusExpired,
	)
	if err != nil {
		if errors.Is(err, domain.ErrStaleStatus) || errors.Is(err, domain.ErrBookingNotFound) {
			return
		}
		s.logger.Error("post-rejection expiry failed, sweep will retry",
			logger.String("booking_id", bookingID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("booking expired after rejected proof",
		logger.String("booking_id", bookingID),
	)
	s.invalidate(ctx, roomID)
}

func (s *ProofService) authorizeReviewer(ctx context.Context, reviewerID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	room, err := s.roomRepo.GetByID(ctx, booking.RoomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room.TenantID != reviewerID {
		return nil, fmt.Errorf("%w: only the room's tenant may review proofs", domain.ErrForbidden)
	}

	return booking, nil
}

func (s *ProofService) notify(
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

func (s *ProofService) invalidate(ctx context.Context, roomID string) {
	if err := s.cache.Invalidate(ctx, roomID); err != nil {
		s.logger.Error("availability cache invalidation failed",
			logger.String("room_id", roomID),
			logger.String("error", err.Error()),
		)
	}
}
