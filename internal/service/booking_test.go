package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
	"github.com/fuadinadhif/staysane-sub002/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingMocks struct {
	bookingRepo *mocks.MockBookingRepo
	roomRepo    *mocks.MockRoomRepo
	userRepo    *mocks.MockUserRepo
	quoter      *mocks.MockQuoter
	cache       *mocks.MockAvailabilityCache
	timers      *mocks.MockExpiryTimers
	notifier    *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T, paymentTTL time.Duration) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookingRepo: mocks.NewMockBookingRepo(t),
		roomRepo:    mocks.NewMockRoomRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		quoter:      mocks.NewMockQuoter(t),
		cache:       mocks.NewMockAvailabilityCache(t),
		timers:      mocks.NewMockExpiryTimers(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}
	svc := NewBookingService(
		m.bookingRepo, m.roomRepo, m.userRepo, m.quoter,
		m.cache, m.timers, m.notifier,
		newTestLogger(t), paymentTTL,
	)
	return svc, m
}

func futureStay(nights int) (time.Time, time.Time) {
	checkIn := domain.DayUTC(time.Now().AddDate(0, 0, 7))
	return checkIn, checkIn.AddDate(0, 0, nights)
}

func TestBookingService_Create_HoldsAndArmsTimer(t *testing.T) {
	svc, m := newBookingService(t, time.Hour)

	checkIn, checkOut := futureStay(2)
	user := &domain.User{ID: "u1", Username: "alice", Email: "alice@test.dev"}
	room := &domain.Room{ID: "r1", TenantID: "t1", Name: "Sea View", BasePrice: 100}
	quote := &domain.Quote{RoomID: "r1", CheckIn: checkIn, CheckOut: checkOut, Total: 200}

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
	m.quoter.EXPECT().Quote(mock.Anything, "r1", checkIn, checkOut).Return(quote, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "r1").Return(nil)
	m.timers.EXPECT().Schedule(mock.Anything, mock.Anything, mock.Anything).Return()
	m.notifier.EXPECT().NotifyBookingCreated(mock.Anything, user, mock.Anything, room).Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		RoomID:        "r1",
		UserID:        "u1",
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		PaymentMethod: domain.PaymentMethodManualTransfer,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusWaitingPayment, booking.Status)
	assert.Equal(t, 200.0, booking.TotalAmount)
	assert.True(t, strings.HasPrefix(booking.OrderCode, "STY-"))
	require.NotNil(t, booking.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *booking.ExpiresAt, 5*time.Second)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_RejectsInvertedRange(t *testing.T) {
	svc, _ := newBookingService(t, time.Hour)

	checkIn, checkOut := futureStay(2)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		RoomID:        "r1",
		UserID:        "u1",
		CheckIn:       checkOut,
		CheckOut:      checkIn,
		PaymentMethod: domain.PaymentMethodManualTransfer,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_RejectsPastCheckIn(t *testing.T) {
	svc, _ := newBookingService(t, time.Hour)

	checkIn := domain.DayUTC(time.Now().AddDate(0, 0, -3))

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		RoomID:        "r1",
		UserID:        "u1",
		CheckIn:       checkIn,
		CheckOut:      checkIn.AddDate(0, 0, 2),
		PaymentMethod: domain.PaymentMethodManualTransfer,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_DateConflict(t *testing.T) {
	svc, m := newBookingService(t, time.Hour)

	checkIn, checkOut := futureStay(2)
	user := &domain.User{ID: "u1"}
	room := &domain.Room{ID: "r1", TenantID: "t1", BasePrice: 100}
	quote := &domain.Quote{RoomID: "r1", Total: 200}

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
	m.quoter.EXPECT().Quote(mock.Anything, "r1", checkIn, checkOut).Return(quote, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(&domain.DateConflictError{RoomID: "r1", Dates: []time.Time{checkIn}})

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		RoomID:        "r1",
		UserID:        "u1",
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		PaymentMethod: domain.PaymentMethodManualTransfer,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDatesUnavailable)

	var conflict *domain.DateConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []time.Time{checkIn}, conflict.Dates)
}

func TestBookingService_GetByID_GuestOwnerOrTenant(t *testing.T) {
	svc, m := newBookingService(t, time.Hour)

	booking := &domain.Booking{ID: "b1", RoomID: "r1", UserID: "u1"}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	got, err := svc.GetByID(context.Background(), "u1", "b1")
	require.NoError(t, err)
	assert.Equal(t, booking, got)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", TenantID: "t1"}, nil)

	_, err = svc.GetByID(context.Background(), "t1", "b1")
	require.NoError(t, err)

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", TenantID: "t1"}, nil)

	_, err = svc.GetByID(context.Background(), "stranger", "b1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Cancel_ReleasesHold(t *testing.T) {
	svc, m := newBookingService(t, time.Hour)

	booking := &domain.Booking{ID: "b1", RoomID: "r1", UserID: "u1", Status: domain.BookingStatusWaitingPayment}
	user := &domain.User{ID: "u1"}
	room := &domain.Room{ID: "r1", TenantID: "t1"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().Release(
		mock.Anything, "b1",
		domain.BookingStatusWaitingPayment, domain.BookingStatusCanceled,
	).Return(nil)
	m.timers.EXPECT().Cancel("booking:b1").Return()
	m.cache.EXPECT().Invalidate(mock.Anything, "r1").Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
	m.notifier.EXPECT().NotifyBookingCanceled(mock.Anything, user, booking, room).Return()

	err := svc.Cancel(context.Background(), "u1", "b1")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_Forbidden(t *testing.T) {
	svc, m := newBookingService(t, time.Hour)

	booking := &domain.Booking{ID: "b1", RoomID: "r1", UserID: "u1"}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := svc.Cancel(context.Background(), "someone-else", "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Cancel_StaleStatus(t *testing.T) {
	svc, m := newBookingService(t, time.Hour)

	booking := &domain.Booking{ID: "b1", RoomID: "r1", UserID: "u1", Status: domain.BookingStatusProcessing}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().Release(
		mock.Anything, "b1",
		domain.BookingStatusWaitingPayment, domain.BookingStatusCanceled,
	).Return(&domain.StaleStatusError{
		BookingID: "b1",
		Expected:  domain.BookingStatusWaitingPayment,
		Current:   domain.BookingStatusProcessing,
	})

	err := svc.Cancel(context.Background(), "u1", "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStaleStatus)
}

func TestBookingService_ConfirmGateway_WrongMethod(t *testing.T) {
	svc, m := newBookingService(t, time.Hour)

	booking := &domain.Booking{ID: "b1", PaymentMethod: domain.PaymentMethodManualTransfer}
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := svc.ConfirmGateway(context.Background(), "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_ConfirmGateway_ClearsDeadline(t *testing.T) {
	svc, m := newBookingService(t, time.Hour)

	booking := &domain.Booking{ID: "b1", RoomID: "r1", UserID: "u1", PaymentMethod: domain.PaymentMethodGateway}
	user := &domain.User{ID: "u1"}
	room := &domain.Room{ID: "r1"}

	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.bookingRepo.EXPECT().Transition(
		mock.Anything, "b1",
		domain.BookingStatusWaitingPayment, domain.BookingStatusProcessing,
		(*time.Time)(nil),
	).Return(nil)
	m.timers.EXPECT().Cancel("booking:b1").Return()
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
	m.notifier.EXPECT().NotifyPaymentConfirmed(mock.Anything, user, booking, room).Return()

	err := svc.ConfirmGateway(context.Background(), "b1")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ExpireOverdue_CleansUpEachBooking(t *testing.T) {
	svc, m := newBookingService(t, time.Hour)

	expired := []*domain.Booking{
		{ID: "b1", RoomID: "r1", UserID: "u1"},
		{ID: "b2", RoomID: "r2", UserID: "u2"},
	}
	m.bookingRepo.EXPECT().ExpireOverdue(mock.Anything).Return(expired, nil)
	m.timers.EXPECT().Cancel("booking:b1").Return()
	m.timers.EXPECT().Cancel("booking:b2").Return()
	m.cache.EXPECT().Invalidate(mock.Anything, "r1").Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "r2").Return(nil)

	for _, b := range expired {
		user := &domain.User{ID: b.UserID}
		room := &domain.Room{ID: b.RoomID}
		m.userRepo.EXPECT().GetByID(mock.Anything, b.UserID).Return(user, nil)
		m.roomRepo.EXPECT().GetByID(mock.Anything, b.RoomID).Return(room, nil)
		m.notifier.EXPECT().NotifyBookingExpired(mock.Anything, user, b, room).Return()
	}

	got, err := svc.ExpireOverdue(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ExpireOverdue_NothingToDo(t *testing.T) {
	svc, m := newBookingService(t, time.Hour)

	m.bookingRepo.EXPECT().ExpireOverdue(mock.Anything).Return(nil, nil)

	got, err := svc.ExpireOverdue(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBookingService_CompleteElapsed(t *testing.T) {
	svc, m := newBookingService(t, time.Hour)

	completed := []*domain.Booking{{ID: "b1", Status: domain.BookingStatusCompleted}}
	m.bookingRepo.EXPECT().CompleteElapsed(mock.Anything).Return(completed, nil)

	got, err := svc.CompleteElapsed(context.Background())

	require.NoError(t, err)
	assert.Equal(t, completed, got)
}

func TestBookingService_ExpireFromTimer_LosesRaceQuietly(t *testing.T) {
	svc, m := newBookingService(t, time.Hour)

	m.bookingRepo.EXPECT().Release(
		mock.Anything, "b1",
		domain.BookingStatusWaitingPayment, domain.BookingStatusExpired,
	).Return(&domain.StaleStatusError{
		BookingID: "b1",
		Expected:  domain.BookingStatusWaitingPayment,
		Current:   domain.BookingStatusProcessing,
	})

	// must not panic, notify, or touch the cache
	svc.expireFromTimer(context.Background(), "b1")
}

func TestBookingService_ExpireFromTimer_Expires(t *testing.T) {
	svc, m := newBookingService(t, time.Hour)

	booking := &domain.Booking{ID: "b1", RoomID: "r1", UserID: "u1"}
	user := &domain.User{ID: "u1"}
	room := &domain.Room{ID: "r1"}

	m.bookingRepo.EXPECT().Release(
		mock.Anything, "b1",
		domain.BookingStatusWaitingPayment, domain.BookingStatusExpired,
	).Return(nil)
	m.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "r1").Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
	m.notifier.EXPECT().NotifyBookingExpired(mock.Anything, user, booking, room).Return()

	svc.expireFromTimer(context.Background(), "b1")
}

func TestBookingService_List_Passthrough(t *testing.T) {
	svc, m := newBookingService(t, time.Hour)

	filter := domain.BookingFilter{UserID: "u1", Status: domain.BookingStatusWaitingPayment}
	want := []*domain.Booking{{ID: "b1"}}
	m.bookingRepo.EXPECT().List(mock.Anything, filter).Return(want, nil)

	got, err := svc.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBookingService_List_UnknownStatus(t *testing.T) {
	svc, _ := newBookingService(t, time.Hour)

	_, err := svc.List(context.Background(), domain.BookingFilter{
		Status: domain.BookingStatus("paid"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_UnknownPaymentMethod(t *testing.T) {
	svc, _ := newBookingService(t, time.Hour)

	checkIn, checkOut := futureStay(1)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		RoomID:        "r1",
		UserID:        "u1",
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		PaymentMethod: domain.PaymentMethod("cash"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
