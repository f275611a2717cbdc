package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
	"github.com/fuadinadhif/staysane-sub002/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type availabilityMocks struct {
	calendarRepo *mocks.MockCalendarRepo
	roomRepo     *mocks.MockRoomRepo
	cache        *mocks.MockAvailabilityCache
}

func newAvailabilityService(t *testing.T) (*AvailabilityService, availabilityMocks) {
	t.Helper()
	m := availabilityMocks{
		calendarRepo: mocks.NewMockCalendarRepo(t),
		roomRepo:     mocks.NewMockRoomRepo(t),
		cache:        mocks.NewMockAvailabilityCache(t),
	}
	return NewAvailabilityService(m.calendarRepo, m.roomRepo, m.cache, newTestLogger(t)), m
}

func TestAvailabilityService_CheckAvailability_Open(t *testing.T) {
	svc, m := newAvailabilityService(t)

	checkIn, checkOut := day("2026-10-01"), day("2026-10-03")
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1"}, nil)
	m.calendarRepo.EXPECT().CheckRange(mock.Anything, "r1", checkIn, checkOut).
		Return(domain.RangeCheck{Available: true}, nil)

	check, err := svc.CheckAvailability(context.Background(), "r1", checkIn, checkOut)

	require.NoError(t, err)
	assert.True(t, check.Available)
	assert.Empty(t, check.ConflictingDates)
}

func TestAvailabilityService_CheckAvailability_Conflicts(t *testing.T) {
	svc, m := newAvailabilityService(t)

	checkIn, checkOut := day("2026-10-01"), day("2026-10-03")
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1"}, nil)
	m.calendarRepo.EXPECT().CheckRange(mock.Anything, "r1", checkIn, checkOut).
		Return(domain.RangeCheck{Available: false, ConflictingDates: []time.Time{day("2026-10-02")}}, nil)

	check, err := svc.CheckAvailability(context.Background(), "r1", checkIn, checkOut)

	require.NoError(t, err)
	assert.False(t, check.Available)
	require.Len(t, check.ConflictingDates, 1)
	assert.Equal(t, day("2026-10-02"), check.ConflictingDates[0])
}

func TestAvailabilityService_CheckAvailability_InvertedRange(t *testing.T) {
	svc, _ := newAvailabilityService(t)

	_, err := svc.CheckAvailability(context.Background(), "r1", day("2026-10-03"), day("2026-10-01"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAvailabilityService_UnavailableDates_CacheHit(t *testing.T) {
	svc, m := newAvailabilityService(t)

	cached := []time.Time{day("2026-10-02")}
	m.cache.EXPECT().GetUnavailable(mock.Anything, "r1").Return(cached, true, nil)

	days, err := svc.UnavailableDates(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, cached, days)
	// no calendar or room expectations: the hit short-circuits everything
}

func TestAvailabilityService_UnavailableDates_CacheMissReadsThrough(t *testing.T) {
	svc, m := newAvailabilityService(t)

	fromDB := []time.Time{day("2026-10-02"), day("2026-10-03")}
	m.cache.EXPECT().GetUnavailable(mock.Anything, "r1").Return(nil, false, nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1"}, nil)
	m.calendarRepo.EXPECT().UnavailableDates(mock.Anything, "r1", mock.Anything).Return(fromDB, nil)
	m.cache.EXPECT().SetUnavailable(mock.Anything, "r1", fromDB).Return(nil)

	days, err := svc.UnavailableDates(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, fromDB, days)
}

func TestAvailabilityService_UnavailableDates_CacheErrorFallsBack(t *testing.T) {
	svc, m := newAvailabilityService(t)

	fromDB := []time.Time{day("2026-10-02")}
	m.cache.EXPECT().GetUnavailable(mock.Anything, "r1").Return(nil, false, errors.New("redis down"))
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1"}, nil)
	m.calendarRepo.EXPECT().UnavailableDates(mock.Anything, "r1", mock.Anything).Return(fromDB, nil)
	m.cache.EXPECT().SetUnavailable(mock.Anything, "r1", fromDB).Return(nil)

	days, err := svc.UnavailableDates(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, fromDB, days)
}

func TestAvailabilityService_UnavailableDates_RoomMissing(t *testing.T) {
	svc, m := newAvailabilityService(t)

	m.cache.EXPECT().GetUnavailable(mock.Anything, "missing").Return(nil, false, nil)
	m.roomRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRoomNotFound)

	_, err := svc.UnavailableDates(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestAvailabilityService_Block_InvalidatesCache(t *testing.T) {
	svc, m := newAvailabilityService(t)

	days := []time.Time{day("2026-10-02"), day("2026-10-03")}
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", TenantID: "t1"}, nil)
	m.calendarRepo.EXPECT().Block(mock.Anything, "r1", days).Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "r1").Return(nil)

	err := svc.Block(context.Background(), "t1", "r1", days)

	require.NoError(t, err)
}

func TestAvailabilityService_Block_Forbidden(t *testing.T) {
	svc, m := newAvailabilityService(t)

	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", TenantID: "t1"}, nil)

	err := svc.Block(context.Background(), "intruder", "r1", []time.Time{day("2026-10-02")})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAvailabilityService_Block_NoDates(t *testing.T) {
	svc, m := newAvailabilityService(t)

	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", TenantID: "t1"}, nil)

	err := svc.Block(context.Background(), "t1", "r1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAvailabilityService_Unblock_InvalidatesCache(t *testing.T) {
	svc, m := newAvailabilityService(t)

	days := []time.Time{day("2026-10-02")}
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", TenantID: "t1"}, nil)
	m.calendarRepo.EXPECT().Unblock(mock.Anything, "r1", days).Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "r1").Return(nil)

	err := svc.Unblock(context.Background(), "t1", "r1", days)

	require.NoError(t, err)
}

func TestAvailabilityService_Block_HeldDatesConflict(t *testing.T) {
	svc, m := newAvailabilityService(t)

	days := []time.Time{day("2026-10-02")}
	m.roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", TenantID: "t1"}, nil)
	m.calendarRepo.EXPECT().Block(mock.Anything, "r1", days).
		Return(&domain.DateConflictError{RoomID: "r1", Dates: days})

	err := svc.Block(context.Background(), "t1", "r1", days)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDatesUnavailable)
}
