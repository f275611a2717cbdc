package service

import (
	"context"
	"testing"
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
	"github.com/fuadinadhif/staysane-sub002/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestPricingService_Quote_BasePriceOnly(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	adjRepo := mocks.NewMockAdjustmentRepo(t)
	svc := NewPricingService(roomRepo, adjRepo)

	checkIn, checkOut := day("2026-10-01"), day("2026-10-03")
	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", BasePrice: 100}, nil)
	adjRepo.EXPECT().ListForRange(mock.Anything, "r1", checkIn, checkOut).Return(nil, nil)

	quote, err := svc.Quote(context.Background(), "r1", checkIn, checkOut)

	require.NoError(t, err)
	require.Len(t, quote.PerNight, 2) // checkout night excluded
	assert.Equal(t, 100.0, quote.PerNight[0].Amount)
	assert.Equal(t, 100.0, quote.PerNight[1].Amount)
	assert.Equal(t, 200.0, quote.Total)
}

func TestPricingService_Quote_PercentageAdjustment(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	adjRepo := mocks.NewMockAdjustmentRepo(t)
	svc := NewPricingService(roomRepo, adjRepo)

	checkIn, checkOut := day("2026-10-01"), day("2026-10-02")
	adjustments := []*domain.PriceAdjustment{
		{
			RoomID:      "r1",
			StartDate:   day("2026-10-01"),
			EndDate:     day("2026-10-05"),
			AdjustType:  domain.AdjustTypePercentage,
			AdjustValue: 20,
		},
	}
	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", BasePrice: 100}, nil)
	adjRepo.EXPECT().ListForRange(mock.Anything, "r1", checkIn, checkOut).Return(adjustments, nil)

	quote, err := svc.Quote(context.Background(), "r1", checkIn, checkOut)

	require.NoError(t, err)
	assert.Equal(t, 120.0, quote.Total)
}

func TestPricingService_Quote_NegativeNominalFloorsAtZero(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	adjRepo := mocks.NewMockAdjustmentRepo(t)
	svc := NewPricingService(roomRepo, adjRepo)

	checkIn, checkOut := day("2026-10-01"), day("2026-10-02")
	adjustments := []*domain.PriceAdjustment{
		{
			RoomID:      "r1",
			StartDate:   day("2026-10-01"),
			EndDate:     day("2026-10-05"),
			AdjustType:  domain.AdjustTypeNominal,
			AdjustValue: -150,
		},
	}
	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", BasePrice: 100}, nil)
	adjRepo.EXPECT().ListForRange(mock.Anything, "r1", checkIn, checkOut).Return(adjustments, nil)

	quote, err := svc.Quote(context.Background(), "r1", checkIn, checkOut)

	require.NoError(t, err)
	assert.Equal(t, 0.0, quote.Total)
}

func TestPricingService_Quote_ExplicitDayBeatsRangeWide(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	adjRepo := mocks.NewMockAdjustmentRepo(t)
	svc := NewPricingService(roomRepo, adjRepo)

	checkIn, checkOut := day("2026-10-01"), day("2026-10-03")
	// newest first, as the repository returns them
	adjustments := []*domain.PriceAdjustment{
		{
			RoomID:      "r1",
			StartDate:   day("2026-10-01"),
			EndDate:     day("2026-10-05"),
			AdjustType:  domain.AdjustTypePercentage,
			AdjustValue: 50,
		},
		{
			RoomID:      "r1",
			StartDate:   day("2026-10-01"),
			EndDate:     day("2026-10-05"),
			AdjustType:  domain.AdjustTypeNominal,
			AdjustValue: -30,
			Days:        []time.Time{day("2026-10-02")},
		},
	}
	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", BasePrice: 100}, nil)
	adjRepo.EXPECT().ListForRange(mock.Anything, "r1", checkIn, checkOut).Return(adjustments, nil)

	quote, err := svc.Quote(context.Background(), "r1", checkIn, checkOut)

	require.NoError(t, err)
	require.Len(t, quote.PerNight, 2)
	// Oct 1: only the range-wide +50% applies.
	assert.Equal(t, 150.0, quote.PerNight[0].Amount)
	// Oct 2: the explicit-date -30 wins even though the range-wide is newer.
	assert.Equal(t, 70.0, quote.PerNight[1].Amount)
	assert.Equal(t, 220.0, quote.Total)
}

func TestPricingService_Quote_NewestRangeWideWins(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	adjRepo := mocks.NewMockAdjustmentRepo(t)
	svc := NewPricingService(roomRepo, adjRepo)

	checkIn, checkOut := day("2026-10-01"), day("2026-10-02")
	adjustments := []*domain.PriceAdjustment{
		{
			RoomID:      "r1",
			StartDate:   day("2026-10-01"),
			EndDate:     day("2026-10-05"),
			AdjustType:  domain.AdjustTypeNominal,
			AdjustValue: 25,
		},
		{
			RoomID:      "r1",
			StartDate:   day("2026-09-01"),
			EndDate:     day("2026-10-31"),
			AdjustType:  domain.AdjustTypeNominal,
			AdjustValue: 99,
		},
	}
	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", BasePrice: 100}, nil)
	adjRepo.EXPECT().ListForRange(mock.Anything, "r1", checkIn, checkOut).Return(adjustments, nil)

	quote, err := svc.Quote(context.Background(), "r1", checkIn, checkOut)

	require.NoError(t, err)
	assert.Equal(t, 125.0, quote.Total)
}

func TestPricingService_Quote_InvertedRange(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	adjRepo := mocks.NewMockAdjustmentRepo(t)
	svc := NewPricingService(roomRepo, adjRepo)

	_, err := svc.Quote(context.Background(), "r1", day("2026-10-03"), day("2026-10-01"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPricingService_PriceForDate(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	adjRepo := mocks.NewMockAdjustmentRepo(t)
	svc := NewPricingService(roomRepo, adjRepo)

	d := day("2026-10-01")
	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", BasePrice: 80}, nil)
	adjRepo.EXPECT().ListForRange(mock.Anything, "r1", d, d.AddDate(0, 0, 1)).Return(nil, nil)

	price, err := svc.PriceForDate(context.Background(), "r1", d)

	require.NoError(t, err)
	assert.Equal(t, 80.0, price)
}

func TestPricingService_CreateAdjustment_Valid(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	adjRepo := mocks.NewMockAdjustmentRepo(t)
	svc := NewPricingService(roomRepo, adjRepo)

	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", TenantID: "t1"}, nil)
	adjRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	adj, err := svc.CreateAdjustment(context.Background(), "t1", domain.CreateAdjustmentInput{
		RoomID:      "r1",
		StartDate:   day("2026-10-01"),
		EndDate:     day("2026-10-05"),
		AdjustType:  domain.AdjustTypePercentage,
		AdjustValue: 10,
		Days:        []time.Time{day("2026-10-02")},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, adj.ID)
	assert.Len(t, adj.Days, 1)
}

func TestPricingService_CreateAdjustment_DayOutsideRange(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	adjRepo := mocks.NewMockAdjustmentRepo(t)
	svc := NewPricingService(roomRepo, adjRepo)

	_, err := svc.CreateAdjustment(context.Background(), "t1", domain.CreateAdjustmentInput{
		RoomID:      "r1",
		StartDate:   day("2026-10-01"),
		EndDate:     day("2026-10-05"),
		AdjustType:  domain.AdjustTypeNominal,
		AdjustValue: 10,
		Days:        []time.Time{day("2026-11-01")},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPricingService_CreateAdjustment_ForeignRoom(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	adjRepo := mocks.NewMockAdjustmentRepo(t)
	svc := NewPricingService(roomRepo, adjRepo)

	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", TenantID: "t1"}, nil)

	_, err := svc.CreateAdjustment(context.Background(), "intruder", domain.CreateAdjustmentInput{
		RoomID:      "r1",
		StartDate:   day("2026-10-01"),
		EndDate:     day("2026-10-05"),
		AdjustType:  domain.AdjustTypeNominal,
		AdjustValue: 10,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
