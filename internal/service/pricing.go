package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
	"github.com/fuadinadhif/staysane-sub002/internal/service/ports"
)

type PricingService struct {
	roomRepo ports.RoomRepo
	adjRepo  ports.AdjustmentRepo
}

func NewPricingService(roomRepo ports.RoomRepo, adjRepo ports.AdjustmentRepo) *PricingService {
	return &PricingService{
		roomRepo: roomRepo,
		adjRepo:  adjRepo,
	}
}

func (s *PricingService) PriceForDate(ctx context.Context, roomID string, day time.Time) (float64, error) {
	day = domain.DayUTC(day)

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return 0, fmt.Errorf("get room: %w", err)
	}

	adjustments, err := s.adjRepo.ListForRange(ctx, roomID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return 0, fmt.Errorf("list adjustments: %w", err)
	}

	return nightlyPrice(room.BasePrice, adjustments, day), nil
}

func (s *PricingService) Quote(ctx context.Context, roomID string, checkIn, checkOut time.Time) (*domain.Quote, error) {
	checkIn, checkOut = domain.DayUTC(checkIn), domain.DayUTC(checkOut)
	if !checkIn.Before(checkOut) {
		return nil, fmt.Errorf("%w: check_in must be before check_out", domain.ErrValidation)
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	adjustments, err := s.adjRepo.ListForRange(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}

	quote := &domain.Quote{
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
	for _, day := range domain.DaysBetween(checkIn, checkOut) {
		amount := nightlyPrice(room.BasePrice, adjustments, day)
		quote.PerNight = append(quote.PerNight, domain.NightPrice{Date: day, Amount: amount})
		quote.Total += amount
	}

	return quote, nil
}

func (s *PricingService) CreateAdjustment(ctx context.Context, tenantID string, in domain.CreateAdjustmentInput) (*domain.PriceAdjustment, error) {
	start, end := domain.DayUTC(in.StartDate), domain.DayUTC(in.EndDate)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date must not precede start_date", domain.ErrValidation)
	}
	if in.AdjustType != domain.AdjustTypePercentage && in.AdjustType != domain.AdjustTypeNominal {
		return nil, fmt.Errorf("%w: unknown adjust_type %q", domain.ErrValidation, in.AdjustType)
	}
	for _, d := range in.Days {
		day := domain.DayUTC(d)
		if day.Before(start) || day.After(end) {
			return nil, fmt.Errorf("%w: explicit day %s outside range", domain.ErrValidation, day.Format(time.DateOnly))
		}
	}

	room, err := s.roomRepo.GetByID(ctx, in.RoomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room.TenantID != tenantID {
		return nil, fmt.Errorf("%w: room belongs to another tenant", domain.ErrForbidden)
	}

	adj := &domain.PriceAdjustment{
		ID:          newID(),
		RoomID:      in.RoomID,
		StartDate:   start,
		EndDate:     end,
		AdjustType:  in.AdjustType,
		AdjustValue: in.AdjustValue,
		CreatedAt:   time.Now().UTC(),
	}
	for _, d := range in.Days {
		adj.Days = append(adj.Days, domain.DayUTC(d))
	}

	if err := s.adjRepo.Create(ctx, adj); err != nil {
		return nil, fmt.Errorf("create adjustment: %w", err)
	}

	return adj, nil
}

// nightlyPrice resolves one date against the adjustment list, which arrives
// newest first. An explicit-date adjustment beats any range-wide one; within
// the same specificity the newest wins; at most one adjustment applies.
func nightlyPrice(base float64, adjustments []*domain.PriceAdjustment, day time.Time) float64 {
	var rangeWide *domain.PriceAdjustment
	for _, a := range adjustments {
		if !a.AppliesTo(day) {
			continue
		}
		if a.Explicit() {
			return a.Apply(base)
		}
		if rangeWide == nil {
			rangeWide = a
		}
	}
	if rangeWide != nil {
		return rangeWide.Apply(base)
	}
	if base < 0 {
		return 0
	}
	return base
}
