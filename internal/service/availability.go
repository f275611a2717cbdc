package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
	"github.com/fuadinadhif/staysane-sub002/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AvailabilityService struct {
	calendarRepo ports.CalendarRepo
	roomRepo     ports.RoomRepo
	cache        ports.AvailabilityCache
	logger       logger.Logger
}

func NewAvailabilityService(
	calendarRepo ports.CalendarRepo,
	roomRepo ports.RoomRepo,
	cache ports.AvailabilityCache,
	logger logger.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		calendarRepo: calendarRepo,
		roomRepo:     roomRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (s *AvailabilityService) CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (domain.RangeCheck, error) {
	checkIn, checkOut = domain.DayUTC(checkIn), domain.DayUTC(checkOut)
	if !checkIn.Before(checkOut) {
		return domain.RangeCheck{}, fmt.Errorf("%w: check_in must be before check_out", domain.ErrValidation)
	}

	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		return domain.RangeCheck{}, fmt.Errorf("get room: %w", err)
	}

	check, err := s.calendarRepo.CheckRange(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return domain.RangeCheck{}, fmt.Errorf("check range: %w", err)
	}

	return check, nil
}

// UnavailableDates reads through the redis cache; the cache is invalidated
// on every hold, release, block and unblock, so a miss always falls back to
// the calendar table.
func (s *AvailabilityService) UnavailableDates(ctx context.Context, roomID string) ([]time.Time, error) {
	if days, ok, err := s.cache.GetUnavailable(ctx, roomID); err != nil {
		s.logger.Error("availability cache read failed",
			logger.String("room_id", roomID),
			logger.String("error", err.Error()),
		)
	} else if ok {
		return days, nil
	}

	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	days, err := s.calendarRepo.UnavailableDates(ctx, roomID, domain.DayUTC(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("list unavailable dates: %w", err)
	}

	if err := s.cache.SetUnavailable(ctx, roomID, days); err != nil {
		s.logger.Error("availability cache write failed",
			logger.String("room_id", roomID),
			logger.String("error", err.Error()),
		)
	}

	return days, nil
}

func (s *AvailabilityService) Block(ctx context.Context, tenantID, roomID string, days []time.Time) error {
	if err := s.authorizeTenant(ctx, tenantID, roomID); err != nil {
		return err
	}
	if len(days) == 0 {
		return fmt.Errorf("%w: no dates given", domain.ErrValidation)
	}

	if err := s.calendarRepo.Block(ctx, roomID, days); err != nil {
		return fmt.Errorf("block dates: %w", err)
	}
	s.invalidate(ctx, roomID)

	return nil
}

func (s *AvailabilityService) Unblock(ctx context.Context, tenantID, roomID string, days []time.Time) error {
	if err := s.authorizeTenant(ctx, tenantID, roomID); err != nil {
		return err
	}
	if len(days) == 0 {
		return fmt.Errorf("%w: no dates given", domain.ErrValidation)
	}

	if err := s.calendarRepo.Unblock(ctx, roomID, days); err != nil {
		return fmt.Errorf("unblock dates: %w", err)
	}
	s.invalidate(ctx, roomID)

	return nil
}

func (s *AvailabilityService) authorizeTenant(ctx context.Context, tenantID, roomID string) error {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("get room: %w", err)
	}
	if room.TenantID != tenantID {
		return fmt.Errorf("%w: room belongs to another tenant", domain.ErrForbidden)
	}
	return nil
}

func (s *AvailabilityService) invalidate(ctx context.Context, roomID string) {
	if err := s.cache.Invalidate(ctx, roomID); err != nil {
		s.logger.Error("availability cache invalidation failed",
			logger.String("room_id", roomID),
			logger.String("error", err.Error()),
		)
	}
}
