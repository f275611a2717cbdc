package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
	"github.com/fuadinadhif/staysane-sub002/internal/service/ports"
)

type RoomService struct {
	roomRepo ports.RoomRepo
	userRepo ports.UserRepo
}

func NewRoomService(roomRepo ports.RoomRepo, userRepo ports.UserRepo) *RoomService {
	return &RoomService{
		roomRepo: roomRepo,
		userRepo: userRepo,
	}
}

func (s *RoomService) Create(ctx context.Context, in domain.CreateRoomInput) (*domain.Room, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if in.BasePrice < 0 {
		return nil, fmt.Errorf("%w: base_price must not be negative", domain.ErrValidation)
	}
	if in.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}

	tenant, err := s.userRepo.GetByID(ctx, in.TenantID)
	if err != nil {
		return nil, fmt.Errorf("check tenant: %w", err)
	}
	if tenant.Role != domain.UserRoleTenant {
		return nil, fmt.Errorf("%w: only tenants may create rooms", domain.ErrForbidden)
	}

	now := time.Now().UTC()
	room := &domain.Room{
		ID:        newID(),
		TenantID:  in.TenantID,
		Name:      in.Name,
		BasePrice: in.BasePrice,
		Capacity:  in.Capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	return room, nil
}

func (s *RoomService) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	return s.roomRepo.GetByID(ctx, id)
}

func (s *RoomService) ListByTenant(ctx context.Context, tenantID string) ([]*domain.Room, error) {
	return s.roomRepo.ListByTenant(ctx, tenantID)
}

// Update edits the room for future stays only; totals frozen on existing
// bookings are untouched.
func (s *RoomService) Update(ctx context.Context, actorID, id string, in domain.UpdateRoomInput) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room.TenantID != actorID {
		return nil, fmt.Errorf("%w: room belongs to another tenant", domain.ErrForbidden)
	}
	if in.BasePrice != nil && *in.BasePrice < 0 {
		return nil, fmt.Errorf("%w: base_price must not be negative", domain.ErrValidation)
	}
	if in.Capacity != nil && *in.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}

	return s.roomRepo.Update(ctx, id, in)
}
