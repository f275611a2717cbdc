package ports

import (
	"context"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
)

type RoomRepo interface {
	Create(ctx context.Context, r *domain.Room) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*domain.Room, error)
	Update(ctx context.Context, id string, in domain.UpdateRoomInput) (*domain.Room, error)
}
