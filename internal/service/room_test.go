package service

import (
	"context"
	"testing"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
	"github.com/fuadinadhif/staysane-sub002/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoomService_Create_Success(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewRoomService(roomRepo, userRepo)

	userRepo.EXPECT().GetByID(mock.Anything, "t1").
		Return(&domain.User{ID: "t1", Role: domain.UserRoleTenant}, nil)
	roomRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	room, err := svc.Create(context.Background(), domain.CreateRoomInput{
		TenantID:  "t1",
		Name:      "Seaview",
		BasePrice: 100,
		Capacity:  2,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, room.ID)
	assert.Equal(t, "t1", room.TenantID)
}

func TestRoomService_Create_GuestForbidden(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewRoomService(roomRepo, userRepo)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Role: domain.UserRoleGuest}, nil)

	_, err := svc.Create(context.Background(), domain.CreateRoomInput{
		TenantID:  "u1",
		Name:      "Seaview",
		BasePrice: 100,
		Capacity:  2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRoomService_Create_NegativePrice(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewRoomService(roomRepo, userRepo)

	_, err := svc.Create(context.Background(), domain.CreateRoomInput{
		TenantID:  "t1",
		Name:      "Seaview",
		BasePrice: -1,
		Capacity:  2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRoomService_Update_ForeignRoom(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewRoomService(roomRepo, userRepo)

	roomRepo.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.Room{ID: "r1", TenantID: "t1"}, nil)

	_, err := svc.Update(context.Background(), "intruder", "r1", domain.UpdateRoomInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRoomService_Update_Success(t *testing.T) {
	roomRepo := mocks.NewMockRoomRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewRoomService(roomRepo, userRepo)

	newPrice := 150.0
	in := domain.UpdateRoomInput{BasePrice: &newPrice}
	roomRepo.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.Room{ID: "r1", TenantID: "t1", BasePrice: 100}, nil)
	roomRepo.EXPECT().Update(mock.Anything, "r1", in).
		Return(&domain.Room{ID: "r1", TenantID: "t1", BasePrice: 150}, nil)

	room, err := svc.Update(context.Background(), "t1", "r1", in)

	require.NoError(t, err)
	assert.Equal(t, 150.0, room.BasePrice)
}
