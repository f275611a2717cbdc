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

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(nil, domain.ErrUserNotFound)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Role:     domain.UserRoleGuest,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.UserRoleGuest, user.Role)
}

func TestUserService_Create_BadEmail(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: "alice",
		Email:    "not-an-email",
		Role:     domain.UserRoleGuest,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByUsername(mock.Anything, "taken").
		Return(&domain.User{ID: "u1", Username: "taken"}, nil)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: "taken",
		Email:    "taken@example.com",
		Role:     domain.UserRoleGuest,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserService_Create_UnknownRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Role:     domain.UserRole("admin"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
