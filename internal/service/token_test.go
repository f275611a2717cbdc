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

type tokenMocks struct {
	tokenRepo *mocks.MockTokenRepo
	userRepo  *mocks.MockUserRepo
	timers    *mocks.MockExpiryTimers
}

func newTokenService(t *testing.T, ttl time.Duration) (*TokenService, tokenMocks) {
	t.Helper()
	m := tokenMocks{
		tokenRepo: mocks.NewMockTokenRepo(t),
		userRepo:  mocks.NewMockUserRepo(t),
		timers:    mocks.NewMockExpiryTimers(t),
	}
	return NewTokenService(m.tokenRepo, m.userRepo, m.timers, newTestLogger(t), ttl), m
}

func TestTokenService_Issue_ArmsTimer(t *testing.T) {
	svc, m := newTokenService(t, 24*time.Hour)

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.tokenRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	var timerKey string
	m.timers.EXPECT().Schedule(mock.Anything, mock.Anything, mock.Anything).
		Run(func(id string, at time.Time, fn func(context.Context)) {
			timerKey = id
		}).
		Return()

	token, err := svc.Issue(context.Background(), "u1", "email_verification")

	require.NoError(t, err)
	assert.NotEmpty(t, token.ID)
	assert.Equal(t, domain.TokenStatusActive, token.Status)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), token.ExpiresAt, 5*time.Second)
	assert.Equal(t, "token:"+token.ID, timerKey)
}

func TestTokenService_Issue_PurposeRequired(t *testing.T) {
	svc, _ := newTokenService(t, 24*time.Hour)

	_, err := svc.Issue(context.Background(), "u1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTokenService_Issue_UnknownUser(t *testing.T) {
	svc, m := newTokenService(t, 24*time.Hour)

	m.userRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Issue(context.Background(), "ghost", "email_verification")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestTokenService_Consume_DisarmsTimer(t *testing.T) {
	svc, m := newTokenService(t, 24*time.Hour)

	used := time.Now().UTC()
	m.tokenRepo.EXPECT().Consume(mock.Anything, "tok1", mock.Anything).
		Return(&domain.VerificationToken{ID: "tok1", Status: domain.TokenStatusUsed, UsedAt: &used}, nil)
	m.timers.EXPECT().Cancel("token:tok1").Return()

	token, err := svc.Consume(context.Background(), "tok1")

	require.NoError(t, err)
	assert.Equal(t, domain.TokenStatusUsed, token.Status)
	assert.NotNil(t, token.UsedAt)
}

func TestTokenService_Consume_NotActive(t *testing.T) {
	svc, m := newTokenService(t, 24*time.Hour)

	m.tokenRepo.EXPECT().Consume(mock.Anything, "tok1", mock.Anything).
		Return(nil, domain.ErrTokenNotActive)

	_, err := svc.Consume(context.Background(), "tok1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTokenNotActive)
}

func TestTokenService_ExpireOverdue_CancelsTimers(t *testing.T) {
	svc, m := newTokenService(t, 24*time.Hour)

	expired := []*domain.VerificationToken{
		{ID: "tok1", Status: domain.TokenStatusExpired},
		{ID: "tok2", Status: domain.TokenStatusExpired},
	}
	m.tokenRepo.EXPECT().ExpireOverdue(mock.Anything).Return(expired, nil)
	m.timers.EXPECT().Cancel("token:tok1").Return()
	m.timers.EXPECT().Cancel("token:tok2").Return()

	got, err := svc.ExpireOverdue(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestTokenService_ExpireOverdue_NothingToDo(t *testing.T) {
	svc, m := newTokenService(t, 24*time.Hour)

	m.tokenRepo.EXPECT().ExpireOverdue(mock.Anything).Return(nil, nil)

	got, err := svc.ExpireOverdue(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTokenService_TimerExpiresToken(t *testing.T) {
	svc, m := newTokenService(t, 24*time.Hour)

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.tokenRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	var fire func(context.Context)
	m.timers.EXPECT().Schedule(mock.Anything, mock.Anything, mock.Anything).
		Run(func(id string, at time.Time, fn func(context.Context)) {
			fire = fn
		}).
		Return()

	token, err := svc.Issue(context.Background(), "u1", "email_verification")
	require.NoError(t, err)

	m.tokenRepo.EXPECT().Expire(mock.Anything, token.ID).Return(nil)
	fire(context.Background())
}
