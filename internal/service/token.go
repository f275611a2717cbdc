package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
	"github.com/fuadinadhif/staysane-sub002/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// TokenService issues short-lived single-use verification tokens. Expiry
// reuses the booking pattern: a best-effort one-shot timer per token and
// the reconciliation sweep as the backstop.
type TokenService struct {
	tokenRepo ports.TokenRepo
	userRepo  ports.UserRepo
	timers    ports.ExpiryTimers
	logger    logger.Logger
	ttl       time.Duration
}

func NewTokenService(
	tokenRepo ports.TokenRepo,
	userRepo ports.UserRepo,
	timers ports.ExpiryTimers,
	logger logger.Logger,
	ttl time.Duration,
) *TokenService {
	return &TokenService{
		tokenRepo: tokenRepo,
		userRepo:  userRepo,
		timers:    timers,
		logger:    logger,
		ttl:       ttl,
	}
}

func (s *TokenService) Issue(ctx context.Context, userID, purpose string) (*domain.VerificationToken, error) {
	if purpose == "" {
		return nil, fmt.Errorf("%w: purpose is required", domain.ErrValidation)
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	now := time.Now().UTC()
	token := &domain.VerificationToken{
		ID:        newID(),
		UserID:    userID,
		Purpose:   purpose,
		Status:    domain.TokenStatusActive,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}

	s.timers.Schedule(tokenTimerKey(token.ID), token.ExpiresAt, func(tctx context.Context) {
		if err := s.tokenRepo.Expire(tctx, token.ID); err != nil {
			s.logger.Error("token expiry timer failed, sweep will retry",
				logger.String("token_id", token.ID),
				logger.String("error", err.Error()),
			)
		}
	})

	return token, nil
}

func (s *TokenService) Consume(ctx context.Context, id string) (*domain.VerificationToken, error) {
	token, err := s.tokenRepo.Consume(ctx, id, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("consume token: %w", err)
	}

	s.timers.Cancel(tokenTimerKey(id))

	return token, nil
}

func (s *TokenService) ExpireOverdue(ctx context.Context) ([]*domain.VerificationToken, error) {
	expired, err := s.tokenRepo.ExpireOverdue(ctx)
	if err != nil {
		return nil, fmt.Errorf("expire overdue tokens: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("overdue tokens expired",
			logger.Int("count", len(expired)),
		)
		for _, t := range expired {
			s.timers.Cancel(tokenTimerKey(t.ID))
		}
	}

	return expired, nil
}

func tokenTimerKey(id string) string { return "token:" + id }
