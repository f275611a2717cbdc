package ports

import (
	"context"
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
)

type TokenRepo interface {
	Create(ctx context.Context, t *domain.VerificationToken) error
	// Consume CAS-flips an active unexpired token to used; a token already
	// used or expired reports domain.ErrTokenNotActive.
	Consume(ctx context.Context, id string, at time.Time) (*domain.VerificationToken, error)
	// Expire CAS-flips a single active token past its deadline (one-shot
	// timer path); flipping an already used or expired token is a no-op.
	Expire(ctx context.Context, id string) error
	// ExpireOverdue is the reconciliation sweep over all active tokens.
	ExpireOverdue(ctx context.Context) ([]*domain.VerificationToken, error)
}
