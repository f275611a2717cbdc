package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const tokenColumns = `id, user_id, purpose, status, expires_at, used_at, created_at`

type TokenRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTokenRepo(db *dbpg.DB) *TokenRepository {
	return &TokenRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TokenRepository) Create(ctx context.Context, t *domain.VerificationToken) error {
	query := `INSERT INTO verification_tokens (` + tokenColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.UserID, t.Purpose, t.Status, t.ExpiresAt, t.UsedAt, t.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert token: %w", err)
	}

	return nil
}

// Consume flips an active unexpired token to used; the status guard makes
// a concurrent consume or expiry lose cleanly.
func (r *TokenRepository) Consume(ctx context.Context, id string, at time.Time) (*domain.VerificationToken, error) {
	query := `UPDATE verification_tokens
			  SET status = $3, used_at = $2
			  WHERE id = $1 AND status = $4 AND expires_at > $2
			  RETURNING ` + tokenColumns
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		id, at, domain.TokenStatusUsed, domain.TokenStatusActive,
	)
	if err != nil {
		return nil, fmt.Errorf("consume token: %w", err)
	}

	t, err := scanToken(row.Scan)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, domain.ErrTokenNotFound) {
		return nil, err
	}

	// The guarded update matched nothing: missing, already used, or past
	// its deadline.
	checkRow, err := r.db.QueryRowWithRetry(
		ctx, r.strategy,
		`SELECT `+tokenColumns+` FROM verification_tokens WHERE id = $1`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("check token: %w", err)
	}
	if _, err = scanToken(checkRow.Scan); err != nil {
		return nil, err
	}

	return nil, domain.ErrTokenNotActive
}

func (r *TokenRepository) Expire(ctx context.Context, id string) error {
	query := `UPDATE verification_tokens
			  SET status = $2
			  WHERE id = $1 AND status = $3 AND expires_at <= now()`
	if _, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.TokenStatusExpired, domain.TokenStatusActive,
	); err != nil {
		return fmt.Errorf("expire token: %w", err)
	}

	return nil
}

func (r *TokenRepository) ExpireOverdue(ctx context.Context) ([]*domain.VerificationToken, error) {
	query := `UPDATE verification_tokens
			  SET status = $2
			  WHERE status = $1 AND expires_at <= now()
			  RETURNING ` + tokenColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.TokenStatusActive, domain.TokenStatusExpired,
	)
	if err != nil {
		return nil, fmt.Errorf("expire overdue tokens: %w", err)
	}
	defer rows.Close()

	var res []*domain.VerificationToken
	for rows.Next() {
		t, err := scanToken(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

func scanToken(scan func(dest ...any) error) (*domain.VerificationToken, error) {
	var t domain.VerificationToken
	var usedAt sql.NullTime
	err := scan(&t.ID, &t.UserID, &t.Purpose, &t.Status, &t.ExpiresAt, &usedAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, fmt.Errorf("scan token: %w", err)
	}
	if usedAt.Valid {
		at := usedAt.Time
		t.UsedAt = &at
	}

	return &t, nil
}
