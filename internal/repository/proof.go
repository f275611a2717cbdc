package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const proofColumns = `id, booking_id, uploaded_by, image_url, uploaded_at,
	accepted_at, rejected_at, reviewed_by`

type ProofRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProofRepo(db *dbpg.DB) *ProofRepository {
	return &ProofRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Attach inserts the proof and CAS-moves the booking to
// waiting_confirmation in one transaction; the partial unique index on
// non-rejected proofs guards the at-most-one-active invariant under races.
func (r *ProofRepository) Attach(ctx context.Context, p *domain.PaymentProof) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = r.transitionTx(
		ctx, tx, p.BookingID,
		domain.BookingStatusWaitingPayment, domain.BookingStatusWaitingConfirmation, nil,
	); err != nil {
		return err
	}

	query := `INSERT INTO payment_proofs (id, booking_id, uploaded_by, image_url, uploaded_at)
			  VALUES ($1, $2, $3, $4, $5)`
	if _, err = tx.ExecContext(ctx, query, p.ID, p.BookingID, p.UploadedBy, p.ImageURL, p.UploadedAt); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateProof
		}
		return fmt.Errorf("insert proof: %w", err)
	}

	return tx.Commit()
}

// Approve stamps the pending proof and moves the booking to processing as
// one atomic update pair; a half-applied review is never observable.
func (r *ProofRepository) Approve(ctx context.Context, bookingID, reviewerID string, at time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = r.reviewTx(ctx, tx, bookingID, reviewerID, `accepted_at`, at); err != nil {
		return err
	}
	if err = r.transitionTx(
		ctx, tx, bookingID,
		domain.BookingStatusWaitingConfirmation, domain.BookingStatusProcessing, nil,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// Reject stamps the pending proof rejected. With rearmTo set the booking
// returns to waiting_payment under the new deadline; without it the
// original payment window is already gone, so the booking expires and its
// cells are released.
func (r *ProofRepository) Reject(ctx context.Context, bookingID, reviewerID string, at time.Time, rearmTo *time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = r.reviewTx(ctx, tx, bookingID, reviewerID, `rejected_at`, at); err != nil {
		return err
	}

	if rearmTo != nil {
		if err = r.transitionTx(
			ctx, tx, bookingID,
			domain.BookingStatusWaitingConfirmation, domain.BookingStatusWaitingPayment, rearmTo,
		); err != nil {
			return err
		}
		return tx.Commit()
	}

	if err = r.transitionTx(
		ctx, tx, bookingID,
		domain.BookingStatusWaitingConfirmation, domain.BookingStatusExpired, nil,
	); err != nil {
		return err
	}
	if _, err = tx.ExecContext(
		ctx,
		`DELETE FROM room_calendar WHERE booking_id = $1 AND state = $2`,
		bookingID, domain.CellStateHeld,
	); err != nil {
		return fmt.Errorf("release rejected cells: %w", err)
	}

	return tx.Commit()
}

func (r *ProofRepository) ActiveByBooking(ctx context.Context, bookingID string) (*domain.PaymentProof, error) {
	query := `SELECT ` + proofColumns + ` FROM payment_proofs
			  WHERE booking_id = $1 AND rejected_at IS NULL
			  ORDER BY uploaded_at DESC
			  LIMIT 1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get active proof: %w", err)
	}

	return scanProof(row.Scan)
}

func (r *ProofRepository) ListByBooking(ctx context.Context, bookingID string) ([]*domain.PaymentProof, error) {
	query := `SELECT ` + proofColumns + ` FROM payment_proofs
			  WHERE booking_id = $1
			  ORDER BY uploaded_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list proofs: %w", err)
	}
	defer rows.Close()

	var res []*domain.PaymentProof
	for rows.Next() {
		p, err := scanProof(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func (r *ProofRepository) reviewTx(ctx context.Context, tx *sql.Tx, bookingID, reviewerID, stampColumn string, at time.Time) error {
	query := `UPDATE payment_proofs
			  SET ` + stampColumn + ` = $3, reviewed_by = $2
			  WHERE booking_id = $1 AND accepted_at IS NULL AND rejected_at IS NULL`
	res, err := tx.ExecContext(ctx, query, bookingID, reviewerID, at)
	if err != nil {
		return fmt.Errorf("stamp proof: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("stamp rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNoPendingProof
	}

	return nil
}

func (r *ProofRepository) transitionTx(ctx context.Context, tx *sql.Tx, id string, from, to domain.BookingStatus, expiresAt *time.Time) error {
	query := `UPDATE bookings
			  SET status = $3, expires_at = $4, updated_at = now()
			  WHERE id = $1 AND status = $2`
	res, err := tx.ExecContext(ctx, query, id, from, to, expiresAt)
	if err != nil {
		return fmt.Errorf("transition booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("transition rows affected: %w", err)
	}
	if rows == 0 {
		var current domain.BookingStatus
		if err = tx.QueryRowContext(ctx, `SELECT status FROM bookings WHERE id = $1`, id).Scan(&current); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrBookingNotFound
			}
			return fmt.Errorf("check booking status: %w", err)
		}
		return &domain.StaleStatusError{BookingID: id, Expected: from, Current: current}
	}

	return nil
}

func scanProof(scan func(dest ...any) error) (*domain.PaymentProof, error) {
	var p domain.PaymentProof
	var acceptedAt, rejectedAt sql.NullTime
	var reviewedBy sql.NullString
	err := scan(
		&p.ID, &p.BookingID, &p.UploadedBy, &p.ImageURL, &p.UploadedAt,
		&acceptedAt, &rejectedAt, &reviewedBy,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProofNotFound
		}
		return nil, fmt.Errorf("scan proof: %w", err)
	}
	if acceptedAt.Valid {
		t := acceptedAt.Time
		p.AcceptedAt = &t
	}
	if rejectedAt.Valid {
		t := rejectedAt.Time
		p.RejectedAt = &t
	}
	if reviewedBy.Valid {
		s := reviewedBy.String
		p.ReviewedBy = &s
	}

	return &p, nil
}
