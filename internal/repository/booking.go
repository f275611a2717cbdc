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

const bookingColumns = `id, order_code, room_id, user_id, check_in, check_out,
	total_amount, payment_method, status, expires_at, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the booking and holds its calendar cells in one
// transaction. The hold is a single conditional bulk insert: the unique
// (room_id, day) index makes concurrent holds on overlapping ranges
// serialize, and an inserted-row count short of the night count means some
// cell was already blocked or held, so the whole transaction aborts.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = tx.ExecContext(
		ctx, insertQuery,
		b.ID, b.OrderCode, b.RoomID, b.UserID, b.CheckIn, b.CheckOut,
		b.TotalAmount, b.PaymentMethod, b.Status, b.ExpiresAt, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: order code already taken", domain.ErrValidation)
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	holdQuery := `INSERT INTO room_calendar (room_id, day, state, booking_id)
			  SELECT $1, d::date, $2, $3
			  FROM generate_series($4::date, $5::date - interval '1 day', interval '1 day') AS d
			  ON CONFLICT (room_id, day) DO NOTHING`
	res, err := tx.ExecContext(
		ctx, holdQuery,
		b.RoomID, domain.CellStateHeld, b.ID, b.CheckIn, b.CheckOut,
	)
	if err != nil {
		return fmt.Errorf("hold calendar cells: %w", err)
	}

	held, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("hold rows affected: %w", err)
	}
	if nights := int64(len(b.Nights())); held < nights {
		conflicts, cErr := r.conflictingDays(ctx, tx, b)
		if cErr != nil {
			return cErr
		}
		return &domain.DateConflictError{RoomID: b.RoomID, Dates: conflicts}
	}

	return tx.Commit()
}

func (r *BookingRepository) conflictingDays(ctx context.Context, tx *sql.Tx, b *domain.Booking) ([]time.Time, error) {
	query := `SELECT day FROM room_calendar
			  WHERE room_id = $1 AND day >= $2 AND day < $3 AND booking_id IS DISTINCT FROM $4
			  ORDER BY day`
	rows, err := tx.QueryContext(ctx, query, b.RoomID, b.CheckIn, b.CheckOut, b.ID)
	if err != nil {
		return nil, fmt.Errorf("list conflicting days: %w", err)
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var d time.Time
		if err = rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan conflicting day: %w", err)
		}
		days = append(days, domain.DayUTC(d))
	}

	return days, rows.Err()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return scanBooking(row.Scan)
}

func (r *BookingRepository) GetByOrderCode(ctx context.Context, code string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE order_code = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, code)
	if err != nil {
		return nil, fmt.Errorf("get booking by order code: %w", err)
	}

	return scanBooking(row.Scan)
}

func (r *BookingRepository) List(ctx context.Context, f domain.BookingFilter) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE ($1 = '' OR user_id::text = $1)
			    AND ($2 = '' OR room_id::text = $2)
			    AND ($3 = '' OR status = $3)
			    AND ($4 = '' OR EXISTS (
			        SELECT 1 FROM rooms
			        WHERE rooms.id = bookings.room_id AND rooms.tenant_id::text = $4
			    ))
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, f.UserID, f.RoomID, string(f.Status), f.TenantID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// Transition is the CAS-guarded status update: only one actor can move a
// booking out of a given status.
func (r *BookingRepository) Transition(ctx context.Context, id string, from, to domain.BookingStatus, expiresAt *time.Time) error {
	query := `UPDATE bookings
			  SET status = $3, expires_at = $4, updated_at = now()
			  WHERE id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to, expiresAt)
	if err != nil {
		return fmt.Errorf("transition booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("transition rows affected: %w", err)
	}
	if rows == 0 {
		return r.staleStatus(ctx, id, from)
	}

	return nil
}

func (r *BookingRepository) Release(ctx context.Context, id string, from, to domain.BookingStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $3, expires_at = NULL, updated_at = now()
			  WHERE id = $1 AND status = $2`
	res, err := tx.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("release booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("release rows affected: %w", err)
	}
	if rows == 0 {
		return r.staleStatus(ctx, id, from)
	}

	// Deleting by booking_id makes release idempotent: cells already open
	// or re-held by another booking are simply not matched.
	if _, err = tx.ExecContext(
		ctx,
		`DELETE FROM room_calendar WHERE booking_id = $1 AND state = $2`,
		id, domain.CellStateHeld,
	); err != nil {
		return fmt.Errorf("release calendar cells: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) ExpireOverdue(ctx context.Context) ([]*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $2, expires_at = NULL, updated_at = now()
			  WHERE status = $1 AND expires_at IS NOT NULL AND expires_at <= now()
			  RETURNING ` + bookingColumns
	rows, err := tx.QueryContext(ctx, query, domain.BookingStatusWaitingPayment, domain.BookingStatusExpired)
	if err != nil {
		return nil, fmt.Errorf("expire overdue: %w", err)
	}

	expired, err := collectBookings(rows)
	if err != nil {
		return nil, err
	}
	if len(expired) == 0 {
		return nil, tx.Commit()
	}

	ids := make([]string, len(expired))
	for i, b := range expired {
		ids[i] = b.ID
	}
	if _, err = tx.ExecContext(
		ctx,
		`DELETE FROM room_calendar WHERE state = $1 AND booking_id = ANY($2::uuid[])`,
		domain.CellStateHeld, pq.Array(ids),
	); err != nil {
		return nil, fmt.Errorf("release expired cells: %w", err)
	}

	return expired, tx.Commit()
}

func (r *BookingRepository) CompleteElapsed(ctx context.Context) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE status = $1 AND check_out <= CURRENT_DATE
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusProcessing, domain.BookingStatusCompleted,
	)
	if err != nil {
		return nil, fmt.Errorf("complete elapsed: %w", err)
	}

	return collectBookings(rows)
}

func (r *BookingRepository) staleStatus(ctx context.Context, id string, expected domain.BookingStatus) error {
	var current domain.BookingStatus
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("check booking status: %w", err)
	}
	if err = row.Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("scan booking status: %w", err)
	}

	return &domain.StaleStatusError{BookingID: id, Expected: expected, Current: current}
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var b domain.Booking
	var expiresAt sql.NullTime
	err := scan(
		&b.ID, &b.OrderCode, &b.RoomID, &b.UserID, &b.CheckIn, &b.CheckOut,
		&b.TotalAmount, &b.PaymentMethod, &b.Status, &expiresAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	if expiresAt.Valid {
		t := expiresAt.Time
		b.ExpiresAt = &t
	}
	b.CheckIn = domain.DayUTC(b.CheckIn)
	b.CheckOut = domain.DayUTC(b.CheckOut)

	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
