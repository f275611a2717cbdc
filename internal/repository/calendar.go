package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CalendarRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCalendarRepo(db *dbpg.DB) *CalendarRepository {
	return &CalendarRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CalendarRepository) CheckRange(ctx context.Context, roomID string, checkIn, checkOut time.Time) (domain.RangeCheck, error) {
	query := `SELECT day FROM room_calendar
			  WHERE room_id = $1 AND day >= $2 AND day < $3
			  ORDER BY day`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, roomID, checkIn, checkOut)
	if err != nil {
		return domain.RangeCheck{}, fmt.Errorf("check range: %w", err)
	}
	defer rows.Close()

	var conflicts []time.Time
	for rows.Next() {
		var d time.Time
		if err = rows.Scan(&d); err != nil {
			return domain.RangeCheck{}, fmt.Errorf("scan calendar day: %w", err)
		}
		conflicts = append(conflicts, domain.DayUTC(d))
	}
	if err = rows.Err(); err != nil {
		return domain.RangeCheck{}, err
	}

	return domain.RangeCheck{Available: len(conflicts) == 0, ConflictingDates: conflicts}, nil
}

// Block marks host-blocked cells. Re-blocking an already blocked date is a
// no-op, but a date held by a booking fails the whole transaction.
func (r *CalendarRepository) Block(ctx context.Context, roomID string, days []time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `INSERT INTO room_calendar (room_id, day, state)
			  SELECT $1, d, $2 FROM unnest($3::date[]) AS d
			  ON CONFLICT (room_id, day) DO NOTHING`
	if _, err = tx.ExecContext(
		ctx, insertQuery,
		roomID, domain.CellStateHostBlocked, pq.Array(dateStrings(days)),
	); err != nil {
		return fmt.Errorf("block cells: %w", err)
	}

	// Re-check inside the transaction: any requested day not blocked now
	// is held by a booking.
	heldQuery := `SELECT day FROM room_calendar
			  WHERE room_id = $1 AND day = ANY($2::date[]) AND state = $3
			  ORDER BY day`
	rows, err := tx.QueryContext(ctx, heldQuery, roomID, pq.Array(dateStrings(days)), domain.CellStateHeld)
	if err != nil {
		return fmt.Errorf("check blocked cells: %w", err)
	}
	defer rows.Close()

	var held []time.Time
	for rows.Next() {
		var d time.Time
		if err = rows.Scan(&d); err != nil {
			return fmt.Errorf("scan held day: %w", err)
		}
		held = append(held, domain.DayUTC(d))
	}
	if err = rows.Err(); err != nil {
		return err
	}
	if len(held) > 0 {
		return &domain.DateConflictError{RoomID: roomID, Dates: held}
	}

	return tx.Commit()
}

// Unblock is idempotent: only host-blocked cells are removed, so a stale
// call never touches a booking's hold.
func (r *CalendarRepository) Unblock(ctx context.Context, roomID string, days []time.Time) error {
	query := `DELETE FROM room_calendar
			  WHERE room_id = $1 AND day = ANY($2::date[]) AND state = $3`
	if _, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		roomID, pq.Array(dateStrings(days)), domain.CellStateHostBlocked,
	); err != nil {
		return fmt.Errorf("unblock cells: %w", err)
	}

	return nil
}

func (r *CalendarRepository) UnavailableDates(ctx context.Context, roomID string, from time.Time) ([]time.Time, error) {
	query := `SELECT day FROM room_calendar
			  WHERE room_id = $1 AND day >= $2
			  ORDER BY day`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, roomID, from)
	if err != nil {
		return nil, fmt.Errorf("list unavailable dates: %w", err)
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var d time.Time
		if err = rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan unavailable day: %w", err)
		}
		days = append(days, domain.DayUTC(d))
	}

	return days, rows.Err()
}

func dateStrings(days []time.Time) []string {
	res := make([]string, len(days))
	for i, d := range days {
		res[i] = domain.DayUTC(d).Format(time.DateOnly)
	}
	return res
}
