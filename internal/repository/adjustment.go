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

type AdjustmentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAdjustmentRepo(db *dbpg.DB) *AdjustmentRepository {
	return &AdjustmentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AdjustmentRepository) Create(ctx context.Context, a *domain.PriceAdjustment) error {
	query := `INSERT INTO price_adjustments
				(id, room_id, start_date, end_date, adjust_type, adjust_value, days, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var days any
	if len(a.Days) > 0 {
		days = pq.Array(dateStrings(a.Days))
	}
	if _, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.ID, a.RoomID, a.StartDate, a.EndDate, a.AdjustType, a.AdjustValue, days, a.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert adjustment: %w", err)
	}

	return nil
}

// ListForRange returns the room's adjustments whose range touches
// [from, to), newest first so the last-write-wins tie-break is a plain
// first-match scan.
func (r *AdjustmentRepository) ListForRange(ctx context.Context, roomID string, from, to time.Time) ([]*domain.PriceAdjustment, error) {
	query := `SELECT id, room_id, start_date, end_date, adjust_type, adjust_value, days, created_at
			  FROM price_adjustments
			  WHERE room_id = $1 AND start_date < $3 AND end_date >= $2
			  ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, roomID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()

	var res []*domain.PriceAdjustment
	for rows.Next() {
		var a domain.PriceAdjustment
		var days pq.StringArray
		if err = rows.Scan(
			&a.ID, &a.RoomID, &a.StartDate, &a.EndDate,
			&a.AdjustType, &a.AdjustValue, &days, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		a.StartDate = domain.DayUTC(a.StartDate)
		a.EndDate = domain.DayUTC(a.EndDate)
		for _, s := range days {
			d, pErr := time.Parse(time.DateOnly, s)
			if pErr != nil {
				return nil, fmt.Errorf("parse adjustment day %q: %w", s, pErr)
			}
			a.Days = append(a.Days, d)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}
