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

type RoomRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoomRepo(db *dbpg.DB) *RoomRepository {
	return &RoomRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `INSERT INTO rooms (id, tenant_id, name, base_price, capacity, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		room.ID, room.TenantID, room.Name, room.BasePrice, room.Capacity, room.CreatedAt, room.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert room: %w", err)
	}

	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	query := `SELECT id, tenant_id, name, base_price, capacity, created_at, updated_at
			  FROM rooms
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	var room domain.Room
	if err = row.Scan(
		&room.ID, &room.TenantID, &room.Name, &room.BasePrice,
		&room.Capacity, &room.CreatedAt, &room.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("scan room: %w", err)
	}

	return &room, nil
}

func (r *RoomRepository) ListByTenant(ctx context.Context, tenantID string) ([]*domain.Room, error) {
	query := `SELECT id, tenant_id, name, base_price, capacity, created_at, updated_at
			  FROM rooms
			  WHERE tenant_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var res []*domain.Room
	for rows.Next() {
		var room domain.Room
		if err = rows.Scan(
			&room.ID, &room.TenantID, &room.Name, &room.BasePrice,
			&room.Capacity, &room.CreatedAt, &room.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		res = append(res, &room)
	}

	return res, rows.Err()
}

// Update edits the room row only. Frozen booking totals reference nothing
// here, so a price edit never rewrites an existing reservation.
func (r *RoomRepository) Update(ctx context.Context, id string, in domain.UpdateRoomInput) (*domain.Room, error) {
	query := `UPDATE rooms
			  SET name = COALESCE($2, name),
			      base_price = COALESCE($3, base_price),
			      capacity = COALESCE($4, capacity),
			      updated_at = now()
			  WHERE id = $1
			  RETURNING id, tenant_id, name, base_price, capacity, created_at, updated_at`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, in.Name, in.BasePrice, in.Capacity)
	if err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}

	var room domain.Room
	if err = row.Scan(
		&room.ID, &room.TenantID, &room.Name, &room.BasePrice,
		&room.Capacity, &room.CreatedAt, &room.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("scan updated room: %w", err)
	}

	return &room, nil
}
