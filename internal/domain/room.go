package domain

import "time"

type Room struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	BasePrice float64   `json:"base_price"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateRoomInput struct {
	TenantID  string
	Name      string
	BasePrice float64
	Capacity  int
}

type UpdateRoomInput struct {
	Name      *string
	BasePrice *float64
	Capacity  *int
}
