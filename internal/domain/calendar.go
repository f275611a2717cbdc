package domain

import "time"

// CellState is the state of one (room, date) calendar cell. Dates without a
// cell row are open; a cell row is written only to block or hold the date,
// so the calendar table is the single source of truth for bookability.
type CellState string

const (
	CellStateHostBlocked CellState = "host_blocked"
	CellStateHeld        CellState = "held"
)

type CalendarCell struct {
	RoomID    string    `json:"room_id"`
	Day       time.Time `json:"day"`
	State     CellState `json:"state"`
	BookingID *string   `json:"booking_id,omitempty"`
}

type RangeCheck struct {
	Available        bool        `json:"available"`
	ConflictingDates []time.Time `json:"conflicting_dates,omitempty"`
}
