package domain

import "time"

type AdjustType string

const (
	AdjustTypePercentage AdjustType = "percentage"
	AdjustTypeNominal    AdjustType = "nominal"
)

// PriceAdjustment overrides a room's base nightly price. A range-wide
// adjustment applies to every date in [start_date, end_date]; when Days is
// set it applies only to those dates, and such explicit-date adjustments win
// over range-wide ones. Among equally specific candidates the most recently
// created adjustment wins, and at most one adjustment applies per date.
type PriceAdjustment struct {
	ID          string      `json:"id"`
	RoomID      string      `json:"room_id"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	AdjustType  AdjustType  `json:"adjust_type"`
	AdjustValue float64     `json:"adjust_value"`
	Days        []time.Time `json:"days,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// AppliesTo reports whether the adjustment covers the given date.
func (a *PriceAdjustment) AppliesTo(day time.Time) bool {
	day = DayUTC(day)
	if len(a.Days) > 0 {
		for _, d := range a.Days {
			if DayUTC(d).Equal(day) {
				return true
			}
		}
		return false
	}
	return !day.Before(DayUTC(a.StartDate)) && !day.After(DayUTC(a.EndDate))
}

// Explicit reports whether the adjustment targets an explicit date set
// rather than its whole range.
func (a *PriceAdjustment) Explicit() bool { return len(a.Days) > 0 }

// Apply computes the adjusted nightly amount, floored at zero.
func (a *PriceAdjustment) Apply(base float64) float64 {
	var amount float64
	switch a.AdjustType {
	case AdjustTypePercentage:
		amount = base * (1 + a.AdjustValue/100)
	case AdjustTypeNominal:
		amount = base + a.AdjustValue
	default:
		amount = base
	}
	if amount < 0 {
		return 0
	}
	return amount
}

type CreateAdjustmentInput struct {
	RoomID      string
	StartDate   time.Time
	EndDate     time.Time
	AdjustType  AdjustType
	AdjustValue float64
	Days        []time.Time
}

type NightPrice struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

type Quote struct {
	RoomID   string       `json:"room_id"`
	CheckIn  time.Time    `json:"check_in"`
	CheckOut time.Time    `json:"check_out"`
	PerNight []NightPrice `json:"per_night"`
	Total    float64      `json:"total"`
}
