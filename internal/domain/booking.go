package domain

import "time"

type BookingStatus string

const (
	BookingStatusWaitingPayment      BookingStatus = "waiting_payment"
	BookingStatusWaitingConfirmation BookingStatus = "waiting_confirmation"
	BookingStatusProcessing          BookingStatus = "processing"
	BookingStatusCompleted           BookingStatus = "completed"
	BookingStatusCanceled            BookingStatus = "canceled"
	BookingStatusExpired             BookingStatus = "expired"
)

// NonTerminalStatuses are the statuses whose bookings still own calendar cells.
var NonTerminalStatuses = []BookingStatus{
	BookingStatusWaitingPayment,
	BookingStatusWaitingConfirmation,
	BookingStatusProcessing,
}

func (s BookingStatus) Terminal() bool {
	switch s {
	case BookingStatusCompleted, BookingStatusCanceled, BookingStatusExpired:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodManualTransfer PaymentMethod = "manual_transfer"
	PaymentMethodGateway        PaymentMethod = "payment_gateway"
)

type Booking struct {
	ID            string        `json:"id"`
	OrderCode     string        `json:"order_code"`
	RoomID        string        `json:"room_id"`
	UserID        string        `json:"user_id"`
	CheckIn       time.Time     `json:"check_in"`
	CheckOut      time.Time     `json:"check_out"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        BookingStatus `json:"status"`
	ExpiresAt     *time.Time    `json:"expires_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Nights lists the charged dates, [check_in, check_out). The checkout date
// itself is never charged or held.
func (b *Booking) Nights() []time.Time {
	return DaysBetween(b.CheckIn, b.CheckOut)
}

type CreateBookingInput struct {
	RoomID        string
	UserID        string
	CheckIn       time.Time
	CheckOut      time.Time
	PaymentMethod PaymentMethod
}

type BookingFilter struct {
	UserID string
	RoomID string
	// TenantID restricts results to bookings on rooms owned by that
	// tenant, regardless of the other fields.
	TenantID string
	Status   BookingStatus
}
