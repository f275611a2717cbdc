package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrProofNotFound   = errors.New("payment proof not found")
	ErrTokenNotFound   = errors.New("token not found")
)

var (
	ErrDatesUnavailable = errors.New("dates are not available")
	ErrUsernameTaken    = errors.New("username is already taken")
	ErrStaleStatus      = errors.New("booking already in a different state")
	ErrDuplicateProof   = errors.New("an active payment proof already exists")
	ErrNoPendingProof   = errors.New("no pending payment proof to review")
	ErrTokenNotActive   = errors.New("token is used or expired")
)

var (
	ErrForbidden = errors.New("forbidden")
)

var (
	ErrValidation = errors.New("validation error")
)

// DateConflictError names the calendar cells that blocked a hold. It
// unwraps to ErrDatesUnavailable so callers can match with errors.Is.
type DateConflictError struct {
	RoomID string
	Dates  []time.Time
}

func (e *DateConflictError) Error() string {
	days := make([]string, len(e.Dates))
	for i, d := range e.Dates {
		days[i] = d.Format(time.DateOnly)
	}
	return fmt.Sprintf("dates are not available for room %s: %s", e.RoomID, strings.Join(days, ", "))
}

func (e *DateConflictError) Unwrap() error { return ErrDatesUnavailable }

// StaleStatusError is a failed compare-and-swap on a booking transition:
// the row no longer carried the expected status. It unwraps to
// ErrStaleStatus.
type StaleStatusError struct {
	BookingID string
	Expected  BookingStatus
	Current   BookingStatus
}

func (e *StaleStatusError) Error() string {
	return fmt.Sprintf("booking %s is %s, expected %s", e.BookingID, e.Current, e.Expected)
}

func (e *StaleStatusError) Unwrap() error { return ErrStaleStatus }
