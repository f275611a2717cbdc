package domain

import "time"

// PaymentProof is evidence of a manual transfer. At most one non-rejected
// proof may exist per booking; a re-upload after rejection creates a new
// record so the rejected one stays in history untouched.
type PaymentProof struct {
	ID         string     `json:"id"`
	BookingID  string     `json:"booking_id"`
	UploadedBy string     `json:"uploaded_by"`
	ImageURL   string     `json:"image_url"`
	UploadedAt time.Time  `json:"uploaded_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	RejectedAt *time.Time `json:"rejected_at,omitempty"`
	ReviewedBy *string    `json:"reviewed_by,omitempty"`
}
