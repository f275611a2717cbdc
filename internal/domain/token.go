package domain

import "time"

type TokenStatus string

const (
	TokenStatusActive  TokenStatus = "active"
	TokenStatusUsed    TokenStatus = "used"
	TokenStatusExpired TokenStatus = "expired"
)

// VerificationToken is a short-lived single-use token. Expiry follows the
// same two-mechanism pattern as booking deadlines: a best-effort one-shot
// timer plus the reconciliation sweep that flips any token past its
// deadline that has not been used.
type VerificationToken struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Purpose   string      `json:"purpose"`
	Status    TokenStatus `json:"status"`
	ExpiresAt time.Time   `json:"expires_at"`
	UsedAt    *time.Time  `json:"used_at,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
