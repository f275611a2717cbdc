package dto

import (
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
)

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type RoomResponse struct {
	ID        string  `json:"id"`
	TenantID  string  `json:"tenant_id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"base_price"`
	Capacity  int     `json:"capacity"`
	CreatedAt string  `json:"created_at"`
}

type AdjustmentResponse struct {
	ID          string   `json:"id"`
	RoomID      string   `json:"room_id"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	AdjustType  string   `json:"adjust_type"`
	AdjustValue float64  `json:"adjust_value"`
	Days        []string `json:"days,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	OrderCode     string  `json:"order_code"`
	RoomID        string  `json:"room_id"`
	UserID        string  `json:"user_id"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
	ExpiresAt     *string `json:"expires_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type NightPriceResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type QuoteResponse struct {
	RoomID   string               `json:"room_id"`
	CheckIn  string               `json:"check_in"`
	CheckOut string               `json:"check_out"`
	PerNight []NightPriceResponse `json:"per_night"`
	Total    float64              `json:"total"`
}

type RangeCheckResponse struct {
	Available        bool     `json:"available"`
	ConflictingDates []string `json:"conflicting_dates,omitempty"`
}

type ProofResponse struct {
	ID         string  `json:"id"`
	BookingID  string  `json:"booking_id"`
	UploadedBy string  `json:"uploaded_by"`
	ImageURL   string  `json:"image_url"`
	UploadedAt string  `json:"uploaded_at"`
	AcceptedAt *string `json:"accepted_at,omitempty"`
	RejectedAt *string `json:"rejected_at,omitempty"`
	ReviewedBy *string `json:"reviewed_by,omitempty"`
}

type TokenResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Purpose   string  `json:"purpose"`
	Status    string  `json:"status"`
	ExpiresAt string  `json:"expires_at"`
	UsedAt    *string `json:"used_at,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type ErrorResponse struct {
	Error            string   `json:"error"`
	ConflictingDates []string `json:"conflicting_dates,omitempty"`
	CurrentStatus    string   `json:"current_status,omitempty"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:        r.ID,
		TenantID:  r.TenantID,
		Name:      r.Name,
		BasePrice: r.BasePrice,
		Capacity:  r.Capacity,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func ToAdjustmentResponse(a *domain.PriceAdjustment) AdjustmentResponse {
	resp := AdjustmentResponse{
		ID:          a.ID,
		RoomID:      a.RoomID,
		StartDate:   a.StartDate.Format(time.DateOnly),
		EndDate:     a.EndDate.Format(time.DateOnly),
		AdjustType:  string(a.AdjustType),
		AdjustValue: a.AdjustValue,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
	for _, d := range a.Days {
		resp.Days = append(resp.Days, d.Format(time.DateOnly))
	}
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID,
		OrderCode:     b.OrderCode,
		RoomID:        b.RoomID,
		UserID:        b.UserID,
		CheckIn:       b.CheckIn.Format(time.DateOnly),
		CheckOut:      b.CheckOut.Format(time.DateOnly),
		TotalAmount:   b.TotalAmount,
		PaymentMethod: string(b.PaymentMethod),
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
	if b.ExpiresAt != nil {
		s := b.ExpiresAt.Format(time.RFC3339)
		resp.ExpiresAt = &s
	}
	return resp
}

func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	resp := QuoteResponse{
		RoomID:   q.RoomID,
		CheckIn:  q.CheckIn.Format(time.DateOnly),
		CheckOut: q.CheckOut.Format(time.DateOnly),
		Total:    q.Total,
	}
	for _, n := range q.PerNight {
		resp.PerNight = append(resp.PerNight, NightPriceResponse{
			Date:   n.Date.Format(time.DateOnly),
			Amount: n.Amount,
		})
	}
	return resp
}

func ToRangeCheckResponse(c domain.RangeCheck) RangeCheckResponse {
	resp := RangeCheckResponse{Available: c.Available}
	for _, d := range c.ConflictingDates {
		resp.ConflictingDates = append(resp.ConflictingDates, d.Format(time.DateOnly))
	}
	return resp
}

func ToProofResponse(p *domain.PaymentProof) ProofResponse {
	resp := ProofResponse{
		ID:         p.ID,
		BookingID:  p.BookingID,
		UploadedBy: p.UploadedBy,
		ImageURL:   p.ImageURL,
		UploadedAt: p.UploadedAt.Format(time.RFC3339),
		ReviewedBy: p.ReviewedBy,
	}
	if p.AcceptedAt != nil {
		s := p.AcceptedAt.Format(time.RFC3339)
		resp.AcceptedAt = &s
	}
	if p.RejectedAt != nil {
		s := p.RejectedAt.Format(time.RFC3339)
		resp.RejectedAt = &s
	}
	return resp
}

func ToTokenResponse(t *domain.VerificationToken) TokenResponse {
	resp := TokenResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Purpose:   t.Purpose,
		Status:    string(t.Status),
		ExpiresAt: t.ExpiresAt.Format(time.RFC3339),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
	if t.UsedAt != nil {
		s := t.UsedAt.Format(time.RFC3339)
		resp.UsedAt = &s
	}
	return resp
}
