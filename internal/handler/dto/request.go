package dto

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required,oneof=guest tenant"`
}

type CreateRoomRequest struct {
	Name      string  `json:"name" binding:"required"`
	BasePrice float64 `json:"base_price" binding:"required,gte=0"`
	Capacity  int     `json:"capacity" binding:"required,gt=0"`
}

type UpdateRoomRequest struct {
	Name      *string  `json:"name"`
	BasePrice *float64 `json:"base_price"`
	Capacity  *int     `json:"capacity"`
}

type CreateAdjustmentRequest struct {
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	AdjustType  string   `json:"adjust_type" binding:"required,oneof=percentage nominal"`
	AdjustValue float64  `json:"adjust_value" binding:"required"`
	Days        []string `json:"days"`
}

type DatesRequest struct {
	Dates []string `json:"dates" binding:"required,min=1"`
}

type CheckAvailabilityRequest struct {
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

type CreateBookingRequest struct {
	RoomID        string `json:"room_id" binding:"required,uuid"`
	CheckIn       string `json:"check_in" binding:"required"`
	CheckOut      string `json:"check_out" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=manual_transfer payment_gateway"`
}

type UploadProofRequest struct {
	// Image is the raw proof image, base64-encoded.
	Image string `json:"image" binding:"required"`
}

type IssueTokenRequest struct {
	UserID  string `json:"user_id" binding:"required,uuid"`
	Purpose string `json:"purpose" binding:"required"`
}

type ConsumeTokenRequest struct {
	TokenID string `json:"token_id" binding:"required,uuid"`
}
