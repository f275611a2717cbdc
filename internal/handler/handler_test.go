package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
	"github.com/fuadinadhif/staysane-sub002/internal/handler/dto"
	hmocks "github.com/fuadinadhif/staysane-sub002/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type handlerMocks struct {
	userSvc         *hmocks.MockUserSvc
	roomSvc         *hmocks.MockRoomSvc
	availabilitySvc *hmocks.MockAvailabilitySvc
	pricingSvc      *hmocks.MockPricingSvc
	bookingSvc      *hmocks.MockBookingSvc
	proofSvc        *hmocks.MockProofSvc
	tokenSvc        *hmocks.MockTokenSvc
}

// setupRouter builds the handler behind the same routes the real router
// mounts. When actor is non-nil it is injected the way the identity
// middleware would after resolving the X-User-ID header.
func setupRouter(t *testing.T, actor *domain.User) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		userSvc:         hmocks.NewMockUserSvc(t),
		roomSvc:         hmocks.NewMockRoomSvc(t),
		availabilitySvc: hmocks.NewMockAvailabilitySvc(t),
		pricingSvc:      hmocks.NewMockPricingSvc(t),
		bookingSvc:      hmocks.NewMockBookingSvc(t),
		proofSvc:        hmocks.NewMockProofSvc(t),
		tokenSvc:        hmocks.NewMockTokenSvc(t),
	}

	h := NewHandler(m.userSvc, m.roomSvc, m.availabilitySvc, m.pricingSvc, m.bookingSvc, m.proofSvc, m.tokenSvc)

	r := ginext.New("test")
	if actor != nil {
		r.Use(func(c *ginext.Context) {
			c.Set("actor", actor)
			c.Next()
		})
	}

	api := r.Group("/api")
	{
		api.POST("/users", h.CreateUser)
		api.GET("/users/:id/bookings", h.GetUserBookings)

		api.POST("/rooms", h.CreateRoom)
		api.GET("/rooms", h.ListRooms)
		api.GET("/rooms/:id", h.GetRoom)
		api.PATCH("/rooms/:id", h.UpdateRoom)
		api.GET("/rooms/:id/unavailable-dates", h.UnavailableDates)
		api.POST("/rooms/:id/availability/check", h.CheckAvailability)
		api.POST("/rooms/:id/block", h.BlockDates)
		api.POST("/rooms/:id/unblock", h.UnblockDates)
		api.GET("/rooms/:id/quote", h.QuoteRoom)
		api.POST("/rooms/:id/adjustments", h.CreateAdjustment)

		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/gateway", h.ConfirmGateway)
		api.POST("/bookings/:id/proof", h.UploadProof)
		api.GET("/bookings/:id/proof", h.GetProof)
		api.GET("/bookings/:id/proofs", h.ProofHistory)
		api.POST("/bookings/:id/proof/approve", h.ApproveProof)
		api.POST("/bookings/:id/proof/reject", h.RejectProof)

		api.POST("/tokens", h.IssueToken)
		api.POST("/tokens/consume", h.ConsumeToken)
	}

	return m, r
}

func guest() *domain.User {
	return &domain.User{ID: uuid.New().String(), Username: "alice", Role: domain.UserRoleGuest}
}

func tenant() *domain.User {
	return &domain.User{ID: uuid.New().String(), Username: "bob", Role: domain.UserRoleTenant}
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	m, r := setupRouter(t, nil)

	user := &domain.User{
		ID:        uuid.New().String(),
		Username:  "alice",
		Email:     "alice@example.com",
		Role:      domain.UserRoleGuest,
		CreatedAt: time.Now(),
	}
	m.userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Role:     "guest",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "guest", resp.Role)
}

func TestHandler_CreateUser_BadRequest(t *testing.T) {
	_, r := setupRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users", map[string]string{"username": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Rooms ---

func TestHandler_CreateRoom_Success(t *testing.T) {
	owner := tenant()
	m, r := setupRouter(t, owner)

	room := &domain.Room{
		ID:        uuid.New().String(),
		TenantID:  owner.ID,
		Name:      "Seaview",
		BasePrice: 100,
		Capacity:  2,
		CreatedAt: time.Now(),
	}
	m.roomSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(room, nil)

	w := doJSON(t, r, http.MethodPost, "/api/rooms", dto.CreateRoomRequest{
		Name:      "Seaview",
		BasePrice: 100,
		Capacity:  2,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, owner.ID, resp.TenantID)
}

func TestHandler_CreateRoom_NoIdentity(t *testing.T) {
	_, r := setupRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/api/rooms", dto.CreateRoomRequest{
		Name:      "Seaview",
		BasePrice: 100,
		Capacity:  2,
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_GetRoom_InvalidID(t *testing.T) {
	_, r := setupRouter(t, nil)

	w := doJSON(t, r, http.MethodGet, "/api/rooms/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetRoom_NotFound(t *testing.T) {
	m, r := setupRouter(t, nil)

	roomID := uuid.New().String()
	m.roomSvc.EXPECT().GetByID(mock.Anything, roomID).Return(nil, domain.ErrRoomNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/rooms/"+roomID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Availability ---

func TestHandler_CheckAvailability_Conflict(t *testing.T) {
	m, r := setupRouter(t, nil)

	roomID := uuid.New().String()
	conflict := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)
	m.availabilitySvc.EXPECT().CheckAvailability(mock.Anything, roomID, mock.Anything, mock.Anything).
		Return(domain.RangeCheck{Available: false, ConflictingDates: []time.Time{conflict}}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/rooms/"+roomID+"/availability/check", dto.CheckAvailabilityRequest{
		CheckIn:  "2026-10-01",
		CheckOut: "2026-10-03",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RangeCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
	assert.Equal(t, []string{"2026-10-02"}, resp.ConflictingDates)
}

func TestHandler_CheckAvailability_BadDate(t *testing.T) {
	_, r := setupRouter(t, nil)

	roomID := uuid.New().String()
	w := doJSON(t, r, http.MethodPost, "/api/rooms/"+roomID+"/availability/check", dto.CheckAvailabilityRequest{
		CheckIn:  "October 1st",
		CheckOut: "2026-10-03",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BlockDates_Success(t *testing.T) {
	owner := tenant()
	m, r := setupRouter(t, owner)

	roomID := uuid.New().String()
	m.availabilitySvc.EXPECT().Block(mock.Anything, owner.ID, roomID, mock.Anything).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/rooms/"+roomID+"/block", dto.DatesRequest{
		Dates: []string{"2026-10-02", "2026-10-03"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UnblockDates_Forbidden(t *testing.T) {
	actor := tenant()
	m, r := setupRouter(t, actor)

	roomID := uuid.New().String()
	m.availabilitySvc.EXPECT().Unblock(mock.Anything, actor.ID, roomID, mock.Anything).
		Return(domain.ErrForbidden)

	w := doJSON(t, r, http.MethodPost, "/api/rooms/"+roomID+"/unblock", dto.DatesRequest{
		Dates: []string{"2026-10-02"},
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Pricing ---

func TestHandler_QuoteRoom_Success(t *testing.T) {
	m, r := setupRouter(t, nil)

	roomID := uuid.New().String()
	quote := &domain.Quote{
		RoomID:   roomID,
		CheckIn:  time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		PerNight: []domain.NightPrice{
			{Date: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), Amount: 100},
			{Date: time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC), Amount: 120},
		},
		Total: 220,
	}
	m.pricingSvc.EXPECT().Quote(mock.Anything, roomID, mock.Anything, mock.Anything).Return(quote, nil)

	w := doJSON(t, r, http.MethodGet, "/api/rooms/"+roomID+"/quote?check_in=2026-10-01&check_out=2026-10-03", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 220.0, resp.Total)
	assert.Len(t, resp.PerNight, 2)
}

func TestHandler_QuoteRoom_MissingDates(t *testing.T) {
	_, r := setupRouter(t, nil)

	roomID := uuid.New().String()
	w := doJSON(t, r, http.MethodGet, "/api/rooms/"+roomID+"/quote", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateAdjustment_Success(t *testing.T) {
	owner := tenant()
	m, r := setupRouter(t, owner)

	roomID := uuid.New().String()
	adj := &domain.PriceAdjustment{
		ID:          uuid.New().String(),
		RoomID:      roomID,
		StartDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		AdjustType:  domain.AdjustTypePercentage,
		AdjustValue: 20,
		CreatedAt:   time.Now(),
	}
	m.pricingSvc.EXPECT().CreateAdjustment(mock.Anything, owner.ID, mock.Anything).Return(adj, nil)

	w := doJSON(t, r, http.MethodPost, "/api/rooms/"+roomID+"/adjustments", dto.CreateAdjustmentRequest{
		StartDate:   "2026-10-01",
		EndDate:     "2026-10-05",
		AdjustType:  "percentage",
		AdjustValue: 20,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	actor := guest()
	m, r := setupRouter(t, actor)

	roomID := uuid.New().String()
	booking := &domain.Booking{
		ID:            uuid.New().String(),
		OrderCode:     "STY-20261001-ABC123",
		RoomID:        roomID,
		UserID:        actor.ID,
		CheckIn:       time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		TotalAmount:   200,
		PaymentMethod: domain.PaymentMethodManualTransfer,
		Status:        domain.BookingStatusWaitingPayment,
		CreatedAt:     time.Now(),
	}
	m.bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		RoomID:        roomID,
		CheckIn:       "2026-10-01",
		CheckOut:      "2026-10-03",
		PaymentMethod: "manual_transfer",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "waiting_payment", resp.Status)
	assert.Equal(t, booking.OrderCode, resp.OrderCode)
}

func TestHandler_CreateBooking_DateConflict(t *testing.T) {
	actor := guest()
	m, r := setupRouter(t, actor)

	roomID := uuid.New().String()
	m.bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, &domain.DateConflictError{
			RoomID: roomID,
			Dates:  []time.Time{time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)},
		})

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		RoomID:        roomID,
		CheckIn:       "2026-10-01",
		CheckOut:      "2026-10-03",
		PaymentMethod: "manual_transfer",
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"2026-10-02"}, resp.ConflictingDates)
}

func TestHandler_GetBooking_Forbidden(t *testing.T) {
	actor := guest()
	m, r := setupRouter(t, actor)

	bookingID := uuid.New().String()
	m.bookingSvc.EXPECT().GetByID(mock.Anything, actor.ID, bookingID).Return(nil, domain.ErrForbidden)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/"+bookingID, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ListBookings_GuestSeesOwn(t *testing.T) {
	actor := guest()
	m, r := setupRouter(t, actor)

	m.bookingSvc.EXPECT().List(mock.Anything, domain.BookingFilter{UserID: actor.ID}).
		Return([]*domain.Booking{{ID: "b1", UserID: actor.ID, CreatedAt: time.Now()}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListBookings_TenantFiltersByRoom(t *testing.T) {
	actor := tenant()
	m, r := setupRouter(t, actor)

	m.bookingSvc.EXPECT().
		List(mock.Anything, domain.BookingFilter{RoomID: "r1", TenantID: actor.ID}).
		Return(nil, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings?room_id=r1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListBookings_TenantScopedToOwnRooms(t *testing.T) {
	actor := tenant()
	m, r := setupRouter(t, actor)

	// Without a room filter a tenant must still only see bookings on
	// rooms they own, never every booking in the system.
	m.bookingSvc.EXPECT().
		List(mock.Anything, domain.BookingFilter{TenantID: actor.ID}).
		Return(nil, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetUserBookings_OtherUserForbidden(t *testing.T) {
	actor := guest()
	_, r := setupRouter(t, actor)

	otherID := uuid.New().String()
	w := doJSON(t, r, http.MethodGet, "/api/users/"+otherID+"/bookings", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CancelBooking_StaleStatus(t *testing.T) {
	actor := guest()
	m, r := setupRouter(t, actor)

	bookingID := uuid.New().String()
	m.bookingSvc.EXPECT().Cancel(mock.Anything, actor.ID, bookingID).
		Return(&domain.StaleStatusError{
			BookingID: bookingID,
			Expected:  domain.BookingStatusWaitingPayment,
			Current:   domain.BookingStatusExpired,
		})

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel", nil)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "expired", resp.CurrentStatus)
}

func TestHandler_ConfirmGateway_Success(t *testing.T) {
	m, r := setupRouter(t, nil)

	bookingID := uuid.New().String()
	m.bookingSvc.EXPECT().ConfirmGateway(mock.Anything, bookingID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/gateway", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Payment proofs ---

func TestHandler_UploadProof_Success(t *testing.T) {
	actor := guest()
	m, r := setupRouter(t, actor)

	bookingID := uuid.New().String()
	proof := &domain.PaymentProof{
		ID:         uuid.New().String(),
		BookingID:  bookingID,
		UploadedBy: actor.ID,
		ImageURL:   "https://cdn/proof.jpg",
		UploadedAt: time.Now(),
	}
	m.proofSvc.EXPECT().Upload(mock.Anything, actor.ID, bookingID, []byte("receipt")).Return(proof, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/proof", dto.UploadProofRequest{
		Image: base64.StdEncoding.EncodeToString([]byte("receipt")),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ProofResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://cdn/proof.jpg", resp.ImageURL)
}

func TestHandler_UploadProof_NotBase64(t *testing.T) {
	actor := guest()
	_, r := setupRouter(t, actor)

	bookingID := uuid.New().String()
	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/proof", dto.UploadProofRequest{
		Image: "!!! definitely not base64 !!!",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ApproveProof_Success(t *testing.T) {
	actor := tenant()
	m, r := setupRouter(t, actor)

	bookingID := uuid.New().String()
	m.proofSvc.EXPECT().Approve(mock.Anything, actor.ID, bookingID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/proof/approve", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RejectProof_NoPendingProof(t *testing.T) {
	actor := tenant()
	m, r := setupRouter(t, actor)

	bookingID := uuid.New().String()
	m.proofSvc.EXPECT().Reject(mock.Anything, actor.ID, bookingID).Return(domain.ErrNoPendingProof)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/proof/reject", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Tokens ---

func TestHandler_IssueToken_Success(t *testing.T) {
	m, r := setupRouter(t, nil)

	userID := uuid.New().String()
	token := &domain.VerificationToken{
		ID:        uuid.New().String(),
		UserID:    userID,
		Purpose:   "email_verification",
		Status:    domain.TokenStatusActive,
		ExpiresAt: time.Now().Add(24 * time.Hour),
		CreatedAt: time.Now(),
	}
	m.tokenSvc.EXPECT().Issue(mock.Anything, userID, "email_verification").Return(token, nil)

	w := doJSON(t, r, http.MethodPost, "/api/tokens", dto.IssueTokenRequest{
		UserID:  userID,
		Purpose: "email_verification",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "active", resp.Status)
}

func TestHandler_ConsumeToken_NotActive(t *testing.T) {
	m, r := setupRouter(t, nil)

	tokenID := uuid.New().String()
	m.tokenSvc.EXPECT().Consume(mock.Anything, tokenID).Return(nil, domain.ErrTokenNotActive)

	w := doJSON(t, r, http.MethodPost, "/api/tokens/consume", dto.ConsumeTokenRequest{TokenID: tokenID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_HandleError_Internal(t *testing.T) {
	m, r := setupRouter(t, nil)

	roomID := uuid.New().String()
	m.roomSvc.EXPECT().GetByID(mock.Anything, roomID).Return(nil, assert.AnError)

	w := doJSON(t, r, http.MethodGet, "/api/rooms/"+roomID, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
