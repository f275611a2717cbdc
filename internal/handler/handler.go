package handler

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
	"github.com/fuadinadhif/staysane-sub002/internal/handler/dto"
	"github.com/fuadinadhif/staysane-sub002/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
}

type RoomSvc interface {
	Create(ctx context.Context, input domain.CreateRoomInput) (*domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*domain.Room, error)
	Update(ctx context.Context, actorID, id string, input domain.UpdateRoomInput) (*domain.Room, error)
}

type AvailabilitySvc interface {
	CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (domain.RangeCheck, error)
	UnavailableDates(ctx context.Context, roomID string) ([]time.Time, error)
	Block(ctx context.Context, tenantID, roomID string, days []time.Time) error
	Unblock(ctx context.Context, tenantID, roomID string, days []time.Time) error
}

type PricingSvc interface {
	Quote(ctx context.Context, roomID string, checkIn, checkOut time.Time) (*domain.Quote, error)
	CreateAdjustment(ctx context.Context, tenantID string, input domain.CreateAdjustmentInput) (*domain.PriceAdjustment, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	GetByID(ctx context.Context, actorID, id string) (*domain.Booking, error)
	List(ctx context.Context, f domain.BookingFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, actorID, id string) error
	ConfirmGateway(ctx context.Context, id string) error
}

type ProofSvc interface {
	Upload(ctx context.Context, actorID, bookingID string, image []byte) (*domain.PaymentProof, error)
	Approve(ctx context.Context, reviewerID, bookingID string) error
	Reject(ctx context.Context, reviewerID, bookingID string) error
	Get(ctx context.Context, actorID, bookingID string) (*domain.PaymentProof, error)
	History(ctx context.Context, actorID, bookingID string) ([]*domain.PaymentProof, error)
}

type TokenSvc interface {
	Issue(ctx context.Context, userID, purpose string) (*domain.VerificationToken, error)
	Consume(ctx context.Context, id string) (*domain.VerificationToken, error)
}

type Handler struct {
	userService         UserSvc
	roomService         RoomSvc
	availabilityService AvailabilitySvc
	pricingService      PricingSvc
	bookingService      BookingSvc
	proofService        ProofSvc
	tokenService        TokenSvc
}

func NewHandler(
	userService UserSvc,
	roomService RoomSvc,
	availabilityService AvailabilitySvc,
	pricingService PricingSvc,
	bookingService BookingSvc,
	proofService ProofSvc,
	tokenService TokenSvc,
) *Handler {
	return &Handler{
		userService:         userService,
		roomService:         roomService,
		availabilityService: availabilityService,
		pricingService:      pricingService,
		bookingService:      bookingService,
		proofService:        proofService,
		tokenService:        tokenService,
	}
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Role:     domain.UserRole(req.Role),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Rooms

func (h *Handler) CreateRoom(c *ginext.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.roomService.Create(c.Request.Context(), domain.CreateRoomInput{
		TenantID:  actor.ID,
		Name:      req.Name,
		BasePrice: req.BasePrice,
		Capacity:  req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

func (h *Handler) ListRooms(c *ginext.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	rooms, err := h.roomService.ListByTenant(c.Request.Context(), actor.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, dto.ToRoomResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetRoom(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room id"})
		return
	}

	room, err := h.roomService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *Handler) UpdateRoom(c *ginext.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room id"})
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.roomService.Update(c.Request.Context(), actor.ID, id, domain.UpdateRoomInput{
		Name:      req.Name,
		BasePrice: req.BasePrice,
		Capacity:  req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// Availability

func (h *Handler) UnavailableDates(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room id"})
		return
	}

	days, err := h.availabilityService.UnavailableDates(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	dates := make([]string, 0, len(days))
	for _, d := range days {
		dates = append(dates, d.Format(time.DateOnly))
	}

	c.JSON(http.StatusOK, ginext.H{"room_id": id, "unavailable_dates": dates})
}

func (h *Handler) CheckAvailability(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room id"})
		return
	}

	var req dto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	checkIn, checkOut, err := parseRange(req.CheckIn, req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	check, err := h.availabilityService.CheckAvailability(c.Request.Context(), id, checkIn, checkOut)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRangeCheckResponse(check))
}

func (h *Handler) BlockDates(c *ginext.Context) {
	h.blockUnblock(c, h.availabilityService.Block)
}

func (h *Handler) UnblockDates(c *ginext.Context) {
	h.blockUnblock(c, h.availabilityService.Unblock)
}

func (h *Handler) blockUnblock(c *ginext.Context, op func(ctx context.Context, tenantID, roomID string, days []time.Time) error) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room id"})
		return
	}

	var req dto.DatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	days, err := parseDates(req.Dates)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := op(c.Request.Context(), actor.ID, id, days); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

// Pricing

func (h *Handler) QuoteRoom(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room id"})
		return
	}

	checkIn, checkOut, err := parseRange(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	quote, err := h.pricingService.Quote(c.Request.Context(), id, checkIn, checkOut)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

func (h *Handler) CreateAdjustment(c *ginext.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	roomID := c.Param("id")
	if _, err := uuid.Parse(roomID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid room id"})
		return
	}

	var req dto.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	days, err := parseDates(req.Days)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	adj, err := h.pricingService.CreateAdjustment(c.Request.Context(), actor.ID, domain.CreateAdjustmentInput{
		RoomID:      roomID,
		StartDate:   start,
		EndDate:     end,
		AdjustType:  domain.AdjustType(req.AdjustType),
		AdjustValue: req.AdjustValue,
		Days:        days,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAdjustmentResponse(adj))
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	checkIn, checkOut, err := parseRange(req.CheckIn, req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), domain.CreateBookingInput{
		RoomID:        req.RoomID,
		UserID:        actor.ID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), actor.ID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	filter := domain.BookingFilter{
		RoomID: c.Query("room_id"),
		Status: domain.BookingStatus(c.Query("status")),
	}
	// Guests see their own bookings; tenants see bookings on their own
	// rooms only, even when they ask for a specific room.
	if actor.Role == domain.UserRoleTenant {
		filter.TenantID = actor.ID
	} else {
		filter.UserID = actor.ID
	}

	bookings, err := h.bookingService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}
	if actor.ID != id {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: domain.ErrForbidden.Error()})
		return
	}

	bookings, err := h.bookingService.List(c.Request.Context(), domain.BookingFilter{
		UserID: id,
		Status: domain.BookingStatus(c.Query("status")),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), actor.ID, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "canceled"})
}

func (h *Handler) ConfirmGateway(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.ConfirmGateway(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "processing"})
}

// Payment proofs

func (h *Handler) UploadProof(c *ginext.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.UploadProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	image, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "image must be base64-encoded"})
		return
	}

	proof, err := h.proofService.Upload(c.Request.Context(), actor.ID, id, image)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProofResponse(proof))
}

func (h *Handler) GetProof(c *ginext.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	proof, err := h.proofService.Get(c.Request.Context(), actor.ID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProofResponse(proof))
}

func (h *Handler) ProofHistory(c *ginext.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	proofs, err := h.proofService.History(c.Request.Context(), actor.ID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ProofResponse, 0, len(proofs))
	for _, p := range proofs {
		resp = append(resp, dto.ToProofResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ApproveProof(c *ginext.Context) {
	h.reviewProof(c, h.proofService.Approve, "processing")
}

func (h *Handler) RejectProof(c *ginext.Context) {
	h.reviewProof(c, h.proofService.Reject, "rejected")
}

func (h *Handler) reviewProof(c *ginext.Context, op func(ctx context.Context, reviewerID, bookingID string) error, result string) {
	actor, ok := middleware.Actor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := op(c.Request.Context(), actor.ID, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": result})
}

// Tokens

func (h *Handler) IssueToken(c *ginext.Context) {
	var req dto.IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.tokenService.Issue(c.Request.Context(), req.UserID, req.Purpose)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTokenResponse(token))
}

func (h *Handler) ConsumeToken(c *ginext.Context) {
	var req dto.ConsumeTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.tokenService.Consume(c.Request.Context(), req.TokenID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTokenResponse(token))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var conflict *domain.DateConflictError
	if errors.As(err, &conflict) {
		resp := dto.ErrorResponse{Error: err.Error()}
		for _, d := range conflict.Dates {
			resp.ConflictingDates = append(resp.ConflictingDates, d.Format(time.DateOnly))
		}
		c.JSON(http.StatusConflict, resp)
		return
	}

	var stale *domain.StaleStatusError
	if errors.As(err, &stale) {
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:         err.Error(),
			CurrentStatus: string(stale.Current),
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrProofNotFound),
		errors.Is(err, domain.ErrTokenNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDatesUnavailable),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrStaleStatus),
		errors.Is(err, domain.ErrDuplicateProof),
		errors.Is(err, domain.ErrNoPendingProof),
		errors.Is(err, domain.ErrTokenNotActive):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func parseRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(time.DateOnly, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid check_in, expected YYYY-MM-DD")
	}
	out, err := time.Parse(time.DateOnly, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid check_out, expected YYYY-MM-DD")
	}
	return in, out, nil
}

func parseDates(dates []string) ([]time.Time, error) {
	var days []time.Time
	for _, s := range dates {
		d, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return nil, errors.New("invalid date " + s + ", expected YYYY-MM-DD")
		}
		days = append(days, d)
	}
	return days, nil
}
