package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateUser(c *ginext.Context)
	GetUserBookings(c *ginext.Context)

	CreateRoom(c *ginext.Context)
	GetRoom(c *ginext.Context)
	ListRooms(c *ginext.Context)
	UpdateRoom(c *ginext.Context)

	UnavailableDates(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	BlockDates(c *ginext.Context)
	UnblockDates(c *ginext.Context)

	QuoteRoom(c *ginext.Context)
	CreateAdjustment(c *ginext.Context)

	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ConfirmGateway(c *ginext.Context)

	UploadProof(c *ginext.Context)
	GetProof(c *ginext.Context)
	ProofHistory(c *ginext.Context)
	ApproveProof(c *ginext.Context)
	RejectProof(c *ginext.Context)

	IssueToken(c *ginext.Context)
	ConsumeToken(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users/:id/bookings", h.GetUserBookings)

		// Rooms
		api.POST("/rooms", h.CreateRoom)
		api.GET("/rooms", h.ListRooms)
		api.GET("/rooms/:id", h.GetRoom)
		api.PATCH("/rooms/:id", h.UpdateRoom)

		// Availability
		api.GET("/rooms/:id/unavailable-dates", h.UnavailableDates)
		api.POST("/rooms/:id/availability/check", h.CheckAvailability)
		api.POST("/rooms/:id/block", h.BlockDates)
		api.POST("/rooms/:id/unblock", h.UnblockDates)

		// Pricing
		api.GET("/rooms/:id/quote", h.QuoteRoom)
		api.POST("/rooms/:id/adjustments", h.CreateAdjustment)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/gateway", h.ConfirmGateway)

		// Payment proofs
		api.POST("/bookings/:id/proof", h.UploadProof)
		api.GET("/bookings/:id/proof", h.GetProof)
		api.GET("/bookings/:id/proofs", h.ProofHistory)
		api.POST("/bookings/:id/proof/approve", h.ApproveProof)
		api.POST("/bookings/:id/proof/reject", h.RejectProof)

		// Verification tokens
		api.POST("/tokens", h.IssueToken)
		api.POST("/tokens/consume", h.ConsumeToken)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
