package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zambus/internal/domain"
	"zambus/internal/http/middleware"
	"zambus/internal/services"
)

type BookingHandler struct {
	Svc services.BookingService
}

// POST /api/bookings — reserve seats and pay in one step.
func (h BookingHandler) Create(c *gin.Context) {
	var req services.CreateBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	req.PassengerID = middleware.CurrentUserID(c)
	// Price overrides are an admin counter-sale facility.
	if middleware.CurrentRole(c) != string(domain.RoleAdmin) {
		req.PriceOverride = 0
	}
	booking, err := h.Svc.Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GET /api/bookings — admins see everything, passengers their own.
func (h BookingHandler) List(c *gin.Context) {
	if middleware.CurrentRole(c) == string(domain.RoleAdmin) {
		c.JSON(http.StatusOK, gin.H{"bookings": h.Svc.List()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": h.Svc.ListForPassenger(middleware.CurrentUserID(c))})
}

// GET /api/bookings/:id
func (h BookingHandler) Get(c *gin.Context) {
	booking, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if middleware.CurrentRole(c) != string(domain.RoleAdmin) && booking.PassengerID != middleware.CurrentUserID(c) {
		RespondDomainError(c, domain.NotFoundError{Resource: "booking", ID: booking.ID})
		return
	}
	c.JSON(http.StatusOK, booking)
}

// POST /api/bookings/:id/cancel
func (h BookingHandler) Cancel(c *gin.Context) {
	passengerID := middleware.CurrentUserID(c)
	if middleware.CurrentRole(c) == string(domain.RoleAdmin) {
		passengerID = ""
	}
	booking, err := h.Svc.Cancel(c.Param("id"), passengerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

type holdRequest struct {
	TripID      string `json:"tripId" binding:"required"`
	SeatNumbers []int  `json:"seatNumbers" binding:"required"`
}

// POST /api/holds — park seats while payment is arranged.
func (h BookingHandler) Hold(c *gin.Context) {
	var req holdRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	hold, err := h.Svc.Hold(req.TripID, req.SeatNumbers, middleware.CurrentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hold)
}

type confirmHoldRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// POST /api/holds/:id/confirm
func (h BookingHandler) ConfirmHold(c *gin.Context) {
	var req confirmHoldRequest
	if c.Request.Body != nil {
		_ = c.ShouldBindJSON(&req)
	}
	booking, err := h.Svc.ConfirmHold(c.Param("id"), req.PaymentMethod)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// DELETE /api/holds/:id
func (h BookingHandler) ReleaseHold(c *gin.Context) {
	if err := h.Svc.ReleaseHold(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"released": true})
}

type checkInRequest struct {
	TicketCode string `json:"ticketCode" binding:"required"`
}

// POST /api/checkin (driver) — boards a passenger by ticket code.
func (h BookingHandler) CheckIn(c *gin.Context) {
	var req checkInRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	result, err := h.Svc.CheckIn(req.TicketCode)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
