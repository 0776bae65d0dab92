package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"zambus/internal/domain"
	"zambus/internal/inventory"
	"zambus/internal/services"
	"zambus/internal/utils"
)

type TripHandler struct {
	Trips     services.TripService
	Bookings  services.BookingService
	Inventory *inventory.Manager
}

// GET /api/trips?from=&to=&date=
func (h TripHandler) List(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	dateStr := c.Query("date")

	if from == "" && to == "" && dateStr == "" {
		c.JSON(http.StatusOK, gin.H{"trips": h.Trips.List()})
		return
	}

	var date time.Time
	if dateStr != "" {
		parsed, err := utils.ParseDate(dateStr)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid date, want YYYY-MM-DD", err)
			return
		}
		date = parsed
	}
	c.JSON(http.StatusOK, gin.H{"trips": h.Trips.Search(from, to, date)})
}

// GET /api/trips/:id
func (h TripHandler) Get(c *gin.Context) {
	trip, err := h.Trips.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// GET /api/trips/:id/seats — availability snapshot for the seat map.
func (h TripHandler) Availability(c *gin.Context) {
	seats, err := h.Inventory.QueryAvailability(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tripId": c.Param("id"), "availableSeats": seats})
}

// POST /api/trips (admin)
func (h TripHandler) Create(c *gin.Context) {
	var req services.CreateTripRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	trip, err := h.Trips.Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

type statusRequest struct {
	Status domain.TripStatus `json:"status" binding:"required"`
}

// PUT /api/trips/:id/status (admin or driver)
func (h TripHandler) AdvanceStatus(c *gin.Context) {
	var req statusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	trip, err := h.Trips.AdvanceStatus(c.Param("id"), req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// GET /api/trips/:id/bookings (admin or driver) — the passenger manifest.
func (h TripHandler) BookingsForTrip(c *gin.Context) {
	if _, err := h.Trips.Get(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": h.Bookings.ListForTrip(c.Param("id"))})
}
