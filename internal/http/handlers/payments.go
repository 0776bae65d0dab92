package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zambus/internal/domain"
	"zambus/internal/http/middleware"
	"zambus/internal/services"
	"zambus/internal/store"
)

type PaymentHandler struct {
	Store    *store.Store
	Bookings services.BookingService
}

// GET /api/payments — admins see every record, passengers their own.
func (h PaymentHandler) List(c *gin.Context) {
	if middleware.CurrentRole(c) == string(domain.RoleAdmin) {
		c.JSON(http.StatusOK, gin.H{"payments": h.Store.ListPayments()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": h.Bookings.PaymentsForPassenger(middleware.CurrentUserID(c))})
}
