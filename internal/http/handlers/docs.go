package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zambus/internal/domain"
	"zambus/internal/http/middleware"
	"zambus/internal/services"
)

type DocsHandler struct {
	Svc      services.DocsService
	Bookings services.BookingService
}

// GET /api/bookings/:id/ticket
func (h DocsHandler) Ticket(c *gin.Context) {
	h.servePDF(c, h.Svc.GenerateTicket)
}

// GET /api/bookings/:id/receipt
func (h DocsHandler) Receipt(c *gin.Context) {
	h.servePDF(c, h.Svc.GenerateReceipt)
}

func (h DocsHandler) servePDF(c *gin.Context, build func(string) ([]byte, string, error)) {
	bookingID := c.Param("id")
	booking, err := h.Bookings.Get(bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if middleware.CurrentRole(c) != string(domain.RoleAdmin) && booking.PassengerID != middleware.CurrentUserID(c) {
		RespondDomainError(c, domain.NotFoundError{Resource: "booking", ID: bookingID})
		return
	}
	data, filename, err := build(bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
