package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zambus/internal/domain"
	"zambus/internal/http/middleware"
)

// RespondError sends the standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"error":      message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["details"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// RespondDomainError maps domain errors to HTTP responses. Seat conflicts
// carry the conflicting seat numbers so the client can refresh its seat map.
func RespondDomainError(c *gin.Context, err error) {
	reqID := middleware.GetRequestID(c)
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(), "code": "validation_error", "request_id": reqID,
		})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(), "code": "not_found", "request_id": reqID,
		})
	case domain.IsSeatUnavailable(err):
		c.JSON(http.StatusConflict, gin.H{
			"error":             err.Error(),
			"code":              "seat_unavailable",
			"conflicting_seats": domain.ConflictingSeats(err),
			"request_id":        reqID,
		})
	case domain.IsInvalidState(err):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(), "code": "invalid_state", "request_id": reqID,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "internal error", "code": "internal_error", "request_id": reqID,
		})
	}
}
