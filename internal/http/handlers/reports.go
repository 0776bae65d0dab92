package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zambus/internal/services"
)

type ReportHandler struct {
	Svc services.ReportService
}

// GET /api/reports/summary (admin)
func (h ReportHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.BuildSummary())
}

// GET /api/reports/occupancy (admin)
func (h ReportHandler) Occupancy(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"trips": h.Svc.Occupancy()})
}
