package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zambus/internal/services"
)

type FleetHandler struct {
	Svc services.FleetService
}

// GET /api/buses
func (h FleetHandler) ListBuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"buses": h.Svc.ListBuses()})
}

// GET /api/buses/:id
func (h FleetHandler) GetBus(c *gin.Context) {
	bus, err := h.Svc.GetBus(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bus)
}

// POST /api/buses (admin)
func (h FleetHandler) CreateBus(c *gin.Context) {
	var in services.BusInput
	if !BindJSONOrError(c, &in) {
		return
	}
	bus, err := h.Svc.CreateBus(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bus)
}

// PUT /api/buses/:id (admin)
func (h FleetHandler) UpdateBus(c *gin.Context) {
	var in services.BusInput
	if !BindJSONOrError(c, &in) {
		return
	}
	bus, err := h.Svc.UpdateBus(c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bus)
}

// GET /api/routes
func (h FleetHandler) ListRoutes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"routes": h.Svc.ListRoutes()})
}

// GET /api/routes/:id
func (h FleetHandler) GetRoute(c *gin.Context) {
	route, err := h.Svc.GetRoute(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

// POST /api/routes (admin)
func (h FleetHandler) CreateRoute(c *gin.Context) {
	var in services.RouteInput
	if !BindJSONOrError(c, &in) {
		return
	}
	route, err := h.Svc.CreateRoute(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, route)
}

// PUT /api/routes/:id (admin)
func (h FleetHandler) UpdateRoute(c *gin.Context) {
	var in services.RouteInput
	if !BindJSONOrError(c, &in) {
		return
	}
	route, err := h.Svc.UpdateRoute(c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}
