package api

import (
	stdhttp "net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"zambus/internal/config"
	h "zambus/internal/http/handlers"
	"zambus/internal/http/middleware"
	"zambus/internal/inventory"
	"zambus/internal/services"
	"zambus/internal/store"
)

func NewRouter(cfg config.Config, st *store.Store, inv *inventory.Manager) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
	}))
	_ = r.SetTrustedProxies(nil)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	bookingSvc := services.BookingService{Store: st, Inventory: inv}
	tripSvc := services.TripService{Store: st}
	fleetSvc := services.FleetService{Store: st}
	reportSvc := services.ReportService{Store: st}
	docsSvc := services.DocsService{Store: st}

	authH := h.AuthHandler{Store: st, Secret: []byte(cfg.Auth.JWTSecret), TokenTTL: cfg.Auth.TokenTTL}
	tripH := h.TripHandler{Trips: tripSvc, Bookings: bookingSvc, Inventory: inv}
	bookingH := h.BookingHandler{Svc: bookingSvc}
	fleetH := h.FleetHandler{Svc: fleetSvc}
	userH := h.UserHandler{Store: st}
	paymentH := h.PaymentHandler{Store: st, Bookings: bookingSvc}
	reportH := h.ReportHandler{Svc: reportSvc}
	docsH := h.DocsHandler{Svc: docsSvc, Bookings: bookingSvc}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		auth := api.Group("/auth")
		auth.POST("/login", authH.Login)
		auth.POST("/register", authH.Register)

		// Public browse surface: trip search and the catalog.
		api.GET("/trips", tripH.List)
		api.GET("/trips/:id", tripH.Get)
		api.GET("/trips/:id/seats", tripH.Availability)
		api.GET("/routes", fleetH.ListRoutes)
		api.GET("/routes/:id", fleetH.GetRoute)
		api.GET("/buses", fleetH.ListBuses)
		api.GET("/buses/:id", fleetH.GetBus)

		authed := api.Group("")
		authed.Use(middleware.Auth([]byte(cfg.Auth.JWTSecret)))
		{
			admin := middleware.RequireRoles("admin")
			adminOrDriver := middleware.RequireRoles("admin", "driver")

			authed.POST("/trips", admin, tripH.Create)
			authed.PUT("/trips/:id/status", adminOrDriver, tripH.AdvanceStatus)
			authed.GET("/trips/:id/bookings", adminOrDriver, tripH.BookingsForTrip)

			bookings := authed.Group("/bookings")
			bookings.POST("", bookingH.Create)
			bookings.GET("", bookingH.List)
			bookings.GET("/:id", bookingH.Get)
			bookings.POST("/:id/cancel", bookingH.Cancel)
			bookings.GET("/:id/ticket", docsH.Ticket)
			bookings.GET("/:id/receipt", docsH.Receipt)

			holds := authed.Group("/holds")
			holds.POST("", bookingH.Hold)
			holds.POST("/:id/confirm", bookingH.ConfirmHold)
			holds.DELETE("/:id", bookingH.ReleaseHold)

			authed.POST("/checkin", middleware.RequireRoles("driver", "admin"), bookingH.CheckIn)

			authed.GET("/payments", paymentH.List)

			authed.POST("/buses", admin, fleetH.CreateBus)
			authed.PUT("/buses/:id", admin, fleetH.UpdateBus)
			authed.POST("/routes", admin, fleetH.CreateRoute)
			authed.PUT("/routes/:id", admin, fleetH.UpdateRoute)

			users := authed.Group("/users")
			users.GET("", admin, userH.List)
			users.GET("/:id", admin, userH.Get)
			users.POST("", admin, userH.Create)
			users.PUT("/:id", userH.Update)

			reports := authed.Group("/reports", admin)
			reports.GET("/summary", reportH.Summary)
			reports.GET("/occupancy", reportH.Occupancy)
		}
	}

	return r
}
