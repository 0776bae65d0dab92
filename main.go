package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"zambus/internal/config"
	api "zambus/internal/http"
	"zambus/internal/inventory"
	"zambus/internal/store"
	"zambus/internal/worker"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("cannot load config: %v", err)
	}
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	st := store.NewSeeded(time.Now().UTC())
	inv := inventory.New(st, inventory.Config{
		MaxSeatsPerBooking: cfg.Booking.MaxSeatsPerBooking,
		HoldTTL:            cfg.Booking.HoldTTL,
	})

	r := api.NewRouter(cfg, st, inv)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.NewHoldSweeper(inv, cfg.Worker.SweepInterval).Start(ctx)

	go func() {
		logrus.Infof("server listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("shutdown failed: %v", err)
	}
	logrus.Info("server stopped cleanly")
}
