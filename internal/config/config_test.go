package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 4, cfg.Booking.MaxSeatsPerBooking)
	assert.Equal(t, 5*time.Minute, cfg.Booking.HoldTTL)
	assert.Equal(t, time.Minute, cfg.Worker.SweepInterval)
	assert.NotEmpty(t, cfg.Server.CORSOrigins)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ZAMBUS_SERVER_ADDR", ":9090")
	t.Setenv("ZAMBUS_AUTH_JWT_SECRET", "from-env")
	t.Setenv("ZAMBUS_BOOKING_HOLD_TTL", "90s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, 90*time.Second, cfg.Booking.HoldTTL)
}
