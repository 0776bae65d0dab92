package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Booking BookingConfig `mapstructure:"booking"`
	Worker  WorkerConfig  `mapstructure:"worker"`
}

type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	Mode         string        `mapstructure:"mode"` // gin mode: debug, release, test
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	CORSOrigins  []string      `mapstructure:"cors_origins"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type BookingConfig struct {
	MaxSeatsPerBooking int           `mapstructure:"max_seats_per_booking"`
	HoldTTL            time.Duration `mapstructure:"hold_ttl"`
}

type WorkerConfig struct {
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// Load reads config.yaml from the working directory when present and lets
// ZAMBUS_* environment variables override any key, e.g.
// ZAMBUS_SERVER_ADDR=:9090.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 20*time.Second)
	v.SetDefault("server.write_timeout", 20*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("auth.jwt_secret", "super-secret-key-change-me")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("booking.max_seats_per_booking", 4)
	v.SetDefault("booking.hold_ttl", 5*time.Minute)
	v.SetDefault("worker.sweep_interval", time.Minute)

	v.SetEnvPrefix("zambus")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
