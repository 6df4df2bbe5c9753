// Package config maps environment variables into a typed configuration
// struct. Configuration is loaded once at startup and passed to components
// via constructors; no global state.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration for the API server.
type Config struct {
	// Server
	Port        string `env:"APP_PORT"  envDefault:"8080"`
	Environment string `env:"APP_ENV"   envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// PostgreSQL
	DatabaseURL     string        `env:"DATABASE_URL,required"`
	DBMaxConns      int32         `env:"DB_MAX_CONNS"       envDefault:"25"`
	DBMinConns      int32         `env:"DB_MIN_CONNS"       envDefault:"5"`
	DBMaxConnLife   time.Duration `env:"DB_MAX_CONN_LIFE"   envDefault:"1h"`
	DBMaxConnIdle   time.Duration `env:"DB_MAX_CONN_IDLE"   envDefault:"30m"`

	// Redis catalog cache. Empty address disables caching.
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// JWT
	JWTSecret string        `env:"JWT_SECRET,required"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	// Image bucket (managed storage service)
	BucketURL    string `env:"BUCKET_URL"`
	BucketKey    string `env:"BUCKET_SERVICE_KEY"`
	BucketName   string `env:"BUCKET_NAME" envDefault:"nautica-images"`

	// Rate limiting
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`

	// Folio allocation retry budget for transient store errors.
	FolioRetries int `env:"FOLIO_RETRIES" envDefault:"3"`
}

// Load parses environment variables into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
