package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"  validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"      validate:"required"`
	Upstream  UpstreamConfig  `mapstructure:"upstream"  validate:"required"`
	Catalog   CatalogConfig   `mapstructure:"catalog"   validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0,lte=44640"` // Max 31 days
}

// UpstreamConfig describes the SWAPI-compatible service the gateway proxies.
// Timeouts apply to each upstream call individually.
type UpstreamConfig struct {
	BaseURL         string        `mapstructure:"base_url"         validate:"required,url"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"  validate:"gt=0"`
	ResponseTimeout time.Duration `mapstructure:"response_timeout" validate:"gt=0"`
}

// CatalogConfig tunes the resource listing and enrichment layer.
type CatalogConfig struct {
	// Concurrency bounds the number of in-flight detail lookups per request.
	Concurrency int `mapstructure:"concurrency" validate:"gt=0,lte=50"`
	MaxLimit    int `mapstructure:"max_limit"   validate:"gt=0,lte=100"`
}

// RateLimitConfig controls throttling of sign-in attempts.
// A zero LoginLimit disables throttling. When RedisAddr is empty an
// in-process limiter is used.
type RateLimitConfig struct {
	LoginLimit    int           `mapstructure:"login_limit"    validate:"gte=0"`
	LoginWindow   time.Duration `mapstructure:"login_window"   validate:"gte=0"`
	RedisAddr     string        `mapstructure:"redis_addr"     validate:"omitempty,hostname_port"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisTimeout  time.Duration `mapstructure:"redis_timeout"  validate:"gte=0"`
}
