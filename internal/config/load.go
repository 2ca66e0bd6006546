package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads,
// e.g. SWAPI_SERVER_PORT or SWAPI_UPSTREAM_BASE_URL.
const EnvPrefix = "SWAPI"

// defaults are applied before any file or environment source is read.
// Every key the loader should resolve from the environment must appear here
// or in envOnlyKeys so viper knows about it.
var defaults = map[string]any{
	"server.port":                 8080,
	"server.log_level":            "info",
	"server.shutdown_timeout":     "10s",
	"auth.token_lifetime_minutes": 60,
	"upstream.base_url":           "https://www.swapi.tech/api",
	"upstream.connect_timeout":    "5s",
	"upstream.response_timeout":   "10s",
	"catalog.concurrency":         10,
	"catalog.max_limit":           100,
	"ratelimit.login_limit":       10,
	"ratelimit.login_window":      "1m",
	"ratelimit.redis_addr":        "",
	"ratelimit.redis_password":    "",
	"ratelimit.redis_timeout":     "2s",
}

var envOnlyKeys = []string{
	"database.url",
	"auth.jwt_secret",
}

// Load reads configuration from defaults, an optional config file and
// environment variables, in increasing order of precedence.
// An empty path looks for config.yaml in the working directory and ignores
// its absence. Returns a validated Config or an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envOnlyKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
