package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/swapi-gateway/internal/config"
	"github.com/phrazzld/swapi-gateway/internal/platform/logger"
)

// loadAppConfig loads the application configuration from the optional file
// at path and the environment.
func loadAppConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// setupAppLogger installs the default logger and logs the loaded settings.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"upstream", cfg.Upstream.BaseURL)
	l.Debug("Auth configuration",
		"jwt_secret_present", cfg.Auth.JWTSecret != "",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)
	l.Debug("Rate limit configuration",
		"login_limit", cfg.RateLimit.LoginLimit,
		"login_window", cfg.RateLimit.LoginWindow.String(),
		"redis", cfg.RateLimit.RedisAddr != "")

	return l, nil
}
