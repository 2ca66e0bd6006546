package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/swapi-gateway/internal/config"
	"github.com/phrazzld/swapi-gateway/internal/platform/postgres"
	"github.com/phrazzld/swapi-gateway/internal/platform/ratelimit"
	"github.com/phrazzld/swapi-gateway/internal/platform/swapi"
	"github.com/phrazzld/swapi-gateway/internal/service/auth"
	"github.com/phrazzld/swapi-gateway/internal/service/catalog"
	"github.com/phrazzld/swapi-gateway/internal/store"
)

// application holds the shared dependencies and releases them on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore

	jwtService     auth.JWTService
	authService    *auth.Service
	catalogService *catalog.Service

	loginLimiter      ratelimit.Limiter
	closeLoginLimiter func() error
}

// newApplication wires the application around an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app, err := buildApplication(cfg, logger, postgres.NewPostgresUserStore(db), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	app.db = db
	return app, nil
}

// buildApplication creates every service on top of users.
func buildApplication(cfg *config.Config, logger *slog.Logger, users store.UserStore, bcryptCost int) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		userStore: users,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.authService, err = auth.NewService(users, app.jwtService, auth.NewBcryptHasher(bcryptCost), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	client, err := swapi.NewClient(cfg.Upstream, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create SWAPI client: %w", err)
	}

	app.catalogService, err = catalog.NewService(client, cfg.Catalog, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	app.loginLimiter, app.closeLoginLimiter, err = ratelimit.New(cfg.RateLimit, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create login rate limiter: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then releases resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases the limiter and the database connection.
func (app *application) cleanup() {
	if app.closeLoginLimiter != nil {
		if err := app.closeLoginLimiter(); err != nil {
			app.logger.Error("Error closing login rate limiter", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
