package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/phrazzld/swapi-gateway/internal/api"
	apiMiddleware "github.com/phrazzld/swapi-gateway/internal/api/middleware"
	"github.com/phrazzld/swapi-gateway/internal/metrics"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	authHandler := api.NewAuthHandler(app.authService)
	resourceHandler := api.NewResourceHandler(app.catalogService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/signup", authHandler.SignUp)
		r.With(apiMiddleware.LoginRateLimit(app.loginLimiter)).Post("/auth/signin", authHandler.SignIn)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			resourceHandler.Routes(r)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
