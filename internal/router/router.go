package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pinkswindowcleaning/pulse-backend/internal/config"
	"github.com/pinkswindowcleaning/pulse-backend/internal/handlers"
	"github.com/pinkswindowcleaning/pulse-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps, cfg *config.Config) chi.Router {
	r := chi.NewRouter()

	metrics := middleware.NewHTTPMetrics(prometheus.DefaultRegisterer)

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	dh := handlers.NewDashboardHandlers(deps)

	r.Mount("/v1/dashboard", dh.DashboardRoutes())
	r.Get("/healthz", handlers.Healthz)
	r.Handle("/metrics", promhttp.Handler())
	return r
}
