package rest

import (
	"log/slog"
	"net/http"
)

// RouterConfig collects what the HTTP surface is built from.
type RouterConfig struct {
	Predict        *PredictHandler
	Health         *HealthHandler
	Metrics        http.Handler
	Logger         *slog.Logger
	Limiter        *RateLimiter
	AllowedOrigins []string
}

// NewRouter wires the routes and wraps them in CORS, logging and rate
// limiting. Health and metrics endpoints are not rate limited.
func NewRouter(cfg RouterConfig) http.Handler {
	api := http.NewServeMux()
	cfg.Predict.RegisterRoutes(api)

	mux := http.NewServeMux()
	cfg.Health.RegisterRoutes(mux)
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics)
	}
	mux.Handle("/", RateLimitMiddleware(cfg.Limiter)(api))

	return Chain(mux,
		LoggingMiddleware(cfg.Logger),
		CORSMiddleware(cfg.AllowedOrigins),
	)
}
