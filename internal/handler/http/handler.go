package http

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	// staticDir is the resolved frontend directory, empty when disabled.
	staticDir string

	registry *prometheus.Registry
	metrics  *httpMetrics
	limiter  *ipRateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	registry := prometheus.NewRegistry()

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		cfg:       cfg,
		staticDir: staticDir(cfg.StaticDir, logger),
		registry:  registry,
		metrics:   newHTTPMetrics(registry),
		limiter:   newIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst),
		logger:    logger,
	}
}
