package http

import (
	"time"

	"github.com/MKhiriev/flight-guardian/internal/config"
	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	corsAllowedOrigins []string
	requestTimeout     time.Duration

	// registry holds the HTTP collectors and backs the /metrics endpoint.
	registry *prometheus.Registry
	metrics  *httpMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	registry := prometheus.NewRegistry()

	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		corsAllowedOrigins: cfg.App.CORSAllowedOrigins,
		requestTimeout:     cfg.Server.RequestTimeout,
		registry:           registry,
		metrics:            newHTTPMetrics(registry),
		logger:             logger,
	}
}
