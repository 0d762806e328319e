package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"smartgreeting/internal/handlers"
	"smartgreeting/internal/handlers/api"
	"smartgreeting/internal/metrics"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes() {
	// Initialize handlers
	pageHandler := handlers.NewPageHandler(s.Responder, s.Cfg)
	chatHandler := api.NewChatHandler(s.Responder)
	probeHandler := handlers.NewProbeHandler(s.readinessChecks())

	// Probes
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	// Metrics
	if s.Cfg.EnableMetrics {
		s.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics.Register(s.Registry, s.Responder)
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{})))
	} else {
		slog.Info("metrics endpoint disabled")
	}

	// Chat page
	s.App.Get("/", pageHandler.Index)

	// JSON API
	apiGroup := s.App.Group("/api")
	apiGroup.Post("/get", chatHandler.Get)
	apiGroup.Get("/greeting", chatHandler.Greeting)
}
