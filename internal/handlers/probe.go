package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"
)

// Check reports whether a dependency can serve traffic.
type Check func(ctx context.Context) error

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	checks map[string]Check
}

// NewProbeHandler creates a new probe handler. Checks are run by Readiness.
func NewProbeHandler(checks map[string]Check) *ProbeHandler {
	return &ProbeHandler{checks: checks}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if every registered check passes.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	for name, check := range h.checks {
		if err := check(c.Context()); err != nil {
			slog.Warn("readiness check failed", "check", name, "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  name + " unavailable",
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
