package http

import (
	"time"

	"assist_server/core/domain"

	"github.com/gofiber/fiber/v2"
)

// StatusReporter reports inference provider availability.
type StatusReporter interface {
	ProviderStatus() domain.ProviderStatus
}

type HealthHandler struct {
	status StatusReporter
}

func NewHealthHandler(status StatusReporter) *HealthHandler {
	return &HealthHandler{status: status}
}

func (h *HealthHandler) Register(app fiber.Router) {
	app.Get("/health", h.Health)
	app.Get("/ready", h.Ready)
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready is always 200: without a provider the stub still answers.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	checks := map[string]string{"stub": "ready"}

	status := h.status.ProviderStatus()
	if status.Available && status.Provider != nil {
		checks["llm"] = *status.Provider
	} else {
		checks["llm"] = "not configured"
	}

	return c.JSON(fiber.Map{
		"status":    "ready",
		"checks":    checks,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
