package handlers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/csrf"

	"smartgreeting/internal/config"
	"smartgreeting/internal/responder"
)

// PageHandler renders the chat page.
type PageHandler struct {
	responder *responder.Responder
	cfg       *config.Config
}

// NewPageHandler creates a new page handler.
func NewPageHandler(r *responder.Responder, cfg *config.Config) *PageHandler {
	return &PageHandler{responder: r, cfg: cfg}
}

// Index renders the chat interface seeded with the current greeting.
// The greeting tag is applied to the page as a CSS class.
func (h *PageHandler) Index(c fiber.Ctx) error {
	current := h.responder.Greeting()

	return c.Render("index", fiber.Map{
		"Title":           h.cfg.SiteTitle,
		"SiteTitle":       h.cfg.SiteTitle,
		"SiteTagline":     h.cfg.SiteTagline,
		"InitialGreeting": current.Message,
		"InitialClass":    current.Tag,
		"CSRFToken":       csrf.TokenFromContext(c),
	})
}
