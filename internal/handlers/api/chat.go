package api

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"smartgreeting/internal/greeting"
	"smartgreeting/internal/metrics"
	"smartgreeting/internal/responder"
)

// ChatHandler answers chat queries via JSON API.
type ChatHandler struct {
	responder *responder.Responder
}

// NewChatHandler creates a new API chat handler.
func NewChatHandler(r *responder.Responder) *ChatHandler {
	return &ChatHandler{responder: r}
}

// Get handles POST /api/get. Bodies that are not a JSON object are rejected
// with 400 rather than treated as an empty message.
func (h *ChatHandler) Get(c fiber.Ctx) error {
	text, err := responder.ParseRequest(c.Body())
	if err != nil {
		slog.Debug("rejected chat request", "request_id", requestid.FromContext(c), "error", err)
		metrics.RecordQuery(responder.IntentInvalid)
		return jsonError(c, fiber.StatusBadRequest, InvalidRequestMessage)
	}

	reply := h.responder.Respond(text)
	metrics.RecordQuery(reply.Intent)
	slog.Debug("answered chat query", "request_id", requestid.FromContext(c), "intent", reply.Intent)

	return jsonReply(c, reply.Text)
}

// GreetingResponse is the body returned by GET /api/greeting.
type GreetingResponse struct {
	Hour    int    `json:"hour"`
	Message string `json:"message"`
	Tag     string `json:"tag"`
}

// Greeting handles GET /api/greeting. Without a query it reports the current
// greeting; ?hour=N selects the greeting for an explicit hour in 0-23.
func (h *ChatHandler) Greeting(c fiber.Ctx) error {
	raw := c.Query("hour")
	if raw == "" {
		now := h.responder.Now()
		g := h.responder.Table().At(now)
		return c.JSON(GreetingResponse{Hour: now.Hour(), Message: g.Message, Tag: g.Tag})
	}

	hour, err := strconv.Atoi(raw)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "hour must be an integer")
	}

	g, err := h.responder.Table().Select(hour)
	if err != nil {
		if errors.Is(err, greeting.ErrHourOutOfRange) {
			return jsonError(c, fiber.StatusBadRequest, "hour must be between 0 and 23")
		}
		return err
	}

	return c.JSON(GreetingResponse{Hour: hour, Message: g.Message, Tag: g.Tag})
}
