package api

import (
	"github.com/gofiber/fiber/v3"

	"smartgreeting/internal/responder"
)

// InvalidRequestMessage is returned for chat payloads that cannot be parsed.
const InvalidRequestMessage = "Invalid request format."

// jsonReply returns a 200 response carrying a single reply string.
func jsonReply(c fiber.Ctx, text string) error {
	return c.JSON(responder.ChatResponse{Response: text})
}

// jsonError returns an error response with the given HTTP status code. The
// payload keeps the chat response shape so the page can display it.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(responder.ChatResponse{Response: message})
}
