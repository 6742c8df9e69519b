package presenter

import "github.com/gofiber/fiber/v2"

// MessageResponse is the envelope for status and error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Message(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, MessageResponse{Message: message})
}
