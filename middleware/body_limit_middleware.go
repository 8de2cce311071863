package middleware

import (
	"github.com/gofiber/fiber/v2"
	apimodels "office-tools-backend/models/api"
)

// BodyLimit rejects requests whose body exceeds maxBytes before any parsing.
func BodyLimit(maxBytes int) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if len(ctx.Body()) > maxBytes {
			return ctx.Status(fiber.StatusRequestEntityTooLarge).JSON(apimodels.NewError("request body too large"))
		}
		return ctx.Next()
	}
}
