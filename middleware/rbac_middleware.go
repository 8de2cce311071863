package middleware

import (
	"office-tools-backend/lib/rbac"
	apimodels "office-tools-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

// RequireAction rejects callers whose role cannot perform action at all.
// Resource scoped checks stay in the handlers, this only cuts off the
// roles the action is closed to.
func RequireAction(action rbac.Action) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		actor := GetActor(ctx)
		if actor.ID == "" || !rbac.Can(actor, action, rbac.Resource{}) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("Forbidden"))
		}
		return ctx.Next()
	}
}
