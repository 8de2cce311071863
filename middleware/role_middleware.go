package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "office-tools-backend/lib/utils/auth-utils"
	"office-tools-backend/models"
	apimodels "office-tools-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if id, ok := sub.(string); ok {
			return id
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func GetUserDepartment(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if department, exist := claims["department"]; exist {
		if id, ok := department.(string); ok {
			return id
		}
	}
	return ""
}

// GetActor resolves the authenticated caller from JWT claims.
func GetActor(ctx *fiber.Ctx) models.Actor {
	return models.Actor{
		ID:           GetUserID(ctx),
		Role:         GetUserRole(ctx),
		DepartmentID: GetUserDepartment(ctx),
	}
}

func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.UserRoleAdmin {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("Forbidden"))
		}
		return ctx.Next()
	}
}

func ModeratorRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).CanModerate() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("Forbidden"))
		}
		return ctx.Next()
	}
}
