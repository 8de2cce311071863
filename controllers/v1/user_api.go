package apiv1

import (
	"office-tools-backend/controllers"
	usershandler "office-tools-backend/lib/users"
	"office-tools-backend/middleware"
	apimodels "office-tools-backend/models/api"
	userapimodels "office-tools-backend/models/api/user"

	"github.com/gofiber/fiber/v2"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("/api/v1/users", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
	})
}

// @Summary List users
// @Tags Users
// @Description List users visible to the caller
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.User}
// @Failure 401
// @router /api/v1/users [get]
func (c *userApiController) list(ctx *fiber.Ctx) error {
	list, err := usershandler.Instance.List(middleware.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get a user
// @Tags Users
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"user id"
// @Success 200 {object} apimodels.Response{data=dbmodels.User}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/users/{id} [get]
func (c *userApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := usershandler.Instance.Get(middleware.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Update a user
// @Tags Users
// @Description Self-service profile update, admins may update anyone
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id		path	string							true	"user id"
// @Param	body	body	userapimodels.UpdateUserRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/users/{id} [put]
func (c *userApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload userapimodels.UpdateUserRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := usershandler.Instance.Update(middleware.GetActor(ctx), id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
