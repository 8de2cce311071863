package apiv1

import (
	"office-tools-backend/controllers"
	projectshandler "office-tools-backend/lib/projects"
	"office-tools-backend/middleware"
	apimodels "office-tools-backend/models/api"
	projectapimodels "office-tools-backend/models/api/project"

	"github.com/gofiber/fiber/v2"
)

type projectApiController struct {
	controllers.BaseAPIController
}

func InitProjectApiRouters(app *fiber.App) {
	controller := projectApiController{}
	app.Route("/api/v1/projects", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Post("", middleware.ModeratorRequired(), controller.create)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary List projects
// @Tags Projects
// @Description Each project carries its weighted progress rollup
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]projectapimodels.ProjectView}
// @router /api/v1/projects [get]
func (c *projectApiController) list(ctx *fiber.Ctx) error {
	list, err := projectshandler.Instance.List(middleware.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create a project
// @Tags Projects
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	projectapimodels.CreateProjectRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=projectapimodels.ProjectView}
// @Failure 403 {object} apimodels.Response
// @router /api/v1/projects [post]
func (c *projectApiController) create(ctx *fiber.Ctx) error {
	var payload projectapimodels.CreateProjectRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := projectshandler.Instance.Create(middleware.GetActor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(rec))
}

// @Summary Get a project
// @Tags Projects
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"project id"
// @Success 200 {object} apimodels.Response{data=projectapimodels.ProjectView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/projects/{id} [get]
func (c *projectApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := projectshandler.Instance.Get(middleware.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Update a project
// @Tags Projects
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id		path	string									true	"project id"
// @Param	body	body	projectapimodels.UpdateProjectRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/projects/{id} [put]
func (c *projectApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload projectapimodels.UpdateProjectRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := projectshandler.Instance.Update(middleware.GetActor(ctx), id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a project
// @Tags Projects
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"project id"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/projects/{id} [delete]
func (c *projectApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := projectshandler.Instance.Delete(middleware.GetActor(ctx), id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
