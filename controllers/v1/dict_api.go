package apiv1

import (
	"office-tools-backend/controllers"
	departmentshandler "office-tools-backend/lib/departments"
	roomshandler "office-tools-backend/lib/rooms"
	"office-tools-backend/middleware"
	apimodels "office-tools-backend/models/api"
	dictapimodels "office-tools-backend/models/api/dict"

	"github.com/gofiber/fiber/v2"
)

type dictApiController struct {
	controllers.BaseAPIController
}

func InitDictApiRouters(app *fiber.App) {
	controller := dictApiController{}
	app.Route("/api/v1/departments", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.listDepartments)
		router.Post("", controller.createDepartment)
		router.Put(":id", controller.updateDepartment)
		router.Delete(":id", controller.deleteDepartment)
	})
	app.Route("/api/v1/rooms", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.listRooms)
		router.Post("", controller.createRoom)
		router.Put(":id", controller.updateRoom)
		router.Delete(":id", controller.deleteRoom)
	})
}

// @Summary List departments
// @Tags Dictionaries
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.Department}
// @router /api/v1/departments [get]
func (c *dictApiController) listDepartments(ctx *fiber.Ctx) error {
	list, err := departmentshandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create a department
// @Tags Dictionaries
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	dictapimodels.DepartmentData	true	"request body"
// @Success 201 {object} apimodels.Response{data=dbmodels.Department}
// @Failure 403 {object} apimodels.Response
// @router /api/v1/departments [post]
func (c *dictApiController) createDepartment(ctx *fiber.Ctx) error {
	var payload dictapimodels.DepartmentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := departmentshandler.Instance.Create(middleware.GetActor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(rec))
}

// @Summary Update a department
// @Tags Dictionaries
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id		path	string							true	"department id"
// @Param	body	body	dictapimodels.DepartmentData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/departments/{id} [put]
func (c *dictApiController) updateDepartment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.DepartmentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := departmentshandler.Instance.Update(middleware.GetActor(ctx), id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a department
// @Tags Dictionaries
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"department id"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/departments/{id} [delete]
func (c *dictApiController) deleteDepartment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := departmentshandler.Instance.Delete(middleware.GetActor(ctx), id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List rooms
// @Tags Dictionaries
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.Room}
// @router /api/v1/rooms [get]
func (c *dictApiController) listRooms(ctx *fiber.Ctx) error {
	list, err := roomshandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create a room
// @Tags Dictionaries
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	dictapimodels.RoomData	true	"request body"
// @Success 201 {object} apimodels.Response{data=dbmodels.Room}
// @Failure 403 {object} apimodels.Response
// @router /api/v1/rooms [post]
func (c *dictApiController) createRoom(ctx *fiber.Ctx) error {
	var payload dictapimodels.RoomData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := roomshandler.Instance.Create(middleware.GetActor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(rec))
}

// @Summary Update a room
// @Tags Dictionaries
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id		path	string					true	"room id"
// @Param	body	body	dictapimodels.RoomData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/rooms/{id} [put]
func (c *dictApiController) updateRoom(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.RoomData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := roomshandler.Instance.Update(middleware.GetActor(ctx), id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a room
// @Tags Dictionaries
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"room id"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/rooms/{id} [delete]
func (c *dictApiController) deleteRoom(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := roomshandler.Instance.Delete(middleware.GetActor(ctx), id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
