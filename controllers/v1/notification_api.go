package apiv1

import (
	"office-tools-backend/controllers"
	notificationshandler "office-tools-backend/lib/notifications"
	"office-tools-backend/middleware"
	apimodels "office-tools-backend/models/api"
	notificationapimodels "office-tools-backend/models/api/notification"

	"github.com/gofiber/fiber/v2"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("/api/v1/notifications", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Put(":id/read", controller.markRead)
	})
}

// @Summary List own notifications
// @Tags Notifications
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.Notification}
// @router /api/v1/notifications [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	list, err := notificationshandler.Instance.List(middleware.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Send a manual notification
// @Tags Notifications
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	notificationapimodels.CreateNotificationRequest	true	"request body"
// @Success 201 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/notifications [post]
func (c *notificationApiController) create(ctx *fiber.Ctx) error {
	var payload notificationapimodels.CreateNotificationRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := notificationshandler.Instance.Create(middleware.GetActor(ctx), payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(nil))
}

// @Summary Mark a notification as read
// @Tags Notifications
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"notification id"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/notifications/{id}/read [put]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := notificationshandler.Instance.MarkRead(middleware.GetActor(ctx), id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
