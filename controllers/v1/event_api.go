package apiv1

import (
	"office-tools-backend/controllers"
	eventshandler "office-tools-backend/lib/events"
	"office-tools-backend/middleware"
	apimodels "office-tools-backend/models/api"
	eventapimodels "office-tools-backend/models/api/event"

	"github.com/gofiber/fiber/v2"
)

type eventApiController struct {
	controllers.BaseAPIController
}

func InitEventApiRouters(app *fiber.App) {
	controller := eventApiController{}
	app.Route("/api/v1/events", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
	app.Route("/api/v1/participants", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.participants)
		router.Post("", controller.addParticipants)
		router.Put(":id", controller.rsvp)
	})
}

// @Summary List events
// @Tags Events
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.Event}
// @router /api/v1/events [get]
func (c *eventApiController) list(ctx *fiber.Ctx) error {
	list, err := eventshandler.Instance.List(middleware.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create an event
// @Tags Events
// @Description New events start in pending status and wait for moderation
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	eventapimodels.CreateEventRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=dbmodels.Event}
// @router /api/v1/events [post]
func (c *eventApiController) create(ctx *fiber.Ctx) error {
	var payload eventapimodels.CreateEventRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := eventshandler.Instance.Create(middleware.GetActor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(rec))
}

// @Summary Get an event
// @Tags Events
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"event id"
// @Success 200 {object} apimodels.Response{data=dbmodels.Event}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/events/{id} [get]
func (c *eventApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := eventshandler.Instance.Get(middleware.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Update an event
// @Tags Events
// @Description Detail edits are allowed while pending, status changes need moderation rights
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id		path	string								true	"event id"
// @Param	body	body	eventapimodels.UpdateEventRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/events/{id} [put]
func (c *eventApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload eventapimodels.UpdateEventRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := eventshandler.Instance.Update(middleware.GetActor(ctx), id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete an event
// @Tags Events
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"event id"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/events/{id} [delete]
func (c *eventApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := eventshandler.Instance.Delete(middleware.GetActor(ctx), id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List participants of an event
// @Tags Events
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	eventId	query	string	true	"event id"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.Participant}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/participants [get]
func (c *eventApiController) participants(ctx *fiber.Ctx) error {
	eventID := ctx.Query("eventId")
	if eventID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("Missing eventId"))
	}
	list, err := eventshandler.Instance.Participants(middleware.GetActor(ctx), eventID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Invite users to an event
// @Tags Events
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	eventapimodels.AddParticipantsRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=[]dbmodels.Participant}
// @Failure 403 {object} apimodels.Response
// @router /api/v1/participants [post]
func (c *eventApiController) addParticipants(ctx *fiber.Ctx) error {
	var payload eventapimodels.AddParticipantsRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := eventshandler.Instance.AddParticipants(middleware.GetActor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(list))
}

// @Summary Answer an event invitation
// @Tags Events
// @Description Sets the caller's own participation to accepted or declined
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id		path	string						true	"participant id"
// @Param	body	body	eventapimodels.RsvpRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/participants/{id} [put]
func (c *eventApiController) rsvp(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload eventapimodels.RsvpRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := eventshandler.Instance.Rsvp(middleware.GetActor(ctx), id, payload.Status); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
