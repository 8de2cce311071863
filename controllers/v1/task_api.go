package apiv1

import (
	"time"

	"office-tools-backend/controllers"
	taskshandler "office-tools-backend/lib/tasks"
	"office-tools-backend/middleware"
	"office-tools-backend/models"
	apimodels "office-tools-backend/models/api"
	taskapimodels "office-tools-backend/models/api/task"

	"github.com/gofiber/fiber/v2"
)

type taskApiController struct {
	controllers.BaseAPIController
}

func InitTaskApiRouters(app *fiber.App) {
	controller := taskApiController{}
	app.Route("/api/v1/tasks", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get("stats/summary", controller.stats)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)

		router.Post(":id/apply", controller.apply)
		router.Post(":id/assign", controller.assign)
		router.Post(":id/accept", controller.accept)
		router.Post(":id/reject", controller.reject)
		router.Post(":id/rejection/approve", controller.approveRejection)
		router.Post(":id/rejection/deny", controller.denyRejection)
		router.Put(":id/progress", controller.progress)
	})
}

func parseListFilter(ctx *fiber.Ctx) (taskapimodels.ListFilter, error) {
	filter := taskapimodels.ListFilter{
		ID:        ctx.Query("id"),
		Status:    models.TaskStatus(ctx.Query("status")),
		ProjectID: ctx.Query("projectId"),
		Limit:     ctx.QueryInt("limit"),
		Offset:    ctx.QueryInt("offset"),
		Scope:     ctx.Query("scope"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return filter, fiber.NewError(fiber.StatusBadRequest, "Invalid status")
	}
	if raw := ctx.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "Invalid from")
		}
		filter.From = &t
	}
	if raw := ctx.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "Invalid to")
		}
		filter.To = &t
	}
	return filter, nil
}

// @Summary List tasks
// @Tags Tasks
// @Description Lists tasks scoped by role, each with its effective weight
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id			query	string	false	"task id"
// @Param	status		query	string	false	"status filter"
// @Param	projectId	query	string	false	"project filter"
// @Param	from		query	string	false	"start of time window, RFC3339"
// @Param	to			query	string	false	"end of time window, RFC3339"
// @Param	limit		query	int		false	"page size"
// @Param	offset		query	int		false	"page offset"
// @Param	scope		query	string	false	"me or all"
// @Success 200 {object} apimodels.Response{data=[]taskapimodels.TaskView}
// @router /api/v1/tasks [get]
func (c *taskApiController) list(ctx *fiber.Ctx) error {
	filter, err := parseListFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := taskshandler.Instance.List(middleware.GetActor(ctx), filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create a task
// @Tags Tasks
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body	body	taskapimodels.CreateTaskRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=taskapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/tasks [post]
func (c *taskApiController) create(ctx *fiber.Ctx) error {
	var payload taskapimodels.CreateTaskRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := taskshandler.Instance.Create(middleware.GetActor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(rec))
}

// @Summary Get a task
// @Tags Tasks
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"task id"
// @Success 200 {object} apimodels.Response{data=taskapimodels.TaskView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/tasks/{id} [get]
func (c *taskApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := taskshandler.Instance.Get(middleware.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Update a task
// @Tags Tasks
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id		path	string							true	"task id"
// @Param	body	body	taskapimodels.UpdateTaskRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/tasks/{id} [put]
func (c *taskApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload taskapimodels.UpdateTaskRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := taskshandler.Instance.Update(middleware.GetActor(ctx), id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a task
// @Tags Tasks
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"task id"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/tasks/{id} [delete]
func (c *taskApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := taskshandler.Instance.Delete(middleware.GetActor(ctx), id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Task status summary
// @Tags Tasks
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	scope	query	string	false	"me, department or all"
// @Success 200 {object} apimodels.Response{data=taskapimodels.StatsSummary}
// @router /api/v1/tasks/stats/summary [get]
func (c *taskApiController) stats(ctx *fiber.Ctx) error {
	summary, err := taskshandler.Instance.Stats(middleware.GetActor(ctx), ctx.Query("scope"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(summary))
}

// @Summary Apply for an open task
// @Tags Tasks
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"task id"
// @Success 201 {object} apimodels.Response{data=dbmodels.TaskAssignment}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/tasks/{id}/apply [post]
func (c *taskApiController) apply(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := taskshandler.Instance.Apply(ctx.UserContext(), middleware.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(rec))
}

// @Summary Assign a task to a user
// @Tags Tasks
// @Description Moderator action, checks department bounds and calendar conflicts
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id		path	string						true	"task id"
// @Param	body	body	taskapimodels.AssignRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=dbmodels.TaskAssignment}
// @Failure 403 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/tasks/{id}/assign [post]
func (c *taskApiController) assign(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload taskapimodels.AssignRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if payload.UserID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("Missing userId"))
	}
	rec, err := taskshandler.Instance.Assign(ctx.UserContext(), middleware.GetActor(ctx), id, payload.UserID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(rec))
}

// @Summary Accept a direct assignment
// @Tags Tasks
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id	path	string	true	"task id"
// @Success 200 {object} apimodels.Response{data=dbmodels.TaskAssignment}
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/tasks/{id}/accept [post]
func (c *taskApiController) accept(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := taskshandler.Instance.Accept(ctx.UserContext(), middleware.GetActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Reject an assignment
// @Tags Tasks
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id		path	string						true	"task id"
// @Param	body	body	taskapimodels.RejectRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=dbmodels.TaskAssignment}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/tasks/{id}/reject [post]
func (c *taskApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload taskapimodels.RejectRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := taskshandler.Instance.Reject(middleware.GetActor(ctx), id, payload.Reason)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Approve rejections on a task
// @Tags Tasks
// @Description Removes rejected assignments, optionally limited to one user
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id		path	string						true	"task id"
// @Param	body	body	taskapimodels.ReviewRequest	false	"request body"
// @Success 200 {object} apimodels.Response{data=taskapimodels.ReviewResult}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/tasks/{id}/rejection/approve [post]
func (c *taskApiController) approveRejection(ctx *fiber.Ctx) error {
	id, payload, err := c.reviewArgs(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	res, err := taskshandler.Instance.ApproveRejection(middleware.GetActor(ctx), id, payload.UserID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(res))
}

// @Summary Deny rejections on a task
// @Tags Tasks
// @Description Returns rejected assignments to their pre-rejection status
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id		path	string						true	"task id"
// @Param	body	body	taskapimodels.ReviewRequest	false	"request body"
// @Success 200 {object} apimodels.Response{data=taskapimodels.ReviewResult}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/tasks/{id}/rejection/deny [post]
func (c *taskApiController) denyRejection(ctx *fiber.Ctx) error {
	id, payload, err := c.reviewArgs(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	res, err := taskshandler.Instance.DenyRejection(middleware.GetActor(ctx), id, payload.UserID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(res))
}

func (c *taskApiController) reviewArgs(ctx *fiber.Ctx) (string, taskapimodels.ReviewRequest, error) {
	var payload taskapimodels.ReviewRequest
	id, err := c.GetID(ctx)
	if err != nil {
		return "", payload, err
	}
	// Body is optional, an empty one reviews every rejected assignment.
	if len(ctx.Body()) > 0 {
		if err := c.BodyParser(ctx, &payload); err != nil {
			return "", payload, err
		}
	}
	return id, payload, nil
}

// @Summary Report progress on a task
// @Tags Tasks
// @Description Progress 100 completes the assignment
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	id		path	string							true	"task id"
// @Param	body	body	taskapimodels.ProgressRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=dbmodels.TaskAssignment}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/tasks/{id}/progress [put]
func (c *taskApiController) progress(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload taskapimodels.ProgressRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := taskshandler.Instance.UpdateProgress(middleware.GetActor(ctx), id, payload.Progress)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}
