package apiv1

import (
	"fmt"
	"time"

	"office-tools-backend/controllers"
	"office-tools-backend/lib/rbac"
	reportshandler "office-tools-backend/lib/reports"
	"office-tools-backend/middleware"
	apimodels "office-tools-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type reportApiController struct {
	controllers.BaseAPIController
}

func InitReportApiRouters(app *fiber.App) {
	controller := reportApiController{}
	app.Route("/api/v1/reports", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RequireAction(rbac.ActionReportView))
		router.Get("events-by-month", controller.eventsByMonth)
		router.Get("events-by-department", controller.eventsByDepartment)
		router.Get("tasks/xlsx", controller.tasksXlsx)
		router.Get("tasks/pdf", controller.tasksPdf)
	})
}

// @Summary Events per month
// @Tags Reports
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	year	query	int	false	"year, defaults to the current one"
// @Success 200 {object} apimodels.Response{data=[]reportapimodels.EventsByMonthRow}
// @Failure 403 {object} apimodels.Response
// @router /api/v1/reports/events-by-month [get]
func (c *reportApiController) eventsByMonth(ctx *fiber.Ctx) error {
	year := ctx.QueryInt("year")
	if year == 0 {
		year = time.Now().Year()
	}
	rows, err := reportshandler.Instance.EventsByMonth(middleware.GetActor(ctx), year)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rows))
}

// @Summary Events per department
// @Tags Reports
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]reportapimodels.EventsByDepartmentRow}
// @Failure 403 {object} apimodels.Response
// @router /api/v1/reports/events-by-department [get]
func (c *reportApiController) eventsByDepartment(ctx *fiber.Ctx) error {
	rows, err := reportshandler.Instance.EventsByDepartment(middleware.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rows))
}

// @Summary Task report as Excel
// @Tags Reports
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200
// @Failure 403 {object} apimodels.Response
// @router /api/v1/reports/tasks/xlsx [get]
func (c *reportApiController) tasksXlsx(ctx *fiber.Ctx) error {
	data, err := reportshandler.Instance.TaskReportXlsx(middleware.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	fileName := fmt.Sprintf("tasks-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Task report as PDF
// @Tags Reports
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200
// @Failure 403 {object} apimodels.Response
// @router /api/v1/reports/tasks/pdf [get]
func (c *reportApiController) tasksPdf(ctx *fiber.Ctx) error {
	body, err := reportshandler.Instance.TaskReportPdf(middleware.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	fileName := fmt.Sprintf("tasks-%v.pdf", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(body)
}
