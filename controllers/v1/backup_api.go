package apiv1

import (
	"office-tools-backend/controllers"
	backuphandler "office-tools-backend/lib/backup"
	"office-tools-backend/middleware"
	apimodels "office-tools-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type backupApiController struct {
	controllers.BaseAPIController
}

func InitBackupApiRouters(app *fiber.App) {
	controller := backupApiController{}
	app.Route("/api/v1/backup", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.AdminRequired())
		router.Post("", controller.run)
		router.Get("", controller.list)
	})
}

// @Summary Run a database backup
// @Tags Backup
// @Description Streams the dump back and stores a copy in object storage
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/backup [post]
func (c *backupApiController) run(ctx *fiber.Ctx) error {
	fileName, dump, err := backuphandler.Instance.Run(ctx.UserContext(), middleware.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set("Content-Type", "application/sql")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(dump)
}

// @Summary List stored backups
// @Tags Backup
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]s3client.ObjectInfo}
// @Failure 403 {object} apimodels.Response
// @router /api/v1/backup [get]
func (c *backupApiController) list(ctx *fiber.Ctx) error {
	list, err := backuphandler.Instance.List(ctx.UserContext(), middleware.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
