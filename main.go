package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"office-tools-backend/config"
	apiv1 "office-tools-backend/controllers/v1"
	"office-tools-backend/db"
	"office-tools-backend/fiberlog"
	"office-tools-backend/initializers"
	notificationshandler "office-tools-backend/lib/notifications"
	"office-tools-backend/lib/ws"
	"office-tools-backend/middleware"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // limit of 100MB
	})
	app.Use(fiberRecover.New())
	app.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	app.Use(middleware.BodyLimit(10 * 1024 * 1024))
	if config.Conf.ErrNotifyAddr != "" {
		app.Use(middleware.ErrNotify(config.Conf.ErrNotifyAddr))
	}

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	app.Get("/health", healthHandler)

	apiv1.InitAuthApiRouters(app)
	apiv1.InitUserApiRouters(app)
	apiv1.InitDictApiRouters(app)
	apiv1.InitEventApiRouters(app)
	apiv1.InitTaskApiRouters(app)
	apiv1.InitProjectApiRouters(app)
	apiv1.InitNotificationApiRouters(app)
	apiv1.InitReportApiRouters(app)
	apiv1.InitBackupApiRouters(app)

	wsApp := fiber.New()
	wsApp.Use(middleware.AuthorizationRequired())
	ws.InitWs(wsApp)
	app.Mount("/ws", wsApp)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}

func healthHandler(ctx *fiber.Ctx) error {
	status := "ok"
	code := fiber.StatusOK
	if err := db.PingDB(); err != nil {
		log.WithError(err).Error("health check database ping failed")
		status = "degraded"
		code = fiber.StatusServiceUnavailable
	}
	return ctx.Status(code).JSON(fiber.Map{
		"status":            status,
		"droppedNotifies":   notificationshandler.DroppedNotifies(),
		"droppedBroadcasts": notificationshandler.DroppedBroadcasts(),
	})
}
