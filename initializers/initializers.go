package initializers

import (
	"context"

	"office-tools-backend/config"
	"office-tools-backend/db"
	"office-tools-backend/fiberlog"
	authhandler "office-tools-backend/lib/auth"
	backuphandler "office-tools-backend/lib/backup"
	departmentshandler "office-tools-backend/lib/departments"
	eventreminder "office-tools-backend/lib/event-reminder"
	eventshandler "office-tools-backend/lib/events"
	xlsexport "office-tools-backend/lib/export/xls"
	notificationshandler "office-tools-backend/lib/notifications"
	projectshandler "office-tools-backend/lib/projects"
	reportshandler "office-tools-backend/lib/reports"
	roomshandler "office-tools-backend/lib/rooms"
	"office-tools-backend/lib/smtp"
	taskshandler "office-tools-backend/lib/tasks"
	usershandler "office-tools-backend/lib/users"
	connectionhub "office-tools-backend/lib/ws/hub/connection-hub"
	s3client "office-tools-backend/s3"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	connectionhub.Init()

	// Notifications first, the task and event handlers hang off its side channel.
	notificationshandler.NewHandler()
	authhandler.NewHandler()
	usershandler.NewHandler()
	departmentshandler.NewHandler()
	roomshandler.NewHandler()
	taskshandler.NewHandler(notificationshandler.Instance)
	eventshandler.NewHandler(notificationshandler.Instance)
	projectshandler.NewHandler()
	xlsexport.NewHandler()
	reportshandler.NewHandler()
	backuphandler.NewHandler()

	if *config.Conf.Reminder.Enabled {
		eventreminder.Start(ctx, notificationshandler.Instance)
	}
}

func InitDBConnection() {
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}

	db.InitPreload()
}

func InitSmtp() {
	smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, config.Conf.Smtp.EmailFrom, *config.Conf.Smtp.TLSEnabled)
}

func InitS3(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("object storage is not configured, backup uploads are disabled")
		return
	}
	if err := s3client.Connect(ctx); err != nil {
		log.WithError(err).Error("object storage initialization failed")
	}
}
