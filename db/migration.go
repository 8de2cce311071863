package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "office-tools-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("running migrations")
	ordered := []struct {
		name  string
		model interface{}
	}{
		{"Department", &dbmodels.Department{}},
		{"User", &dbmodels.User{}},
		{"Room", &dbmodels.Room{}},
		{"Event", &dbmodels.Event{}},
		{"Participant", &dbmodels.Participant{}},
		{"Notification", &dbmodels.Notification{}},
		{"Project", &dbmodels.Project{}},
		{"Task", &dbmodels.Task{}},
		{"TaskAssignment", &dbmodels.TaskAssignment{}},
		{"PasswordReset", &dbmodels.PasswordReset{}},
	}
	for _, m := range ordered {
		if err := DB.AutoMigrate(m.model); err != nil {
			return errors.Wrapf(err, "migration failed for %s", m.name)
		}
	}
	log.Info("migrations finished")
	return nil
}
