package db

import (
	"office-tools-backend/config"
	usersstore "office-tools-backend/lib/users/store"
	authutils "office-tools-backend/lib/utils/auth-utils"
	"office-tools-backend/models"
	dbmodels "office-tools-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	addAdmin()
}

func addAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("admin account not seeded, ADMIN_EMAIL is not set")
		return
	}
	store := usersstore.NewInstance(DB)
	existed, err := store.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("admin seed failed")
		return
	}
	if existed != nil {
		return
	}
	hash, err := authutils.HashPassword(config.Conf.Admin.Password)
	if err != nil {
		log.WithError(err).Error("admin seed failed")
		return
	}
	rec := dbmodels.User{
		Name:     config.Conf.Admin.Name,
		Email:    config.Conf.Admin.Email,
		Password: hash,
		Role:     models.UserRoleAdmin,
	}
	if _, err = store.Create(rec); err != nil {
		log.WithError(err).Error("admin seed failed")
	}
}
