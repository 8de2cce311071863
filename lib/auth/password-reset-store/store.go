package passwordresetstore

import (
	"time"

	dbmodels "office-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.PasswordReset) (*dbmodels.PasswordReset, error)
	FindActiveByCode(code string, now time.Time) (rec *dbmodels.PasswordReset, err error)
	MarkUsed(id string, now time.Time) error
	DeleteByUser(userID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.PasswordReset) (*dbmodels.PasswordReset, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (i impl) FindActiveByCode(code string, now time.Time) (rec *dbmodels.PasswordReset, err error) {
	err = i.db.Model(dbmodels.PasswordReset{}).
		Where("code = ?", code).
		Where("date_expires > ?", now).
		Where("date_used IS NULL").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) MarkUsed(id string, now time.Time) error {
	return i.db.
		Model(&dbmodels.PasswordReset{}).
		Where("id = ?", id).
		Update("date_used", now).
		Error
}

func (i impl) DeleteByUser(userID string) error {
	return i.db.
		Where("user_id = ?", userID).
		Delete(&dbmodels.PasswordReset{}).
		Error
}
