package notificationstore

import (
	dbmodels "office-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	CreateBatch(recs []dbmodels.Notification) ([]dbmodels.Notification, error)
	GetByID(id string) (rec *dbmodels.Notification, err error)
	ListByUser(userID string) (list []dbmodels.Notification, err error)
	ListUnread(userID string) (list []dbmodels.Notification, err error)
	MarkRead(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateBatch(recs []dbmodels.Notification) ([]dbmodels.Notification, error) {
	if len(recs) == 0 {
		return nil, nil
	}
	err := i.db.
		Create(&recs).
		Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Notification, err error) {
	err = i.db.Model(dbmodels.Notification{}).
		Where("id = ?", id).
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

func (i impl) ListByUser(userID string) (list []dbmodels.Notification, err error) {
	err = i.db.Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListUnread(userID string) (list []dbmodels.Notification, err error) {
	err = i.db.Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("is_read = ?", false).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkRead(id string) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).
		Error
}
