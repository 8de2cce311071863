package eventsstore

import (
	"time"

	"office-tools-backend/models"
	dbmodels "office-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Event) (id string, err error)
	GetByID(id string) (rec *dbmodels.Event, err error)
	List() (list []dbmodels.Event, err error)
	ListStartingBetween(from, to time.Time, status models.EventStatus) (list []dbmodels.Event, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Event) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Event, err error) {
	err = i.db.Model(dbmodels.Event{}).
		Where("id = ?", id).
		Preload(clause.Associations).
		Preload("Participants.User").
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

func (i impl) List() (list []dbmodels.Event, err error) {
	err = i.db.Model(dbmodels.Event{}).
		Preload(clause.Associations).
		Preload("Participants.User").
		Order("start_time").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListStartingBetween feeds the reminder worker.
func (i impl) ListStartingBetween(from, to time.Time, status models.EventStatus) (list []dbmodels.Event, err error) {
	err = i.db.Model(dbmodels.Event{}).
		Where("start_time >= ? AND start_time < ?", from, to).
		Where("status = ?", status).
		Preload("Participants").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Event{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Event{}).
		Error
}
