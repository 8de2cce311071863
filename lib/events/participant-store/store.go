package participantstore

import (
	"time"

	"office-tools-backend/models"
	dbmodels "office-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	BulkAdd(eventID string, userIDs []string) ([]dbmodels.Participant, error)
	GetByID(id string) (rec *dbmodels.Participant, err error)
	ListByEvent(eventID string) (list []dbmodels.Participant, err error)
	UpdateStatus(id string, status models.ParticipantStatus) error
	DeleteByEvent(eventID string) error
	HasActiveEvent(userID string, now time.Time) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) BulkAdd(eventID string, userIDs []string) ([]dbmodels.Participant, error) {
	recs := make([]dbmodels.Participant, 0, len(userIDs))
	for _, userID := range userIDs {
		recs = append(recs, dbmodels.Participant{
			EventID: eventID,
			UserID:  userID,
			Status:  models.ParticipantStatusPending,
		})
	}
	if len(recs) == 0 {
		return nil, nil
	}
	err := i.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&recs).
		Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Participant, err error) {
	err = i.db.Model(dbmodels.Participant{}).
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

func (i impl) ListByEvent(eventID string) (list []dbmodels.Participant, err error) {
	err = i.db.Model(dbmodels.Participant{}).
		Where("event_id = ?", eventID).
		Preload("User").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UpdateStatus(id string, status models.ParticipantStatus) error {
	return i.db.
		Model(&dbmodels.Participant{}).
		Where("id = ?", id).
		Update("status", status).
		Error
}

func (i impl) DeleteByEvent(eventID string) error {
	return i.db.
		Where("event_id = ?", eventID).
		Delete(&dbmodels.Participant{}).
		Error
}

// HasActiveEvent reports whether the user holds an accepted participation in
// an approved event whose window contains now. Consulted by the assignment
// eligibility gate.
func (i impl) HasActiveEvent(userID string, now time.Time) (bool, error) {
	var rowCount int64
	err := i.db.Model(&dbmodels.Participant{}).
		Joins("JOIN events ON events.id = participants.event_id").
		Where("participants.user_id = ?", userID).
		Where("participants.status = ?", models.ParticipantStatusAccepted).
		Where("events.status = ?", models.EventStatusApproved).
		Where("events.start_time <= ? AND events.end_time >= ?", now, now).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount > 0, nil
}
