package dbmodels

import "office-tools-backend/models"

type Participant struct {
	BaseModel
	EventID string                   `gorm:"type:varchar(36);uniqueIndex:idx_event_user;not null" json:"eventId"`
	Event   *Event                   `json:"event,omitempty"`
	UserID  string                   `gorm:"type:varchar(36);uniqueIndex:idx_event_user;index;not null" json:"userId"`
	User    *User                    `json:"user,omitempty"`
	Status  models.ParticipantStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`
}

func (Participant) TableName() string {
	return "participants"
}
