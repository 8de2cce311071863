package dbmodels

import (
	"time"

	"office-tools-backend/models"
)

type Event struct {
	BaseModel
	Title       string             `gorm:"type:varchar(255);not null" json:"title"`
	Description string             `gorm:"type:text" json:"description"`
	StartTime   time.Time          `gorm:"index;not null" json:"start_time"`
	EndTime     time.Time          `gorm:"not null" json:"end_time"`
	RoomID      *string            `gorm:"type:varchar(36);index" json:"roomId"`
	Room        *Room              `json:"room,omitempty"`
	CreatedByID string             `gorm:"type:varchar(36);index;not null" json:"createdById"`
	CreatedBy   *User              `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	Status      models.EventStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	Repeat      string             `gorm:"type:varchar(50)" json:"repeat,omitempty"`

	Participants []Participant `json:"participants,omitempty"`
}

func (Event) TableName() string {
	return "events"
}

// InProgressAt reports whether the event window contains the given moment.
func (e Event) InProgressAt(now time.Time) bool {
	return !e.StartTime.After(now) && !e.EndTime.Before(now)
}
