package dbmodels

import "office-tools-backend/models"

// TaskAssignment links one user to one task with a lifecycle status.
// One row per (task, user) pair, enforced by the unique index.
type TaskAssignment struct {
	BaseModel
	TaskID       string                  `gorm:"type:varchar(36);uniqueIndex:idx_task_user;not null" json:"taskId"`
	UserID       string                  `gorm:"type:varchar(36);uniqueIndex:idx_task_user;index;not null" json:"userId"`
	User         *User                   `json:"user,omitempty"`
	Status       models.AssignmentStatus `gorm:"type:varchar(20);index;not null;default:assigned" json:"status"`
	Progress     int                     `gorm:"not null;default:0" json:"progress"`
	RejectReason string                  `gorm:"type:varchar(1000)" json:"reject_reason,omitempty"`
}

func (TaskAssignment) TableName() string {
	return "task_assignments"
}
