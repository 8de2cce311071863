package dbmodels

import (
	"time"

	"office-tools-backend/models"
)

type Task struct {
	BaseModel
	Title        string                `gorm:"type:varchar(255);not null" json:"title"`
	Description  string                `gorm:"type:text" json:"description"`
	StartTime    *time.Time            `gorm:"index" json:"start_time"`
	EndTime      *time.Time            `json:"end_time"`
	Status       models.TaskStatus     `gorm:"type:varchar(20);index;not null;default:todo" json:"status"`
	ProjectID    *string               `gorm:"type:varchar(36);index" json:"projectId"`
	Project      *Project              `json:"project,omitempty"`
	DepartmentID *string               `gorm:"type:varchar(36);index" json:"departmentId"`
	CreatedByID  string                `gorm:"type:varchar(36);index;not null" json:"createdById"`
	Priority     models.TaskPriority   `gorm:"type:varchar(20);not null;default:normal" json:"priority"`
	Type         models.AssignmentType `gorm:"column:assignment_type;type:varchar(20);not null;default:open" json:"assignment_type"`
	Capacity     int                   `gorm:"not null;default:1" json:"capacity"`
	// Weight is the explicit contribution percentage toward the project
	// progress; nil means the share is auto-derived among siblings.
	Weight *int `json:"weight"`

	Assignments []TaskAssignment `json:"assignments,omitempty"`
}

func (Task) TableName() string {
	return "tasks"
}

// InDepartment reports whether the task belongs to the given department.
func (t Task) InDepartment(departmentID string) bool {
	return t.DepartmentID != nil && *t.DepartmentID == departmentID
}
