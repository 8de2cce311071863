package dbmodels

import "office-tools-backend/models"

type User struct {
	BaseModel
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	Email        string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password     string          `gorm:"type:varchar(255);not null" json:"-"`
	Role         models.UserRole `gorm:"type:varchar(20);not null;default:employee" json:"role"`
	DepartmentID *string         `gorm:"type:varchar(36);index" json:"departmentId"`
	Department   *Department     `json:"department,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u User) Actor() models.Actor {
	actor := models.Actor{
		ID:   u.ID,
		Role: u.Role,
	}
	if u.DepartmentID != nil {
		actor.DepartmentID = *u.DepartmentID
	}
	return actor
}
