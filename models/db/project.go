package dbmodels

type Project struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	Tasks []Task `json:"tasks,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}
