package dbmodels

type Department struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (Department) TableName() string {
	return "departments"
}
