package dbmodels

type Notification struct {
	BaseModel
	UserID  string `gorm:"type:varchar(36);index;not null" json:"userId"`
	Title   string `gorm:"type:varchar(255);not null" json:"title"`
	Message string `gorm:"type:text;not null" json:"message"`
	IsRead  bool   `gorm:"not null;default:false" json:"is_read"`
	RefType string `gorm:"type:varchar(50)" json:"ref_type,omitempty"`
	RefID   string `gorm:"type:varchar(36)" json:"ref_id,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
