package dbmodels

type Room struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Location string `gorm:"type:varchar(255)" json:"location"`
	Capacity int    `gorm:"not null;default:0" json:"capacity"`
}

func (Room) TableName() string {
	return "rooms"
}
