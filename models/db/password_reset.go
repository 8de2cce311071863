package dbmodels

import "time"

// PasswordReset keeps one-time reset codes issued by forgot-password.
type PasswordReset struct {
	BaseModel
	UserID      string     `gorm:"type:varchar(36);index;not null" json:"userId"`
	Code        string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"-"`
	DateExpires time.Time  `gorm:"not null" json:"date_expires"`
	DateUsed    *time.Time `json:"date_used"`
}

func (PasswordReset) TableName() string {
	return "password_resets"
}
