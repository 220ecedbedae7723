package models

import "time"

type StaffModel struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"uniqueIndex;size:50;not null"`
	Name      string `gorm:"size:100;not null;index"`
	Email     string `gorm:"size:255"`
	Mobile    string `gorm:"size:50"`
	IsActive  bool   `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (StaffModel) TableName() string {
	return "staff"
}
