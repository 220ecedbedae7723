package models

import "time"

type DepartmentModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:100;not null"`
	Description string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (DepartmentModel) TableName() string {
	return "departments"
}

type ServiceTypeModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:100;not null"`
	Description string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ServiceTypeModel) TableName() string {
	return "service_types"
}

type RequestTypeModel struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"uniqueIndex;size:100;not null"`
	Description     string `gorm:"size:255"`
	ServiceTypeID   uint   `gorm:"not null;index"`
	DepartmentID    uint   `gorm:"not null;index"`
	DefaultPriority string `gorm:"size:20;not null"`
	ReminderDays    *int
	IsMandatory     bool `gorm:"not null;default:false"`
	IsVisible       bool `gorm:"not null;default:true;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (RequestTypeModel) TableName() string {
	return "request_types"
}

type StatusModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:20;not null"`
	Description string `gorm:"size:255"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (StatusModel) TableName() string {
	return "statuses"
}
