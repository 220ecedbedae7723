package models

import "time"

// AssignmentModel maps a staff member into a department, optionally
// narrowed to one request type. A NULL ToDate means open-ended.
type AssignmentModel struct {
	ID            uint       `gorm:"primaryKey"`
	StaffID       uint       `gorm:"not null;index"`
	DepartmentID  uint       `gorm:"not null;index"`
	RequestTypeID *uint      `gorm:"index"`
	FromDate      time.Time  `gorm:"not null"`
	ToDate        *time.Time `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (AssignmentModel) TableName() string {
	return "staff_assignments"
}
