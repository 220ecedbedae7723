package models

import "time"

type ServiceRequestModel struct {
	ID               uint   `gorm:"primaryKey"`
	Number           string `gorm:"uniqueIndex;size:50;not null"`
	Title            string `gorm:"size:200;not null"`
	Description      string `gorm:"type:text;not null"`
	Priority         string `gorm:"size:20;not null;index"`
	Status           string `gorm:"size:20;not null;index"`
	RequestTypeID    uint   `gorm:"not null;index"`
	CreatorUserID    uint   `gorm:"not null;index"`
	RequesterStaffID *uint  `gorm:"index"`
	AssigneeStaffID  *uint  `gorm:"index"`
	AssignerUserID   *uint
	AssignedAt       *time.Time
	CreatedAt        time.Time `gorm:"not null;index"`
	UpdatedAt        time.Time `gorm:"not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ServiceRequestModel) TableName() string {
	return "service_requests"
}

type RequestReplyModel struct {
	ID           uint   `gorm:"primaryKey"`
	RequestID    uint   `gorm:"not null;index"`
	Status       string `gorm:"size:20;not null"`
	Comment      string `gorm:"type:text;not null"`
	ActorUserID  uint   `gorm:"not null;index"`
	ActorStaffID *uint
	CreatedAt    time.Time `gorm:"not null;index"`
}

func (RequestReplyModel) TableName() string {
	return "request_replies"
}

type AttachmentModel struct {
	ID               uint      `gorm:"primaryKey"`
	RequestID        uint      `gorm:"not null;index"`
	FilePath         string    `gorm:"size:500;not null"`
	FileName         string    `gorm:"size:255;not null"`
	UploadedByUserID uint      `gorm:"not null"`
	UploadedAt       time.Time `gorm:"not null"`
}

func (AttachmentModel) TableName() string {
	return "request_attachments"
}
