package models

import "time"

// UserModel represents the database persistence model for login accounts
type UserModel struct {
	ID           uint    `gorm:"primaryKey"`
	Username     string  `gorm:"uniqueIndex;size:100;not null"`
	Email        string  `gorm:"size:255"`
	PasswordHash string  `gorm:"size:255;not null"`
	DisplayName  string  `gorm:"size:100"`
	IsActive     bool    `gorm:"not null;default:true;index"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return "users"
}

type RoleModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:50;not null"`
	CreatedAt time.Time
}

func (RoleModel) TableName() string {
	return "roles"
}

// UserRoleModel grants a role to a user. Role replacement deletes all rows
// for the user and recreates them.
type UserRoleModel struct {
	ID       uint      `gorm:"primaryKey"`
	UserID   uint      `gorm:"not null;index:idx_user_role,unique"`
	RoleID   uint      `gorm:"not null;index:idx_user_role,unique"`
	FromDate time.Time `gorm:"not null"`
}

func (UserRoleModel) TableName() string {
	return "user_roles"
}

// UserStaffModel links a login account to at most one staff record.
// Uniqueness on both columns enforces the 1:1 relationship.
type UserStaffModel struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex"`
	StaffID   uint `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time
}

func (UserStaffModel) TableName() string {
	return "user_staff"
}
