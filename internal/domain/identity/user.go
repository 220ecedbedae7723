package identity

import (
	"fmt"
	"strings"
	"time"
)

// User is a login account. Credentials are stored as a bcrypt hash; role
// grants and the staff link live in join tables managed by the repository.
type User struct {
	id           uint
	username     string
	email        string
	passwordHash string
	displayName  string
	isActive     bool
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username, email, passwordHash, displayName string) (*User, error) {
	username = strings.TrimSpace(username)
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()
	return &User{
		username:     username,
		email:        strings.TrimSpace(email),
		passwordHash: passwordHash,
		displayName:  strings.TrimSpace(displayName),
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	username, email, passwordHash, displayName string,
	isActive bool,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		isActive:     isActive,
		lastLoginAt:  lastLoginAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                { return u.id }
func (u *User) Username() string        { return u.username }
func (u *User) Email() string           { return u.email }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) DisplayName() string     { return u.displayName }
func (u *User) IsActive() bool          { return u.isActive }
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) UpdateProfile(email, displayName string) {
	u.email = strings.TrimSpace(email)
	u.displayName = strings.TrimSpace(displayName)
	u.updatedAt = time.Now()
}

func (u *User) ChangePasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now()
	return nil
}

func (u *User) Activate() {
	u.isActive = true
	u.updatedAt = time.Now()
}

// Deactivate soft-deletes the account. Deactivated users fail login with
// an explicit "inactive" error rather than "invalid credentials".
func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = time.Now()
}

// RecordLogin stamps a successful authentication.
func (u *User) RecordLogin() {
	now := time.Now()
	u.lastLoginAt = &now
	u.updatedAt = now
}
