package identity

import (
	"fmt"
	"strings"
	"time"
)

// Staff is a directory entry for a person who can be assigned work or
// request service. A staff member may or may not have a login account.
// The code is a unique employee identifier.
type Staff struct {
	id        uint
	code      string
	name      string
	email     string
	mobile    string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewStaff(code, name, email, mobile string) (*Staff, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if len(code) == 0 {
		return nil, fmt.Errorf("staff code is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("staff name is required")
	}

	now := time.Now()
	return &Staff{
		code:      code,
		name:      name,
		email:     strings.TrimSpace(email),
		mobile:    strings.TrimSpace(mobile),
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructStaff(id uint, code, name, email, mobile string, isActive bool, createdAt, updatedAt time.Time) (*Staff, error) {
	if id == 0 {
		return nil, fmt.Errorf("staff ID cannot be zero")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("staff code is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("staff name is required")
	}

	return &Staff{
		id:        id,
		code:      code,
		name:      name,
		email:     email,
		mobile:    mobile,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *Staff) ID() uint             { return s.id }
func (s *Staff) Code() string         { return s.code }
func (s *Staff) Name() string         { return s.name }
func (s *Staff) Email() string        { return s.email }
func (s *Staff) Mobile() string       { return s.mobile }
func (s *Staff) IsActive() bool       { return s.isActive }
func (s *Staff) CreatedAt() time.Time { return s.createdAt }
func (s *Staff) UpdatedAt() time.Time { return s.updatedAt }

func (s *Staff) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("staff ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("staff ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Staff) Update(name, email, mobile string) error {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return fmt.Errorf("staff name is required")
	}
	s.name = name
	s.email = strings.TrimSpace(email)
	s.mobile = strings.TrimSpace(mobile)
	s.updatedAt = time.Now()
	return nil
}

func (s *Staff) Activate() {
	s.isActive = true
	s.updatedAt = time.Now()
}

func (s *Staff) Deactivate() {
	s.isActive = false
	s.updatedAt = time.Now()
}
