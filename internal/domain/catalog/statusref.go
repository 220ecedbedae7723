package catalog

import (
	"fmt"
	"strings"
	"time"

	"servicedesk/internal/domain/request"
)

// StatusRef is the admin-visible reference row behind a lifecycle status.
// The name is one of the canonical statuses and cannot change; only the
// display description and active flag are editable.
type StatusRef struct {
	id          uint
	name        request.Status
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewStatusRef(name request.Status, description string) (*StatusRef, error) {
	if !name.IsValid() {
		return nil, fmt.Errorf("invalid status name: %s", name)
	}

	now := time.Now()
	return &StatusRef{
		name:        name,
		description: strings.TrimSpace(description),
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructStatusRef(id uint, name string, description string, isActive bool, createdAt, updatedAt time.Time) (*StatusRef, error) {
	if id == 0 {
		return nil, fmt.Errorf("status ID cannot be zero")
	}
	status, err := request.NewStatus(name)
	if err != nil {
		return nil, err
	}

	return &StatusRef{
		id:          id,
		name:        status,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *StatusRef) ID() uint             { return s.id }
func (s *StatusRef) Name() request.Status { return s.name }
func (s *StatusRef) Description() string  { return s.description }
func (s *StatusRef) IsActive() bool       { return s.isActive }
func (s *StatusRef) CreatedAt() time.Time { return s.createdAt }
func (s *StatusRef) UpdatedAt() time.Time { return s.updatedAt }

func (s *StatusRef) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("status ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("status ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *StatusRef) Update(description string, isActive bool) {
	s.description = strings.TrimSpace(description)
	s.isActive = isActive
	s.updatedAt = time.Now()
}
