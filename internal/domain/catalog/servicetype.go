package catalog

import (
	"fmt"
	"strings"
	"time"
)

// ServiceType is a top-level service category grouping request types.
type ServiceType struct {
	id          uint
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewServiceType(name, description string) (*ServiceType, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return nil, fmt.Errorf("service type name is required")
	}

	now := time.Now()
	return &ServiceType{
		name:        name,
		description: strings.TrimSpace(description),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructServiceType(id uint, name, description string, createdAt, updatedAt time.Time) (*ServiceType, error) {
	if id == 0 {
		return nil, fmt.Errorf("service type ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("service type name is required")
	}

	return &ServiceType{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *ServiceType) ID() uint             { return s.id }
func (s *ServiceType) Name() string         { return s.name }
func (s *ServiceType) Description() string  { return s.description }
func (s *ServiceType) CreatedAt() time.Time { return s.createdAt }
func (s *ServiceType) UpdatedAt() time.Time { return s.updatedAt }

func (s *ServiceType) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("service type ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("service type ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *ServiceType) Update(name, description string) error {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return fmt.Errorf("service type name is required")
	}
	s.name = name
	s.description = strings.TrimSpace(description)
	s.updatedAt = time.Now()
	return nil
}
