package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Department is an organizational unit that owns request types and staff
// assignments. Names are unique case-insensitively.
type Department struct {
	id          uint
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewDepartment(name, description string) (*Department, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return nil, fmt.Errorf("department name is required")
	}

	now := time.Now()
	return &Department{
		name:        name,
		description: strings.TrimSpace(description),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructDepartment(id uint, name, description string, createdAt, updatedAt time.Time) (*Department, error) {
	if id == 0 {
		return nil, fmt.Errorf("department ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("department name is required")
	}

	return &Department{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (d *Department) ID() uint             { return d.id }
func (d *Department) Name() string         { return d.name }
func (d *Department) Description() string  { return d.description }
func (d *Department) CreatedAt() time.Time { return d.createdAt }
func (d *Department) UpdatedAt() time.Time { return d.updatedAt }

func (d *Department) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("department ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("department ID cannot be zero")
	}
	d.id = id
	return nil
}

func (d *Department) Update(name, description string) error {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return fmt.Errorf("department name is required")
	}
	d.name = name
	d.description = strings.TrimSpace(description)
	d.updatedAt = time.Now()
	return nil
}
