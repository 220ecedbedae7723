package catalog

import (
	"fmt"
	"strings"
	"time"

	"servicedesk/internal/domain/request"
)

// RequestTypeAttrs carries the editable fields of a request type.
type RequestTypeAttrs struct {
	Name            string
	Description     string
	ServiceTypeID   uint
	DepartmentID    uint
	DefaultPriority request.Priority
	ReminderDays    *int
	IsMandatory     bool
	IsVisible       bool
}

func (a *RequestTypeAttrs) validate() error {
	a.Name = strings.TrimSpace(a.Name)
	if len(a.Name) == 0 {
		return fmt.Errorf("request type name is required")
	}
	if a.ServiceTypeID == 0 {
		return fmt.Errorf("service type ID is required")
	}
	if a.DepartmentID == 0 {
		return fmt.Errorf("department ID is required")
	}
	if !a.DefaultPriority.IsValid() {
		return fmt.Errorf("invalid default priority")
	}
	if a.ReminderDays != nil && *a.ReminderDays < 1 {
		return fmt.Errorf("reminder days must be positive")
	}
	return nil
}

// RequestType is a concrete kind of work a requester can ask for. It belongs
// to a service type, is owned by a department and carries the default
// priority new requests start with. Hidden types stay usable for existing
// requests but are not offered to requestors.
type RequestType struct {
	id              uint
	name            string
	description     string
	serviceTypeID   uint
	departmentID    uint
	defaultPriority request.Priority
	reminderDays    *int
	isMandatory     bool
	isVisible       bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewRequestType(attrs RequestTypeAttrs) (*RequestType, error) {
	if err := attrs.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	rt := &RequestType{createdAt: now, updatedAt: now}
	rt.apply(attrs)
	return rt, nil
}

func ReconstructRequestType(id uint, attrs RequestTypeAttrs, createdAt, updatedAt time.Time) (*RequestType, error) {
	if id == 0 {
		return nil, fmt.Errorf("request type ID cannot be zero")
	}
	if err := attrs.validate(); err != nil {
		return nil, err
	}

	rt := &RequestType{id: id, createdAt: createdAt, updatedAt: updatedAt}
	rt.apply(attrs)
	return rt, nil
}

func (r *RequestType) apply(attrs RequestTypeAttrs) {
	r.name = attrs.Name
	r.description = strings.TrimSpace(attrs.Description)
	r.serviceTypeID = attrs.ServiceTypeID
	r.departmentID = attrs.DepartmentID
	r.defaultPriority = attrs.DefaultPriority
	r.reminderDays = attrs.ReminderDays
	r.isMandatory = attrs.IsMandatory
	r.isVisible = attrs.IsVisible
}

func (r *RequestType) ID() uint                          { return r.id }
func (r *RequestType) Name() string                      { return r.name }
func (r *RequestType) Description() string               { return r.description }
func (r *RequestType) ServiceTypeID() uint               { return r.serviceTypeID }
func (r *RequestType) DepartmentID() uint                { return r.departmentID }
func (r *RequestType) DefaultPriority() request.Priority { return r.defaultPriority }
func (r *RequestType) ReminderDays() *int                { return r.reminderDays }
func (r *RequestType) IsMandatory() bool                 { return r.isMandatory }
func (r *RequestType) IsVisible() bool                   { return r.isVisible }
func (r *RequestType) CreatedAt() time.Time              { return r.createdAt }
func (r *RequestType) UpdatedAt() time.Time              { return r.updatedAt }

func (r *RequestType) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request type ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request type ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *RequestType) Update(attrs RequestTypeAttrs) error {
	if err := attrs.validate(); err != nil {
		return err
	}
	r.apply(attrs)
	r.updatedAt = time.Now()
	return nil
}
