package assignment

import (
	"fmt"
	"time"
)

// Assignment maps a staff member into a department, optionally narrowed to
// a single request type. It is active at time t when t falls in
// [fromDate, toDate); a nil toDate means unbounded. Scope resolution
// (which department an HOD oversees, who may be assigned work) always uses
// this one definition.
type Assignment struct {
	id            uint
	staffID       uint
	departmentID  uint
	requestTypeID *uint
	fromDate      time.Time
	toDate        *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewAssignment(staffID, departmentID uint, requestTypeID *uint, fromDate time.Time) (*Assignment, error) {
	if staffID == 0 {
		return nil, fmt.Errorf("staff ID is required")
	}
	if departmentID == 0 {
		return nil, fmt.Errorf("department ID is required")
	}
	if fromDate.IsZero() {
		return nil, fmt.Errorf("from date is required")
	}

	now := time.Now()
	return &Assignment{
		staffID:       staffID,
		departmentID:  departmentID,
		requestTypeID: requestTypeID,
		fromDate:      fromDate,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructAssignment(
	id uint,
	staffID, departmentID uint,
	requestTypeID *uint,
	fromDate time.Time,
	toDate *time.Time,
	createdAt, updatedAt time.Time,
) (*Assignment, error) {
	if id == 0 {
		return nil, fmt.Errorf("assignment ID cannot be zero")
	}
	if staffID == 0 {
		return nil, fmt.Errorf("staff ID is required")
	}
	if departmentID == 0 {
		return nil, fmt.Errorf("department ID is required")
	}

	return &Assignment{
		id:            id,
		staffID:       staffID,
		departmentID:  departmentID,
		requestTypeID: requestTypeID,
		fromDate:      fromDate,
		toDate:        toDate,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (a *Assignment) ID() uint             { return a.id }
func (a *Assignment) StaffID() uint        { return a.staffID }
func (a *Assignment) DepartmentID() uint   { return a.departmentID }
func (a *Assignment) RequestTypeID() *uint { return a.requestTypeID }
func (a *Assignment) FromDate() time.Time  { return a.fromDate }
func (a *Assignment) ToDate() *time.Time   { return a.toDate }
func (a *Assignment) CreatedAt() time.Time { return a.createdAt }
func (a *Assignment) UpdatedAt() time.Time { return a.updatedAt }

func (a *Assignment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("assignment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("assignment ID cannot be zero")
	}
	a.id = id
	return nil
}

// IsActiveAt reports whether t falls within the assignment period.
// The end date is exclusive.
func (a *Assignment) IsActiveAt(t time.Time) bool {
	if t.Before(a.fromDate) {
		return false
	}
	if a.toDate == nil {
		return true
	}
	return t.Before(*a.toDate)
}

// End closes the assignment at the given date. The end date must not
// precede the start.
func (a *Assignment) End(toDate time.Time) error {
	if a.toDate != nil {
		return fmt.Errorf("assignment is already ended")
	}
	if toDate.Before(a.fromDate) {
		return fmt.Errorf("end date cannot precede start date")
	}
	a.toDate = &toDate
	a.updatedAt = time.Now()
	return nil
}

// SameScope reports whether the other assignment targets the same staff,
// department and request type narrowing.
func (a *Assignment) SameScope(other *Assignment) bool {
	if a.staffID != other.staffID || a.departmentID != other.departmentID {
		return false
	}
	if a.requestTypeID == nil || other.requestTypeID == nil {
		return a.requestTypeID == nil && other.requestTypeID == nil
	}
	return *a.requestTypeID == *other.requestTypeID
}
