package assignment

import (
	"context"
	"time"
)

// Filter narrows assignment listings. ActiveAt keeps only assignments
// whose period contains the given instant. Zero Page/PageSize mean "no
// pagination".
type Filter struct {
	StaffID       *uint
	DepartmentID  *uint
	RequestTypeID *uint
	ActiveAt      *time.Time
	Page          int
	PageSize      int
}

// Repository persists staff-department assignments.
type Repository interface {
	Save(ctx context.Context, a *Assignment) error
	Update(ctx context.Context, a *Assignment) error
	GetByID(ctx context.Context, id uint) (*Assignment, error)
	List(ctx context.Context, filter Filter) ([]*Assignment, int64, error)
	// HasActiveOverlap reports whether an assignment with the same staff,
	// department and request type narrowing is active at the given instant.
	HasActiveOverlap(ctx context.Context, staffID, departmentID uint, requestTypeID *uint, at time.Time) (bool, error)
	// ActiveDepartmentIDs returns the departments the staff member is
	// actively assigned to at the given instant.
	ActiveDepartmentIDs(ctx context.Context, staffID uint, at time.Time) ([]uint, error)
	// ActiveStaffIDsByDepartment returns the staff actively assigned to the
	// department at the given instant.
	ActiveStaffIDsByDepartment(ctx context.Context, departmentID uint, at time.Time) ([]uint, error)
}
