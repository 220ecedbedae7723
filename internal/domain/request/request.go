package request

import (
	"fmt"
	"time"
)

// ServiceRequest is the ticket aggregate. Status only changes through the
// transition methods below; assignee, assigner and assignedAt are set
// together or not at all.
type ServiceRequest struct {
	id               uint
	number           string
	title            string
	description      string
	priority         Priority
	status           Status
	requestTypeID    uint
	creatorUserID    uint
	requesterStaffID *uint
	assigneeStaffID  *uint
	assignerUserID   *uint
	assignedAt       *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

const maxTitleLength = 200

func NewServiceRequest(
	title string,
	description string,
	priority Priority,
	requestTypeID uint,
	creatorUserID uint,
	requesterStaffID *uint,
) (*ServiceRequest, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if requestTypeID == 0 {
		return nil, fmt.Errorf("request type ID is required")
	}
	if creatorUserID == 0 {
		return nil, fmt.Errorf("creator user ID is required")
	}

	now := time.Now()
	return &ServiceRequest{
		title:            title,
		description:      description,
		priority:         priority,
		status:           StatusPending,
		requestTypeID:    requestTypeID,
		creatorUserID:    creatorUserID,
		requesterStaffID: requesterStaffID,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructServiceRequest(
	id uint,
	number string,
	title string,
	description string,
	priority Priority,
	status Status,
	requestTypeID uint,
	creatorUserID uint,
	requesterStaffID *uint,
	assigneeStaffID *uint,
	assignerUserID *uint,
	assignedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*ServiceRequest, error) {
	if id == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("request number is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &ServiceRequest{
		id:               id,
		number:           number,
		title:            title,
		description:      description,
		priority:         priority,
		status:           status,
		requestTypeID:    requestTypeID,
		creatorUserID:    creatorUserID,
		requesterStaffID: requesterStaffID,
		assigneeStaffID:  assigneeStaffID,
		assignerUserID:   assignerUserID,
		assignedAt:       assignedAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (r *ServiceRequest) ID() uint                { return r.id }
func (r *ServiceRequest) Number() string          { return r.number }
func (r *ServiceRequest) Title() string           { return r.title }
func (r *ServiceRequest) Description() string     { return r.description }
func (r *ServiceRequest) Priority() Priority      { return r.priority }
func (r *ServiceRequest) Status() Status          { return r.status }
func (r *ServiceRequest) RequestTypeID() uint     { return r.requestTypeID }
func (r *ServiceRequest) CreatorUserID() uint     { return r.creatorUserID }
func (r *ServiceRequest) RequesterStaffID() *uint { return r.requesterStaffID }
func (r *ServiceRequest) AssigneeStaffID() *uint  { return r.assigneeStaffID }
func (r *ServiceRequest) AssignerUserID() *uint   { return r.assignerUserID }
func (r *ServiceRequest) AssignedAt() *time.Time  { return r.assignedAt }
func (r *ServiceRequest) CreatedAt() time.Time    { return r.createdAt }
func (r *ServiceRequest) UpdatedAt() time.Time    { return r.updatedAt }

func (r *ServiceRequest) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *ServiceRequest) SetNumber(number string) error {
	if len(r.number) > 0 {
		return fmt.Errorf("request number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("request number cannot be empty")
	}
	r.number = number
	return nil
}

// Assign moves a PENDING request to IN_PROGRESS and records who was assigned,
// by whom and when. The three assignment fields are always set together.
func (r *ServiceRequest) Assign(assigneeStaffID, assignerUserID uint) error {
	if assigneeStaffID == 0 {
		return fmt.Errorf("assignee staff ID cannot be zero")
	}
	if assignerUserID == 0 {
		return fmt.Errorf("assigner user ID cannot be zero")
	}
	if !r.status.IsPending() {
		return fmt.Errorf("Only PENDING can be assigned")
	}

	now := time.Now()
	r.assigneeStaffID = &assigneeStaffID
	r.assignerUserID = &assignerUserID
	r.assignedAt = &now
	r.status = StatusInProgress
	r.updatedAt = now
	return nil
}

// Resolve moves an IN_PROGRESS request to RESOLVED.
func (r *ServiceRequest) Resolve() error {
	if !r.status.IsInProgress() {
		return fmt.Errorf("Only IN_PROGRESS can be resolved")
	}
	r.status = StatusResolved
	r.updatedAt = time.Now()
	return nil
}

// Reject moves a PENDING or IN_PROGRESS request to REJECTED.
func (r *ServiceRequest) Reject() error {
	if !r.status.CanTransitionTo(StatusRejected) {
		return fmt.Errorf("Cannot reject a %s request", r.status)
	}
	r.status = StatusRejected
	r.updatedAt = time.Now()
	return nil
}

// Close moves a RESOLVED request to CLOSED.
func (r *ServiceRequest) Close() error {
	if !r.status.IsResolved() {
		return fmt.Errorf("Only RESOLVED can be closed")
	}
	r.status = StatusClosed
	r.updatedAt = time.Now()
	return nil
}

// IsAssignedTo reports whether the request is assigned to the given staff.
func (r *ServiceRequest) IsAssignedTo(staffID uint) bool {
	return r.assigneeStaffID != nil && *r.assigneeStaffID == staffID
}
