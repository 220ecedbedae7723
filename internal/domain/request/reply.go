package request

import (
	"fmt"
	"time"
)

// Audit comments recorded alongside lifecycle transitions.
const (
	CommentAssigned       = "Assigned to technician"
	CommentResolvedByHOD  = "Marked as RESOLVED by HOD"
	CommentResolvedByTech = "Resolved by Technician"
	CommentRejectedByHOD  = "Request Rejected by HOD"
	CommentClosedByHOD    = "Closed by HOD"
)

// Reply is an append-only audit entry on a service request. Every lifecycle
// transition writes one; users may also add free-form comments.
type Reply struct {
	id           uint
	requestID    uint
	status       Status
	comment      string
	actorUserID  uint
	actorStaffID *uint
	createdAt    time.Time
}

func NewReply(requestID uint, status Status, comment string, actorUserID uint, actorStaffID *uint) (*Reply, error) {
	if requestID == 0 {
		return nil, fmt.Errorf("request ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if len(comment) == 0 {
		return nil, fmt.Errorf("comment is required")
	}
	if actorUserID == 0 {
		return nil, fmt.Errorf("actor user ID is required")
	}

	return &Reply{
		requestID:    requestID,
		status:       status,
		comment:      comment,
		actorUserID:  actorUserID,
		actorStaffID: actorStaffID,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructReply(
	id uint,
	requestID uint,
	status Status,
	comment string,
	actorUserID uint,
	actorStaffID *uint,
	createdAt time.Time,
) (*Reply, error) {
	if id == 0 {
		return nil, fmt.Errorf("reply ID cannot be zero")
	}
	if requestID == 0 {
		return nil, fmt.Errorf("request ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Reply{
		id:           id,
		requestID:    requestID,
		status:       status,
		comment:      comment,
		actorUserID:  actorUserID,
		actorStaffID: actorStaffID,
		createdAt:    createdAt,
	}, nil
}

func (r *Reply) ID() uint             { return r.id }
func (r *Reply) RequestID() uint      { return r.requestID }
func (r *Reply) Status() Status       { return r.status }
func (r *Reply) Comment() string      { return r.comment }
func (r *Reply) ActorUserID() uint    { return r.actorUserID }
func (r *Reply) ActorStaffID() *uint  { return r.actorStaffID }
func (r *Reply) CreatedAt() time.Time { return r.createdAt }

func (r *Reply) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("reply ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("reply ID cannot be zero")
	}
	r.id = id
	return nil
}
