package request

import "context"

// Filter narrows request listings and dashboard aggregations. Zero values
// mean "no constraint". DepartmentID scopes through the request type's
// owning department.
type Filter struct {
	Status          *Status
	Priority        *Priority
	RequestTypeID   *uint
	DepartmentID    *uint
	CreatorUserID   *uint
	AssigneeStaffID *uint
	Page            int
	PageSize        int
}

// Repository persists service requests.
type Repository interface {
	Save(ctx context.Context, req *ServiceRequest) error
	Update(ctx context.Context, req *ServiceRequest) error
	GetByID(ctx context.Context, id uint) (*ServiceRequest, error)
	GetByNumber(ctx context.Context, number string) (*ServiceRequest, error)
	List(ctx context.Context, filter Filter) ([]*ServiceRequest, int64, error)
	// CountByStatus aggregates request counts per status within the filter
	// scope. Statuses with no rows are absent from the result.
	CountByStatus(ctx context.Context, filter Filter) (map[Status]int64, error)
}

// ReplyRepository persists the append-only audit trail.
type ReplyRepository interface {
	Save(ctx context.Context, reply *Reply) error
	ListByRequestID(ctx context.Context, requestID uint) ([]*Reply, error)
}

// AttachmentRepository persists attachment metadata; file bytes live on
// disk behind a storage service.
type AttachmentRepository interface {
	Save(ctx context.Context, att *Attachment) error
	GetByID(ctx context.Context, id uint) (*Attachment, error)
	ListByRequestID(ctx context.Context, requestID uint) ([]*Attachment, error)
}

// NumberGenerator produces the next candidate request number for today.
// Callers retry on unique-constraint conflicts rather than locking.
type NumberGenerator interface {
	Next(ctx context.Context) (string, error)
}
