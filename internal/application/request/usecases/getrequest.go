package usecases

import (
	"context"
	"time"

	"servicedesk/internal/domain/assignment"
	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/request"
	"servicedesk/internal/shared/authorization"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

type GetRequestQuery struct {
	RequestID    uint
	Scope        AccessScope
	ActorUserID  uint
	ActorStaffID *uint
	ActorRoles   []string
}

type ReplyView struct {
	ID          uint   `json:"id"`
	Status      string `json:"status"`
	Comment     string `json:"comment"`
	ActorUserID uint   `json:"actor_user_id"`
	CreatedAt   string `json:"created_at"`
}

type AttachmentView struct {
	ID       uint   `json:"id"`
	FileName string `json:"file_name"`
}

type RequestDetail struct {
	ID              uint             `json:"id"`
	Number          string           `json:"number"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Priority        string           `json:"priority"`
	Status          string           `json:"status"`
	RequestTypeID   uint             `json:"request_type_id"`
	RequestTypeName string           `json:"request_type_name"`
	CreatorUserID   uint             `json:"creator_user_id"`
	AssigneeStaffID *uint            `json:"assignee_staff_id,omitempty"`
	AssignedAt      *string          `json:"assigned_at,omitempty"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
	Replies         []ReplyView      `json:"replies"`
	Attachments     []AttachmentView `json:"attachments"`
}

type GetRequestExecutor interface {
	Execute(ctx context.Context, query GetRequestQuery) (*RequestDetail, error)
}

// GetRequestUseCase loads one request with its audit trail, scoped to what
// the acting role may see. Requests outside the actor's scope surface as
// not found rather than forbidden, to avoid leaking their existence.
type GetRequestUseCase struct {
	requestRepo     request.Repository
	replyRepo       request.ReplyRepository
	attachmentRepo  request.AttachmentRepository
	requestTypeRepo catalog.RequestTypeRepository
	assignmentRepo  assignment.Repository
	logger          logger.Interface
}

func NewGetRequestUseCase(
	requestRepo request.Repository,
	replyRepo request.ReplyRepository,
	attachmentRepo request.AttachmentRepository,
	requestTypeRepo catalog.RequestTypeRepository,
	assignmentRepo assignment.Repository,
	logger logger.Interface,
) *GetRequestUseCase {
	return &GetRequestUseCase{
		requestRepo:     requestRepo,
		replyRepo:       replyRepo,
		attachmentRepo:  attachmentRepo,
		requestTypeRepo: requestTypeRepo,
		assignmentRepo:  assignmentRepo,
		logger:          logger,
	}
}

func (uc *GetRequestUseCase) Execute(ctx context.Context, query GetRequestQuery) (*RequestDetail, error) {
	if query.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if query.ActorUserID == 0 {
		return nil, errors.NewValidationError("actor user ID is required")
	}

	req, err := uc.requestRepo.GetByID(ctx, query.RequestID)
	if err != nil {
		return nil, err
	}

	requestType, err := uc.requestTypeRepo.GetByID(ctx, req.RequestTypeID())
	if err != nil {
		return nil, err
	}

	allowed, err := requestInScope(ctx, uc.assignmentRepo, query, req, requestType)
	if err != nil {
		return nil, err
	}
	if !allowed {
		uc.logger.Warnw("out-of-scope request access",
			"request_id", query.RequestID,
			"actor_user_id", query.ActorUserID)
		return nil, errors.NewNotFoundError("service request")
	}

	replies, err := uc.replyRepo.ListByRequestID(ctx, req.ID())
	if err != nil {
		return nil, err
	}
	attachments, err := uc.attachmentRepo.ListByRequestID(ctx, req.ID())
	if err != nil {
		return nil, err
	}

	detail := &RequestDetail{
		ID:              req.ID(),
		Number:          req.Number(),
		Title:           req.Title(),
		Description:     req.Description(),
		Priority:        req.Priority().String(),
		Status:          req.Status().String(),
		RequestTypeID:   req.RequestTypeID(),
		RequestTypeName: requestType.Name(),
		CreatorUserID:   req.CreatorUserID(),
		AssigneeStaffID: req.AssigneeStaffID(),
		CreatedAt:       req.CreatedAt().Format(time.RFC3339),
		UpdatedAt:       req.UpdatedAt().Format(time.RFC3339),
		Replies:         make([]ReplyView, 0, len(replies)),
		Attachments:     make([]AttachmentView, 0, len(attachments)),
	}
	if req.AssignedAt() != nil {
		formatted := req.AssignedAt().Format(time.RFC3339)
		detail.AssignedAt = &formatted
	}
	for _, reply := range replies {
		detail.Replies = append(detail.Replies, ReplyView{
			ID:          reply.ID(),
			Status:      reply.Status().String(),
			Comment:     reply.Comment(),
			ActorUserID: reply.ActorUserID(),
			CreatedAt:   reply.CreatedAt().Format(time.RFC3339),
		})
	}
	for _, att := range attachments {
		detail.Attachments = append(detail.Attachments, AttachmentView{
			ID:       att.ID(),
			FileName: att.FileName(),
		})
	}

	return detail, nil
}

// requestInScope checks the request against the scope the calling area
// granted. Detail reads and attachment downloads share this gate.
func requestInScope(
	ctx context.Context,
	assignmentRepo assignment.Repository,
	query GetRequestQuery,
	req *request.ServiceRequest,
	requestType *catalog.RequestType,
) (bool, error) {
	switch query.Scope {
	case ScopeAll:
		return authorization.HasRole(query.ActorRoles, authorization.RoleAdmin), nil
	case ScopeMine:
		return authorization.HasRole(query.ActorRoles, authorization.RoleRequestor) &&
			req.CreatorUserID() == query.ActorUserID, nil
	case ScopeAssigned:
		return authorization.HasRole(query.ActorRoles, authorization.RoleTechnician) &&
			query.ActorStaffID != nil &&
			req.IsAssignedTo(*query.ActorStaffID), nil
	case ScopeDepartment:
		if !authorization.HasRole(query.ActorRoles, authorization.RoleHOD) || query.ActorStaffID == nil {
			return false, nil
		}
		deptIDs, err := assignmentRepo.ActiveDepartmentIDs(ctx, *query.ActorStaffID, time.Now())
		if err != nil {
			return false, errors.NewInternalError("failed to resolve department")
		}
		for _, id := range deptIDs {
			if id == requestType.DepartmentID() {
				return true, nil
			}
		}
	}
	return false, nil
}
