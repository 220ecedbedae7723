package usecases

import (
	"context"
	"strings"
	"time"

	"servicedesk/internal/domain/assignment"
	"servicedesk/internal/domain/request"
	"servicedesk/internal/shared/authorization"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

type ListRequestsQuery struct {
	Scope        AccessScope
	Status       string
	Page         int
	PageSize     int
	ActorUserID  uint
	ActorStaffID *uint
	ActorRoles   []string
}

type RequestSummary struct {
	ID              uint   `json:"id"`
	Number          string `json:"number"`
	Title           string `json:"title"`
	Priority        string `json:"priority"`
	Status          string `json:"status"`
	RequestTypeID   uint   `json:"request_type_id"`
	CreatorUserID   uint   `json:"creator_user_id"`
	AssigneeStaffID *uint  `json:"assignee_staff_id,omitempty"`
	CreatedAt       string `json:"created_at"`
}

type ListRequestsResult struct {
	Requests []RequestSummary `json:"requests"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

type ListRequestsExecutor interface {
	Execute(ctx context.Context, query ListRequestsQuery) (*ListRequestsResult, error)
}

// ListRequestsUseCase lists requests within the scope the calling area
// grants: admins see everything, HODs their department, technicians their
// assigned work, requestors their own submissions. The scope is checked
// against the actor's roles, so holding a role never widens another area.
type ListRequestsUseCase struct {
	requestRepo    request.Repository
	assignmentRepo assignment.Repository
	logger         logger.Interface
}

func NewListRequestsUseCase(
	requestRepo request.Repository,
	assignmentRepo assignment.Repository,
	logger logger.Interface,
) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		requestRepo:    requestRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *ListRequestsUseCase) Execute(ctx context.Context, query ListRequestsQuery) (*ListRequestsResult, error) {
	if query.ActorUserID == 0 {
		return nil, errors.NewValidationError("actor user ID is required")
	}

	filter := request.Filter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	if strings.TrimSpace(query.Status) != "" {
		status, err := request.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if err := uc.applyScope(ctx, query, &filter); err != nil {
		return nil, err
	}

	requests, total, err := uc.requestRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list requests", "error", err)
		return nil, errors.NewInternalError("failed to list requests")
	}

	result := &ListRequestsResult{
		Requests: make([]RequestSummary, 0, len(requests)),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	if result.Page < 1 {
		result.Page = 1
	}
	for _, req := range requests {
		result.Requests = append(result.Requests, RequestSummary{
			ID:              req.ID(),
			Number:          req.Number(),
			Title:           req.Title(),
			Priority:        req.Priority().String(),
			Status:          req.Status().String(),
			RequestTypeID:   req.RequestTypeID(),
			CreatorUserID:   req.CreatorUserID(),
			AssigneeStaffID: req.AssigneeStaffID(),
			CreatedAt:       req.CreatedAt().Format(time.RFC3339),
		})
	}

	return result, nil
}

func (uc *ListRequestsUseCase) applyScope(ctx context.Context, query ListRequestsQuery, filter *request.Filter) error {
	switch query.Scope {
	case ScopeAll:
		if !authorization.HasRole(query.ActorRoles, authorization.RoleAdmin) {
			return errors.NewForbiddenError("admin role required")
		}
		return nil
	case ScopeDepartment:
		if !authorization.HasRole(query.ActorRoles, authorization.RoleHOD) {
			return errors.NewForbiddenError("HOD role required")
		}
		if query.ActorStaffID == nil {
			return errors.NewForbiddenError("Not a staff Member")
		}
		deptID, err := resolveActiveDepartment(ctx, uc.assignmentRepo, *query.ActorStaffID)
		if err != nil {
			return err
		}
		filter.DepartmentID = &deptID
		return nil
	case ScopeAssigned:
		if !authorization.HasRole(query.ActorRoles, authorization.RoleTechnician) {
			return errors.NewForbiddenError("technician role required")
		}
		if query.ActorStaffID == nil {
			return errors.NewForbiddenError("Not a staff Member")
		}
		filter.AssigneeStaffID = query.ActorStaffID
		return nil
	case ScopeMine:
		if !authorization.HasRole(query.ActorRoles, authorization.RoleRequestor) {
			return errors.NewForbiddenError("requestor role required")
		}
		creatorID := query.ActorUserID
		filter.CreatorUserID = &creatorID
		return nil
	}
	return errors.NewForbiddenError("no role grants request access")
}
