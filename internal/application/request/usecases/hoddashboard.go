package usecases

import (
	"context"

	"servicedesk/internal/domain/assignment"
	"servicedesk/internal/domain/request"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

type HODDashboardQuery struct {
	ActorUserID  uint
	ActorStaffID *uint
}

type HODDashboardExecutor interface {
	Execute(ctx context.Context, query HODDashboardQuery) (*DashboardResult, error)
}

// HODDashboardUseCase aggregates request counts for the department the
// acting HOD currently oversees.
type HODDashboardUseCase struct {
	requestRepo    request.Repository
	assignmentRepo assignment.Repository
	logger         logger.Interface
}

func NewHODDashboardUseCase(
	requestRepo request.Repository,
	assignmentRepo assignment.Repository,
	logger logger.Interface,
) *HODDashboardUseCase {
	return &HODDashboardUseCase{
		requestRepo:    requestRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *HODDashboardUseCase) Execute(ctx context.Context, query HODDashboardQuery) (*DashboardResult, error) {
	if query.ActorUserID == 0 {
		return nil, errors.NewValidationError("actor user ID is required")
	}
	if query.ActorStaffID == nil {
		return nil, errors.NewForbiddenError("Not a staff Member")
	}

	deptID, err := resolveActiveDepartment(ctx, uc.assignmentRepo, *query.ActorStaffID)
	if err != nil {
		return nil, err
	}

	counts, err := uc.requestRepo.CountByStatus(ctx, request.Filter{DepartmentID: &deptID})
	if err != nil {
		uc.logger.Errorw("failed to aggregate department counts", "error", err, "department_id", deptID)
		return nil, errors.NewInternalError("failed to build dashboard")
	}

	return buildDashboard(counts), nil
}
