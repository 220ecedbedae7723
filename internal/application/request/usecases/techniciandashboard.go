package usecases

import (
	"context"

	"servicedesk/internal/domain/request"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

type TechnicianDashboardQuery struct {
	ActorUserID  uint
	ActorStaffID *uint
}

type TechnicianDashboardExecutor interface {
	Execute(ctx context.Context, query TechnicianDashboardQuery) (*DashboardResult, error)
}

// TechnicianDashboardUseCase aggregates request counts over the work
// assigned to the acting technician.
type TechnicianDashboardUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewTechnicianDashboardUseCase(requestRepo request.Repository, logger logger.Interface) *TechnicianDashboardUseCase {
	return &TechnicianDashboardUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *TechnicianDashboardUseCase) Execute(ctx context.Context, query TechnicianDashboardQuery) (*DashboardResult, error) {
	if query.ActorUserID == 0 {
		return nil, errors.NewValidationError("actor user ID is required")
	}
	if query.ActorStaffID == nil {
		return nil, errors.NewForbiddenError("Not a staff Member")
	}

	counts, err := uc.requestRepo.CountByStatus(ctx, request.Filter{AssigneeStaffID: query.ActorStaffID})
	if err != nil {
		uc.logger.Errorw("failed to aggregate assigned counts", "error", err, "staff_id", *query.ActorStaffID)
		return nil, errors.NewInternalError("failed to build dashboard")
	}

	return buildDashboard(counts), nil
}
