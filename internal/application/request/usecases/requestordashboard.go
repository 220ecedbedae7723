package usecases

import (
	"context"

	"servicedesk/internal/domain/request"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

type RequestorDashboardQuery struct {
	ActorUserID uint
}

type RequestorDashboardExecutor interface {
	Execute(ctx context.Context, query RequestorDashboardQuery) (*DashboardResult, error)
}

// RequestorDashboardUseCase aggregates request counts over the actor's own
// submissions.
type RequestorDashboardUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewRequestorDashboardUseCase(requestRepo request.Repository, logger logger.Interface) *RequestorDashboardUseCase {
	return &RequestorDashboardUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *RequestorDashboardUseCase) Execute(ctx context.Context, query RequestorDashboardQuery) (*DashboardResult, error) {
	if query.ActorUserID == 0 {
		return nil, errors.NewValidationError("actor user ID is required")
	}

	creatorID := query.ActorUserID
	counts, err := uc.requestRepo.CountByStatus(ctx, request.Filter{CreatorUserID: &creatorID})
	if err != nil {
		uc.logger.Errorw("failed to aggregate own counts", "error", err, "user_id", query.ActorUserID)
		return nil, errors.NewInternalError("failed to build dashboard")
	}

	return buildDashboard(counts), nil
}
