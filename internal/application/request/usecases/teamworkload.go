package usecases

import (
	"context"
	"time"

	"servicedesk/internal/domain/assignment"
	"servicedesk/internal/domain/identity"
	"servicedesk/internal/domain/request"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

type TeamWorkloadQuery struct {
	ActorUserID  uint
	ActorStaffID *uint
}

type StaffWorkload struct {
	StaffID    uint   `json:"staff_id"`
	StaffCode  string `json:"staff_code"`
	StaffName  string `json:"staff_name"`
	InProgress int64  `json:"in_progress"`
	Resolved   int64  `json:"resolved"`
}

type TeamWorkloadResult struct {
	DepartmentID uint            `json:"department_id"`
	Team         []StaffWorkload `json:"team"`
}

type TeamWorkloadExecutor interface {
	Execute(ctx context.Context, query TeamWorkloadQuery) (*TeamWorkloadResult, error)
}

// TeamWorkloadUseCase reports, per technician actively mapped into the
// HOD's department, how much assigned work is open and how much awaits
// closure.
type TeamWorkloadUseCase struct {
	requestRepo    request.Repository
	assignmentRepo assignment.Repository
	staffRepo      identity.StaffRepository
	logger         logger.Interface
}

func NewTeamWorkloadUseCase(
	requestRepo request.Repository,
	assignmentRepo assignment.Repository,
	staffRepo identity.StaffRepository,
	logger logger.Interface,
) *TeamWorkloadUseCase {
	return &TeamWorkloadUseCase{
		requestRepo:    requestRepo,
		assignmentRepo: assignmentRepo,
		staffRepo:      staffRepo,
		logger:         logger,
	}
}

func (uc *TeamWorkloadUseCase) Execute(ctx context.Context, query TeamWorkloadQuery) (*TeamWorkloadResult, error) {
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

	staffIDs, err := uc.assignmentRepo.ActiveStaffIDsByDepartment(ctx, deptID, time.Now())
	if err != nil {
		uc.logger.Errorw("failed to list department staff", "error", err, "department_id", deptID)
		return nil, errors.NewInternalError("failed to build workload")
	}

	result := &TeamWorkloadResult{
		DepartmentID: deptID,
		Team:         make([]StaffWorkload, 0, len(staffIDs)),
	}
	for _, staffID := range staffIDs {
		staff, err := uc.staffRepo.GetByID(ctx, staffID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				continue
			}
			return nil, err
		}

		id := staffID
		counts, err := uc.requestRepo.CountByStatus(ctx, request.Filter{AssigneeStaffID: &id})
		if err != nil {
			uc.logger.Errorw("failed to aggregate staff workload", "error", err, "staff_id", staffID)
			return nil, errors.NewInternalError("failed to build workload")
		}

		result.Team = append(result.Team, StaffWorkload{
			StaffID:    staff.ID(),
			StaffCode:  staff.Code(),
			StaffName:  staff.Name(),
			InProgress: counts[request.StatusInProgress],
			Resolved:   counts[request.StatusResolved],
		})
	}

	return result, nil
}
