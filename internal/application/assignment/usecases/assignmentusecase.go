package usecases

import (
	"context"
	"time"

	"servicedesk/internal/domain/assignment"
	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/identity"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

type CreateAssignmentCommand struct {
	StaffID       uint   `json:"staff_id" binding:"required"`
	DepartmentID  uint   `json:"department_id" binding:"required"`
	RequestTypeID *uint  `json:"request_type_id"`
	FromDate      string `json:"from_date"`
}

type EndAssignmentCommand struct {
	AssignmentID uint   `json:"assignment_id"`
	ToDate       string `json:"to_date"`
}

type AssignmentView struct {
	ID            uint    `json:"id"`
	StaffID       uint    `json:"staff_id"`
	DepartmentID  uint    `json:"department_id"`
	RequestTypeID *uint   `json:"request_type_id,omitempty"`
	FromDate      string  `json:"from_date"`
	ToDate        *string `json:"to_date,omitempty"`
	Active        bool    `json:"active"`
}

type ListAssignmentsQuery struct {
	StaffID       *uint
	DepartmentID  *uint
	RequestTypeID *uint
	ActiveOnly    bool
	Page          int
	PageSize      int
}

type ListAssignmentsResult struct {
	Assignments []*AssignmentView `json:"assignments"`
	Total       int64             `json:"total"`
	Page        int               `json:"page"`
	PageSize    int               `json:"page_size"`
}

// AssignmentUseCase manages staff-to-department mappings. A mapping without
// a request type makes the staff member the department's owner (its HOD
// scope); a mapping with one enrolls them as a technician for that type.
// At most one active mapping may exist per staff/department/type scope.
type AssignmentUseCase struct {
	repo            assignment.Repository
	staffRepo       identity.StaffRepository
	departmentRepo  catalog.DepartmentRepository
	requestTypeRepo catalog.RequestTypeRepository
	logger          logger.Interface
}

func NewAssignmentUseCase(
	repo assignment.Repository,
	staffRepo identity.StaffRepository,
	departmentRepo catalog.DepartmentRepository,
	requestTypeRepo catalog.RequestTypeRepository,
	logger logger.Interface,
) *AssignmentUseCase {
	return &AssignmentUseCase{
		repo:            repo,
		staffRepo:       staffRepo,
		departmentRepo:  departmentRepo,
		requestTypeRepo: requestTypeRepo,
		logger:          logger,
	}
}

func (uc *AssignmentUseCase) Create(ctx context.Context, cmd CreateAssignmentCommand) (*AssignmentView, error) {
	fromDate := time.Now()
	if cmd.FromDate != "" {
		parsed, err := time.Parse("2006-01-02", cmd.FromDate)
		if err != nil {
			return nil, errors.NewValidationError("from date must be YYYY-MM-DD")
		}
		fromDate = parsed
	}

	staff, err := uc.staffRepo.GetByID(ctx, cmd.StaffID)
	if err != nil {
		return nil, err
	}
	if !staff.IsActive() {
		return nil, errors.NewValidationError("staff member is not active")
	}
	if _, err := uc.departmentRepo.GetByID(ctx, cmd.DepartmentID); err != nil {
		return nil, err
	}
	if cmd.RequestTypeID != nil {
		requestType, err := uc.requestTypeRepo.GetByID(ctx, *cmd.RequestTypeID)
		if err != nil {
			return nil, err
		}
		if requestType.DepartmentID() != cmd.DepartmentID {
			return nil, errors.NewValidationError("request type belongs to another department")
		}
	}

	overlap, err := uc.repo.HasActiveOverlap(ctx, cmd.StaffID, cmd.DepartmentID, cmd.RequestTypeID, time.Now())
	if err != nil {
		uc.logger.Errorw("failed to check mapping overlap", "error", err)
		return nil, errors.NewInternalError("failed to check mapping overlap")
	}
	if overlap {
		return nil, errors.NewConflictError("An active mapping already exists for this staff, department and request type")
	}

	a, err := assignment.NewAssignment(cmd.StaffID, cmd.DepartmentID, cmd.RequestTypeID, fromDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Save(ctx, a); err != nil {
		uc.logger.Errorw("failed to save assignment", "error", err)
		return nil, err
	}

	uc.logger.Infow("assignment created",
		"assignment_id", a.ID(),
		"staff_id", a.StaffID(),
		"department_id", a.DepartmentID())
	return assignmentView(a), nil
}

// End closes an open-ended mapping. The end date is exclusive, so ending
// with today's date deactivates the mapping immediately.
func (uc *AssignmentUseCase) End(ctx context.Context, cmd EndAssignmentCommand) (*AssignmentView, error) {
	if cmd.AssignmentID == 0 {
		return nil, errors.NewValidationError("assignment ID is required")
	}

	toDate := time.Now()
	if cmd.ToDate != "" {
		parsed, err := time.Parse("2006-01-02", cmd.ToDate)
		if err != nil {
			return nil, errors.NewValidationError("to date must be YYYY-MM-DD")
		}
		toDate = parsed
	}

	a, err := uc.repo.GetByID(ctx, cmd.AssignmentID)
	if err != nil {
		return nil, err
	}

	if err := a.End(toDate); err != nil {
		return nil, errors.NewStateViolationError(err.Error())
	}

	if err := uc.repo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to end assignment", "error", err, "assignment_id", a.ID())
		return nil, err
	}

	uc.logger.Infow("assignment ended", "assignment_id", a.ID())
	return assignmentView(a), nil
}

func (uc *AssignmentUseCase) List(ctx context.Context, query ListAssignmentsQuery) (*ListAssignmentsResult, error) {
	filter := assignment.Filter{
		StaffID:       query.StaffID,
		DepartmentID:  query.DepartmentID,
		RequestTypeID: query.RequestTypeID,
		Page:          query.Page,
		PageSize:      query.PageSize,
	}
	if query.ActiveOnly {
		now := time.Now()
		filter.ActiveAt = &now
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	assignments, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list assignments", "error", err)
		return nil, errors.NewInternalError("failed to list assignments")
	}

	result := &ListAssignmentsResult{
		Assignments: make([]*AssignmentView, 0, len(assignments)),
		Total:       total,
		Page:        filter.Page,
		PageSize:    filter.PageSize,
	}
	if result.Page < 1 {
		result.Page = 1
	}
	for _, a := range assignments {
		result.Assignments = append(result.Assignments, assignmentView(a))
	}
	return result, nil
}

func assignmentView(a *assignment.Assignment) *AssignmentView {
	view := &AssignmentView{
		ID:            a.ID(),
		StaffID:       a.StaffID(),
		DepartmentID:  a.DepartmentID(),
		RequestTypeID: a.RequestTypeID(),
		FromDate:      a.FromDate().Format("2006-01-02"),
		Active:        a.IsActiveAt(time.Now()),
	}
	if a.ToDate() != nil {
		formatted := a.ToDate().Format("2006-01-02")
		view.ToDate = &formatted
	}
	return view
}
