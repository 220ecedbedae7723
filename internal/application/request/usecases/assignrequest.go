package usecases

import (
	"context"

	"servicedesk/internal/domain/assignment"
	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/identity"
	"servicedesk/internal/domain/request"
	"servicedesk/internal/shared/db"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

type AssignRequestCommand struct {
	RequestID         uint
	TechnicianStaffID uint
	ActorUserID       uint
	ActorStaffID      *uint
}

type AssignRequestResult struct {
	RequestID       uint   `json:"request_id"`
	Number          string `json:"number"`
	Status          string `json:"status"`
	AssigneeStaffID uint   `json:"assignee_staff_id"`
}

type AssignRequestExecutor interface {
	Execute(ctx context.Context, cmd AssignRequestCommand) (*AssignRequestResult, error)
}

type AssignRequestUseCase struct {
	requestRepo     request.Repository
	replyRepo       request.ReplyRepository
	requestTypeRepo catalog.RequestTypeRepository
	assignmentRepo  assignment.Repository
	staffRepo       identity.StaffRepository
	transactor      db.Transactor
	notifier        AssignmentNotifier
	logger          logger.Interface
}

func NewAssignRequestUseCase(
	requestRepo request.Repository,
	replyRepo request.ReplyRepository,
	requestTypeRepo catalog.RequestTypeRepository,
	assignmentRepo assignment.Repository,
	staffRepo identity.StaffRepository,
	transactor db.Transactor,
	notifier AssignmentNotifier,
	logger logger.Interface,
) *AssignRequestUseCase {
	return &AssignRequestUseCase{
		requestRepo:     requestRepo,
		replyRepo:       replyRepo,
		requestTypeRepo: requestTypeRepo,
		assignmentRepo:  assignmentRepo,
		staffRepo:       staffRepo,
		transactor:      transactor,
		notifier:        notifier,
		logger:          logger,
	}
}

func (uc *AssignRequestUseCase) Execute(ctx context.Context, cmd AssignRequestCommand) (*AssignRequestResult, error) {
	uc.logger.Infow("executing assign request use case",
		"request_id", cmd.RequestID,
		"technician_staff_id", cmd.TechnicianStaffID,
		"actor_user_id", cmd.ActorUserID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid assign request command", "error", err)
		return nil, err
	}

	if cmd.ActorStaffID == nil {
		return nil, errors.NewForbiddenError("Not a staff Member")
	}

	deptID, err := resolveActiveDepartment(ctx, uc.assignmentRepo, *cmd.ActorStaffID)
	if err != nil {
		uc.logger.Errorw("failed to resolve acting department", "error", err)
		return nil, err
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	requestType, err := uc.requestTypeRepo.GetByID(ctx, req.RequestTypeID())
	if err != nil {
		return nil, err
	}
	if requestType.DepartmentID() != deptID {
		uc.logger.Warnw("cross-department assign attempt",
			"request_id", cmd.RequestID,
			"request_dept", requestType.DepartmentID(),
			"actor_dept", deptID)
		return nil, errors.NewForbiddenError("request belongs to another department")
	}

	technician, err := uc.staffRepo.GetByID(ctx, cmd.TechnicianStaffID)
	if err != nil {
		return nil, err
	}
	if !technician.IsActive() {
		return nil, errors.NewValidationError("technician is not active")
	}

	if err := req.Assign(cmd.TechnicianStaffID, cmd.ActorUserID); err != nil {
		return nil, errors.NewStateViolationError(err.Error())
	}

	err = uc.transactor.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.requestRepo.Update(txCtx, req); err != nil {
			return err
		}

		reply, err := request.NewReply(req.ID(), req.Status(), request.CommentAssigned, cmd.ActorUserID, cmd.ActorStaffID)
		if err != nil {
			return errors.NewInternalError(err.Error())
		}
		return uc.replyRepo.Save(txCtx, reply)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist assignment", "error", err, "request_id", req.ID())
		return nil, err
	}

	uc.notify(technician, req)

	uc.logger.Infow("request assigned",
		"request_id", req.ID(),
		"number", req.Number(),
		"assignee_staff_id", cmd.TechnicianStaffID)

	return &AssignRequestResult{
		RequestID:       req.ID(),
		Number:          req.Number(),
		Status:          req.Status().String(),
		AssigneeStaffID: cmd.TechnicianStaffID,
	}, nil
}

// notify is best-effort; delivery failures never fail the assignment.
func (uc *AssignRequestUseCase) notify(technician *identity.Staff, req *request.ServiceRequest) {
	if uc.notifier == nil || technician.Email() == "" {
		return
	}
	if err := uc.notifier.SendAssignmentNotification(technician.Email(), technician.Name(), req.Number(), req.Title()); err != nil {
		uc.logger.Warnw("failed to send assignment notification",
			"error", err,
			"request_id", req.ID(),
			"staff_id", technician.ID())
	}
}

func (uc *AssignRequestUseCase) validateCommand(cmd AssignRequestCommand) error {
	if cmd.RequestID == 0 {
		return errors.NewValidationError("request ID is required")
	}
	if cmd.TechnicianStaffID == 0 {
		return errors.NewValidationError("technician staff ID is required")
	}
	if cmd.ActorUserID == 0 {
		return errors.NewValidationError("actor user ID is required")
	}
	return nil
}
