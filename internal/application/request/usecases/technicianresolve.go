package usecases

import (
	"context"

	"servicedesk/internal/domain/request"
	"servicedesk/internal/shared/db"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

type TechnicianResolveCommand struct {
	RequestID    uint
	ActorUserID  uint
	ActorStaffID *uint
}

type TechnicianResolveResult struct {
	RequestID uint   `json:"request_id"`
	Number    string `json:"number"`
	Status    string `json:"status"`
}

type TechnicianResolveExecutor interface {
	Execute(ctx context.Context, cmd TechnicianResolveCommand) (*TechnicianResolveResult, error)
}

// TechnicianResolveUseCase resolves a request on behalf of the assigned
// technician. Critical requests are carved out: only an HOD may resolve
// those.
type TechnicianResolveUseCase struct {
	requestRepo request.Repository
	replyRepo   request.ReplyRepository
	transactor  db.Transactor
	logger      logger.Interface
}

func NewTechnicianResolveUseCase(
	requestRepo request.Repository,
	replyRepo request.ReplyRepository,
	transactor db.Transactor,
	logger logger.Interface,
) *TechnicianResolveUseCase {
	return &TechnicianResolveUseCase{
		requestRepo: requestRepo,
		replyRepo:   replyRepo,
		transactor:  transactor,
		logger:      logger,
	}
}

func (uc *TechnicianResolveUseCase) Execute(ctx context.Context, cmd TechnicianResolveCommand) (*TechnicianResolveResult, error) {
	uc.logger.Infow("executing technician resolve use case",
		"request_id", cmd.RequestID,
		"actor_user_id", cmd.ActorUserID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid technician resolve command", "error", err)
		return nil, err
	}

	if cmd.ActorStaffID == nil {
		return nil, errors.NewForbiddenError("Not a staff Member")
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	if !req.IsAssignedTo(*cmd.ActorStaffID) {
		uc.logger.Warnw("resolve attempt on foreign request",
			"request_id", cmd.RequestID,
			"actor_staff_id", *cmd.ActorStaffID)
		return nil, errors.NewForbiddenError("request is not assigned to you")
	}

	if req.Priority().IsCritical() {
		return nil, errors.NewBadRequestError("Critical requests must be resolved by HOD")
	}

	if err := req.Resolve(); err != nil {
		return nil, errors.NewStateViolationError(err.Error())
	}

	err = uc.transactor.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.requestRepo.Update(txCtx, req); err != nil {
			return err
		}

		reply, err := request.NewReply(req.ID(), req.Status(), request.CommentResolvedByTech, cmd.ActorUserID, cmd.ActorStaffID)
		if err != nil {
			return errors.NewInternalError(err.Error())
		}
		return uc.replyRepo.Save(txCtx, reply)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist resolution", "error", err, "request_id", req.ID())
		return nil, err
	}

	uc.logger.Infow("request resolved by technician", "request_id", req.ID(), "number", req.Number())

	return &TechnicianResolveResult{
		RequestID: req.ID(),
		Number:    req.Number(),
		Status:    req.Status().String(),
	}, nil
}

func (uc *TechnicianResolveUseCase) validateCommand(cmd TechnicianResolveCommand) error {
	if cmd.RequestID == 0 {
		return errors.NewValidationError("request ID is required")
	}
	if cmd.ActorUserID == 0 {
		return errors.NewValidationError("actor user ID is required")
	}
	return nil
}
