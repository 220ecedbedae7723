package usecases

import (
	"context"

	"servicedesk/internal/domain/assignment"
	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/request"
	"servicedesk/internal/shared/db"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

// hodTransitioner carries the shared wiring of the HOD-driven lifecycle
// operations (resolve, reject, close): department ownership check, the
// domain transition and the transactional reply append.
type hodTransitioner struct {
	requestRepo     request.Repository
	replyRepo       request.ReplyRepository
	requestTypeRepo catalog.RequestTypeRepository
	assignmentRepo  assignment.Repository
	transactor      db.Transactor
	logger          logger.Interface
}

type hodTransitionCommand struct {
	RequestID    uint
	ActorUserID  uint
	ActorStaffID *uint
}

func (c hodTransitionCommand) validate() error {
	if c.RequestID == 0 {
		return errors.NewValidationError("request ID is required")
	}
	if c.ActorUserID == 0 {
		return errors.NewValidationError("actor user ID is required")
	}
	return nil
}

// execute loads the request, verifies the actor's department owns it,
// applies transition and writes the request update plus exactly one reply
// row in a single transaction.
func (t *hodTransitioner) execute(
	ctx context.Context,
	cmd hodTransitionCommand,
	transition func(*request.ServiceRequest) error,
) (*request.ServiceRequest, error) {
	if err := cmd.validate(); err != nil {
		t.logger.Errorw("invalid transition command", "error", err)
		return nil, err
	}

	if cmd.ActorStaffID == nil {
		return nil, errors.NewForbiddenError("Not a staff Member")
	}

	deptID, err := resolveActiveDepartment(ctx, t.assignmentRepo, *cmd.ActorStaffID)
	if err != nil {
		t.logger.Errorw("failed to resolve acting department", "error", err)
		return nil, err
	}

	req, err := t.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	requestType, err := t.requestTypeRepo.GetByID(ctx, req.RequestTypeID())
	if err != nil {
		return nil, err
	}
	if requestType.DepartmentID() != deptID {
		t.logger.Warnw("cross-department transition attempt",
			"request_id", cmd.RequestID,
			"request_dept", requestType.DepartmentID(),
			"actor_dept", deptID)
		return nil, errors.NewForbiddenError("request belongs to another department")
	}

	if err := transition(req); err != nil {
		return nil, errors.NewStateViolationError(err.Error())
	}

	err = t.transactor.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := t.requestRepo.Update(txCtx, req); err != nil {
			return err
		}

		reply, err := request.NewReply(req.ID(), req.Status(), replyComment(req.Status(), false), cmd.ActorUserID, cmd.ActorStaffID)
		if err != nil {
			return errors.NewInternalError(err.Error())
		}
		return t.replyRepo.Save(txCtx, reply)
	})
	if err != nil {
		t.logger.Errorw("failed to persist transition", "error", err, "request_id", req.ID())
		return nil, err
	}

	return req, nil
}
