package usecases

import (
	"context"

	"servicedesk/internal/domain/assignment"
	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/request"
	"servicedesk/internal/shared/db"
	"servicedesk/internal/shared/logger"
)

type RejectRequestCommand struct {
	RequestID    uint
	ActorUserID  uint
	ActorStaffID *uint
}

type RejectRequestResult struct {
	RequestID uint   `json:"request_id"`
	Number    string `json:"number"`
	Status    string `json:"status"`
}

type RejectRequestExecutor interface {
	Execute(ctx context.Context, cmd RejectRequestCommand) (*RejectRequestResult, error)
}

type RejectRequestUseCase struct {
	transitioner hodTransitioner
	logger       logger.Interface
}

func NewRejectRequestUseCase(
	requestRepo request.Repository,
	replyRepo request.ReplyRepository,
	requestTypeRepo catalog.RequestTypeRepository,
	assignmentRepo assignment.Repository,
	transactor db.Transactor,
	logger logger.Interface,
) *RejectRequestUseCase {
	return &RejectRequestUseCase{
		transitioner: hodTransitioner{
			requestRepo:     requestRepo,
			replyRepo:       replyRepo,
			requestTypeRepo: requestTypeRepo,
			assignmentRepo:  assignmentRepo,
			transactor:      transactor,
			logger:          logger,
		},
		logger: logger,
	}
}

func (uc *RejectRequestUseCase) Execute(ctx context.Context, cmd RejectRequestCommand) (*RejectRequestResult, error) {
	uc.logger.Infow("executing reject request use case",
		"request_id", cmd.RequestID,
		"actor_user_id", cmd.ActorUserID)

	req, err := uc.transitioner.execute(ctx, hodTransitionCommand(cmd), func(r *request.ServiceRequest) error {
		return r.Reject()
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("request rejected", "request_id", req.ID(), "number", req.Number())

	return &RejectRequestResult{
		RequestID: req.ID(),
		Number:    req.Number(),
		Status:    req.Status().String(),
	}, nil
}
