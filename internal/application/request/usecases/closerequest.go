package usecases

import (
	"context"

	"servicedesk/internal/domain/assignment"
	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/request"
	"servicedesk/internal/shared/db"
	"servicedesk/internal/shared/logger"
)

type CloseRequestCommand struct {
	RequestID    uint
	ActorUserID  uint
	ActorStaffID *uint
}

type CloseRequestResult struct {
	RequestID uint   `json:"request_id"`
	Number    string `json:"number"`
	Status    string `json:"status"`
}

type CloseRequestExecutor interface {
	Execute(ctx context.Context, cmd CloseRequestCommand) (*CloseRequestResult, error)
}

type CloseRequestUseCase struct {
	transitioner hodTransitioner
	logger       logger.Interface
}

func NewCloseRequestUseCase(
	requestRepo request.Repository,
	replyRepo request.ReplyRepository,
	requestTypeRepo catalog.RequestTypeRepository,
	assignmentRepo assignment.Repository,
	transactor db.Transactor,
	logger logger.Interface,
) *CloseRequestUseCase {
	return &CloseRequestUseCase{
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

func (uc *CloseRequestUseCase) Execute(ctx context.Context, cmd CloseRequestCommand) (*CloseRequestResult, error) {
	uc.logger.Infow("executing close request use case",
		"request_id", cmd.RequestID,
		"actor_user_id", cmd.ActorUserID)

	req, err := uc.transitioner.execute(ctx, hodTransitionCommand(cmd), func(r *request.ServiceRequest) error {
		return r.Close()
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("request closed", "request_id", req.ID(), "number", req.Number())

	return &CloseRequestResult{
		RequestID: req.ID(),
		Number:    req.Number(),
		Status:    req.Status().String(),
	}, nil
}
