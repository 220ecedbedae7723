package usecases

import (
	"context"

	"servicedesk/internal/domain/assignment"
	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/request"
	"servicedesk/internal/shared/db"
	"servicedesk/internal/shared/logger"
)

type ResolveRequestCommand struct {
	RequestID    uint
	ActorUserID  uint
	ActorStaffID *uint
}

type ResolveRequestResult struct {
	RequestID uint   `json:"request_id"`
	Number    string `json:"number"`
	Status    string `json:"status"`
}

type ResolveRequestExecutor interface {
	Execute(ctx context.Context, cmd ResolveRequestCommand) (*ResolveRequestResult, error)
}

// ResolveRequestUseCase is the HOD resolution path; it accepts any
// IN_PROGRESS request owned by the acting department, including Critical
// ones.
type ResolveRequestUseCase struct {
	transitioner hodTransitioner
	logger       logger.Interface
}

func NewResolveRequestUseCase(
	requestRepo request.Repository,
	replyRepo request.ReplyRepository,
	requestTypeRepo catalog.RequestTypeRepository,
	assignmentRepo assignment.Repository,
	transactor db.Transactor,
	logger logger.Interface,
) *ResolveRequestUseCase {
	return &ResolveRequestUseCase{
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

func (uc *ResolveRequestUseCase) Execute(ctx context.Context, cmd ResolveRequestCommand) (*ResolveRequestResult, error) {
	uc.logger.Infow("executing resolve request use case",
		"request_id", cmd.RequestID,
		"actor_user_id", cmd.ActorUserID)

	req, err := uc.transitioner.execute(ctx, hodTransitionCommand(cmd), func(r *request.ServiceRequest) error {
		return r.Resolve()
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("request resolved by HOD", "request_id", req.ID(), "number", req.Number())

	return &ResolveRequestResult{
		RequestID: req.ID(),
		Number:    req.Number(),
		Status:    req.Status().String(),
	}, nil
}
