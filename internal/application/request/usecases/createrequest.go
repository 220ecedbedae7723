package usecases

import (
	"context"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/request"
	"servicedesk/internal/shared/db"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

// createMaxAttempts bounds the retry loop around number-conflict failures.
const createMaxAttempts = 3

type AttachmentUpload struct {
	FileName string
	Content  io.Reader
}

type CreateRequestCommand struct {
	Title            string            `json:"title" binding:"required,max=200"`
	Description      string            `json:"description" binding:"required"`
	Priority         string            `json:"priority"`
	RequestTypeID    uint              `json:"request_type_id" binding:"required"`
	CreatorUserID    uint              `json:"-"`
	RequesterStaffID *uint             `json:"-"`
	Attachment       *AttachmentUpload `json:"-"`
}

type CreateRequestResult struct {
	RequestID uint   `json:"request_id"`
	Number    string `json:"number"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	CreatedAt string `json:"created_at"`
}

type CreateRequestExecutor interface {
	Execute(ctx context.Context, cmd CreateRequestCommand) (*CreateRequestResult, error)
}

type CreateRequestUseCase struct {
	requestRepo     request.Repository
	requestTypeRepo catalog.RequestTypeRepository
	attachmentRepo  request.AttachmentRepository
	numberGen       request.NumberGenerator
	store           AttachmentStore
	transactor      db.Transactor
	sanitizer       *bluemonday.Policy
	logger          logger.Interface
}

func NewCreateRequestUseCase(
	requestRepo request.Repository,
	requestTypeRepo catalog.RequestTypeRepository,
	attachmentRepo request.AttachmentRepository,
	numberGen request.NumberGenerator,
	store AttachmentStore,
	transactor db.Transactor,
	logger logger.Interface,
) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		requestRepo:     requestRepo,
		requestTypeRepo: requestTypeRepo,
		attachmentRepo:  attachmentRepo,
		numberGen:       numberGen,
		store:           store,
		transactor:      transactor,
		sanitizer:       bluemonday.StrictPolicy(),
		logger:          logger,
	}
}

func (uc *CreateRequestUseCase) Execute(ctx context.Context, cmd CreateRequestCommand) (*CreateRequestResult, error) {
	uc.logger.Infow("executing create request use case",
		"request_type_id", cmd.RequestTypeID,
		"creator_user_id", cmd.CreatorUserID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create request command", "error", err)
		return nil, err
	}

	requestType, err := uc.requestTypeRepo.GetByID(ctx, cmd.RequestTypeID)
	if err != nil {
		uc.logger.Errorw("failed to find request type", "error", err, "request_type_id", cmd.RequestTypeID)
		return nil, err
	}

	priority := requestType.DefaultPriority()
	if strings.TrimSpace(cmd.Priority) != "" {
		priority, err = request.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	title := strings.TrimSpace(uc.sanitizer.Sanitize(cmd.Title))
	description := strings.TrimSpace(uc.sanitizer.Sanitize(cmd.Description))

	var storedPath string
	if cmd.Attachment != nil {
		storedPath, err = uc.store.Save(cmd.Attachment.FileName, cmd.Attachment.Content)
		if err != nil {
			uc.logger.Errorw("failed to store attachment", "error", err)
			return nil, errors.NewValidationError(err.Error())
		}
	}

	var created *request.ServiceRequest

	// The number column carries a unique index; a concurrent create for the
	// same day can make the candidate stale, so conflict retries with a
	// fresh number and transaction.
	for attempt := 1; attempt <= createMaxAttempts; attempt++ {
		created, err = uc.createOnce(ctx, cmd, title, description, priority, storedPath)
		if err == nil {
			break
		}
		if !errors.IsConflictError(err) || attempt == createMaxAttempts {
			uc.logger.Errorw("failed to create service request", "error", err, "attempt", attempt)
			return nil, err
		}
		uc.logger.Warnw("request number conflict, retrying", "attempt", attempt)
	}

	uc.logger.Infow("service request created",
		"request_id", created.ID(),
		"number", created.Number())

	return &CreateRequestResult{
		RequestID: created.ID(),
		Number:    created.Number(),
		Status:    created.Status().String(),
		Priority:  created.Priority().String(),
		CreatedAt: created.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

func (uc *CreateRequestUseCase) createOnce(
	ctx context.Context,
	cmd CreateRequestCommand,
	title, description string,
	priority request.Priority,
	storedPath string,
) (*request.ServiceRequest, error) {
	var created *request.ServiceRequest

	err := uc.transactor.RunInTransaction(ctx, func(txCtx context.Context) error {
		req, err := request.NewServiceRequest(title, description, priority, cmd.RequestTypeID, cmd.CreatorUserID, cmd.RequesterStaffID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		number, err := uc.numberGen.Next(txCtx)
		if err != nil {
			return errors.NewInternalError("failed to generate request number")
		}
		if err := req.SetNumber(number); err != nil {
			return errors.NewInternalError(err.Error())
		}

		if err := uc.requestRepo.Save(txCtx, req); err != nil {
			return err
		}

		if storedPath != "" {
			att, err := request.NewAttachment(req.ID(), storedPath, cmd.Attachment.FileName, cmd.CreatorUserID)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.attachmentRepo.Save(txCtx, att); err != nil {
				return err
			}
		}

		created = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (uc *CreateRequestUseCase) validateCommand(cmd CreateRequestCommand) error {
	if strings.TrimSpace(cmd.Title) == "" {
		return errors.NewValidationError("title is required")
	}
	if strings.TrimSpace(cmd.Description) == "" {
		return errors.NewValidationError("description is required")
	}
	if cmd.RequestTypeID == 0 {
		return errors.NewValidationError("request type ID is required")
	}
	if cmd.CreatorUserID == 0 {
		return errors.NewValidationError("creator user ID is required")
	}
	return nil
}
