package usecases

import (
	"context"
	"io"

	"servicedesk/internal/domain/assignment"
	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/request"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

type DownloadAttachmentQuery struct {
	RequestID    uint
	AttachmentID uint
	Scope        AccessScope
	ActorUserID  uint
	ActorStaffID *uint
	ActorRoles   []string
}

// AttachmentDownload carries the stored file back to the handler. The
// caller owns Content and must close it.
type AttachmentDownload struct {
	FileName string
	Content  io.ReadCloser
}

type DownloadAttachmentExecutor interface {
	Execute(ctx context.Context, query DownloadAttachmentQuery) (*AttachmentDownload, error)
}

// DownloadAttachmentUseCase streams a stored attachment, gated by the same
// scope rules as the request detail view. Attachments on requests outside
// the actor's scope surface as not found.
type DownloadAttachmentUseCase struct {
	requestRepo     request.Repository
	attachmentRepo  request.AttachmentRepository
	requestTypeRepo catalog.RequestTypeRepository
	assignmentRepo  assignment.Repository
	store           AttachmentStore
	logger          logger.Interface
}

func NewDownloadAttachmentUseCase(
	requestRepo request.Repository,
	attachmentRepo request.AttachmentRepository,
	requestTypeRepo catalog.RequestTypeRepository,
	assignmentRepo assignment.Repository,
	store AttachmentStore,
	logger logger.Interface,
) *DownloadAttachmentUseCase {
	return &DownloadAttachmentUseCase{
		requestRepo:     requestRepo,
		attachmentRepo:  attachmentRepo,
		requestTypeRepo: requestTypeRepo,
		assignmentRepo:  assignmentRepo,
		store:           store,
		logger:          logger,
	}
}

func (uc *DownloadAttachmentUseCase) Execute(ctx context.Context, query DownloadAttachmentQuery) (*AttachmentDownload, error) {
	if query.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if query.AttachmentID == 0 {
		return nil, errors.NewValidationError("attachment ID is required")
	}
	if query.ActorUserID == 0 {
		return nil, errors.NewValidationError("actor user ID is required")
	}

	req, err := uc.requestRepo.GetByID(ctx, query.RequestID)
	if err != nil {
		return nil, err
	}

	requestType, err := uc.requestTypeRepo.GetByID(ctx, req.RequestTypeID())
	if err != nil {
		return nil, err
	}

	allowed, err := requestInScope(ctx, uc.assignmentRepo, GetRequestQuery{
		RequestID:    query.RequestID,
		Scope:        query.Scope,
		ActorUserID:  query.ActorUserID,
		ActorStaffID: query.ActorStaffID,
		ActorRoles:   query.ActorRoles,
	}, req, requestType)
	if err != nil {
		return nil, err
	}
	if !allowed {
		uc.logger.Warnw("out-of-scope attachment access",
			"request_id", query.RequestID,
			"attachment_id", query.AttachmentID,
			"actor_user_id", query.ActorUserID)
		return nil, errors.NewNotFoundError("attachment")
	}

	att, err := uc.attachmentRepo.GetByID(ctx, query.AttachmentID)
	if err != nil {
		return nil, err
	}
	if att.RequestID() != req.ID() {
		return nil, errors.NewNotFoundError("attachment")
	}

	content, err := uc.store.Open(att.FilePath())
	if err != nil {
		uc.logger.Errorw("failed to open stored attachment",
			"attachment_id", att.ID(),
			"error", err)
		return nil, errors.NewInternalError("failed to open attachment")
	}

	return &AttachmentDownload{
		FileName: att.FileName(),
		Content:  content,
	}, nil
}
