package mappers

import (
	"servicedesk/internal/domain/request"
	"servicedesk/internal/infrastructure/persistence/models"
)

// ServiceRequestMapper handles the conversion between request domain
// entities and persistence models.
type ServiceRequestMapper interface {
	ToModel(req *request.ServiceRequest) *models.ServiceRequestModel
	ToDomain(model *models.ServiceRequestModel) (*request.ServiceRequest, error)
	ReplyToModel(reply *request.Reply) *models.RequestReplyModel
	ReplyToDomain(model *models.RequestReplyModel) (*request.Reply, error)
	AttachmentToModel(att *request.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) (*request.Attachment, error)
}

type ServiceRequestMapperImpl struct{}

func NewServiceRequestMapper() ServiceRequestMapper {
	return &ServiceRequestMapperImpl{}
}

func (m *ServiceRequestMapperImpl) ToModel(req *request.ServiceRequest) *models.ServiceRequestModel {
	return &models.ServiceRequestModel{
		ID:               req.ID(),
		Number:           req.Number(),
		Title:            req.Title(),
		Description:      req.Description(),
		Priority:         req.Priority().String(),
		Status:           req.Status().String(),
		RequestTypeID:    req.RequestTypeID(),
		CreatorUserID:    req.CreatorUserID(),
		RequesterStaffID: req.RequesterStaffID(),
		AssigneeStaffID:  req.AssigneeStaffID(),
		AssignerUserID:   req.AssignerUserID(),
		AssignedAt:       req.AssignedAt(),
		CreatedAt:        req.CreatedAt(),
		UpdatedAt:        req.UpdatedAt(),
	}
}

func (m *ServiceRequestMapperImpl) ToDomain(model *models.ServiceRequestModel) (*request.ServiceRequest, error) {
	priority, err := request.NewPriority(model.Priority)
	if err != nil {
		return nil, err
	}
	status, err := request.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return request.ReconstructServiceRequest(
		model.ID,
		model.Number,
		model.Title,
		model.Description,
		priority,
		status,
		model.RequestTypeID,
		model.CreatorUserID,
		model.RequesterStaffID,
		model.AssigneeStaffID,
		model.AssignerUserID,
		model.AssignedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ServiceRequestMapperImpl) ReplyToModel(reply *request.Reply) *models.RequestReplyModel {
	return &models.RequestReplyModel{
		ID:           reply.ID(),
		RequestID:    reply.RequestID(),
		Status:       reply.Status().String(),
		Comment:      reply.Comment(),
		ActorUserID:  reply.ActorUserID(),
		ActorStaffID: reply.ActorStaffID(),
		CreatedAt:    reply.CreatedAt(),
	}
}

func (m *ServiceRequestMapperImpl) ReplyToDomain(model *models.RequestReplyModel) (*request.Reply, error) {
	status, err := request.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return request.ReconstructReply(
		model.ID,
		model.RequestID,
		status,
		model.Comment,
		model.ActorUserID,
		model.ActorStaffID,
		model.CreatedAt,
	)
}

func (m *ServiceRequestMapperImpl) AttachmentToModel(att *request.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:               att.ID(),
		RequestID:        att.RequestID(),
		FilePath:         att.FilePath(),
		FileName:         att.FileName(),
		UploadedByUserID: att.UploadedByUserID(),
		UploadedAt:       att.UploadedAt(),
	}
}

func (m *ServiceRequestMapperImpl) AttachmentToDomain(model *models.AttachmentModel) (*request.Attachment, error) {
	return request.ReconstructAttachment(
		model.ID,
		model.RequestID,
		model.FilePath,
		model.FileName,
		model.UploadedByUserID,
		model.UploadedAt,
	)
}
