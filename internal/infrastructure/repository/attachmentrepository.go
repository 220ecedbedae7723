package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"servicedesk/internal/domain/request"
	"servicedesk/internal/infrastructure/persistence/mappers"
	"servicedesk/internal/infrastructure/persistence/models"
	"servicedesk/internal/shared/db"
	apperrors "servicedesk/internal/shared/errors"
)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.ServiceRequestMapper
}

func NewAttachmentRepository(database *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     database,
		mapper: mappers.NewServiceRequestMapper(),
	}
}

func (r *AttachmentRepository) Save(ctx context.Context, att *request.Attachment) error {
	model := r.mapper.AttachmentToModel(att)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return att.SetID(model.ID)
}

func (r *AttachmentRepository) GetByID(ctx context.Context, id uint) (*request.Attachment, error) {
	var model models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("attachment")
		}
		return nil, fmt.Errorf("failed to find attachment: %w", err)
	}

	return r.mapper.AttachmentToDomain(&model)
}

func (r *AttachmentRepository) ListByRequestID(ctx context.Context, requestID uint) ([]*request.Attachment, error) {
	var rows []models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("request_id = ?", requestID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	attachments := make([]*request.Attachment, 0, len(rows))
	for i := range rows {
		att, err := r.mapper.AttachmentToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, att)
	}

	return attachments, nil
}
