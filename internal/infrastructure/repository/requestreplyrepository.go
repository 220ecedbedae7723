package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"servicedesk/internal/domain/request"
	"servicedesk/internal/infrastructure/persistence/mappers"
	"servicedesk/internal/infrastructure/persistence/models"
	"servicedesk/internal/shared/db"
)

type RequestReplyRepository struct {
	db     *gorm.DB
	mapper mappers.ServiceRequestMapper
}

func NewRequestReplyRepository(database *gorm.DB) *RequestReplyRepository {
	return &RequestReplyRepository{
		db:     database,
		mapper: mappers.NewServiceRequestMapper(),
	}
}

func (r *RequestReplyRepository) Save(ctx context.Context, reply *request.Reply) error {
	model := r.mapper.ReplyToModel(reply)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save request reply: %w", err)
	}

	return reply.SetID(model.ID)
}

func (r *RequestReplyRepository) ListByRequestID(ctx context.Context, requestID uint) ([]*request.Reply, error) {
	var rows []models.RequestReplyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("request_id = ?", requestID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list request replies: %w", err)
	}

	replies := make([]*request.Reply, 0, len(rows))
	for i := range rows {
		reply, err := r.mapper.ReplyToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		replies = append(replies, reply)
	}

	return replies, nil
}
