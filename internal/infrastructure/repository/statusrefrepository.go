package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/infrastructure/persistence/mappers"
	"servicedesk/internal/infrastructure/persistence/models"
	"servicedesk/internal/shared/db"
	apperrors "servicedesk/internal/shared/errors"
)

type StatusRefRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewStatusRefRepository(database *gorm.DB) *StatusRefRepository {
	return &StatusRefRepository{
		db:     database,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *StatusRefRepository) Save(ctx context.Context, s *catalog.StatusRef) error {
	model := r.mapper.StatusToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("status name already exists")
		}
		return fmt.Errorf("failed to save status: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *StatusRefRepository) Update(ctx context.Context, s *catalog.StatusRef) error {
	model := r.mapper.StatusToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.StatusModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"description": model.Description,
			"is_active":   model.IsActive,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	return nil
}

func (r *StatusRefRepository) GetByID(ctx context.Context, id uint) (*catalog.StatusRef, error) {
	var model models.StatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("status")
		}
		return nil, fmt.Errorf("failed to find status: %w", err)
	}

	return r.mapper.StatusToDomain(&model)
}

// GetByName matches case-insensitively and returns (nil, nil) when absent.
func (r *StatusRefRepository) GetByName(ctx context.Context, name string) (*catalog.StatusRef, error) {
	var model models.StatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("LOWER(name) = LOWER(?)", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find status: %w", err)
	}

	return r.mapper.StatusToDomain(&model)
}

func (r *StatusRefRepository) List(ctx context.Context) ([]*catalog.StatusRef, error) {
	var rows []models.StatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}

	statuses := make([]*catalog.StatusRef, 0, len(rows))
	for i := range rows {
		s, err := r.mapper.StatusToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}

	return statuses, nil
}
