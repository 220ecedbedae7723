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

type ServiceTypeRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewServiceTypeRepository(database *gorm.DB) *ServiceTypeRepository {
	return &ServiceTypeRepository{
		db:     database,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *ServiceTypeRepository) Save(ctx context.Context, st *catalog.ServiceType) error {
	model := r.mapper.ServiceTypeToModel(st)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("service type name already exists")
		}
		return fmt.Errorf("failed to save service type: %w", err)
	}

	return st.SetID(model.ID)
}

func (r *ServiceTypeRepository) Update(ctx context.Context, st *catalog.ServiceType) error {
	model := r.mapper.ServiceTypeToModel(st)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ServiceTypeModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"description": model.Description,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("service type name already exists")
		}
		return fmt.Errorf("failed to update service type: %w", result.Error)
	}

	return nil
}

func (r *ServiceTypeRepository) GetByID(ctx context.Context, id uint) (*catalog.ServiceType, error) {
	var model models.ServiceTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("service type")
		}
		return nil, fmt.Errorf("failed to find service type: %w", err)
	}

	return r.mapper.ServiceTypeToDomain(&model)
}

// GetByName matches case-insensitively and returns (nil, nil) when absent.
func (r *ServiceTypeRepository) GetByName(ctx context.Context, name string) (*catalog.ServiceType, error) {
	var model models.ServiceTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("LOWER(name) = LOWER(?)", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find service type: %w", err)
	}

	return r.mapper.ServiceTypeToDomain(&model)
}

func (r *ServiceTypeRepository) List(ctx context.Context) ([]*catalog.ServiceType, error) {
	var rows []models.ServiceTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list service types: %w", err)
	}

	types := make([]*catalog.ServiceType, 0, len(rows))
	for i := range rows {
		st, err := r.mapper.ServiceTypeToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		types = append(types, st)
	}

	return types, nil
}
