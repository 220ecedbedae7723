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

type RequestTypeRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewRequestTypeRepository(database *gorm.DB) *RequestTypeRepository {
	return &RequestTypeRepository{
		db:     database,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *RequestTypeRepository) Save(ctx context.Context, rt *catalog.RequestType) error {
	model := r.mapper.RequestTypeToModel(rt)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("request type name already exists")
		}
		return fmt.Errorf("failed to save request type: %w", err)
	}

	return rt.SetID(model.ID)
}

func (r *RequestTypeRepository) Update(ctx context.Context, rt *catalog.RequestType) error {
	model := r.mapper.RequestTypeToModel(rt)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.RequestTypeModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":             model.Name,
			"description":      model.Description,
			"service_type_id":  model.ServiceTypeID,
			"department_id":    model.DepartmentID,
			"default_priority": model.DefaultPriority,
			"reminder_days":    model.ReminderDays,
			"is_mandatory":     model.IsMandatory,
			"is_visible":       model.IsVisible,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("request type name already exists")
		}
		return fmt.Errorf("failed to update request type: %w", result.Error)
	}

	return nil
}

func (r *RequestTypeRepository) GetByID(ctx context.Context, id uint) (*catalog.RequestType, error) {
	var model models.RequestTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("request type")
		}
		return nil, fmt.Errorf("failed to find request type: %w", err)
	}

	return r.mapper.RequestTypeToDomain(&model)
}

// GetByName matches case-insensitively and returns (nil, nil) when absent.
func (r *RequestTypeRepository) GetByName(ctx context.Context, name string) (*catalog.RequestType, error) {
	var model models.RequestTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("LOWER(name) = LOWER(?)", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find request type: %w", err)
	}

	return r.mapper.RequestTypeToDomain(&model)
}

func (r *RequestTypeRepository) List(ctx context.Context) ([]*catalog.RequestType, error) {
	var rows []models.RequestTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list request types: %w", err)
	}

	return r.toDomainSlice(rows)
}

func (r *RequestTypeRepository) ListVisible(ctx context.Context) ([]*catalog.RequestType, error) {
	var rows []models.RequestTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("is_visible = ?", true).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list request types: %w", err)
	}

	return r.toDomainSlice(rows)
}

func (r *RequestTypeRepository) ListByDepartment(ctx context.Context, departmentID uint) ([]*catalog.RequestType, error) {
	var rows []models.RequestTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("department_id = ?", departmentID).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list request types: %w", err)
	}

	return r.toDomainSlice(rows)
}

func (r *RequestTypeRepository) toDomainSlice(rows []models.RequestTypeModel) ([]*catalog.RequestType, error) {
	types := make([]*catalog.RequestType, 0, len(rows))
	for i := range rows {
		rt, err := r.mapper.RequestTypeToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		types = append(types, rt)
	}
	return types, nil
}
