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

type DepartmentRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewDepartmentRepository(database *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{
		db:     database,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *DepartmentRepository) Save(ctx context.Context, dept *catalog.Department) error {
	model := r.mapper.DepartmentToModel(dept)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("department name already exists")
		}
		return fmt.Errorf("failed to save department: %w", err)
	}

	return dept.SetID(model.ID)
}

func (r *DepartmentRepository) Update(ctx context.Context, dept *catalog.Department) error {
	model := r.mapper.DepartmentToModel(dept)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.DepartmentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"description": model.Description,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("department name already exists")
		}
		return fmt.Errorf("failed to update department: %w", result.Error)
	}

	return nil
}

// Delete removes a department. The schema carries no foreign keys, so
// referencing rows are checked explicitly before the delete.
func (r *DepartmentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	referenced, err := r.isReferenced(tx, id)
	if err != nil {
		return err
	}
	if referenced {
		return apperrors.NewBadRequestError("department is referenced by other records and cannot be deleted")
	}

	result := tx.Delete(&models.DepartmentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete department: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("department")
	}

	return nil
}

func (r *DepartmentRepository) isReferenced(tx *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := tx.Model(&models.RequestTypeModel{}).
		Where("department_id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check request type references: %w", err)
	}
	if count > 0 {
		return true, nil
	}

	if err := tx.Model(&models.AssignmentModel{}).
		Where("department_id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check assignment references: %w", err)
	}
	return count > 0, nil
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id uint) (*catalog.Department, error) {
	var model models.DepartmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("department")
		}
		return nil, fmt.Errorf("failed to find department: %w", err)
	}

	return r.mapper.DepartmentToDomain(&model)
}

// GetByName matches case-insensitively and returns (nil, nil) when no
// department carries the name.
func (r *DepartmentRepository) GetByName(ctx context.Context, name string) (*catalog.Department, error) {
	var model models.DepartmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("LOWER(name) = LOWER(?)", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find department: %w", err)
	}

	return r.mapper.DepartmentToDomain(&model)
}

func (r *DepartmentRepository) List(ctx context.Context) ([]*catalog.Department, error) {
	var rows []models.DepartmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	departments := make([]*catalog.Department, 0, len(rows))
	for i := range rows {
		dept, err := r.mapper.DepartmentToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}

	return departments, nil
}
