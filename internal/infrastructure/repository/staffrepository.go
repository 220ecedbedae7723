package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"servicedesk/internal/domain/identity"
	"servicedesk/internal/infrastructure/persistence/mappers"
	"servicedesk/internal/infrastructure/persistence/models"
	"servicedesk/internal/shared/db"
	apperrors "servicedesk/internal/shared/errors"
)

type StaffRepository struct {
	db     *gorm.DB
	mapper mappers.StaffMapper
}

func NewStaffRepository(database *gorm.DB) *StaffRepository {
	return &StaffRepository{
		db:     database,
		mapper: mappers.NewStaffMapper(),
	}
}

func (r *StaffRepository) Save(ctx context.Context, staff *identity.Staff) error {
	model := r.mapper.ToModel(staff)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("staff code already exists")
		}
		return fmt.Errorf("failed to save staff: %w", err)
	}

	return staff.SetID(model.ID)
}

func (r *StaffRepository) Update(ctx context.Context, staff *identity.Staff) error {
	model := r.mapper.ToModel(staff)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.StaffModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"email":      model.Email,
			"mobile":     model.Mobile,
			"is_active":  model.IsActive,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update staff: %w", result.Error)
	}

	return nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id uint) (*identity.Staff, error) {
	var model models.StaffModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("staff")
		}
		return nil, fmt.Errorf("failed to find staff: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *StaffRepository) List(ctx context.Context, filter identity.StaffFilter) ([]*identity.Staff, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.StaffModel{})

	if filter.Name != nil {
		query = query.Where("name LIKE ?", "%"+*filter.Name+"%")
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count staff: %w", err)
	}

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var rows []models.StaffModel
	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list staff: %w", err)
	}

	staff := make([]*identity.Staff, 0, len(rows))
	for i := range rows {
		s, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		staff = append(staff, s)
	}

	return staff, total, nil
}
