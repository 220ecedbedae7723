package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"servicedesk/internal/domain/assignment"
	"servicedesk/internal/infrastructure/persistence/mappers"
	"servicedesk/internal/infrastructure/persistence/models"
	"servicedesk/internal/shared/db"
	apperrors "servicedesk/internal/shared/errors"
)

type AssignmentRepository struct {
	db     *gorm.DB
	mapper mappers.AssignmentMapper
}

func NewAssignmentRepository(database *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{
		db:     database,
		mapper: mappers.NewAssignmentMapper(),
	}
}

func (r *AssignmentRepository) Save(ctx context.Context, a *assignment.Assignment) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save assignment: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AssignmentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"to_date":    model.ToDate,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update assignment: %w", result.Error)
	}

	return nil
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id uint) (*assignment.Assignment, error) {
	var model models.AssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("assignment")
		}
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AssignmentRepository) List(ctx context.Context, filter assignment.Filter) ([]*assignment.Assignment, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.AssignmentModel{})

	if filter.StaffID != nil {
		query = query.Where("staff_id = ?", *filter.StaffID)
	}
	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.RequestTypeID != nil {
		query = query.Where("request_type_id = ?", *filter.RequestTypeID)
	}
	if filter.ActiveAt != nil {
		query = activeAt(query, *filter.ActiveAt)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assignments: %w", err)
	}

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var rows []models.AssignmentModel
	if err := query.Order("from_date DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list assignments: %w", err)
	}

	assignments := make([]*assignment.Assignment, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		assignments = append(assignments, a)
	}

	return assignments, total, nil
}

func (r *AssignmentRepository) HasActiveOverlap(ctx context.Context, staffID, departmentID uint, requestTypeID *uint, at time.Time) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := activeAt(
		tx.Model(&models.AssignmentModel{}).
			Where("staff_id = ? AND department_id = ?", staffID, departmentID),
		at,
	)

	if requestTypeID != nil {
		query = query.Where("request_type_id = ?", *requestTypeID)
	} else {
		query = query.Where("request_type_id IS NULL")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check active assignments: %w", err)
	}

	return count > 0, nil
}

// ActiveDepartmentIDs returns the departments the staff member currently
// heads. Only owner rows count; a technician responsibility row narrows to
// one request type and grants no department-wide scope.
func (r *AssignmentRepository) ActiveDepartmentIDs(ctx context.Context, staffID uint, at time.Time) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []uint
	if err := activeAt(
		tx.Model(&models.AssignmentModel{}).
			Where("staff_id = ? AND request_type_id IS NULL", staffID),
		at,
	).Distinct().Pluck("department_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to get active departments: %w", err)
	}

	return ids, nil
}

func (r *AssignmentRepository) ActiveStaffIDsByDepartment(ctx context.Context, departmentID uint, at time.Time) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []uint
	if err := activeAt(
		tx.Model(&models.AssignmentModel{}).Where("department_id = ?", departmentID),
		at,
	).Distinct().Pluck("staff_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to get active staff: %w", err)
	}

	return ids, nil
}

// activeAt keeps assignments whose period contains t. The end date is
// exclusive; NULL means open-ended.
func activeAt(query *gorm.DB, t time.Time) *gorm.DB {
	return query.Where("from_date <= ? AND (to_date IS NULL OR to_date > ?)", t, t)
}
