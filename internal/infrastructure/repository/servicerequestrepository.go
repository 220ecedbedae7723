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

type ServiceRequestRepository struct {
	db     *gorm.DB
	mapper mappers.ServiceRequestMapper
}

func NewServiceRequestRepository(database *gorm.DB) *ServiceRequestRepository {
	return &ServiceRequestRepository{
		db:     database,
		mapper: mappers.NewServiceRequestMapper(),
	}
}

func (r *ServiceRequestRepository) Save(ctx context.Context, req *request.ServiceRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("request number already exists")
		}
		return fmt.Errorf("failed to save service request: %w", err)
	}

	return req.SetID(model.ID)
}

func (r *ServiceRequestRepository) Update(ctx context.Context, req *request.ServiceRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ServiceRequestModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":             model.Title,
			"description":       model.Description,
			"priority":          model.Priority,
			"status":            model.Status,
			"assignee_staff_id": model.AssigneeStaffID,
			"assigner_user_id":  model.AssignerUserID,
			"assigned_at":       model.AssignedAt,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update service request: %w", result.Error)
	}

	return nil
}

func (r *ServiceRequestRepository) GetByID(ctx context.Context, id uint) (*request.ServiceRequest, error) {
	var model models.ServiceRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("service request")
		}
		return nil, fmt.Errorf("failed to find service request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ServiceRequestRepository) GetByNumber(ctx context.Context, number string) (*request.ServiceRequest, error) {
	var model models.ServiceRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("number = ?", number).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("service request")
		}
		return nil, fmt.Errorf("failed to find service request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ServiceRequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.ServiceRequest, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(tx.Model(&models.ServiceRequestModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count service requests: %w", err)
	}

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var rows []models.ServiceRequestModel
	if err := query.Order("service_requests.created_at DESC").Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list service requests: %w", err)
	}

	requests := make([]*request.ServiceRequest, 0, len(rows))
	for i := range rows {
		req, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}

	return requests, total, nil
}

func (r *ServiceRequestRepository) CountByStatus(ctx context.Context, filter request.Filter) (map[request.Status]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(tx.Model(&models.ServiceRequestModel{}), filter)

	var rows []struct {
		Status string
		Count  int64
	}
	if err := query.
		Select("service_requests.status AS status, COUNT(*) AS count").
		Group("service_requests.status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count service requests by status: %w", err)
	}

	counts := make(map[request.Status]int64, len(rows))
	for _, row := range rows {
		status, err := request.NewStatus(row.Status)
		if err != nil {
			return nil, err
		}
		counts[status] = row.Count
	}

	return counts, nil
}

func (r *ServiceRequestRepository) applyFilter(query *gorm.DB, filter request.Filter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("service_requests.status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("service_requests.priority = ?", filter.Priority.String())
	}
	if filter.RequestTypeID != nil {
		query = query.Where("service_requests.request_type_id = ?", *filter.RequestTypeID)
	}
	if filter.CreatorUserID != nil {
		query = query.Where("service_requests.creator_user_id = ?", *filter.CreatorUserID)
	}
	if filter.AssigneeStaffID != nil {
		query = query.Where("service_requests.assignee_staff_id = ?", *filter.AssigneeStaffID)
	}
	if filter.DepartmentID != nil {
		query = query.
			Joins("JOIN request_types ON request_types.id = service_requests.request_type_id").
			Where("request_types.department_id = ?", *filter.DepartmentID)
	}
	return query
}
