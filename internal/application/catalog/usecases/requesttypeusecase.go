package usecases

import (
	"context"
	"time"

	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/request"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

type RequestTypeCommand struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	ServiceTypeID   uint   `json:"service_type_id" binding:"required"`
	DepartmentID    uint   `json:"department_id" binding:"required"`
	DefaultPriority string `json:"default_priority" binding:"required"`
	ReminderDays    *int   `json:"reminder_days"`
	IsMandatory     bool   `json:"is_mandatory"`
	IsVisible       bool   `json:"is_visible"`
}

type RequestTypeView struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	ServiceTypeID   uint   `json:"service_type_id"`
	DepartmentID    uint   `json:"department_id"`
	DefaultPriority string `json:"default_priority"`
	ReminderDays    *int   `json:"reminder_days,omitempty"`
	IsMandatory     bool   `json:"is_mandatory"`
	IsVisible       bool   `json:"is_visible"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// RequestTypeUseCase manages the request type catalog. Every type belongs to
// a service type and an owning department; both must exist before the type
// can be created or re-pointed.
type RequestTypeUseCase struct {
	repo            catalog.RequestTypeRepository
	serviceTypeRepo catalog.ServiceTypeRepository
	departmentRepo  catalog.DepartmentRepository
	logger          logger.Interface
}

func NewRequestTypeUseCase(
	repo catalog.RequestTypeRepository,
	serviceTypeRepo catalog.ServiceTypeRepository,
	departmentRepo catalog.DepartmentRepository,
	logger logger.Interface,
) *RequestTypeUseCase {
	return &RequestTypeUseCase{
		repo:            repo,
		serviceTypeRepo: serviceTypeRepo,
		departmentRepo:  departmentRepo,
		logger:          logger,
	}
}

func (uc *RequestTypeUseCase) Create(ctx context.Context, cmd RequestTypeCommand) (*RequestTypeView, error) {
	attrs, err := uc.buildAttrs(ctx, cmd)
	if err != nil {
		return nil, err
	}

	rt, err := catalog.NewRequestType(*attrs)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.repo.GetByName(ctx, rt.Name())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("request type name already exists")
	}

	if err := uc.repo.Save(ctx, rt); err != nil {
		uc.logger.Errorw("failed to save request type", "error", err, "name", rt.Name())
		return nil, err
	}

	uc.logger.Infow("request type created", "request_type_id", rt.ID(), "name", rt.Name())
	return requestTypeView(rt), nil
}

func (uc *RequestTypeUseCase) Update(ctx context.Context, id uint, cmd RequestTypeCommand) (*RequestTypeView, error) {
	rt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attrs, err := uc.buildAttrs(ctx, cmd)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByName(ctx, cmd.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID() != id {
		return nil, errors.NewConflictError("request type name already exists")
	}

	if err := rt.Update(*attrs); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, rt); err != nil {
		uc.logger.Errorw("failed to update request type", "error", err, "request_type_id", id)
		return nil, err
	}

	uc.logger.Infow("request type updated", "request_type_id", id)
	return requestTypeView(rt), nil
}

func (uc *RequestTypeUseCase) Get(ctx context.Context, id uint) (*RequestTypeView, error) {
	rt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return requestTypeView(rt), nil
}

func (uc *RequestTypeUseCase) List(ctx context.Context) ([]*RequestTypeView, error) {
	return uc.views(uc.repo.List(ctx))
}

// ListVisible returns the types offered on the requestor's submission form.
func (uc *RequestTypeUseCase) ListVisible(ctx context.Context) ([]*RequestTypeView, error) {
	return uc.views(uc.repo.ListVisible(ctx))
}

func (uc *RequestTypeUseCase) ListByDepartment(ctx context.Context, departmentID uint) ([]*RequestTypeView, error) {
	return uc.views(uc.repo.ListByDepartment(ctx, departmentID))
}

func (uc *RequestTypeUseCase) views(types []*catalog.RequestType, err error) ([]*RequestTypeView, error) {
	if err != nil {
		uc.logger.Errorw("failed to list request types", "error", err)
		return nil, errors.NewInternalError("failed to list request types")
	}

	views := make([]*RequestTypeView, 0, len(types))
	for _, rt := range types {
		views = append(views, requestTypeView(rt))
	}
	return views, nil
}

func (uc *RequestTypeUseCase) buildAttrs(ctx context.Context, cmd RequestTypeCommand) (*catalog.RequestTypeAttrs, error) {
	priority, err := request.NewPriority(cmd.DefaultPriority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if _, err := uc.serviceTypeRepo.GetByID(ctx, cmd.ServiceTypeID); err != nil {
		return nil, err
	}
	if _, err := uc.departmentRepo.GetByID(ctx, cmd.DepartmentID); err != nil {
		return nil, err
	}

	return &catalog.RequestTypeAttrs{
		Name:            cmd.Name,
		Description:     cmd.Description,
		ServiceTypeID:   cmd.ServiceTypeID,
		DepartmentID:    cmd.DepartmentID,
		DefaultPriority: priority,
		ReminderDays:    cmd.ReminderDays,
		IsMandatory:     cmd.IsMandatory,
		IsVisible:       cmd.IsVisible,
	}, nil
}

func requestTypeView(rt *catalog.RequestType) *RequestTypeView {
	return &RequestTypeView{
		ID:              rt.ID(),
		Name:            rt.Name(),
		Description:     rt.Description(),
		ServiceTypeID:   rt.ServiceTypeID(),
		DepartmentID:    rt.DepartmentID(),
		DefaultPriority: rt.DefaultPriority().String(),
		ReminderDays:    rt.ReminderDays(),
		IsMandatory:     rt.IsMandatory(),
		IsVisible:       rt.IsVisible(),
		CreatedAt:       rt.CreatedAt().Format(time.RFC3339),
		UpdatedAt:       rt.UpdatedAt().Format(time.RFC3339),
	}
}
