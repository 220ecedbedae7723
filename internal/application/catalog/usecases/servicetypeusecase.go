package usecases

import (
	"context"
	"time"

	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

type ServiceTypeCommand struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type ServiceTypeView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ServiceTypeUseCase manages the service type groupings request types hang
// off. Service types are never deleted; stale ones just stop receiving new
// request types.
type ServiceTypeUseCase struct {
	repo   catalog.ServiceTypeRepository
	logger logger.Interface
}

func NewServiceTypeUseCase(repo catalog.ServiceTypeRepository, logger logger.Interface) *ServiceTypeUseCase {
	return &ServiceTypeUseCase{repo: repo, logger: logger}
}

func (uc *ServiceTypeUseCase) Create(ctx context.Context, cmd ServiceTypeCommand) (*ServiceTypeView, error) {
	st, err := catalog.NewServiceType(cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.repo.GetByName(ctx, st.Name())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("service type name already exists")
	}

	if err := uc.repo.Save(ctx, st); err != nil {
		uc.logger.Errorw("failed to save service type", "error", err, "name", st.Name())
		return nil, err
	}

	uc.logger.Infow("service type created", "service_type_id", st.ID(), "name", st.Name())
	return serviceTypeView(st), nil
}

func (uc *ServiceTypeUseCase) Update(ctx context.Context, id uint, cmd ServiceTypeCommand) (*ServiceTypeView, error) {
	st, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByName(ctx, cmd.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID() != id {
		return nil, errors.NewConflictError("service type name already exists")
	}

	if err := st.Update(cmd.Name, cmd.Description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, st); err != nil {
		uc.logger.Errorw("failed to update service type", "error", err, "service_type_id", id)
		return nil, err
	}

	uc.logger.Infow("service type updated", "service_type_id", id)
	return serviceTypeView(st), nil
}

func (uc *ServiceTypeUseCase) Get(ctx context.Context, id uint) (*ServiceTypeView, error) {
	st, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return serviceTypeView(st), nil
}

func (uc *ServiceTypeUseCase) List(ctx context.Context) ([]*ServiceTypeView, error) {
	types, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list service types", "error", err)
		return nil, errors.NewInternalError("failed to list service types")
	}

	views := make([]*ServiceTypeView, 0, len(types))
	for _, st := range types {
		views = append(views, serviceTypeView(st))
	}
	return views, nil
}

func serviceTypeView(st *catalog.ServiceType) *ServiceTypeView {
	return &ServiceTypeView{
		ID:          st.ID(),
		Name:        st.Name(),
		Description: st.Description(),
		CreatedAt:   st.CreatedAt().Format(time.RFC3339),
		UpdatedAt:   st.UpdatedAt().Format(time.RFC3339),
	}
}
