package usecases

import (
	"context"
	"time"

	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

type DepartmentCommand struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type DepartmentView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// DepartmentUseCase manages the department reference data. Names are unique
// case-insensitively; deletion is refused while other records reference the
// department.
type DepartmentUseCase struct {
	repo   catalog.DepartmentRepository
	logger logger.Interface
}

func NewDepartmentUseCase(repo catalog.DepartmentRepository, logger logger.Interface) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo, logger: logger}
}

func (uc *DepartmentUseCase) Create(ctx context.Context, cmd DepartmentCommand) (*DepartmentView, error) {
	dept, err := catalog.NewDepartment(cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.repo.GetByName(ctx, dept.Name())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("department name already exists")
	}

	if err := uc.repo.Save(ctx, dept); err != nil {
		uc.logger.Errorw("failed to save department", "error", err, "name", dept.Name())
		return nil, err
	}

	uc.logger.Infow("department created", "department_id", dept.ID(), "name", dept.Name())
	return departmentView(dept), nil
}

func (uc *DepartmentUseCase) Update(ctx context.Context, id uint, cmd DepartmentCommand) (*DepartmentView, error) {
	dept, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByName(ctx, cmd.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID() != id {
		return nil, errors.NewConflictError("department name already exists")
	}

	if err := dept.Update(cmd.Name, cmd.Description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, dept); err != nil {
		uc.logger.Errorw("failed to update department", "error", err, "department_id", id)
		return nil, err
	}

	uc.logger.Infow("department updated", "department_id", id)
	return departmentView(dept), nil
}

func (uc *DepartmentUseCase) Delete(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Warnw("failed to delete department", "error", err, "department_id", id)
		return err
	}

	uc.logger.Infow("department deleted", "department_id", id)
	return nil
}

func (uc *DepartmentUseCase) Get(ctx context.Context, id uint) (*DepartmentView, error) {
	dept, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return departmentView(dept), nil
}

func (uc *DepartmentUseCase) List(ctx context.Context) ([]*DepartmentView, error) {
	depts, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list departments", "error", err)
		return nil, errors.NewInternalError("failed to list departments")
	}

	views := make([]*DepartmentView, 0, len(depts))
	for _, dept := range depts {
		views = append(views, departmentView(dept))
	}
	return views, nil
}

func departmentView(dept *catalog.Department) *DepartmentView {
	return &DepartmentView{
		ID:          dept.ID(),
		Name:        dept.Name(),
		Description: dept.Description(),
		CreatedAt:   dept.CreatedAt().Format(time.RFC3339),
		UpdatedAt:   dept.UpdatedAt().Format(time.RFC3339),
	}
}
