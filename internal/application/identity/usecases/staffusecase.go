package usecases

import (
	"context"
	"time"

	"servicedesk/internal/domain/identity"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

type CreateStaffCommand struct {
	Code   string `json:"code" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

type UpdateStaffCommand struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

type StaffView struct {
	ID        uint   `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ListStaffQuery struct {
	Name     string
	IsActive *bool
	Page     int
	PageSize int
}

type ListStaffResult struct {
	Staff    []*StaffView `json:"staff"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

// StaffUseCase manages the staff directory. The staff code is assigned at
// creation and never edited; deactivation keeps the row for history.
type StaffUseCase struct {
	repo   identity.StaffRepository
	logger logger.Interface
}

func NewStaffUseCase(repo identity.StaffRepository, logger logger.Interface) *StaffUseCase {
	return &StaffUseCase{repo: repo, logger: logger}
}

func (uc *StaffUseCase) Create(ctx context.Context, cmd CreateStaffCommand) (*StaffView, error) {
	staff, err := identity.NewStaff(cmd.Code, cmd.Name, cmd.Email, cmd.Mobile)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Save(ctx, staff); err != nil {
		uc.logger.Errorw("failed to save staff member", "error", err, "code", staff.Code())
		return nil, err
	}

	uc.logger.Infow("staff member created", "staff_id", staff.ID(), "code", staff.Code())
	return staffView(staff), nil
}

func (uc *StaffUseCase) Update(ctx context.Context, id uint, cmd UpdateStaffCommand) (*StaffView, error) {
	staff, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := staff.Update(cmd.Name, cmd.Email, cmd.Mobile); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, staff); err != nil {
		uc.logger.Errorw("failed to update staff member", "error", err, "staff_id", id)
		return nil, err
	}

	uc.logger.Infow("staff member updated", "staff_id", id)
	return staffView(staff), nil
}

func (uc *StaffUseCase) Deactivate(ctx context.Context, id uint) error {
	staff, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	staff.Deactivate()

	if err := uc.repo.Update(ctx, staff); err != nil {
		uc.logger.Errorw("failed to deactivate staff member", "error", err, "staff_id", id)
		return err
	}

	uc.logger.Infow("staff member deactivated", "staff_id", id)
	return nil
}

func (uc *StaffUseCase) Activate(ctx context.Context, id uint) error {
	staff, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	staff.Activate()

	if err := uc.repo.Update(ctx, staff); err != nil {
		uc.logger.Errorw("failed to activate staff member", "error", err, "staff_id", id)
		return err
	}

	uc.logger.Infow("staff member activated", "staff_id", id)
	return nil
}

func (uc *StaffUseCase) Get(ctx context.Context, id uint) (*StaffView, error) {
	staff, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return staffView(staff), nil
}

func (uc *StaffUseCase) List(ctx context.Context, query ListStaffQuery) (*ListStaffResult, error) {
	filter := identity.StaffFilter{
		IsActive: query.IsActive,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Name != "" {
		filter.Name = &query.Name
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	staff, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list staff", "error", err)
		return nil, errors.NewInternalError("failed to list staff")
	}

	result := &ListStaffResult{
		Staff:    make([]*StaffView, 0, len(staff)),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	if result.Page < 1 {
		result.Page = 1
	}
	for _, s := range staff {
		result.Staff = append(result.Staff, staffView(s))
	}
	return result, nil
}

func staffView(staff *identity.Staff) *StaffView {
	return &StaffView{
		ID:        staff.ID(),
		Code:      staff.Code(),
		Name:      staff.Name(),
		Email:     staff.Email(),
		Mobile:    staff.Mobile(),
		IsActive:  staff.IsActive(),
		CreatedAt: staff.CreatedAt().Format(time.RFC3339),
		UpdatedAt: staff.UpdatedAt().Format(time.RFC3339),
	}
}
