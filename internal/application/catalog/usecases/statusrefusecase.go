package usecases

import (
	"context"
	"time"

	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

type StatusRefCommand struct {
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

type StatusRefView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// StatusRefUseCase manages the seeded status reference rows. Names are the
// canonical lifecycle statuses and cannot be renamed or added to; only the
// description and active flag are editable.
type StatusRefUseCase struct {
	repo   catalog.StatusRefRepository
	logger logger.Interface
}

func NewStatusRefUseCase(repo catalog.StatusRefRepository, logger logger.Interface) *StatusRefUseCase {
	return &StatusRefUseCase{repo: repo, logger: logger}
}

func (uc *StatusRefUseCase) Update(ctx context.Context, id uint, cmd StatusRefCommand) (*StatusRefView, error) {
	status, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status.Update(cmd.Description, cmd.IsActive)

	if err := uc.repo.Update(ctx, status); err != nil {
		uc.logger.Errorw("failed to update status", "error", err, "status_id", id)
		return nil, err
	}

	uc.logger.Infow("status updated", "status_id", id, "name", status.Name().String())
	return statusRefView(status), nil
}

func (uc *StatusRefUseCase) Get(ctx context.Context, id uint) (*StatusRefView, error) {
	status, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return statusRefView(status), nil
}

func (uc *StatusRefUseCase) List(ctx context.Context) ([]*StatusRefView, error) {
	statuses, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list statuses", "error", err)
		return nil, errors.NewInternalError("failed to list statuses")
	}

	views := make([]*StatusRefView, 0, len(statuses))
	for _, status := range statuses {
		views = append(views, statusRefView(status))
	}
	return views, nil
}

func statusRefView(status *catalog.StatusRef) *StatusRefView {
	return &StatusRefView{
		ID:          status.ID(),
		Name:        status.Name().String(),
		Description: status.Description(),
		IsActive:    status.IsActive(),
		CreatedAt:   status.CreatedAt().Format(time.RFC3339),
		UpdatedAt:   status.UpdatedAt().Format(time.RFC3339),
	}
}
