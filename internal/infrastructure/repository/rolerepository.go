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

type RoleRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewRoleRepository(database *gorm.DB) *RoleRepository {
	return &RoleRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *RoleRepository) List(ctx context.Context) ([]*identity.Role, error) {
	var rows []models.RoleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	roles := make([]*identity.Role, 0, len(rows))
	for i := range rows {
		role, err := r.mapper.RoleToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}

	return roles, nil
}

func (r *RoleRepository) GetByID(ctx context.Context, id uint) (*identity.Role, error) {
	var model models.RoleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("role")
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}

	return r.mapper.RoleToDomain(&model)
}

func (r *RoleRepository) GetByName(ctx context.Context, name string) (*identity.Role, error) {
	var model models.RoleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("role")
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}

	return r.mapper.RoleToDomain(&model)
}
