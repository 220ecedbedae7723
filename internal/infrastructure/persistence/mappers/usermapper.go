package mappers

import (
	"servicedesk/internal/domain/identity"
	"servicedesk/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between identity domain entities and
// persistence models.
type UserMapper interface {
	ToModel(user *identity.User) *models.UserModel
	ToDomain(model *models.UserModel) (*identity.User, error)
	RoleToDomain(model *models.RoleModel) (*identity.Role, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(user *identity.User) *models.UserModel {
	return &models.UserModel{
		ID:           user.ID(),
		Username:     user.Username(),
		Email:        user.Email(),
		PasswordHash: user.PasswordHash(),
		DisplayName:  user.DisplayName(),
		IsActive:     user.IsActive(),
		LastLoginAt:  user.LastLoginAt(),
		CreatedAt:    user.CreatedAt(),
		UpdatedAt:    user.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*identity.User, error) {
	return identity.ReconstructUser(
		model.ID,
		model.Username,
		model.Email,
		model.PasswordHash,
		model.DisplayName,
		model.IsActive,
		model.LastLoginAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *UserMapperImpl) RoleToDomain(model *models.RoleModel) (*identity.Role, error) {
	return identity.ReconstructRole(model.ID, model.Name, model.CreatedAt)
}
