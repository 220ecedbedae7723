package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"servicedesk/internal/domain/identity"
	"servicedesk/internal/infrastructure/persistence/mappers"
	"servicedesk/internal/infrastructure/persistence/models"
	"servicedesk/internal/shared/db"
	apperrors "servicedesk/internal/shared/errors"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, user *identity.User) error {
	model := r.mapper.ToModel(user)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("username already exists")
		}
		return fmt.Errorf("failed to save user: %w", err)
	}

	return user.SetID(model.ID)
}

func (r *UserRepository) Update(ctx context.Context, user *identity.User) error {
	model := r.mapper.ToModel(user)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"email":         model.Email,
			"password_hash": model.PasswordHash,
			"display_name":  model.DisplayName,
			"is_active":     model.IsActive,
			"last_login_at": model.LastLoginAt,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*identity.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("user")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*identity.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("username = ?", username).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("user")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) List(ctx context.Context, filter identity.UserFilter) ([]*identity.User, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.UserModel{})

	if filter.Username != nil {
		query = query.Where("username LIKE ?", "%"+*filter.Username+"%")
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.RoleName != nil {
		query = query.
			Joins("JOIN user_roles ON user_roles.user_id = users.id").
			Joins("JOIN roles ON roles.id = user_roles.role_id").
			Where("roles.name = ?", *filter.RoleName)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var rows []models.UserModel
	if err := query.Order("users.id ASC").Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*identity.User, 0, len(rows))
	for i := range rows {
		user, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}

	return users, total, nil
}

func (r *UserRepository) GetRoleNames(ctx context.Context, userID uint) ([]string, error) {
	var names []string
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.UserRoleModel{}).
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("user_roles.user_id = ?", userID).
		Order("roles.id ASC").
		Pluck("roles.name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to get user roles: %w", err)
	}

	return names, nil
}

// ReplaceRoles deletes every grant for the user and recreates the given set
// with the current time as the grant date. Run inside a transaction.
func (r *UserRepository) ReplaceRoles(ctx context.Context, userID uint, roleIDs []uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).Delete(&models.UserRoleModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear user roles: %w", err)
	}

	now := time.Now()
	for _, roleID := range roleIDs {
		grant := models.UserRoleModel{UserID: userID, RoleID: roleID, FromDate: now}
		if err := tx.Create(&grant).Error; err != nil {
			return fmt.Errorf("failed to grant role %d: %w", roleID, err)
		}
	}

	return nil
}

func (r *UserRepository) GetStaffID(ctx context.Context, userID uint) (*uint, error) {
	var link models.UserStaffModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).First(&link).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get staff link: %w", err)
	}

	return &link.StaffID, nil
}

func (r *UserRepository) GetUserIDByStaffID(ctx context.Context, staffID uint) (*uint, error) {
	var link models.UserStaffModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("staff_id = ?", staffID).First(&link).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get staff link: %w", err)
	}

	return &link.UserID, nil
}

// ReplaceStaffLink removes any existing link for the user and creates a new
// one when staffID is non-nil. Run inside a transaction.
func (r *UserRepository) ReplaceStaffLink(ctx context.Context, userID uint, staffID *uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).Delete(&models.UserStaffModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear staff link: %w", err)
	}

	if staffID == nil {
		return nil
	}

	link := models.UserStaffModel{UserID: userID, StaffID: *staffID, CreatedAt: time.Now()}
	if err := tx.Create(&link).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("staff member is already linked to another user")
		}
		return fmt.Errorf("failed to create staff link: %w", err)
	}

	return nil
}
