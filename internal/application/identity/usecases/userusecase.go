package usecases

import (
	"context"
	"time"

	"servicedesk/internal/domain/identity"
	"servicedesk/internal/shared/db"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

// PasswordHasher derives the stored hash for a new or changed password.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type CreateUserCommand struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	RoleIDs     []uint `json:"role_ids" binding:"required,min=1"`
	StaffID     *uint  `json:"staff_id"`
}

type UpdateUserCommand struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
	RoleIDs     []uint `json:"role_ids" binding:"required,min=1"`
	StaffID     *uint  `json:"staff_id"`
}

type UserView struct {
	ID          uint     `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	DisplayName string   `json:"display_name"`
	IsActive    bool     `json:"is_active"`
	Roles       []string `json:"roles"`
	StaffID     *uint    `json:"staff_id,omitempty"`
	LastLoginAt *string  `json:"last_login_at,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type ListUsersQuery struct {
	Username string
	RoleName string
	IsActive *bool
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users    []*UserView `json:"users"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

type RoleView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// UserUseCase manages login accounts: credentials, role grants and the
// optional staff link. A staff record can back at most one account, so
// linking verifies the target staff is free before the write.
type UserUseCase struct {
	userRepo   identity.UserRepository
	roleRepo   identity.RoleRepository
	staffRepo  identity.StaffRepository
	hasher     PasswordHasher
	transactor db.Transactor
	logger     logger.Interface
}

func NewUserUseCase(
	userRepo identity.UserRepository,
	roleRepo identity.RoleRepository,
	staffRepo identity.StaffRepository,
	hasher PasswordHasher,
	transactor db.Transactor,
	logger logger.Interface,
) *UserUseCase {
	return &UserUseCase{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		staffRepo:  staffRepo,
		hasher:     hasher,
		transactor: transactor,
		logger:     logger,
	}
}

func (uc *UserUseCase) Create(ctx context.Context, cmd CreateUserCommand) (*UserView, error) {
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}
	if err := uc.checkRoles(ctx, cmd.RoleIDs); err != nil {
		return nil, err
	}
	if err := uc.checkStaffLink(ctx, cmd.StaffID, 0); err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	user, err := identity.NewUser(cmd.Username, cmd.Email, hash, cmd.DisplayName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.transactor.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Save(txCtx, user); err != nil {
			return err
		}
		if err := uc.userRepo.ReplaceRoles(txCtx, user.ID(), cmd.RoleIDs); err != nil {
			return err
		}
		if cmd.StaffID != nil {
			return uc.userRepo.ReplaceStaffLink(txCtx, user.ID(), cmd.StaffID)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create user", "error", err, "username", cmd.Username)
		return nil, err
	}

	uc.logger.Infow("user created", "user_id", user.ID(), "username", user.Username())
	return uc.view(ctx, user)
}

func (uc *UserUseCase) Update(ctx context.Context, id uint, cmd UpdateUserCommand) (*UserView, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.checkRoles(ctx, cmd.RoleIDs); err != nil {
		return nil, err
	}
	if err := uc.checkStaffLink(ctx, cmd.StaffID, id); err != nil {
		return nil, err
	}

	user.UpdateProfile(cmd.Email, cmd.DisplayName)
	if cmd.Password != "" {
		if len(cmd.Password) < 8 {
			return nil, errors.NewValidationError("password must be at least 8 characters")
		}
		hash, err := uc.hasher.Hash(cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to hash password")
		}
		if err := user.ChangePasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	err = uc.transactor.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Update(txCtx, user); err != nil {
			return err
		}
		if err := uc.userRepo.ReplaceRoles(txCtx, user.ID(), cmd.RoleIDs); err != nil {
			return err
		}
		return uc.userRepo.ReplaceStaffLink(txCtx, user.ID(), cmd.StaffID)
	})
	if err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", id)
		return nil, err
	}

	uc.logger.Infow("user updated", "user_id", id)
	return uc.view(ctx, user)
}

// Deactivate soft-deletes the account; the row and its audit references stay.
func (uc *UserUseCase) Deactivate(ctx context.Context, id uint) error {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	user.Deactivate()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		uc.logger.Errorw("failed to deactivate user", "error", err, "user_id", id)
		return err
	}

	uc.logger.Infow("user deactivated", "user_id", id)
	return nil
}

func (uc *UserUseCase) Get(ctx context.Context, id uint) (*UserView, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.view(ctx, user)
}

func (uc *UserUseCase) List(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	filter := identity.UserFilter{
		IsActive: query.IsActive,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Username != "" {
		filter.Username = &query.Username
	}
	if query.RoleName != "" {
		filter.RoleName = &query.RoleName
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	result := &ListUsersResult{
		Users:    make([]*UserView, 0, len(users)),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	if result.Page < 1 {
		result.Page = 1
	}
	for _, user := range users {
		view, err := uc.view(ctx, user)
		if err != nil {
			return nil, err
		}
		result.Users = append(result.Users, view)
	}
	return result, nil
}

func (uc *UserUseCase) ListRoles(ctx context.Context) ([]*RoleView, error) {
	roles, err := uc.roleRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list roles", "error", err)
		return nil, errors.NewInternalError("failed to list roles")
	}

	views := make([]*RoleView, 0, len(roles))
	for _, role := range roles {
		views = append(views, &RoleView{ID: role.ID(), Name: role.Name().String()})
	}
	return views, nil
}

func (uc *UserUseCase) checkRoles(ctx context.Context, roleIDs []uint) error {
	if len(roleIDs) == 0 {
		return errors.NewValidationError("at least one role is required")
	}
	for _, roleID := range roleIDs {
		if _, err := uc.roleRepo.GetByID(ctx, roleID); err != nil {
			return err
		}
	}
	return nil
}

// checkStaffLink enforces the one-account-per-staff rule. selfID is the user
// being edited, so keeping an existing link is not a conflict.
func (uc *UserUseCase) checkStaffLink(ctx context.Context, staffID *uint, selfID uint) error {
	if staffID == nil {
		return nil
	}
	if _, err := uc.staffRepo.GetByID(ctx, *staffID); err != nil {
		return err
	}

	linkedUserID, err := uc.userRepo.GetUserIDByStaffID(ctx, *staffID)
	if err != nil {
		return errors.NewInternalError("failed to check staff link")
	}
	if linkedUserID != nil && *linkedUserID != selfID {
		return errors.NewConflictError("staff member is already linked to another user")
	}
	return nil
}

func (uc *UserUseCase) view(ctx context.Context, user *identity.User) (*UserView, error) {
	roles, err := uc.userRepo.GetRoleNames(ctx, user.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to load user roles")
	}
	staffID, err := uc.userRepo.GetStaffID(ctx, user.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to load staff link")
	}

	view := &UserView{
		ID:          user.ID(),
		Username:    user.Username(),
		Email:       user.Email(),
		DisplayName: user.DisplayName(),
		IsActive:    user.IsActive(),
		Roles:       roles,
		StaffID:     staffID,
		CreatedAt:   user.CreatedAt().Format(time.RFC3339),
		UpdatedAt:   user.UpdatedAt().Format(time.RFC3339),
	}
	if user.LastLoginAt() != nil {
		formatted := user.LastLoginAt().Format(time.RFC3339)
		view.LastLoginAt = &formatted
	}
	return view, nil
}
