package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicedesk/internal/domain/identity"
	apperrors "servicedesk/internal/shared/errors"
)

func uintPtr(v uint) *uint { return &v }

func roleRepoWithRoles(t *testing.T) *mockRoleRepository {
	t.Helper()
	return &mockRoleRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*identity.Role, error) {
			names := map[uint]string{1: "ADMIN", 2: "REQUESTOR", 3: "TECHNICIAN", 4: "HOD"}
			name, ok := names[id]
			if !ok {
				return nil, apperrors.NewNotFoundError("role")
			}
			role, err := identity.ReconstructRole(id, name, time.Now())
			require.NoError(t, err)
			return role, nil
		},
	}
}

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a user with roles and staff link", func(t *testing.T) {
		var roleIDs []uint
		var linkedStaff *uint
		userRepo := &mockUserRepository{
			SaveFunc: func(ctx context.Context, user *identity.User) error {
				return user.SetID(10)
			},
			ReplaceRolesFunc: func(ctx context.Context, userID uint, ids []uint) error {
				roleIDs = ids
				return nil
			},
			ReplaceStaffLinkFunc: func(ctx context.Context, userID uint, staffID *uint) error {
				linkedStaff = staffID
				return nil
			},
			GetRoleNamesFunc: func(ctx context.Context, userID uint) ([]string, error) {
				return []string{"TECHNICIAN"}, nil
			},
			GetStaffIDFunc: func(ctx context.Context, userID uint) (*uint, error) {
				return uintPtr(7), nil
			},
		}
		staffRepo := &mockStaffRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*identity.Staff, error) {
				staff, err := identity.ReconstructStaff(id, "EMP-007", "Jordan Lee", "", "", true, time.Now(), time.Now())
				require.NoError(t, err)
				return staff, nil
			},
		}

		uc := NewUserUseCase(userRepo, roleRepoWithRoles(t), staffRepo, &mockHasher{}, &mockTransactor{}, &mockLogger{})

		view, err := uc.Create(ctx, CreateUserCommand{
			Username:    "jlee",
			Password:    "s3cretpass",
			DisplayName: "Jordan Lee",
			RoleIDs:     []uint{3},
			StaffID:     uintPtr(7),
		})

		require.NoError(t, err)
		assert.Equal(t, uint(10), view.ID)
		assert.Equal(t, []string{"TECHNICIAN"}, view.Roles)
		assert.Equal(t, []uint{3}, roleIDs)
		require.NotNil(t, linkedStaff)
		assert.Equal(t, uint(7), *linkedStaff)
	})

	t.Run("refuses a staff record already linked to another user", func(t *testing.T) {
		userRepo := &mockUserRepository{
			GetUserIDByStaffIDFunc: func(ctx context.Context, staffID uint) (*uint, error) {
				return uintPtr(99), nil
			},
		}
		staffRepo := &mockStaffRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*identity.Staff, error) {
				staff, err := identity.ReconstructStaff(id, "EMP-007", "Jordan Lee", "", "", true, time.Now(), time.Now())
				require.NoError(t, err)
				return staff, nil
			},
		}

		uc := NewUserUseCase(userRepo, roleRepoWithRoles(t), staffRepo, &mockHasher{}, &mockTransactor{}, &mockLogger{})

		_, err := uc.Create(ctx, CreateUserCommand{
			Username: "jlee",
			Password: "s3cretpass",
			RoleIDs:  []uint{3},
			StaffID:  uintPtr(7),
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
		assert.ErrorContains(t, err, "already linked")
	})

	t.Run("refuses unknown roles", func(t *testing.T) {
		uc := NewUserUseCase(&mockUserRepository{}, roleRepoWithRoles(t), &mockStaffRepository{}, &mockHasher{}, &mockTransactor{}, &mockLogger{})

		_, err := uc.Create(ctx, CreateUserCommand{
			Username: "jlee",
			Password: "s3cretpass",
			RoleIDs:  []uint{42},
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("refuses short passwords", func(t *testing.T) {
		uc := NewUserUseCase(&mockUserRepository{}, roleRepoWithRoles(t), &mockStaffRepository{}, &mockHasher{}, &mockTransactor{}, &mockLogger{})

		_, err := uc.Create(ctx, CreateUserCommand{
			Username: "jlee",
			Password: "short",
			RoleIDs:  []uint{3},
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestUserUseCase_Update(t *testing.T) {
	ctx := context.Background()

	existing := func(t *testing.T) *identity.User {
		user, err := identity.ReconstructUser(10, "jlee", "old@example.com", "hash:old", "Jordan", true, nil, time.Now(), time.Now())
		require.NoError(t, err)
		return user
	}

	t.Run("keeping own staff link is not a conflict", func(t *testing.T) {
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*identity.User, error) {
				return existing(t), nil
			},
			GetUserIDByStaffIDFunc: func(ctx context.Context, staffID uint) (*uint, error) {
				return uintPtr(10), nil
			},
			GetRoleNamesFunc: func(ctx context.Context, userID uint) ([]string, error) {
				return []string{"TECHNICIAN"}, nil
			},
		}
		staffRepo := &mockStaffRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*identity.Staff, error) {
				staff, err := identity.ReconstructStaff(id, "EMP-007", "Jordan Lee", "", "", true, time.Now(), time.Now())
				require.NoError(t, err)
				return staff, nil
			},
		}

		uc := NewUserUseCase(userRepo, roleRepoWithRoles(t), staffRepo, &mockHasher{}, &mockTransactor{}, &mockLogger{})

		view, err := uc.Update(ctx, 10, UpdateUserCommand{
			Email:       "new@example.com",
			DisplayName: "Jordan Lee",
			RoleIDs:     []uint{3},
			StaffID:     uintPtr(7),
		})

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", view.Email)
	})

	t.Run("rehashes a supplied password", func(t *testing.T) {
		user := existing(t)
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*identity.User, error) {
				return user, nil
			},
		}

		uc := NewUserUseCase(userRepo, roleRepoWithRoles(t), &mockStaffRepository{}, &mockHasher{}, &mockTransactor{}, &mockLogger{})

		_, err := uc.Update(ctx, 10, UpdateUserCommand{
			RoleIDs:  []uint{3},
			Password: "newpassword",
		})

		require.NoError(t, err)
		assert.Equal(t, "hash:newpassword", user.PasswordHash())
	})
}

func TestUserUseCase_Deactivate(t *testing.T) {
	ctx := context.Background()

	user, err := identity.ReconstructUser(10, "jlee", "", "hash:x", "", true, nil, time.Now(), time.Now())
	require.NoError(t, err)

	updated := false
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*identity.User, error) {
			return user, nil
		},
		UpdateFunc: func(ctx context.Context, u *identity.User) error {
			updated = true
			return nil
		},
	}

	uc := NewUserUseCase(userRepo, &mockRoleRepository{}, &mockStaffRepository{}, &mockHasher{}, &mockTransactor{}, &mockLogger{})

	require.NoError(t, uc.Deactivate(ctx, 10))
	assert.True(t, updated)
	assert.False(t, user.IsActive())
}

func TestStaffUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a staff member", func(t *testing.T) {
		repo := &mockStaffRepository{
			SaveFunc: func(ctx context.Context, staff *identity.Staff) error {
				return staff.SetID(7)
			},
		}

		uc := NewStaffUseCase(repo, &mockLogger{})

		view, err := uc.Create(ctx, CreateStaffCommand{Code: "EMP-007", Name: "Jordan Lee", Email: "jlee@example.com"})

		require.NoError(t, err)
		assert.Equal(t, uint(7), view.ID)
		assert.Equal(t, "EMP-007", view.Code)
		assert.True(t, view.IsActive)
	})

	t.Run("surfaces duplicate staff codes", func(t *testing.T) {
		repo := &mockStaffRepository{
			SaveFunc: func(ctx context.Context, staff *identity.Staff) error {
				return apperrors.NewConflictError("staff code already exists")
			},
		}

		uc := NewStaffUseCase(repo, &mockLogger{})

		_, err := uc.Create(ctx, CreateStaffCommand{Code: "EMP-007", Name: "Jordan Lee"})

		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("update edits contact fields but not the code", func(t *testing.T) {
		staff, err := identity.ReconstructStaff(7, "EMP-007", "Jordan Lee", "old@example.com", "", true, time.Now(), time.Now())
		require.NoError(t, err)
		repo := &mockStaffRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*identity.Staff, error) {
				return staff, nil
			},
		}

		uc := NewStaffUseCase(repo, &mockLogger{})

		view, err := uc.Update(ctx, 7, UpdateStaffCommand{Name: "Jordan A. Lee", Email: "new@example.com", Mobile: "555-0101"})

		require.NoError(t, err)
		assert.Equal(t, "EMP-007", view.Code)
		assert.Equal(t, "Jordan A. Lee", view.Name)
		assert.Equal(t, "new@example.com", view.Email)
	})

	t.Run("deactivate keeps the record", func(t *testing.T) {
		staff, err := identity.ReconstructStaff(7, "EMP-007", "Jordan Lee", "", "", true, time.Now(), time.Now())
		require.NoError(t, err)
		repo := &mockStaffRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*identity.Staff, error) {
				return staff, nil
			},
		}

		uc := NewStaffUseCase(repo, &mockLogger{})

		require.NoError(t, uc.Deactivate(ctx, 7))
		assert.False(t, staff.IsActive())
	})
}
