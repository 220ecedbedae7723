package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/request"
	apperrors "servicedesk/internal/shared/errors"
)

func existingDepartment(t *testing.T, id uint, name string) *catalog.Department {
	t.Helper()
	dept, err := catalog.ReconstructDepartment(id, name, "", time.Now(), time.Now())
	require.NoError(t, err)
	return dept
}

func existingServiceType(t *testing.T, id uint, name string) *catalog.ServiceType {
	t.Helper()
	st, err := catalog.ReconstructServiceType(id, name, "", time.Now(), time.Now())
	require.NoError(t, err)
	return st
}

func TestDepartmentUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a department", func(t *testing.T) {
		repo := &mockDepartmentRepository{
			SaveFunc: func(ctx context.Context, dept *catalog.Department) error {
				return dept.SetID(1)
			},
		}

		uc := NewDepartmentUseCase(repo, &mockLogger{})

		view, err := uc.Create(ctx, DepartmentCommand{Name: "IT Support", Description: "Infrastructure and devices"})

		require.NoError(t, err)
		assert.Equal(t, uint(1), view.ID)
		assert.Equal(t, "IT Support", view.Name)
	})

	t.Run("refuses a duplicate name", func(t *testing.T) {
		repo := &mockDepartmentRepository{
			GetByNameFunc: func(ctx context.Context, name string) (*catalog.Department, error) {
				return existingDepartment(t, 1, "IT Support"), nil
			},
		}

		uc := NewDepartmentUseCase(repo, &mockLogger{})

		_, err := uc.Create(ctx, DepartmentCommand{Name: "it support"})

		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("update tolerates the department keeping its own name", func(t *testing.T) {
		repo := &mockDepartmentRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Department, error) {
				return existingDepartment(t, 1, "IT Support"), nil
			},
			GetByNameFunc: func(ctx context.Context, name string) (*catalog.Department, error) {
				return existingDepartment(t, 1, "IT Support"), nil
			},
		}

		uc := NewDepartmentUseCase(repo, &mockLogger{})

		view, err := uc.Update(ctx, 1, DepartmentCommand{Name: "IT Support", Description: "Updated"})

		require.NoError(t, err)
		assert.Equal(t, "Updated", view.Description)
	})

	t.Run("update refuses a name held by another department", func(t *testing.T) {
		repo := &mockDepartmentRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Department, error) {
				return existingDepartment(t, 1, "IT Support"), nil
			},
			GetByNameFunc: func(ctx context.Context, name string) (*catalog.Department, error) {
				return existingDepartment(t, 2, "Facilities"), nil
			},
		}

		uc := NewDepartmentUseCase(repo, &mockLogger{})

		_, err := uc.Update(ctx, 1, DepartmentCommand{Name: "Facilities"})

		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("delete surfaces repository errors", func(t *testing.T) {
		repo := &mockDepartmentRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				return apperrors.NewBadRequestError("department is referenced by other records and cannot be deleted")
			},
		}

		uc := NewDepartmentUseCase(repo, &mockLogger{})

		err := uc.Delete(ctx, 1)

		require.Error(t, err)
		assert.ErrorContains(t, err, "cannot be deleted")
	})
}

func TestRequestTypeUseCase(t *testing.T) {
	ctx := context.Background()

	serviceTypeRepo := &mockServiceTypeRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.ServiceType, error) {
			return existingServiceType(t, id, "Hardware"), nil
		},
	}
	departmentRepo := &mockDepartmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Department, error) {
			return existingDepartment(t, id, "IT Support"), nil
		},
	}

	cmd := RequestTypeCommand{
		Name:            "Laptop Repair",
		ServiceTypeID:   2,
		DepartmentID:    9,
		DefaultPriority: "medium",
		IsVisible:       true,
	}

	t.Run("creates a request type with canonical priority", func(t *testing.T) {
		var saved *catalog.RequestType
		repo := &mockRequestTypeRepository{
			SaveFunc: func(ctx context.Context, rt *catalog.RequestType) error {
				saved = rt
				return rt.SetID(5)
			},
		}

		uc := NewRequestTypeUseCase(repo, serviceTypeRepo, departmentRepo, &mockLogger{})

		view, err := uc.Create(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, uint(5), view.ID)
		assert.Equal(t, request.PriorityMedium.String(), view.DefaultPriority)
		require.NotNil(t, saved)
		assert.True(t, saved.IsVisible())
	})

	t.Run("refuses an unknown department", func(t *testing.T) {
		missingDeptRepo := &mockDepartmentRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Department, error) {
				return nil, apperrors.NewNotFoundError("department")
			},
		}

		uc := NewRequestTypeUseCase(&mockRequestTypeRepository{}, serviceTypeRepo, missingDeptRepo, &mockLogger{})

		_, err := uc.Create(ctx, cmd)

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("refuses an unknown priority", func(t *testing.T) {
		uc := NewRequestTypeUseCase(&mockRequestTypeRepository{}, serviceTypeRepo, departmentRepo, &mockLogger{})

		bad := cmd
		bad.DefaultPriority = "Urgent"
		_, err := uc.Create(ctx, bad)

		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestStatusRefUseCase_Update(t *testing.T) {
	ctx := context.Background()

	status, err := catalog.ReconstructStatusRef(3, "RESOLVED", "Work completed", true, time.Now(), time.Now())
	require.NoError(t, err)

	var updated *catalog.StatusRef
	repo := &mockStatusRefRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.StatusRef, error) {
			return status, nil
		},
		UpdateFunc: func(ctx context.Context, s *catalog.StatusRef) error {
			updated = s
			return nil
		},
	}

	uc := NewStatusRefUseCase(repo, &mockLogger{})

	view, err := uc.Update(ctx, 3, StatusRefCommand{Description: "Awaiting closure", IsActive: false})

	require.NoError(t, err)
	assert.Equal(t, "RESOLVED", view.Name)
	assert.Equal(t, "Awaiting closure", view.Description)
	assert.False(t, view.IsActive)
	require.NotNil(t, updated)
	assert.False(t, updated.IsActive())
}
