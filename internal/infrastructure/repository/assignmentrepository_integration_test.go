package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"servicedesk/internal/domain/assignment"
	"servicedesk/internal/infrastructure/persistence/models"
)

func setupAssignmentDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AssignmentModel{}))
	return db
}

func seedAssignment(t *testing.T, repo *AssignmentRepository, staffID, departmentID uint, requestTypeID *uint, from time.Time) *assignment.Assignment {
	a, err := assignment.NewAssignment(staffID, departmentID, requestTypeID, from)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), a))
	return a
}

func TestAssignmentRepository_ActiveDepartmentIDs(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	lastMonth := now.AddDate(0, -1, 0)

	t.Run("returns only owner departments", func(t *testing.T) {
		db := setupAssignmentDB(t)
		repo := NewAssignmentRepository(db)

		requestTypeID := uint(7)
		seedAssignment(t, repo, 1, 10, nil, lastMonth)
		seedAssignment(t, repo, 1, 20, &requestTypeID, lastMonth)

		ids, err := repo.ActiveDepartmentIDs(ctx, 1, now)
		require.NoError(t, err)
		assert.Equal(t, []uint{10}, ids)
	})

	t.Run("technician-only staff heads no department", func(t *testing.T) {
		db := setupAssignmentDB(t)
		repo := NewAssignmentRepository(db)

		requestTypeID := uint(7)
		seedAssignment(t, repo, 2, 10, &requestTypeID, lastMonth)

		ids, err := repo.ActiveDepartmentIDs(ctx, 2, now)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("ended owner rows are excluded", func(t *testing.T) {
		db := setupAssignmentDB(t)
		repo := NewAssignmentRepository(db)

		a := seedAssignment(t, repo, 3, 10, nil, lastMonth)
		require.NoError(t, a.End(now.AddDate(0, 0, -1)))
		require.NoError(t, repo.Update(ctx, a))
		seedAssignment(t, repo, 3, 20, nil, lastMonth)

		ids, err := repo.ActiveDepartmentIDs(ctx, 3, now)
		require.NoError(t, err)
		assert.Equal(t, []uint{20}, ids)
	})
}

func TestAssignmentRepository_HasActiveOverlap(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	lastMonth := now.AddDate(0, -1, 0)

	t.Run("owner and technician rows do not overlap each other", func(t *testing.T) {
		db := setupAssignmentDB(t)
		repo := NewAssignmentRepository(db)

		seedAssignment(t, repo, 1, 10, nil, lastMonth)

		requestTypeID := uint(7)
		overlap, err := repo.HasActiveOverlap(ctx, 1, 10, &requestTypeID, now)
		require.NoError(t, err)
		assert.False(t, overlap)

		overlap, err = repo.HasActiveOverlap(ctx, 1, 10, nil, now)
		require.NoError(t, err)
		assert.True(t, overlap)
	})
}
