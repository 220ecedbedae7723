package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/identity"
	"servicedesk/internal/domain/request"
)

func uintPtr(v uint) *uint { return &v }

func testRequest(t *testing.T, status request.Status, priority request.Priority) *request.ServiceRequest {
	t.Helper()

	var assignee, assigner *uint
	var assignedAt *time.Time
	if status != request.StatusPending {
		assignee = uintPtr(7)
		assigner = uintPtr(3)
		at := time.Now().Add(-time.Hour)
		assignedAt = &at
	}

	req, err := request.ReconstructServiceRequest(
		42, "SR-20260101-0001",
		"Printer offline", "The office printer does not respond",
		priority, status,
		5, 10, uintPtr(4),
		assignee, assigner, assignedAt,
		time.Now().Add(-2*time.Hour), time.Now().Add(-time.Hour),
	)
	require.NoError(t, err)
	return req
}

func testRequestType(t *testing.T, departmentID uint) *catalog.RequestType {
	t.Helper()

	rt, err := catalog.ReconstructRequestType(5, catalog.RequestTypeAttrs{
		Name:            "Hardware Repair",
		Description:     "Physical equipment faults",
		ServiceTypeID:   2,
		DepartmentID:    departmentID,
		DefaultPriority: request.PriorityMedium,
		IsVisible:       true,
	}, time.Now().Add(-24*time.Hour), time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	return rt
}

func testStaff(t *testing.T, id uint, active bool) *identity.Staff {
	t.Helper()

	staff, err := identity.ReconstructStaff(id, "EMP-007", "Jordan Lee", "jordan@example.com", "555-0100", active, time.Now(), time.Now())
	require.NoError(t, err)
	return staff
}

func singleDepartment(deptID uint) func(ctx context.Context, staffID uint, at time.Time) ([]uint, error) {
	return func(ctx context.Context, staffID uint, at time.Time) ([]uint, error) {
		return []uint{deptID}, nil
	}
}
