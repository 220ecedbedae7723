package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicedesk/internal/application/request/usecases"
	"servicedesk/internal/interfaces/http/handlers/testutil"
	"servicedesk/internal/shared/authorization"
	"servicedesk/internal/shared/errors"
)

type mockTechnicianResolveUC struct {
	result *usecases.TechnicianResolveResult
	err    error
	cmd    usecases.TechnicianResolveCommand
}

func (m *mockTechnicianResolveUC) Execute(_ context.Context, cmd usecases.TechnicianResolveCommand) (*usecases.TechnicianResolveResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockTechnicianDashboardUC struct {
	result *usecases.DashboardResult
	err    error
}

func (m *mockTechnicianDashboardUC) Execute(_ context.Context, _ usecases.TechnicianDashboardQuery) (*usecases.DashboardResult, error) {
	return m.result, m.err
}

func newTestTechnicianHandler(listUC usecases.ListRequestsExecutor, resolveUC usecases.TechnicianResolveExecutor, dashboardUC usecases.TechnicianDashboardExecutor) *TechnicianHandler {
	return NewTechnicianHandler(listUC, nil, resolveUC, dashboardUC, testutil.NewMockLogger())
}

func technicianAuthContext() (uint, []string, *uint) {
	staffID := uint(7)
	return 5, []string{authorization.RoleTechnician.String()}, &staffID
}

func TestTechnicianHandler_ResolveRequest_Success(t *testing.T) {
	mockUC := &mockTechnicianResolveUC{
		result: &usecases.TechnicianResolveResult{RequestID: 1, Number: "SR-20260830-0002", Status: "RESOLVED"},
	}
	handler := newTestTechnicianHandler(nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/requests/1/resolve", nil)
	userID, roles, staffID := technicianAuthContext()
	testutil.SetAuthContext(c, userID, roles, staffID)
	testutil.SetURLParam(c, "id", "1")

	handler.ResolveRequest(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Request resolved successfully", resp.Message)

	assert.Equal(t, uint(1), mockUC.cmd.RequestID)
	require.NotNil(t, mockUC.cmd.ActorStaffID)
	assert.Equal(t, uint(7), *mockUC.cmd.ActorStaffID)
}

func TestTechnicianHandler_ResolveRequest_CriticalRefused(t *testing.T) {
	mockUC := &mockTechnicianResolveUC{
		err: errors.NewValidationError("Critical requests must be resolved by HOD"),
	}
	handler := newTestTechnicianHandler(nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/requests/1/resolve", nil)
	userID, roles, staffID := technicianAuthContext()
	testutil.SetAuthContext(c, userID, roles, staffID)
	testutil.SetURLParam(c, "id", "1")

	handler.ResolveRequest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Critical requests must be resolved by HOD", resp.Error.Message)
}

func TestTechnicianHandler_ResolveRequest_NotAssignedToActor(t *testing.T) {
	mockUC := &mockTechnicianResolveUC{
		err: errors.NewForbiddenError("request is not assigned to you"),
	}
	handler := newTestTechnicianHandler(nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/requests/1/resolve", nil)
	userID, roles, staffID := technicianAuthContext()
	testutil.SetAuthContext(c, userID, roles, staffID)
	testutil.SetURLParam(c, "id", "1")

	handler.ResolveRequest(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTechnicianHandler_ListAssigned_Scope(t *testing.T) {
	mockUC := &mockListRequestsUC{result: &usecases.ListRequestsResult{Page: 1}}
	handler := newTestTechnicianHandler(mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/requests", nil)
	userID, roles, staffID := technicianAuthContext()
	testutil.SetAuthContext(c, userID, roles, staffID)

	handler.ListAssigned(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ScopeAssigned, mockUC.query.Scope)
}

func TestTechnicianHandler_Dashboard(t *testing.T) {
	mockUC := &mockTechnicianDashboardUC{result: &usecases.DashboardResult{Total: 1}}
	handler := newTestTechnicianHandler(nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/dashboard", nil)
	userID, roles, staffID := technicianAuthContext()
	testutil.SetAuthContext(c, userID, roles, staffID)

	handler.Dashboard(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
