package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servicedesk/internal/application/request/usecases"
	"servicedesk/internal/shared/logger"
	"servicedesk/internal/shared/utils"
)

// TechnicianHandler serves the technician area: assigned work and the
// technician resolution path.
type TechnicianHandler struct {
	listUC      usecases.ListRequestsExecutor
	getUC       usecases.GetRequestExecutor
	resolveUC   usecases.TechnicianResolveExecutor
	dashboardUC usecases.TechnicianDashboardExecutor
	logger      logger.Interface
}

func NewTechnicianHandler(
	listUC usecases.ListRequestsExecutor,
	getUC usecases.GetRequestExecutor,
	resolveUC usecases.TechnicianResolveExecutor,
	dashboardUC usecases.TechnicianDashboardExecutor,
	logger logger.Interface,
) *TechnicianHandler {
	return &TechnicianHandler{
		listUC:      listUC,
		getUC:       getUC,
		resolveUC:   resolveUC,
		dashboardUC: dashboardUC,
		logger:      logger,
	}
}

// ListAssigned handles GET /api/technician/requests
func (h *TechnicianHandler) ListAssigned(c *gin.Context) {
	page, pageSize := parsePage(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListRequestsQuery{
		Scope:        usecases.ScopeAssigned,
		Status:       c.Query("status"),
		Page:         page,
		PageSize:     pageSize,
		ActorUserID:  actorUserID(c),
		ActorStaffID: actorStaffID(c),
		ActorRoles:   actorRoles(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetRequest handles GET /api/technician/requests/:id
func (h *TechnicianHandler) GetRequest(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetRequestQuery{
		RequestID:    id,
		Scope:        usecases.ScopeAssigned,
		ActorUserID:  actorUserID(c),
		ActorStaffID: actorStaffID(c),
		ActorRoles:   actorRoles(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ResolveRequest handles POST /api/technician/requests/:id/resolve
func (h *TechnicianHandler) ResolveRequest(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.resolveUC.Execute(c.Request.Context(), usecases.TechnicianResolveCommand{
		RequestID:    id,
		ActorUserID:  actorUserID(c),
		ActorStaffID: actorStaffID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request resolved successfully", result)
}

// Dashboard handles GET /api/technician/dashboard
func (h *TechnicianHandler) Dashboard(c *gin.Context) {
	result, err := h.dashboardUC.Execute(c.Request.Context(), usecases.TechnicianDashboardQuery{
		ActorUserID:  actorUserID(c),
		ActorStaffID: actorStaffID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
