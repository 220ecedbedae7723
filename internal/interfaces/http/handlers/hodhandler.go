package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servicedesk/internal/application/request/usecases"
	"servicedesk/internal/shared/logger"
	"servicedesk/internal/shared/utils"
)

type AssignRequestBody struct {
	TechnicianStaffID uint `json:"technician_staff_id" binding:"required"`
}

// HODHandler serves the department head area: triage of the department's
// queue, the approval transitions and team oversight.
type HODHandler struct {
	listUC      usecases.ListRequestsExecutor
	getUC       usecases.GetRequestExecutor
	downloadUC  usecases.DownloadAttachmentExecutor
	assignUC    usecases.AssignRequestExecutor
	resolveUC   usecases.ResolveRequestExecutor
	rejectUC    usecases.RejectRequestExecutor
	closeUC     usecases.CloseRequestExecutor
	dashboardUC usecases.HODDashboardExecutor
	workloadUC  usecases.TeamWorkloadExecutor
	logger      logger.Interface
}

func NewHODHandler(
	listUC usecases.ListRequestsExecutor,
	getUC usecases.GetRequestExecutor,
	downloadUC usecases.DownloadAttachmentExecutor,
	assignUC usecases.AssignRequestExecutor,
	resolveUC usecases.ResolveRequestExecutor,
	rejectUC usecases.RejectRequestExecutor,
	closeUC usecases.CloseRequestExecutor,
	dashboardUC usecases.HODDashboardExecutor,
	workloadUC usecases.TeamWorkloadExecutor,
	logger logger.Interface,
) *HODHandler {
	return &HODHandler{
		listUC:      listUC,
		getUC:       getUC,
		downloadUC:  downloadUC,
		assignUC:    assignUC,
		resolveUC:   resolveUC,
		rejectUC:    rejectUC,
		closeUC:     closeUC,
		dashboardUC: dashboardUC,
		workloadUC:  workloadUC,
		logger:      logger,
	}
}

// ListDepartmentRequests handles GET /api/hod/requests
func (h *HODHandler) ListDepartmentRequests(c *gin.Context) {
	page, pageSize := parsePage(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListRequestsQuery{
		Scope:        usecases.ScopeDepartment,
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

// GetRequest handles GET /api/hod/requests/:id
func (h *HODHandler) GetRequest(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetRequestQuery{
		RequestID:    id,
		Scope:        usecases.ScopeDepartment,
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

// DownloadAttachment handles GET /api/hod/requests/:id/attachments/:attachment_id
func (h *HODHandler) DownloadAttachment(c *gin.Context) {
	serveAttachment(c, h.downloadUC, usecases.ScopeDepartment)
}

// AssignRequest handles POST /api/hod/requests/:id/assign
func (h *HODHandler) AssignRequest(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var body AssignRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warnw("invalid request body for assign", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "technician staff ID is required")
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignRequestCommand{
		RequestID:         id,
		TechnicianStaffID: body.TechnicianStaffID,
		ActorUserID:       actorUserID(c),
		ActorStaffID:      actorStaffID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request assigned successfully", result)
}

// ResolveRequest handles POST /api/hod/requests/:id/resolve
func (h *HODHandler) ResolveRequest(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.resolveUC.Execute(c.Request.Context(), usecases.ResolveRequestCommand{
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

// RejectRequest handles POST /api/hod/requests/:id/reject
func (h *HODHandler) RejectRequest(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.rejectUC.Execute(c.Request.Context(), usecases.RejectRequestCommand{
		RequestID:    id,
		ActorUserID:  actorUserID(c),
		ActorStaffID: actorStaffID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request rejected", result)
}

// CloseRequest handles POST /api/hod/requests/:id/close
func (h *HODHandler) CloseRequest(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.closeUC.Execute(c.Request.Context(), usecases.CloseRequestCommand{
		RequestID:    id,
		ActorUserID:  actorUserID(c),
		ActorStaffID: actorStaffID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request closed", result)
}

// Dashboard handles GET /api/hod/dashboard
func (h *HODHandler) Dashboard(c *gin.Context) {
	result, err := h.dashboardUC.Execute(c.Request.Context(), usecases.HODDashboardQuery{
		ActorUserID:  actorUserID(c),
		ActorStaffID: actorStaffID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// TeamWorkload handles GET /api/hod/team. The result doubles as the
// technician picker for the assign form.
func (h *HODHandler) TeamWorkload(c *gin.Context) {
	result, err := h.workloadUC.Execute(c.Request.Context(), usecases.TeamWorkloadQuery{
		ActorUserID:  actorUserID(c),
		ActorStaffID: actorStaffID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
