package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servicedesk/internal/application/request/usecases"
	"servicedesk/internal/shared/logger"
	"servicedesk/internal/shared/utils"
)

// AdminRequestHandler gives administrators a read-only view over every
// request regardless of department or lifecycle state.
type AdminRequestHandler struct {
	listUC usecases.ListRequestsExecutor
	getUC  usecases.GetRequestExecutor
	logger logger.Interface
}

func NewAdminRequestHandler(
	listUC usecases.ListRequestsExecutor,
	getUC usecases.GetRequestExecutor,
	logger logger.Interface,
) *AdminRequestHandler {
	return &AdminRequestHandler{
		listUC: listUC,
		getUC:  getUC,
		logger: logger,
	}
}

// ListRequests handles GET /api/admin/requests
func (h *AdminRequestHandler) ListRequests(c *gin.Context) {
	page, pageSize := parsePage(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListRequestsQuery{
		Scope:        usecases.ScopeAll,
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

// GetRequest handles GET /api/admin/requests/:id
func (h *AdminRequestHandler) GetRequest(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetRequestQuery{
		RequestID:    id,
		Scope:        usecases.ScopeAll,
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
