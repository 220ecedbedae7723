package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servicedesk/internal/application/catalog/usecases"
	"servicedesk/internal/shared/logger"
	"servicedesk/internal/shared/utils"
)

// CatalogHandler serves the admin reference-data screens: departments,
// service types, request types and the status dictionary. Departments are
// the only reference records that may be deleted; everything else is kept
// for audit history.
type CatalogHandler struct {
	departmentUC  *usecases.DepartmentUseCase
	serviceTypeUC *usecases.ServiceTypeUseCase
	requestTypeUC *usecases.RequestTypeUseCase
	statusUC      *usecases.StatusRefUseCase
	logger        logger.Interface
}

func NewCatalogHandler(
	departmentUC *usecases.DepartmentUseCase,
	serviceTypeUC *usecases.ServiceTypeUseCase,
	requestTypeUC *usecases.RequestTypeUseCase,
	statusUC *usecases.StatusRefUseCase,
	logger logger.Interface,
) *CatalogHandler {
	return &CatalogHandler{
		departmentUC:  departmentUC,
		serviceTypeUC: serviceTypeUC,
		requestTypeUC: requestTypeUC,
		statusUC:      statusUC,
		logger:        logger,
	}
}

// CreateDepartment handles POST /api/admin/departments
func (h *CatalogHandler) CreateDepartment(c *gin.Context) {
	var cmd usecases.DepartmentCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "department name is required")
		return
	}

	view, err := h.departmentUC.Create(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, view, "Department created successfully")
}

// UpdateDepartment handles PUT /api/admin/departments/:id
func (h *CatalogHandler) UpdateDepartment(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var cmd usecases.DepartmentCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "department name is required")
		return
	}

	view, err := h.departmentUC.Update(c.Request.Context(), id, cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Department updated successfully", view)
}

// DeleteDepartment handles DELETE /api/admin/departments/:id
func (h *CatalogHandler) DeleteDepartment(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.departmentUC.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Department deleted", nil)
}

// GetDepartment handles GET /api/admin/departments/:id
func (h *CatalogHandler) GetDepartment(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.departmentUC.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", view)
}

// ListDepartments handles GET /api/admin/departments
func (h *CatalogHandler) ListDepartments(c *gin.Context) {
	views, err := h.departmentUC.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", views)
}

// CreateServiceType handles POST /api/admin/service-types
func (h *CatalogHandler) CreateServiceType(c *gin.Context) {
	var cmd usecases.ServiceTypeCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "service type name is required")
		return
	}

	view, err := h.serviceTypeUC.Create(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, view, "Service type created successfully")
}

// UpdateServiceType handles PUT /api/admin/service-types/:id
func (h *CatalogHandler) UpdateServiceType(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var cmd usecases.ServiceTypeCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "service type name is required")
		return
	}

	view, err := h.serviceTypeUC.Update(c.Request.Context(), id, cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service type updated successfully", view)
}

// GetServiceType handles GET /api/admin/service-types/:id
func (h *CatalogHandler) GetServiceType(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.serviceTypeUC.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", view)
}

// ListServiceTypes handles GET /api/admin/service-types
func (h *CatalogHandler) ListServiceTypes(c *gin.Context) {
	views, err := h.serviceTypeUC.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", views)
}

// CreateRequestType handles POST /api/admin/request-types
func (h *CatalogHandler) CreateRequestType(c *gin.Context) {
	var cmd usecases.RequestTypeCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		h.logger.Warnw("invalid request body for create request type", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "name, service type, department and default priority are required")
		return
	}

	view, err := h.requestTypeUC.Create(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, view, "Request type created successfully")
}

// UpdateRequestType handles PUT /api/admin/request-types/:id
func (h *CatalogHandler) UpdateRequestType(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var cmd usecases.RequestTypeCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name, service type, department and default priority are required")
		return
	}

	view, err := h.requestTypeUC.Update(c.Request.Context(), id, cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request type updated successfully", view)
}

// GetRequestType handles GET /api/admin/request-types/:id
func (h *CatalogHandler) GetRequestType(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.requestTypeUC.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", view)
}

// ListRequestTypes handles GET /api/admin/request-types. An optional
// department_id query parameter narrows the list to one owning department.
func (h *CatalogHandler) ListRequestTypes(c *gin.Context) {
	departmentID, err := utils.ParseUintQuery(c, "department_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var views []*usecases.RequestTypeView
	if departmentID > 0 {
		views, err = h.requestTypeUC.ListByDepartment(c.Request.Context(), departmentID)
	} else {
		views, err = h.requestTypeUC.List(c.Request.Context())
	}
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", views)
}

// RefuseDelete handles DELETE on reference records that must be kept for
// audit history.
func (h *CatalogHandler) RefuseDelete(c *gin.Context) {
	utils.ErrorResponse(c, http.StatusBadRequest, "Deletion is not allowed")
}

// UpdateStatus handles PUT /api/admin/statuses/:id
func (h *CatalogHandler) UpdateStatus(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var cmd usecases.StatusRefCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid status payload")
		return
	}

	view, err := h.statusUC.Update(c.Request.Context(), id, cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", view)
}

// GetStatus handles GET /api/admin/statuses/:id
func (h *CatalogHandler) GetStatus(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.statusUC.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", view)
}

// ListStatuses handles GET /api/admin/statuses
func (h *CatalogHandler) ListStatuses(c *gin.Context) {
	views, err := h.statusUC.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", views)
}
