package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"servicedesk/internal/application/identity/usecases"
	"servicedesk/internal/shared/logger"
	"servicedesk/internal/shared/utils"
)

// StaffHandler serves the admin staff directory screens.
type StaffHandler struct {
	staffUC *usecases.StaffUseCase
	logger  logger.Interface
}

func NewStaffHandler(staffUC *usecases.StaffUseCase, logger logger.Interface) *StaffHandler {
	return &StaffHandler{staffUC: staffUC, logger: logger}
}

// CreateStaff handles POST /api/admin/staff
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var cmd usecases.CreateStaffCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "staff code and name are required")
		return
	}

	view, err := h.staffUC.Create(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, view, "Staff member created successfully")
}

// UpdateStaff handles PUT /api/admin/staff/:id
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var cmd usecases.UpdateStaffCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "staff name is required")
		return
	}

	view, err := h.staffUC.Update(c.Request.Context(), id, cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Staff member updated successfully", view)
}

// DeactivateStaff handles POST /api/admin/staff/:id/deactivate
func (h *StaffHandler) DeactivateStaff(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.staffUC.Deactivate(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Staff member deactivated", nil)
}

// ActivateStaff handles POST /api/admin/staff/:id/activate
func (h *StaffHandler) ActivateStaff(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.staffUC.Activate(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Staff member activated", nil)
}

// GetStaff handles GET /api/admin/staff/:id
func (h *StaffHandler) GetStaff(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.staffUC.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", view)
}

// ListStaff handles GET /api/admin/staff
func (h *StaffHandler) ListStaff(c *gin.Context) {
	page, pageSize := parsePage(c)
	query := usecases.ListStaffQuery{
		Name:     c.Query("name"),
		Page:     page,
		PageSize: pageSize,
	}
	if raw := c.Query("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid is_active parameter")
			return
		}
		query.IsActive = &active
	}

	result, err := h.staffUC.List(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
