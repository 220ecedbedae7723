package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servicedesk/internal/application/assignment/usecases"
	"servicedesk/internal/shared/logger"
	"servicedesk/internal/shared/utils"
)

type EndAssignmentBody struct {
	ToDate string `json:"to_date"`
}

// AssignmentHandler serves the admin staff-to-department mapping screens.
type AssignmentHandler struct {
	assignmentUC *usecases.AssignmentUseCase
	logger       logger.Interface
}

func NewAssignmentHandler(assignmentUC *usecases.AssignmentUseCase, logger logger.Interface) *AssignmentHandler {
	return &AssignmentHandler{assignmentUC: assignmentUC, logger: logger}
}

// CreateAssignment handles POST /api/admin/assignments
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var cmd usecases.CreateAssignmentCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		h.logger.Warnw("invalid request body for create assignment", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "staff ID and department ID are required")
		return
	}

	view, err := h.assignmentUC.Create(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, view, "Assignment created successfully")
}

// EndAssignment handles POST /api/admin/assignments/:id/end
func (h *AssignmentHandler) EndAssignment(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The body is optional; an absent to_date ends the mapping today.
	var body EndAssignmentBody
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid assignment payload")
			return
		}
	}

	view, err := h.assignmentUC.End(c.Request.Context(), usecases.EndAssignmentCommand{
		AssignmentID: id,
		ToDate:       body.ToDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Assignment ended", view)
}

// ListAssignments handles GET /api/admin/assignments
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	page, pageSize := parsePage(c)
	query := usecases.ListAssignmentsQuery{
		ActiveOnly: c.Query("active") == "true",
		Page:       page,
		PageSize:   pageSize,
	}

	staffID, err := utils.ParseUintQuery(c, "staff_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if staffID > 0 {
		query.StaffID = &staffID
	}

	departmentID, err := utils.ParseUintQuery(c, "department_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if departmentID > 0 {
		query.DepartmentID = &departmentID
	}

	requestTypeID, err := utils.ParseUintQuery(c, "request_type_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if requestTypeID > 0 {
		query.RequestTypeID = &requestTypeID
	}

	result, err := h.assignmentUC.List(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
