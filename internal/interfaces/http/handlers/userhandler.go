package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"servicedesk/internal/application/identity/usecases"
	"servicedesk/internal/shared/logger"
	"servicedesk/internal/shared/utils"
)

// UserHandler serves the admin account screens: login accounts, their role
// grants and the optional staff link.
type UserHandler struct {
	userUC *usecases.UserUseCase
	logger logger.Interface
}

func NewUserHandler(userUC *usecases.UserUseCase, logger logger.Interface) *UserHandler {
	return &UserHandler{userUC: userUC, logger: logger}
}

// CreateUser handles POST /api/admin/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var cmd usecases.CreateUserCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "username, password and at least one role are required")
		return
	}

	view, err := h.userUC.Create(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, view, "User created successfully")
}

// UpdateUser handles PUT /api/admin/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var cmd usecases.UpdateUserCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "at least one role is required")
		return
	}

	view, err := h.userUC.Update(c.Request.Context(), id, cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", view)
}

// DeactivateUser handles DELETE /api/admin/users/:id. Accounts are soft
// deleted so their audit references stay intact.
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.userUC.Deactivate(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deactivated", nil)
}

// GetUser handles GET /api/admin/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.userUC.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", view)
}

// ListUsers handles GET /api/admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, pageSize := parsePage(c)
	query := usecases.ListUsersQuery{
		Username: c.Query("username"),
		RoleName: c.Query("role"),
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

	result, err := h.userUC.List(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListRoles handles GET /api/admin/roles
func (h *UserHandler) ListRoles(c *gin.Context) {
	views, err := h.userUC.ListRoles(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", views)
}
