package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servicedesk/internal/application/auth/usecases"
	"servicedesk/internal/shared/config"
	"servicedesk/internal/shared/logger"
	"servicedesk/internal/shared/utils"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	loginUC   usecases.LoginExecutor
	cookieCfg config.CookieConfig
	logger    logger.Interface
}

func NewAuthHandler(loginUC usecases.LoginExecutor, cookieCfg config.CookieConfig, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUC:   loginUC,
		cookieCfg: cookieCfg,
		logger:    logger,
	}
}

// Login handles POST /api/auth/login. The issued token is set as an
// HttpOnly cookie and also returned in the body for API clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "username and password are required")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetSessionCookie(c, h.cookieCfg, result.Token, result.ExpiresIn)
	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.cookieCfg)
	utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// Me handles GET /api/auth/me and echoes the verified session claims.
func (h *AuthHandler) Me(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"user_id":  actorUserID(c),
		"username": actorUsername(c),
		"roles":    actorRoles(c),
		"staff_id": actorStaffID(c),
	})
}
