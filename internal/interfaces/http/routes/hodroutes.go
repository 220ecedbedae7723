package routes

import (
	"github.com/gin-gonic/gin"

	"servicedesk/internal/interfaces/http/handlers"
	"servicedesk/internal/interfaces/http/middleware"
	"servicedesk/internal/shared/authorization"
)

type HODRouteConfig struct {
	HODHandler     *handlers.HODHandler
	CatalogHandler *handlers.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupHODRoutes(engine *gin.Engine, config *HODRouteConfig) {
	hod := engine.Group("/api/hod")
	hod.Use(config.AuthMiddleware.RequireAuth())
	hod.Use(config.AuthMiddleware.RequireRole(authorization.RoleHOD))
	{
		hod.GET("/dashboard", config.HODHandler.Dashboard)
		hod.GET("/team", config.HODHandler.TeamWorkload)
		hod.GET("/requests", config.HODHandler.ListDepartmentRequests)

		// Dropdown feeds for the assign and filter forms.
		hod.GET("/dropdown/staff", config.HODHandler.TeamWorkload)
		hod.GET("/dropdown/status", config.CatalogHandler.ListStatuses)

		// Lifecycle actions (must come BEFORE /:id to avoid conflicts)
		hod.POST("/requests/:id/assign", config.HODHandler.AssignRequest)
		hod.POST("/requests/:id/resolve", config.HODHandler.ResolveRequest)
		hod.POST("/requests/:id/reject", config.HODHandler.RejectRequest)
		hod.POST("/requests/:id/close", config.HODHandler.CloseRequest)

		// Generic parameterized routes (must come LAST)
		hod.GET("/requests/:id", config.HODHandler.GetRequest)
		hod.GET("/requests/:id/attachments/:attachment_id", config.HODHandler.DownloadAttachment)
	}
}
