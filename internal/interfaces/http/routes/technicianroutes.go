package routes

import (
	"github.com/gin-gonic/gin"

	"servicedesk/internal/interfaces/http/handlers"
	"servicedesk/internal/interfaces/http/middleware"
	"servicedesk/internal/shared/authorization"
)

type TechnicianRouteConfig struct {
	TechnicianHandler *handlers.TechnicianHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

func SetupTechnicianRoutes(engine *gin.Engine, config *TechnicianRouteConfig) {
	technician := engine.Group("/api/technician")
	technician.Use(config.AuthMiddleware.RequireAuth())
	technician.Use(config.AuthMiddleware.RequireRole(authorization.RoleTechnician))
	{
		technician.GET("/dashboard", config.TechnicianHandler.Dashboard)
		technician.GET("/requests", config.TechnicianHandler.ListAssigned)

		technician.POST("/requests/:id/resolve", config.TechnicianHandler.ResolveRequest)

		// Generic parameterized routes (must come LAST)
		technician.GET("/requests/:id", config.TechnicianHandler.GetRequest)
	}
}
