package routes

import (
	"github.com/gin-gonic/gin"

	"servicedesk/internal/interfaces/http/handlers"
	"servicedesk/internal/interfaces/http/middleware"
	"servicedesk/internal/shared/authorization"
)

type RequestorRouteConfig struct {
	RequestorHandler *handlers.RequestorHandler
	CatalogHandler   *handlers.CatalogHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupRequestorRoutes(engine *gin.Engine, config *RequestorRouteConfig) {
	requestor := engine.Group("/api/requestor")
	requestor.Use(config.AuthMiddleware.RequireAuth())
	requestor.Use(config.AuthMiddleware.RequireRole(authorization.RoleRequestor))
	{
		requestor.GET("/dashboard", config.RequestorHandler.Dashboard)
		requestor.GET("/request-types", config.RequestorHandler.ListRequestTypes)

		// Reference data for the submission form.
		requestor.GET("/departments", config.CatalogHandler.ListDepartments)
		requestor.GET("/service-types", config.CatalogHandler.ListServiceTypes)

		requestor.POST("/requests", config.RequestorHandler.CreateRequest)
		requestor.GET("/requests", config.RequestorHandler.ListMyRequests)

		// Generic parameterized routes (must come LAST)
		requestor.GET("/requests/:id", config.RequestorHandler.GetRequest)
		requestor.GET("/requests/:id/attachments/:attachment_id", config.RequestorHandler.DownloadAttachment)
	}
}
