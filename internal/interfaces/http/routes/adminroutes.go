package routes

import (
	"github.com/gin-gonic/gin"

	"servicedesk/internal/interfaces/http/handlers"
	"servicedesk/internal/interfaces/http/middleware"
	"servicedesk/internal/shared/authorization"
)

type AdminRouteConfig struct {
	CatalogHandler      *handlers.CatalogHandler
	StaffHandler        *handlers.StaffHandler
	UserHandler         *handlers.UserHandler
	AssignmentHandler   *handlers.AssignmentHandler
	AdminRequestHandler *handlers.AdminRequestHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	admin := engine.Group("/api/admin")
	admin.Use(config.AuthMiddleware.RequireAuth())
	admin.Use(config.AuthMiddleware.RequireRole(authorization.RoleAdmin))
	{
		departments := admin.Group("/departments")
		{
			departments.POST("", config.CatalogHandler.CreateDepartment)
			departments.GET("", config.CatalogHandler.ListDepartments)
			departments.GET("/:id", config.CatalogHandler.GetDepartment)
			departments.PUT("/:id", config.CatalogHandler.UpdateDepartment)
			departments.DELETE("/:id", config.CatalogHandler.DeleteDepartment)
		}

		serviceTypes := admin.Group("/service-types")
		{
			serviceTypes.POST("", config.CatalogHandler.CreateServiceType)
			serviceTypes.GET("", config.CatalogHandler.ListServiceTypes)
			serviceTypes.GET("/:id", config.CatalogHandler.GetServiceType)
			serviceTypes.PUT("/:id", config.CatalogHandler.UpdateServiceType)
			serviceTypes.DELETE("/:id", config.CatalogHandler.RefuseDelete)
		}

		requestTypes := admin.Group("/request-types")
		{
			requestTypes.POST("", config.CatalogHandler.CreateRequestType)
			requestTypes.GET("", config.CatalogHandler.ListRequestTypes)
			requestTypes.GET("/:id", config.CatalogHandler.GetRequestType)
			requestTypes.PUT("/:id", config.CatalogHandler.UpdateRequestType)
			requestTypes.DELETE("/:id", config.CatalogHandler.RefuseDelete)
		}

		statuses := admin.Group("/statuses")
		{
			statuses.GET("", config.CatalogHandler.ListStatuses)
			statuses.GET("/:id", config.CatalogHandler.GetStatus)
			statuses.PUT("/:id", config.CatalogHandler.UpdateStatus)
			statuses.DELETE("/:id", config.CatalogHandler.RefuseDelete)
		}

		staff := admin.Group("/staff")
		{
			staff.POST("", config.StaffHandler.CreateStaff)
			staff.GET("", config.StaffHandler.ListStaff)
			staff.POST("/:id/deactivate", config.StaffHandler.DeactivateStaff)
			staff.POST("/:id/activate", config.StaffHandler.ActivateStaff)
			staff.GET("/:id", config.StaffHandler.GetStaff)
			staff.PUT("/:id", config.StaffHandler.UpdateStaff)
		}

		users := admin.Group("/users")
		{
			users.POST("", config.UserHandler.CreateUser)
			users.GET("", config.UserHandler.ListUsers)
			users.GET("/:id", config.UserHandler.GetUser)
			users.PUT("/:id", config.UserHandler.UpdateUser)
			users.DELETE("/:id", config.UserHandler.DeactivateUser)
		}

		admin.GET("/roles", config.UserHandler.ListRoles)

		assignments := admin.Group("/assignments")
		{
			assignments.POST("", config.AssignmentHandler.CreateAssignment)
			assignments.GET("", config.AssignmentHandler.ListAssignments)
			assignments.POST("/:id/end", config.AssignmentHandler.EndAssignment)
		}

		requests := admin.Group("/requests")
		{
			requests.GET("", config.AdminRequestHandler.ListRequests)
			requests.GET("/:id", config.AdminRequestHandler.GetRequest)
		}
	}
}
