package routes

import (
	"github.com/gin-gonic/gin"

	"servicedesk/internal/interfaces/http/handlers"
	"servicedesk/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		auth.POST("/login", config.AuthHandler.Login)
		auth.POST("/logout", config.AuthHandler.Logout)
		auth.GET("/me", config.AuthMiddleware.RequireAuth(), config.AuthHandler.Me)
	}
}
