package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "casedesk/internal/interfaces/http/handlers/auth"
	"casedesk/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *authhandlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAuthRoutes(api *gin.RouterGroup, config *AuthRouteConfig) {
	api.POST("/auth/login", config.AuthHandler.Login)

	api.GET("/agents",
		config.AuthMiddleware.RequireAuth(),
		config.AuthHandler.ListAgents)
}
