package routes

import (
	"github.com/gin-gonic/gin"

	customerhandlers "casedesk/internal/interfaces/http/handlers/customer"
	"casedesk/internal/interfaces/http/middleware"
)

type CustomerRouteConfig struct {
	CustomerHandler *customerhandlers.CustomerHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupCustomerRoutes(api *gin.RouterGroup, config *CustomerRouteConfig) {
	api.GET("/customers/search",
		config.AuthMiddleware.RequireAuth(),
		config.CustomerHandler.Search)
}
