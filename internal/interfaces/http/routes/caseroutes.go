package routes

import (
	"github.com/gin-gonic/gin"

	casehandlers "casedesk/internal/interfaces/http/handlers/cases"
	"casedesk/internal/interfaces/http/middleware"
	"casedesk/internal/shared/authorization"
)

type CaseRouteConfig struct {
	CaseHandler    *casehandlers.CaseHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupCaseRoutes(api *gin.RouterGroup, config *CaseRouteConfig) {
	cases := api.Group("/cases")
	cases.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths BEFORE parameterized paths to avoid
		// route conflicts.
		cases.POST("", config.CaseHandler.CreateCase)
		cases.GET("", config.CaseHandler.ListCases)

		cases.POST("/:id/logs", config.CaseHandler.AddLog)
		cases.PATCH("/:id/close", config.CaseHandler.CloseCase)
		cases.PATCH("/:id/reopen", config.CaseHandler.ReopenCase)

		cases.GET("/:id", config.CaseHandler.GetCase)
		cases.DELETE("/:id",
			authorization.RequireAdmin(),
			config.CaseHandler.DeleteCase)
	}
}
