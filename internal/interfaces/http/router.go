// Package http wires the REST surface: handlers, middleware, and routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authusecases "casedesk/internal/application/auth/usecases"
	caseusecases "casedesk/internal/application/cases/usecases"
	customerusecases "casedesk/internal/application/customer/usecases"
	"casedesk/internal/infrastructure/auth"
	"casedesk/internal/infrastructure/config"
	"casedesk/internal/infrastructure/customerlookup"
	"casedesk/internal/infrastructure/repository"
	"casedesk/internal/infrastructure/storage"
	authhandlers "casedesk/internal/interfaces/http/handlers/auth"
	casehandlers "casedesk/internal/interfaces/http/handlers/cases"
	customerhandlers "casedesk/internal/interfaces/http/handlers/customer"
	"casedesk/internal/interfaces/http/middleware"
	"casedesk/internal/interfaces/http/routes"
	shareddb "casedesk/internal/shared/db"
	"casedesk/internal/shared/logger"
	"casedesk/internal/shared/services/sanitizer"
)

// Router holds the configured HTTP engine and its dependencies.
type Router struct {
	engine *gin.Engine
	db     *gorm.DB
}

// NewRouter builds the full HTTP stack against the given database and
// configuration.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	gin.SetMode(ginMode(cfg.Server.Mode))
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Repositories
	caseRepo := repository.NewCaseRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)
	userRepo := repository.NewUserRepository(db)
	txMgr := shareddb.NewTransactionManager(db)

	// Infrastructure services
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	sanitize := sanitizer.NewService()

	attachmentStore, err := storage.NewLocalStorage(&cfg.Storage)
	if err != nil {
		return nil, err
	}

	lookup := customerlookup.NewSquareClient(&cfg.CustomerAPI)

	// Use cases
	createCaseUC := caseusecases.NewCreateCaseUseCase(caseRepo, sequenceRepo, txMgr, sanitize, log)
	getCaseUC := caseusecases.NewGetCaseUseCase(caseRepo, log)
	listCasesUC := caseusecases.NewListCasesUseCase(caseRepo, log)
	addLogUC := caseusecases.NewAddLogUseCase(caseRepo, sanitize, log)
	closeCaseUC := caseusecases.NewCloseCaseUseCase(caseRepo, sanitize, log)
	reopenCaseUC := caseusecases.NewReopenCaseUseCase(caseRepo, log)
	deleteCaseUC := caseusecases.NewDeleteCaseUseCase(caseRepo, log)

	loginUC := authusecases.NewLoginUseCase(userRepo, hasher, jwtService, cfg.Auth.Admin, log)
	listAgentsUC := authusecases.NewListAgentsUseCase(userRepo, cfg.Agents, log)
	searchCustomersUC := customerusecases.NewSearchCustomersUseCase(lookup, log)

	// Handlers
	caseHandler := casehandlers.NewCaseHandler(
		createCaseUC,
		getCaseUC,
		listCasesUC,
		addLogUC,
		closeCaseUC,
		reopenCaseUC,
		deleteCaseUC,
		attachmentStore,
	)
	authHandler := authhandlers.NewAuthHandler(loginUC, listAgentsUC)
	customerHandler := customerhandlers.NewCustomerHandler(searchCustomersUC)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	// Routes
	api := engine.Group("/api")
	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupCaseRoutes(api, &routes.CaseRouteConfig{
		CaseHandler:    caseHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupCustomerRoutes(api, &routes.CustomerRouteConfig{
		CustomerHandler: customerHandler,
		AuthMiddleware:  authMiddleware,
	})

	// Stored attachments are served directly from disk.
	engine.Static(cfg.Storage.PublicPrefix, attachmentStore.UploadDir())

	router := &Router{engine: engine, db: db}
	engine.GET("/health", router.healthCheck)

	return router, nil
}

// Engine exposes the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

func (r *Router) healthCheck(c *gin.Context) {
	sqlDB, err := r.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
