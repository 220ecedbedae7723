package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	assignmentusecases "servicedesk/internal/application/assignment/usecases"
	authusecases "servicedesk/internal/application/auth/usecases"
	catalogusecases "servicedesk/internal/application/catalog/usecases"
	identityusecases "servicedesk/internal/application/identity/usecases"
	requestusecases "servicedesk/internal/application/request/usecases"
	"servicedesk/internal/infrastructure/auth"
	"servicedesk/internal/infrastructure/config"
	"servicedesk/internal/infrastructure/email"
	"servicedesk/internal/infrastructure/repository"
	"servicedesk/internal/infrastructure/services"
	"servicedesk/internal/infrastructure/storage"
	"servicedesk/internal/interfaces/http/handlers"
	"servicedesk/internal/interfaces/http/middleware"
	"servicedesk/internal/interfaces/http/routes"
	"servicedesk/internal/shared/db"
	"servicedesk/internal/shared/logger"
)

// Router wires repositories, use cases and handlers into the HTTP surface.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	authMiddleware *middleware.AuthMiddleware

	authHandler         *handlers.AuthHandler
	requestorHandler    *handlers.RequestorHandler
	technicianHandler   *handlers.TechnicianHandler
	hodHandler          *handlers.HODHandler
	catalogHandler      *handlers.CatalogHandler
	staffHandler        *handlers.StaffHandler
	userHandler         *handlers.UserHandler
	assignmentHandler   *handlers.AssignmentHandler
	adminRequestHandler *handlers.AdminRequestHandler

	log logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	requestRepo := repository.NewServiceRequestRepository(database)
	replyRepo := repository.NewRequestReplyRepository(database)
	attachmentRepo := repository.NewAttachmentRepository(database)
	requestTypeRepo := repository.NewRequestTypeRepository(database)
	serviceTypeRepo := repository.NewServiceTypeRepository(database)
	departmentRepo := repository.NewDepartmentRepository(database)
	statusRefRepo := repository.NewStatusRefRepository(database)
	staffRepo := repository.NewStaffRepository(database)
	userRepo := repository.NewUserRepository(database)
	roleRepo := repository.NewRoleRepository(database)
	assignmentRepo := repository.NewAssignmentRepository(database)

	transactor := db.NewTransactionManager(database)
	numberGen := services.NewRequestNumberGenerator(database)
	store := storage.NewLocalStore(cfg.Upload)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpHours)

	var notifier requestusecases.AssignmentNotifier
	if cfg.Email.Enabled {
		notifier = email.NewSMTPEmailService(cfg.Email)
	}

	loginUC := authusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)

	createRequestUC := requestusecases.NewCreateRequestUseCase(
		requestRepo, requestTypeRepo, attachmentRepo, numberGen, store, transactor, log)
	listRequestsUC := requestusecases.NewListRequestsUseCase(requestRepo, assignmentRepo, log)
	getRequestUC := requestusecases.NewGetRequestUseCase(
		requestRepo, replyRepo, attachmentRepo, requestTypeRepo, assignmentRepo, log)
	downloadAttachmentUC := requestusecases.NewDownloadAttachmentUseCase(
		requestRepo, attachmentRepo, requestTypeRepo, assignmentRepo, store, log)
	assignRequestUC := requestusecases.NewAssignRequestUseCase(
		requestRepo, replyRepo, requestTypeRepo, assignmentRepo, staffRepo, transactor, notifier, log)
	resolveRequestUC := requestusecases.NewResolveRequestUseCase(
		requestRepo, replyRepo, requestTypeRepo, assignmentRepo, transactor, log)
	rejectRequestUC := requestusecases.NewRejectRequestUseCase(
		requestRepo, replyRepo, requestTypeRepo, assignmentRepo, transactor, log)
	closeRequestUC := requestusecases.NewCloseRequestUseCase(
		requestRepo, replyRepo, requestTypeRepo, assignmentRepo, transactor, log)
	technicianResolveUC := requestusecases.NewTechnicianResolveUseCase(requestRepo, replyRepo, transactor, log)
	hodDashboardUC := requestusecases.NewHODDashboardUseCase(requestRepo, assignmentRepo, log)
	technicianDashboardUC := requestusecases.NewTechnicianDashboardUseCase(requestRepo, log)
	requestorDashboardUC := requestusecases.NewRequestorDashboardUseCase(requestRepo, log)
	teamWorkloadUC := requestusecases.NewTeamWorkloadUseCase(requestRepo, assignmentRepo, staffRepo, log)

	departmentUC := catalogusecases.NewDepartmentUseCase(departmentRepo, log)
	serviceTypeUC := catalogusecases.NewServiceTypeUseCase(serviceTypeRepo, log)
	requestTypeUC := catalogusecases.NewRequestTypeUseCase(requestTypeRepo, serviceTypeRepo, departmentRepo, log)
	statusUC := catalogusecases.NewStatusRefUseCase(statusRefRepo, log)

	staffUC := identityusecases.NewStaffUseCase(staffRepo, log)
	userUC := identityusecases.NewUserUseCase(userRepo, roleRepo, staffRepo, hasher, transactor, log)

	assignmentUC := assignmentusecases.NewAssignmentUseCase(
		assignmentRepo, staffRepo, departmentRepo, requestTypeRepo, log)

	return &Router{
		engine:         engine,
		cfg:            cfg,
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),

		authHandler: handlers.NewAuthHandler(loginUC, cfg.Auth.Cookie, log),
		requestorHandler: handlers.NewRequestorHandler(
			createRequestUC, listRequestsUC, getRequestUC, downloadAttachmentUC,
			requestorDashboardUC, requestTypeUC, log),
		technicianHandler: handlers.NewTechnicianHandler(
			listRequestsUC, getRequestUC, technicianResolveUC, technicianDashboardUC, log),
		hodHandler: handlers.NewHODHandler(
			listRequestsUC, getRequestUC, downloadAttachmentUC, assignRequestUC,
			resolveRequestUC, rejectRequestUC, closeRequestUC, hodDashboardUC, teamWorkloadUC, log),
		catalogHandler:      handlers.NewCatalogHandler(departmentUC, serviceTypeUC, requestTypeUC, statusUC, log),
		staffHandler:        handlers.NewStaffHandler(staffUC, log),
		userHandler:         handlers.NewUserHandler(userUC, log),
		assignmentHandler:   handlers.NewAssignmentHandler(assignmentUC, log),
		adminRequestHandler: handlers.NewAdminRequestHandler(listRequestsUC, getRequestUC, log),

		log: log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupRequestorRoutes(r.engine, &routes.RequestorRouteConfig{
		RequestorHandler: r.requestorHandler,
		CatalogHandler:   r.catalogHandler,
		AuthMiddleware:   r.authMiddleware,
	})
	routes.SetupTechnicianRoutes(r.engine, &routes.TechnicianRouteConfig{
		TechnicianHandler: r.technicianHandler,
		AuthMiddleware:    r.authMiddleware,
	})
	routes.SetupHODRoutes(r.engine, &routes.HODRouteConfig{
		HODHandler:     r.hodHandler,
		CatalogHandler: r.catalogHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		CatalogHandler:      r.catalogHandler,
		StaffHandler:        r.staffHandler,
		UserHandler:         r.userHandler,
		AssignmentHandler:   r.assignmentHandler,
		AdminRequestHandler: r.adminRequestHandler,
		AuthMiddleware:      r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
