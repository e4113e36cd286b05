package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	alertapp "caretrack/internal/application/alert"
	"caretrack/internal/application/alert/rules"
	checklistapp "caretrack/internal/application/checklist"
	documentapp "caretrack/internal/application/document"
	incidentapp "caretrack/internal/application/incident"
	medicationapp "caretrack/internal/application/medication"
	roomapp "caretrack/internal/application/room"
	spotcheckapp "caretrack/internal/application/spotcheck"
	staffapp "caretrack/internal/application/staff"
	"caretrack/internal/infrastructure/auth"
	"caretrack/internal/infrastructure/config"
	"caretrack/internal/infrastructure/ratelimit"
	"caretrack/internal/infrastructure/repository"
	"caretrack/internal/interfaces/http/handlers"
	"caretrack/internal/interfaces/http/middleware"
	"caretrack/internal/interfaces/http/routes"
	"caretrack/internal/shared/logger"

	_ "caretrack/docs"
)

// Router wires repositories, services, and handlers into a Gin engine.
type Router struct {
	engine            *gin.Engine
	roomHandler       *handlers.RoomHandler
	spotCheckHandler  *handlers.SpotCheckHandler
	alertHandler      *handlers.AlertHandler
	staffHandler      *handlers.StaffHandler
	documentHandler   *handlers.DocumentHandler
	incidentHandler   *handlers.IncidentHandler
	medicationHandler *handlers.MedicationHandler
	checklistHandler  *handlers.ChecklistHandler
	authMiddleware    *middleware.AuthMiddleware
	generateLimiter   gin.HandlerFunc
	allowedOrigins    []string
	log               logger.Interface
}

// NewRouter creates the HTTP router with all dependencies. redisClient may be
// nil, in which case rate limiting is disabled.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	roomRepo := repository.NewRoomRepository(db)
	spotCheckRepo := repository.NewSpotCheckRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	incidentRepo := repository.NewIncidentRepository(db)
	medicationRepo := repository.NewMedicationRepository(db)
	checklistRepo := repository.NewChecklistRepository(db)

	roomService := roomapp.NewService(roomRepo, log)
	spotCheckService := spotcheckapp.NewService(spotCheckRepo, roomRepo, cfg.Compliance.CheckTimes, log)
	staffService := staffapp.NewService(staffRepo, log)
	documentService := documentapp.NewService(documentRepo, log)
	incidentService := incidentapp.NewService(incidentRepo, log)
	medicationService := medicationapp.NewService(medicationRepo, log)
	checklistService := checklistapp.NewService(checklistRepo, roomRepo, log)

	ruleSet := []rules.Rule{
		rules.NewCertExpiryRule(staffRepo, log),
		rules.NewMissingSpotCheckRule(spotCheckRepo, log),
		rules.NewMissingDocumentsRule(documentRepo, log),
		rules.NewExpiredDocumentsRule(documentRepo, log),
	}
	alertService := alertapp.NewService(alertRepo, ruleSet, log)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	var generateLimiter gin.HandlerFunc
	if redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		generateLimiter = middleware.RateLimit(limiter, ratelimit.RateLimitConfig{
			RequestsPerMinute: 6,
			RequestsPerHour:   60,
		}, log)
	}

	return &Router{
		engine:            engine,
		roomHandler:       handlers.NewRoomHandler(roomService, log),
		spotCheckHandler:  handlers.NewSpotCheckHandler(spotCheckService, log),
		alertHandler:      handlers.NewAlertHandler(alertService, log),
		staffHandler:      handlers.NewStaffHandler(staffService, log),
		documentHandler:   handlers.NewDocumentHandler(documentService, log),
		incidentHandler:   handlers.NewIncidentHandler(incidentService, log),
		medicationHandler: handlers.NewMedicationHandler(medicationService, log),
		checklistHandler:  handlers.NewChecklistHandler(checklistService, log),
		authMiddleware:    authMiddleware,
		generateLimiter:   generateLimiter,
		allowedOrigins:    cfg.Server.AllowedOrigins,
		log:               log,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	facility := r.engine.Group("/api/facilities/:facilityId")
	facility.Use(r.authMiddleware.RequireAuth())
	facility.Use(r.authMiddleware.RequireFacilityScope())
	{
		routes.SetupRoomRoutes(facility, &routes.RoomRouteConfig{
			RoomHandler: r.roomHandler,
		})
		routes.SetupSpotCheckRoutes(facility, &routes.SpotCheckRouteConfig{
			SpotCheckHandler: r.spotCheckHandler,
		})
		routes.SetupAlertRoutes(facility, &routes.AlertRouteConfig{
			AlertHandler:        r.alertHandler,
			GenerateRateLimiter: r.generateLimiter,
		})
		routes.SetupStaffRoutes(facility, &routes.StaffRouteConfig{
			StaffHandler: r.staffHandler,
		})
		routes.SetupDocumentRoutes(facility, &routes.DocumentRouteConfig{
			DocumentHandler: r.documentHandler,
		})
		routes.SetupDailyOpsRoutes(facility, &routes.DailyOpsRouteConfig{
			IncidentHandler:   r.incidentHandler,
			MedicationHandler: r.medicationHandler,
			ChecklistHandler:  r.checklistHandler,
		})
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
