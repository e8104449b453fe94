// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"varsity/internal/analytics"
	"varsity/internal/auth"
	"varsity/internal/courses"
	"varsity/internal/enrollments"
	"varsity/internal/fixtures"
	"varsity/internal/notifications"
	"varsity/internal/orders"
	"varsity/internal/sections"
	"varsity/internal/shared/config"
	"varsity/internal/shared/database"
	"varsity/pkg/cache"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	db           *database.DB
	notifier     *notifications.Service
	cacheService cache.Service
	sectionRepo  sections.Repository // For dependency injection into enrollments
}

// NewRouter creates a new router instance. notifier may be nil when the
// notification pipeline is unavailable.
func NewRouter(cfg *config.Config, db *database.DB, notifier *notifications.Service) *Router {
	r := &Router{
		config:   cfg,
		db:       db,
		notifier: notifier,
	}
	if db.Redis != nil {
		r.cacheService = cache.NewService(db.GetRedisClient())
	}
	return r
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Swagger UI (spec generated via swag init)
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupFixtureRoutes(api)
		r.setupOrderRoutes(api)
		r.setupCourseRoutes(api)

		// Section routes must come before enrollment routes so the
		// section repository can be injected into the enrollment service
		r.setupSectionRoutes(api)
		r.setupEnrollmentRoutes(api)

		r.setupAnalyticsRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "varsity-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "varsity-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config.JWT)
	authController := auth.NewController(authService)

	auth.RegisterRoutes(rg, authController, r.config)
}

// setupFixtureRoutes configures fixture, team and stadium routes
func (r *Router) setupFixtureRoutes(rg *gin.RouterGroup) {
	fixtureRepo := fixtures.NewRepository(r.db.GetPostgreSQL())
	fixtureService := fixtures.NewService(fixtureRepo)
	if r.cacheService != nil {
		fixtureService.SetCacheService(r.cacheService)
	}
	fixtureController := fixtures.NewController(fixtureService)

	fixtures.RegisterRoutes(rg, fixtureController, r.config)
}

// setupOrderRoutes configures ticket order routes
func (r *Router) setupOrderRoutes(rg *gin.RouterGroup) {
	orderRepo := orders.NewRepository(r.db.GetPostgreSQL())
	orderService := orders.NewService(orderRepo)
	if r.notifier != nil {
		orderService.SetNotifier(r.notifier)
	}
	orderController := orders.NewController(orderService)

	orders.RegisterRoutes(rg, orderController, r.config)
}

// setupCourseRoutes configures course and room routes
func (r *Router) setupCourseRoutes(rg *gin.RouterGroup) {
	courseRepo := courses.NewRepository(r.db.GetPostgreSQL())
	courseService := courses.NewService(courseRepo)
	courseController := courses.NewController(courseService)

	courses.RegisterRoutes(rg, courseController, r.config)
}

// setupSectionRoutes configures section routes
func (r *Router) setupSectionRoutes(rg *gin.RouterGroup) {
	sectionRepo := sections.NewRepository(r.db.GetPostgreSQL())
	sectionService := sections.NewService(sectionRepo)
	if r.cacheService != nil {
		sectionService.SetCacheService(r.cacheService)
	}
	sectionController := sections.NewController(sectionService)

	// Store section repository for the enrollment service
	r.sectionRepo = sectionRepo

	sections.RegisterRoutes(rg, sectionController, r.config)
}

// setupEnrollmentRoutes configures student enrollment routes
func (r *Router) setupEnrollmentRoutes(rg *gin.RouterGroup) {
	enrollmentRepo := enrollments.NewRepository(r.db.GetPostgreSQL())

	sectionRepo := r.sectionRepo
	if sectionRepo == nil {
		sectionRepo = sections.NewRepository(r.db.GetPostgreSQL())
	}

	enrollmentService := enrollments.NewService(enrollmentRepo, sectionRepo)
	if r.notifier != nil {
		enrollmentService.SetNotifier(r.notifier)
	}
	enrollmentController := enrollments.NewController(enrollmentService)

	enrollments.RegisterRoutes(rg, enrollmentController, r.config)
}

// setupAnalyticsRoutes configures admin analytics routes
func (r *Router) setupAnalyticsRoutes(rg *gin.RouterGroup) {
	analyticsRepo := analytics.NewRepository(r.db.GetPostgreSQL())
	analyticsService := analytics.NewService(analyticsRepo)
	if r.cacheService != nil {
		analyticsService.SetCacheService(r.cacheService)
	}
	analyticsController := analytics.NewController(analyticsService)

	analytics.RegisterRoutes(rg, analyticsController, r.config)
}
