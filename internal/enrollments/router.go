package enrollments

import (
	"varsity/internal/shared/authz"
	"varsity/internal/shared/config"
	"varsity/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers enrollment routes for students
func RegisterRoutes(rg *gin.RouterGroup, controller Controller, cfg *config.Config) {
	enrollGroup := rg.Group("/enrollments")
	enrollGroup.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireArea(authz.AreaEnrollment))
	{
		enrollGroup.POST("", controller.Enroll)
		enrollGroup.GET("", controller.GetSchedule)
		enrollGroup.GET("/sections", controller.BrowseSections)
		enrollGroup.DELETE("/:sectionId", controller.Drop)
	}
}
