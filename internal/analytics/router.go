package analytics

import (
	"varsity/internal/shared/authz"
	"varsity/internal/shared/config"
	"varsity/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers admin analytics routes
func RegisterRoutes(rg *gin.RouterGroup, controller Controller, cfg *config.Config) {
	admin := rg.Group("/admin/analytics")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireArea(authz.AreaAnalytics))
	{
		admin.GET("", controller.GetGlobalAnalytics)
		admin.GET("/fixtures/:id", controller.GetFixtureAnalytics)
	}
}
