package sections

import (
	"varsity/internal/shared/authz"
	"varsity/internal/shared/config"
	"varsity/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers section browsing, faculty and admin routes
func RegisterRoutes(rg *gin.RouterGroup, controller Controller, cfg *config.Config) {
	rg.GET("/sections", controller.List)
	rg.GET("/sections/:id", controller.Get)

	faculty := rg.Group("/faculty")
	faculty.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireArea(authz.AreaFaculty))
	{
		faculty.GET("/sections", controller.ListMine)
	}

	admin := rg.Group("/admin")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireArea(authz.AreaAdmin))
	{
		admin.POST("/sections", controller.Create)
		admin.PUT("/sections/:id", controller.Update)
		admin.DELETE("/sections/:id", controller.Delete)
	}
}
