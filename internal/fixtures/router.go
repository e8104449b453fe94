package fixtures

import (
	"varsity/internal/shared/authz"
	"varsity/internal/shared/config"
	"varsity/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers public fixture browsing routes and admin management routes
func RegisterRoutes(rg *gin.RouterGroup, controller Controller, cfg *config.Config) {
	// Public browsing
	rg.GET("/fixtures", controller.ListFixtures)
	rg.GET("/fixtures/:id", controller.GetFixture)
	rg.GET("/teams", controller.ListTeams)
	rg.GET("/teams/:id", controller.GetTeam)
	rg.GET("/stadiums", controller.ListStadiums)
	rg.GET("/stadiums/:id", controller.GetStadium)

	// Admin management
	admin := rg.Group("/admin")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireArea(authz.AreaAdmin))
	{
		admin.POST("/fixtures", controller.CreateFixture)
		admin.PUT("/fixtures/:id", controller.UpdateFixture)
		admin.DELETE("/fixtures/:id", controller.DeleteFixture)

		admin.POST("/teams", controller.CreateTeam)
		admin.PUT("/teams/:id", controller.UpdateTeam)
		admin.DELETE("/teams/:id", controller.DeleteTeam)

		admin.POST("/stadiums", controller.CreateStadium)
		admin.PUT("/stadiums/:id", controller.UpdateStadium)
		admin.DELETE("/stadiums/:id", controller.DeleteStadium)
	}
}
