package courses

import (
	"varsity/internal/shared/authz"
	"varsity/internal/shared/config"
	"varsity/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers public course/room browsing and admin management routes
func RegisterRoutes(rg *gin.RouterGroup, controller Controller, cfg *config.Config) {
	rg.GET("/courses", controller.ListCourses)
	rg.GET("/courses/:id", controller.GetCourse)
	rg.GET("/rooms", controller.ListRooms)
	rg.GET("/rooms/:id", controller.GetRoom)

	admin := rg.Group("/admin")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireArea(authz.AreaAdmin))
	{
		admin.POST("/courses", controller.CreateCourse)
		admin.PUT("/courses/:id", controller.UpdateCourse)
		admin.DELETE("/courses/:id", controller.DeleteCourse)

		admin.POST("/rooms", controller.CreateRoom)
		admin.PUT("/rooms/:id", controller.UpdateRoom)
		admin.DELETE("/rooms/:id", controller.DeleteRoom)
	}
}
