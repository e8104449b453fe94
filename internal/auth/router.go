package auth

import (
	"varsity/internal/shared/config"
	"varsity/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all auth routes
func RegisterRoutes(rg *gin.RouterGroup, controller Controller, cfg *config.Config) {
	authGroup := rg.Group("/auth")
	{
		// Public routes
		authGroup.POST("/register", controller.Register)
		authGroup.POST("/login", controller.Login)
		authGroup.POST("/refresh", controller.RefreshToken)
		authGroup.POST("/logout", controller.Logout)

		// Protected routes
		protected := authGroup.Group("")
		protected.Use(middleware.JWTAuthWithConfig(cfg))
		{
			protected.PUT("/change-password", controller.ChangePassword)
			protected.GET("/me", controller.Me)
		}
	}
}
