package orders

import (
	"varsity/internal/shared/authz"
	"varsity/internal/shared/config"
	"varsity/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers order and ticket routes
func RegisterRoutes(rg *gin.RouterGroup, controller Controller, cfg *config.Config) {
	ordersGroup := rg.Group("/orders")
	ordersGroup.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireArea(authz.AreaOrders))
	{
		ordersGroup.POST("", controller.CreateOrder)
		ordersGroup.GET("", controller.GetMyOrders)
		ordersGroup.GET("/:id", controller.GetOrder)
		ordersGroup.POST("/:id/cancel", controller.CancelOrder)
	}

	ticketsGroup := rg.Group("/tickets")
	ticketsGroup.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireArea(authz.AreaOrders))
	{
		ticketsGroup.POST("/cancel", controller.CancelTicket)
	}

	admin := rg.Group("/admin")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireArea(authz.AreaAdmin))
	{
		admin.GET("/orders", controller.GetAllOrders)
	}
}
