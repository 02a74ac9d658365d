package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/dexplorer/orderscan/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Network listing (public read access)
		v1.GET("/networks", handler.GetNetworks)

		// Order endpoints (public read access)
		v1.GET("/orders/:uid", handler.GetOrder)
		v1.GET("/orders/:uid/trades", handler.GetOrderTrades)

		// Account endpoints (public read access)
		v1.GET("/accounts/:address/orders", handler.GetAccountOrders)

		// Transaction endpoints (public read access)
		v1.GET("/txs/:hash", handler.GetTransaction)

		// Admin endpoints (requires authentication)
		v1.POST("/admin/cache/reset", middleware.Auth(authCfg), handler.ResetCache)
	}
}
