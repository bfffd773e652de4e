package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/openrent/sui-rental-gateway/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Marketplace batch and per-identity views (public read access)
		v1.GET("/listings", handler.GetListings)
		v1.GET("/views/:role", handler.GetView)

		// Transaction construction and submission. Protected only when
		// credentials are configured; the wallet signature is otherwise the
		// sole authorization.
		tx := v1.Group("/tx")
		if authCfg.Enabled() {
			tx.Use(middleware.Auth(authCfg))
		}
		{
			tx.POST("/list", handler.BuildListTx)
			tx.POST("/rent", handler.BuildRentTx)
			tx.POST("/claim", handler.BuildClaimTx)
			tx.POST("/return", handler.BuildReturnTx)
			tx.POST("/submit", handler.SubmitTx)
		}
	}
}
