package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixa_backend/internal/handlers"
)

// RegisterRoutes wires all HTTP routes under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.BidHandler.RegisterRoutes(api)
		appHandlers.CreditHandler.RegisterRoutes(api)
		appHandlers.WalletHandler.RegisterRoutes(api)
	}
}
