package router

import (
	"fmt"
	"strings"

	"github.com/ferreplus/internal/cache"
	"github.com/ferreplus/internal/config"
	poshandlers "github.com/ferreplus/internal/http/handlers/pos"
	"github.com/ferreplus/internal/logger"
	"github.com/ferreplus/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the engine with all routes and middleware.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	posHandler := poshandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "ferre"
	}
	submitRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:submit", redisPrefix),
		WindowSeconds: cfg.Security.SubmitRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.SubmitRateLimit.MaxAttempts,
		Message:       "too many submission attempts",
	}
	redisClient := cache.Client()

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		catalog := apiV1.Group("")
		{
			catalog.GET("/branches", posHandler.ListBranches)
			catalog.GET("/catalog", posHandler.ListCatalog)
			catalog.GET("/catalog/sku/:sku", posHandler.ScanSKU)
			catalog.GET("/stock/:branch_id", posHandler.GetStock)
		}

		cart := apiV1.Group("/cart")
		{
			cart.GET("", posHandler.GetCart)
			cart.DELETE("", posHandler.ClearCart)
			cart.POST("/items", posHandler.AddItem)
			cart.PUT("/items/:variant_id/quantity", posHandler.UpdateQuantity)
			cart.PUT("/items/:variant_id/discount", posHandler.UpdateDiscount)
			cart.DELETE("/items/:variant_id", posHandler.RemoveItem)
		}

		checkout := apiV1.Group("/checkout")
		{
			checkout.POST("/validate", posHandler.ValidateCart)
			checkout.POST("/submit", RateLimitMiddleware(redisClient, submitRule, KeyByTerminal), posHandler.SubmitOrder)
			checkout.GET("/receipt", posHandler.LastReceipt)
		}

		sale := apiV1.Group("/pos")
		{
			sale.POST("/sale", RateLimitMiddleware(redisClient, submitRule, KeyByTerminal), posHandler.SubmitSale)
		}

		orders := apiV1.Group("/orders")
		{
			orders.GET("", posHandler.ListOrders)
			orders.GET("/:order_no", posHandler.GetOrder)
		}

		alerts := apiV1.Group("/stock-alerts")
		{
			alerts.GET("", posHandler.ListStockAlerts)
			alerts.POST("/:id/ack", posHandler.AcknowledgeStockAlert)
		}
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
