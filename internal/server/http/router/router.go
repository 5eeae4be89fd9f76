package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"sewtrack/internal/server/http/handlers"
	"sewtrack/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.WorkshopFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	metricsHandler := handlers.NewMetricsHandler(facade)
	workerHandler := handlers.NewWorkerHandler(facade)

	api := engine.Group("/api")

	orders := api.Group("/orders")
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.POST("/:id/claim", orderHandler.Claim)
	orders.POST("/:id/complete", orderHandler.Complete)
	orders.POST("/:id/uncomplete", orderHandler.Uncomplete)
	orders.POST("/:id/reassign", orderHandler.Reassign)
	orders.POST("/:id/void", orderHandler.Void)

	metrics := api.Group("/metrics")
	metrics.GET("/summary", metricsHandler.Summary)
	metrics.GET("/daily", metricsHandler.Daily)
	metrics.GET("/overview", metricsHandler.Overview)

	workers := api.Group("/workers")
	workers.GET("", workerHandler.List)
	workers.POST("", workerHandler.Create)
	workers.PATCH("/:id", workerHandler.Update)

	return engine
}
