package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/ocean-query-backend/internal/config"
	"github.com/jengzang/ocean-query-backend/internal/dataset"
	"github.com/jengzang/ocean-query-backend/internal/handler"
	"github.com/jengzang/ocean-query-backend/internal/metrics"
	"github.com/jengzang/ocean-query-backend/internal/middleware"
	"github.com/jengzang/ocean-query-backend/internal/service"
	"go.uber.org/zap"
)

// Dependencies 路由依赖
type Dependencies struct {
	Logger           *zap.Logger
	Metrics          *metrics.Collector
	Limiter          *middleware.RateLimiter
	Store            *dataset.Store
	QueryService     *service.QueryService
	ReadingService   *service.ReadingService
	AnalyticsService *service.AnalyticsService
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Metrics(deps.Metrics))

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.RequestIDHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", middleware.RequestIDHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"message":      "Ocean Query API is running",
			"environment":  cfg.Environment,
			"readings":     deps.Store.Len(),
			"generationId": deps.Store.GenerationID(),
		})
	})

	// Prometheus 指标
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	queryHandler := handler.NewQueryHandler(deps.QueryService, cfg.Chart.Width, cfg.Chart.Height)
	readingHandler := handler.NewReadingHandler(deps.ReadingService)
	analyticsHandler := handler.NewAnalyticsHandler(deps.AnalyticsService)

	// API 路由组
	api := r.Group("/api/v1")
	{
		// 查询接口（限流）
		query := api.Group("/query")
		query.Use(middleware.RateLimit(deps.Limiter, deps.Logger))
		{
			query.GET("", queryHandler.AskQuery)
			query.POST("", queryHandler.Ask)
			query.GET("/chart.png", queryHandler.Chart)
		}
		api.GET("/query/samples", queryHandler.Samples)

		api.GET("/locations", queryHandler.Locations)

		// 数据浏览接口
		readings := api.Group("/readings")
		{
			readings.GET("", readingHandler.GetReadings)
			readings.GET("/:id", readingHandler.GetReadingByID)
		}

		// 统计分析接口
		api.GET("/analytics", analyticsHandler.GetSummary)
	}

	return r
}
