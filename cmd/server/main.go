package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/ocean-query-backend/internal/api"
	"github.com/jengzang/ocean-query-backend/internal/config"
	"github.com/jengzang/ocean-query-backend/internal/database"
	"github.com/jengzang/ocean-query-backend/internal/dataset"
	"github.com/jengzang/ocean-query-backend/internal/logging"
	"github.com/jengzang/ocean-query-backend/internal/metrics"
	"github.com/jengzang/ocean-query-backend/internal/middleware"
	"github.com/jengzang/ocean-query-backend/internal/repository"
	"github.com/jengzang/ocean-query-backend/internal/service"
	"go.uber.org/zap"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := logging.New(cfg.Environment)
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 生成数据集
	store := dataset.Generate(dataset.NewSource(cfg.DatasetSeed), time.Now())
	logger.Info("Dataset generated",
		zap.Int("readings", store.Len()),
		zap.String("generationId", store.GenerationID()),
		zap.Time("anchor", store.Anchor()),
	)

	// 初始化数据库
	if err := database.Init(database.Config{Path: cfg.DBPath}, logger); err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer database.Close()

	readingRepo := repository.NewReadingRepository(database.GetDB())
	if err := readingRepo.ReplaceAll(store.GenerationID(), store.All()); err != nil {
		logger.Fatal("Failed to load readings", zap.Error(err))
	}

	collector := metrics.NewCollector("ocean_query")
	collector.Readings.Set(float64(store.Len()))

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	defer limiter.Stop()

	// 初始化路由
	router := api.SetupRouter(cfg, api.Dependencies{
		Logger:           logger,
		Metrics:          collector,
		Limiter:          limiter,
		Store:            store,
		QueryService:     service.NewQueryService(store, collector, logger, cfg.ReplyDelay),
		ReadingService:   service.NewReadingService(readingRepo),
		AnalyticsService: service.NewAnalyticsService(store),
	})

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 启动服务器
	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
}
