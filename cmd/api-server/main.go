package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/dayflow-go-api/api/swagger"
	"github.com/noah-isme/dayflow-go-api/internal/handler"
	"github.com/noah-isme/dayflow-go-api/internal/middleware"
	"github.com/noah-isme/dayflow-go-api/internal/repository"
	"github.com/noah-isme/dayflow-go-api/internal/service"
	"github.com/noah-isme/dayflow-go-api/pkg/cache"
	"github.com/noah-isme/dayflow-go-api/pkg/config"
	"github.com/noah-isme/dayflow-go-api/pkg/database"
	"github.com/noah-isme/dayflow-go-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/dayflow-go-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/dayflow-go-api/pkg/middleware/requestid"
)

// @title Dayflow HR API
// @version 1.0.0
// @description Employee productivity tracking: work logs, skills, moods and analytics
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, rate limiting and caching disabled", "error", err)
		redisClient = nil
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	employeeRepo := repository.NewEmployeeRepository(db)
	workLogRepo := repository.NewWorkLogRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	authSvc := service.NewAuthService(employeeRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
	})
	workLogSvc := service.NewWorkLogService(workLogRepo, validate, logr)
	skillSvc := service.NewSkillService(skillRepo, validate, logr)
	moodSvc := service.NewMoodService(moodRepo, validate, logr)
	analyticsSvc := service.NewAnalyticsService(analyticsRepo, redisClient, metricsSvc, logr, cfg.Analytics)
	exportSvc := service.NewExportService(workLogRepo, skillRepo, moodRepo, logr)

	limiter := middleware.NewRateLimiter(redisClient, cfg.RateLimit, metricsSvc, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, handler.Handlers{
		Auth:      handler.NewAuthHandler(authSvc),
		WorkLogs:  handler.NewWorkLogHandler(workLogSvc),
		Skills:    handler.NewSkillHandler(skillSvc),
		Moods:     handler.NewMoodHandler(moodSvc),
		Analytics: handler.NewAnalyticsHandler(analyticsSvc, exportSvc),
	}, authSvc, limiter)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
