package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/hmjf-dev/hmjf-cms-api/api/swagger"
	"github.com/hmjf-dev/hmjf-cms-api/internal/handler"
	"github.com/hmjf-dev/hmjf-cms-api/internal/middleware"
	"github.com/hmjf-dev/hmjf-cms-api/internal/repository"
	"github.com/hmjf-dev/hmjf-cms-api/internal/service"
	"github.com/hmjf-dev/hmjf-cms-api/pkg/cache"
	"github.com/hmjf-dev/hmjf-cms-api/pkg/config"
	"github.com/hmjf-dev/hmjf-cms-api/pkg/database"
	"github.com/hmjf-dev/hmjf-cms-api/pkg/export"
	"github.com/hmjf-dev/hmjf-cms-api/pkg/logger"
	corsmiddleware "github.com/hmjf-dev/hmjf-cms-api/pkg/middleware/cors"
	reqidmiddleware "github.com/hmjf-dev/hmjf-cms-api/pkg/middleware/requestid"
)

// @title HMJF CMS API
// @version 1.0.0
// @description Content API for the student organization site
// @BasePath /api/v1
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("database connection failed", "error", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, serving without listing cache", zap.Error(err))
			redisClient = nil
		}
	}

	defaults := repository.ContentDefaults{
		OrganizerName:    cfg.Site.OrganizerName,
		OrganizerContact: cfg.Site.OrganizerContact,
		AvatarURL:        cfg.Site.DefaultAvatarURL,
	}

	articleRepo := repository.NewArticleRepository(db)
	eventRepo := repository.NewEventRepository(db, defaults)
	leadershipRepo := repository.NewLeadershipRepository(db, defaults)
	memberRepo := repository.NewMemberRepository(db)
	timelineRepo := repository.NewTimelineRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	metricsSvc := service.NewMetricsService()
	articleSvc := service.NewArticleService(articleRepo, cacheRepo, cfg.Cache.TTL, logr)
	eventSvc := service.NewEventService(eventRepo, cacheRepo, cfg.Cache.TTL, logr)
	leadershipSvc := service.NewLeadershipService(leadershipRepo, logr)
	memberSvc := service.NewMemberService(memberRepo, logr)
	timelineSvc := service.NewTimelineService(timelineRepo, logr)
	exportSvc := service.NewExportService(memberRepo, eventRepo, export.NewCSVExporter(), export.NewPDFExporter(), logr)

	articleHandler := handler.NewArticleHandler(articleSvc, metricsSvc)
	eventHandler := handler.NewEventHandler(eventSvc, metricsSvc)
	leadershipHandler := handler.NewLeadershipHandler(leadershipSvc)
	memberHandler := handler.NewMemberHandler(memberSvc)
	timelineHandler := handler.NewTimelineHandler(timelineSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		articles := api.Group("/articles")
		articles.GET("", articleHandler.List)
		articles.GET("/featured", articleHandler.Featured)
		articles.GET("/recent", articleHandler.Recent)
		articles.GET("/search", articleHandler.Search)
		articles.GET("/:slug", articleHandler.GetBySlug)
		articles.POST("", articleHandler.Create)
		articles.PUT("/:id", articleHandler.Update)
		articles.DELETE("/:id", articleHandler.Delete)

		events := api.Group("/events")
		events.GET("", eventHandler.List)
		events.GET("/upcoming", eventHandler.Upcoming)
		events.GET("/featured", eventHandler.Featured)
		events.GET("/recent", eventHandler.Recent)
		events.GET("/calendar", eventHandler.Calendar)
		events.GET("/:slug", eventHandler.GetBySlug)
		events.POST("", eventHandler.Create)
		events.PUT("/:id", eventHandler.Update)
		events.DELETE("/:id", eventHandler.Delete)

		leadership := api.Group("/leadership")
		leadership.GET("", leadershipHandler.List)
		leadership.GET("/current", leadershipHandler.Current)
		leadership.GET("/core", leadershipHandler.Core)
		leadership.GET("/:id", leadershipHandler.Get)
		leadership.POST("", leadershipHandler.Create)
		leadership.PUT("/:id", leadershipHandler.Update)
		leadership.DELETE("/:id", leadershipHandler.Delete)

		members := api.Group("/members")
		members.GET("", memberHandler.List)
		members.GET("/search", memberHandler.Search)
		members.GET("/:id", memberHandler.Get)
		members.POST("", memberHandler.Create)
		members.PUT("/:id", memberHandler.Update)
		members.DELETE("/:id", memberHandler.Delete)

		timeline := api.Group("/timeline")
		timeline.GET("", timelineHandler.List)
		timeline.GET("/:id", timelineHandler.Get)
		timeline.POST("", timelineHandler.Create)
		timeline.PUT("/:id", timelineHandler.Update)
		timeline.DELETE("/:id", timelineHandler.Delete)

		exports := api.Group("/exports")
		exports.GET("/members", exportHandler.Members)
		exports.GET("/events", exportHandler.Events)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
