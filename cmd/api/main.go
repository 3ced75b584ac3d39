package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/thesolution-at/alz-backend/internal/config"
	"github.com/thesolution-at/alz-backend/internal/contentful"
	"github.com/thesolution-at/alz-backend/internal/deploy"
	"github.com/thesolution-at/alz-backend/internal/handler"
	"github.com/thesolution-at/alz-backend/internal/middleware"
	"github.com/thesolution-at/alz-backend/internal/notify"
	"github.com/thesolution-at/alz-backend/internal/routes"
	"github.com/thesolution-at/alz-backend/internal/service"
	pkgcache "github.com/thesolution-at/alz-backend/pkg/cache"
	"github.com/thesolution-at/alz-backend/pkg/jwt"
	pkglogger "github.com/thesolution-at/alz-backend/pkg/logger"
	pkgredis "github.com/thesolution-at/alz-backend/pkg/redis"
)

// @title           ALZ Backend API
// @version         1.0
// @description     Marketing-site backend for the Astrid Lindgren Zentrum: content retrieval, admin panel and sitemap
//
// @host            localhost:8080
// @BasePath        /api
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin session token. Example: "Bearer {token}"

// admin sessions expire after 8 hours, matching the panel's login banner
const adminSessionTTL = 8 * time.Hour

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	logger := pkglogger.GetLogger()
	logger.Info().Str("env", env).Strs("env_files", dotenvFiles).Msg("starting")

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if !cfg.Contentful.Configured() {
		logger.Warn().Msg("Contentful delivery credentials missing, content endpoints will serve diagnostics")
	}
	if !cfg.Contentful.ManagementConfigured() {
		logger.Warn().Msg("Contentful management token missing, admin writes disabled")
	}

	// Redis is optional: without it the cache degrades to pass-through
	var cacheService pkgcache.Service
	if cfg.Redis.Enabled {
		redisClient, err := pkgredis.NewClient(
			cfg.Redis.Host,
			cfg.Redis.Port,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.PoolSize,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Redis unavailable, continuing without cache")
			cacheService = pkgcache.NewService(nil)
		} else {
			logger.Info().Msg("Connected to Redis")
			cacheService = pkgcache.NewService(redisClient)
		}
	} else {
		cacheService = pkgcache.NewService(nil)
	}

	// Content store clients and side-effect triggers
	deliveryClient := contentful.NewClient(cfg.Contentful)
	managementClient := contentful.NewManagementClient(cfg.Contentful)
	notifier := notify.NewTelegramNotifier(cfg.Telegram)
	deployer := deploy.NewWebhookTrigger(cfg.Deploy)

	jwtManager := jwt.NewManager(cfg.Admin.JWTSecret, adminSessionTTL)

	contentService := service.NewContentService(deliveryClient, cacheService, cfg)
	adminService := service.NewAdminService(deliveryClient, managementClient, cacheService, notifier, deployer, cfg)

	if env != "local" && env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     cfg.App.AllowOrigins,
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	routes.Setup(
		router,
		handler.NewNewsHandler(contentService),
		handler.NewTeamHandler(contentService),
		handler.NewGalleryHandler(contentService),
		handler.NewJobsHandler(contentService),
		handler.NewAuthHandler(cfg, jwtManager),
		handler.NewAdminNewsHandler(adminService),
		handler.NewAdminGalleryHandler(adminService),
		handler.NewUploadHandler(cfg),
		handler.NewSitemapHandler(contentService, cfg),
		handler.NewHealthHandler(cfg, cacheService),
		jwtManager,
		cfg,
	)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info().Str("addr", addr).Msg("server listening")
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
