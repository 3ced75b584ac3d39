package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/thesolution-at/alz-backend/internal/config"
	"github.com/thesolution-at/alz-backend/internal/handler"
	"github.com/thesolution-at/alz-backend/internal/middleware"
	"github.com/thesolution-at/alz-backend/pkg/jwt"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	newsHandler *handler.NewsHandler,
	teamHandler *handler.TeamHandler,
	galleryHandler *handler.GalleryHandler,
	jobsHandler *handler.JobsHandler,
	authHandler *handler.AuthHandler,
	adminNewsHandler *handler.AdminNewsHandler,
	adminGalleryHandler *handler.AdminGalleryHandler,
	uploadHandler *handler.UploadHandler,
	sitemapHandler *handler.SitemapHandler,
	healthHandler *handler.HealthHandler,
	jwtManager *jwt.Manager,
	cfg *config.Config,
) {
	api := router.Group("/api")

	// Public content endpoints
	news := api.Group("/news")
	news.GET("", newsHandler.ListNews)
	news.GET("/latest", newsHandler.LatestNews)
	news.GET("/:slug", newsHandler.GetNewsBySlug)

	team := api.Group("/team")
	team.GET("", teamHandler.ListTeam)
	team.GET("/:id", teamHandler.GetTeamMember)

	api.GET("/gallery", galleryHandler.ListImages)

	jobs := api.Group("/jobs")
	jobs.GET("", jobsHandler.ListJobs)
	jobs.GET("/:id", jobsHandler.GetJob)

	// Session gate sits outside the auth middleware so the panel can log in
	api.POST("/admin/auth", authHandler.Login)
	api.DELETE("/admin/auth", authHandler.Logout)

	// Authenticated admin endpoints
	admin := api.Group("/admin", middleware.AdminAuth(jwtManager))
	admin.GET("/news", adminNewsHandler.ListNews)
	admin.POST("/news", adminNewsHandler.CreateNews)
	admin.DELETE("/news", adminNewsHandler.DeleteNews)

	admin.GET("/gallery", adminGalleryHandler.ListGallery)
	admin.POST("/gallery", adminGalleryHandler.UploadImage)
	admin.DELETE("/gallery", adminGalleryHandler.DeleteEntry)

	admin.POST("/upload", uploadHandler.Upload)

	// Article images uploaded through the panel
	router.Static("/uploads", cfg.Upload.Dir)

	router.GET("/sitemap.xml", sitemapHandler.Sitemap)
	router.GET("/healthz", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
