package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/junksamiad/xmas-donation-app/config"
	"github.com/junksamiad/xmas-donation-app/internal/api/handler"
	"github.com/junksamiad/xmas-donation-app/internal/api/middleware"
	"github.com/junksamiad/xmas-donation-app/pkg/jwt"
	"github.com/junksamiad/xmas-donation-app/pkg/redis"
)

// maxBodyBytes caps request bodies; pledge submissions are tiny.
const maxBodyBytes = 1 << 20

// Setup initialises and returns the Gin engine.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// public visitor routes
		children := v1.Group("/children")
		{
			children.GET("/random", h.Child.PickRandom)
			children.GET("/search", h.Child.Search)
			children.GET("/progress", h.Child.Progress)
		}

		v1.GET("/departments", h.Department.List)
		v1.GET("/gift-ideas", h.GiftIdea.Find)
		v1.GET("/donations/latest", h.Donation.Latest)

		// pledge submission is rate limited per client IP
		v1.POST("/donations",
			middleware.RateLimit(rdb, cfg.Donation.RateLimitPerMinute, time.Minute),
			h.Donation.Create)

		v1.POST("/auth/login", h.Auth.Login)

		// admin routes
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb), middleware.RoleAuth("admin"))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			donations := authorized.Group("/donations")
			{
				donations.GET("", h.Donation.List)
				donations.PUT("/:id/amount", h.Donation.UpdateAmount)
			}

			departments := authorized.Group("/departments")
			{
				departments.POST("", h.Department.Create)
				departments.DELETE("/:id", h.Department.Deactivate)
				departments.PUT("/:id/reinstate", h.Department.Reinstate)
			}

			stats := authorized.Group("/stats")
			{
				stats.GET("/totals", h.Donation.Totals)
				stats.GET("/gender-split", h.Stats.GenderSplit)
				stats.GET("/age-groups", h.Stats.AgeGroups)
				stats.GET("/top-donors", h.Stats.TopDonors)
				stats.GET("/departments", h.Department.Stats)
				stats.GET("/departments/top", h.Department.Top)
				stats.GET("/underperforming", h.Stats.Underperforming)
			}

			authorized.GET("/export/donations", h.Export.Donations)

			backups := authorized.Group("/backups")
			{
				backups.GET("", h.Backup.List)
				backups.POST("", h.Backup.Create)
				backups.POST("/:filename/restore", h.Backup.Restore)
			}
		}
	}

	// external scheduler entry point, shared-secret authenticated
	r.POST("/api/cron/backup", h.Backup.Cron)

	return r
}
