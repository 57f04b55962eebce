package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/coopsight/coopsight-backend/internal/config"
	"github.com/coopsight/coopsight-backend/internal/handler"
	"github.com/coopsight/coopsight-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	User   *handler.UserHandler
	Role   *handler.RoleHandler
	Review *handler.ReviewHandler
	System *handler.SystemHandler
}

// SetupRouter configures the Gin engine, middleware, and all route groups.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		users := api.Group("/users")
		{
			users.GET("", handlers.User.List)
			users.POST("", handlers.User.Create)
		}

		roles := api.Group("/roles")
		{
			roles.GET("", handlers.Role.List)
			roles.POST("", handlers.Role.Create)
			roles.GET("/role-match/:userId", handlers.Role.MatchByUser)
			roles.GET("/role-trend/:roleId", handlers.Role.Trend)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", handlers.Review.List)
			reviews.POST("", handlers.Review.Create)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/reset", handlers.System.Reset)
		}
	}

	return router
}
