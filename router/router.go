// router/router.go

package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/swarnapay/api/controller"
	"github.com/swarnapay/api/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	authConfig middleware.AuthConfig,
	redisClient *redis.Client,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(redisClient, rateLimitRequests, rateLimitDuration))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.AdminAuth(authConfig))

	controllers.User.RegisterRoutes(admin)
	controllers.Role.RegisterRoutes(admin)

	return router
}
