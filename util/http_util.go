// util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/swarnapay/api/logging"
	"github.com/swarnapay/api/model"
)

// Request-context keys set by the auth middleware.
const (
	AuthUserKey  = "authUser"
	FreshAuthKey = "freshAuth"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// GetAuthUser returns the resolved user bound to the request, if any.
func GetAuthUser(c *gin.Context) (*model.AuthUser, bool) {
	value, exists := c.Get(AuthUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.AuthUser)
	return user, ok
}

// IsFreshAuth reports whether this request triggered a cache-miss resolution
// rather than a session-cache hit.
func IsFreshAuth(c *gin.Context) bool {
	value, exists := c.Get(FreshAuthKey)
	if !exists {
		return false
	}
	fresh, _ := value.(bool)
	return fresh
}
