// middleware/permission.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swarnapay/api/config"
	logger "github.com/swarnapay/api/logging"
	"github.com/swarnapay/api/util"
)

// RequirePermission gates a route on a named permission in the bound user's
// effective set. Fail-closed: no bound user or no role means deny. Setting
// auth.enforcePermissions=false bypasses the check; the default is strict.
func RequirePermission(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.GetBool("auth.enforcePermissions") {
			c.Next()
			return
		}

		user, ok := util.GetAuthUser(c)
		if !ok || user == nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			c.Abort()
			return
		}

		if user.RoleName == "" || !user.HasPermission(required) {
			logger.Warn("Permission denied",
				zap.String("userID", user.ID),
				zap.String("required", required),
				zap.String("role", user.RoleName))
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			c.Abort()
			return
		}

		c.Next()
	}
}
