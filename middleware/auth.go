// middleware/auth.go
package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swarnapay/api/audit"
	swarna_errors "github.com/swarnapay/api/errors"
	logger "github.com/swarnapay/api/logging"
	"github.com/swarnapay/api/service"
	"github.com/swarnapay/api/token"
	"github.com/swarnapay/api/util"
)

// AuthConfig carries the collaborators of the admin auth pipeline.
type AuthConfig struct {
	TokenManager *token.Manager
	AuthService  service.IAuthService
	AuditService audit.Service

	// RequiredUserType is the account-type discriminator for the admin
	// surface; any other type is rejected with a bare 403.
	RequiredUserType string

	// EnforceIPBinding, when set, rejects tokens whose sign-in address does
	// not match the current request origin. Off by default: the claim is
	// advisory unless operators opt in.
	EnforceIPBinding bool
}

// AdminAuth verifies the bearer credential, resolves the user through the
// session cache, checks the account type and binds the result to the request.
// Every failure is a 401 or 403; resolution faults never surface as 5xx.
func AdminAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization is required"})
			return
		}

		claims, err := cfg.TokenManager.Verify(raw)
		if err != nil {
			logger.Warn("Token verification failed", zap.Error(err), zap.String("ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		if cfg.EnforceIPBinding && claims.ClientIP != "" && claims.ClientIP != c.ClientIP() {
			logger.Warn("Token IP binding mismatch",
				zap.String("userID", claims.UserID),
				zap.String("tokenIP", claims.ClientIP),
				zap.String("requestIP", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		user, fresh, err := cfg.AuthService.Resolve(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, swarna_errors.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "user not found"})
				return
			}
			// Unexpected resolution fault: log it, answer with the safe
			// default instead of leaking internals.
			logger.Error("Principal resolution failed",
				zap.Error(err), zap.String("userID", claims.UserID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		if cfg.RequiredUserType != "" && user.UserType != cfg.RequiredUserType {
			logger.Warn("Account type not permitted on admin surface",
				zap.String("userID", user.ID), zap.String("userType", user.UserType))
			recordAuthEvent(c, cfg.AuditService, user.ID, "denied_user_type", fresh)
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Set(util.AuthUserKey, user)
		c.Set(util.FreshAuthKey, fresh)
		recordAuthEvent(c, cfg.AuditService, user.ID, "authenticated", fresh)

		c.Next()
	}
}

func recordAuthEvent(c *gin.Context, svc audit.Service, userID, outcome string, fresh bool) {
	if svc == nil {
		return
	}
	event := audit.AuthEvent{
		Timestamp: time.Now(),
		UserID:    userID,
		IP:        c.ClientIP(),
		Path:      c.Request.URL.Path,
		Outcome:   outcome,
		Fresh:     fresh,
	}
	if err := svc.LogAuth(c.Request.Context(), event); err != nil {
		logger.Warn("Failed to record auth audit event", zap.Error(err), zap.String("userID", userID))
	}
}
