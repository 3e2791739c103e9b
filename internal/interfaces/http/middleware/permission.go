package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopadmin/backend/internal/infrastructure/logger"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// RequireCapability creates middleware that requires any of the listed
// capabilities. It must run after RequireSession; a missing session is 401.
func RequireCapability(caps ...auth.Capability) gin.HandlerFunc {
	required := make([]string, len(caps))
	for i, c := range caps {
		required[i] = string(c)
	}

	return func(c *gin.Context) {
		session := GetSession(c)
		if session == nil {
			abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}

		if !session.Can(caps...) {
			logger.L(c.Request.Context()).Warn("Permission denied",
				zap.String("role", string(session.Role)),
				zap.Strings("required_any", required),
				zap.String("path", c.Request.URL.Path),
			)
			abortWithError(c, http.StatusForbidden, dto.ErrCodeForbidden, "Access to this resource is forbidden")
			return
		}

		c.Next()
	}
}
