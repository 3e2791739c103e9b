package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopadmin/backend/internal/infrastructure/logger"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Session context keys and headers
const (
	SessionKey    = "session"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// SessionAuthenticator resolves a session token to a live session
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Session, error)
}

// SessionConfig holds configuration for the session middleware
type SessionConfig struct {
	Authenticator SessionAuthenticator
	// CookieName and SecureCookieName are the identity provider's cookies.
	// The secure variant is read first.
	CookieName       string
	SecureCookieName string
}

// RequireSession rejects requests without a valid, unrevoked session with 401
// and stores the session on the gin context for downstream handlers.
func RequireSession(cfg SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cfg)
		if token == "" {
			abortUnauthorized(c, auth.ErrMissingToken)
			return
		}

		session, err := cfg.Authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		c.Set(SessionKey, session)
		c.Set(logger.GinUserIDKey, session.UserID)
		c.Request = c.Request.WithContext(
			logger.WithSession(c.Request.Context(), session.UserID, string(session.Role)),
		)
		c.Next()
	}
}

// extractToken reads the secure cookie, then the plain cookie, then the
// Authorization header.
func extractToken(c *gin.Context, cfg SessionConfig) string {
	for _, name := range []string{cfg.SecureCookieName, cfg.CookieName} {
		if name == "" {
			continue
		}
		if v, err := c.Cookie(name); err == nil && v != "" {
			return v
		}
	}
	header := c.GetHeader(AuthHeaderKey)
	if strings.HasPrefix(header, BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
	}
	return ""
}

func abortUnauthorized(c *gin.Context, err error) {
	code := dto.ErrCodeUnauthorized
	message := "Authentication required"
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		code = dto.ErrCodeTokenExpired
		message = "Session has expired"
	case errors.Is(err, auth.ErrTokenRevoked):
		code = dto.ErrCodeTokenRevoked
		message = "Session has been signed out"
	case errors.Is(err, auth.ErrMissingToken):
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingSubject), errors.Is(err, auth.ErrUnknownRole):
		message = "Invalid session"
	default:
		// Revocation store unavailable. Fail closed.
		logger.L(c.Request.Context()).Error("Session check failed", zap.Error(err))
	}

	logger.L(c.Request.Context()).Debug("Session rejected",
		zap.String("code", code),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	abortWithError(c, http.StatusUnauthorized, code, message)
}

// GetSession retrieves the session stored by RequireSession
func GetSession(c *gin.Context) *auth.Session {
	if v, ok := c.Get(SessionKey); ok {
		if s, ok := v.(*auth.Session); ok {
			return s
		}
	}
	return nil
}

// abortWithError writes the error body and stops the chain
func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(code, message, c.GetString(logger.GinRequestIDKey)))
}
