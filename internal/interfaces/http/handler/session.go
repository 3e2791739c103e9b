package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopadmin/backend/internal/infrastructure/logger"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// SessionRevoker ends sessions issued by the identity provider
type SessionRevoker interface {
	SignOut(ctx context.Context, session *auth.Session, all bool, maxSessionTTL time.Duration) error
}

// SessionHandler describes and signs out the caller's session. It never
// issues tokens.
type SessionHandler struct {
	BaseHandler
	revoker     SessionRevoker
	maxLifetime time.Duration
}

// NewSessionHandler creates a new SessionHandler. maxLifetime bounds how long
// a user-wide revocation is kept.
func NewSessionHandler(revoker SessionRevoker, maxLifetime time.Duration) *SessionHandler {
	return &SessionHandler{revoker: revoker, maxLifetime: maxLifetime}
}

// SignOutQuery selects between ending this session and all of the user's sessions
type SignOutQuery struct {
	All bool `form:"all"`
}

// Get serves GET /session
func (h *SessionHandler) Get(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}

	caps := session.Role.Capabilities()
	names := make([]string, len(caps))
	for i, cp := range caps {
		names[i] = string(cp)
	}
	resp := dto.SessionResponse{
		UserID:       session.UserID,
		Email:        session.Email,
		Role:         string(session.Role),
		Capabilities: names,
	}
	if !session.ExpiresAt.IsZero() {
		resp.ExpiresAt = session.ExpiresAt.UTC().Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, resp)
}

// SignOut serves POST /session/sign-out[?all=true]
func (h *SessionHandler) SignOut(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	var q SignOutQuery
	if !h.BindQuery(c, &q) {
		return
	}

	if err := h.revoker.SignOut(c.Request.Context(), session, q.All, h.maxLifetime); err != nil {
		h.HandleError(c, fmt.Errorf("sign out: %w", err))
		return
	}
	logger.L(c.Request.Context()).Info("Session signed out", zap.Bool("all", q.All))
	c.Status(http.StatusNoContent)
}
