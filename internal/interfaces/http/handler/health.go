package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopadmin/backend/internal/infrastructure/logger"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

const readinessTimeout = 2 * time.Second

// DBPinger is the part of *sql.DB the readiness check needs
type DBPinger interface {
	PingContext(ctx context.Context) error
	Stats() sql.DBStats
}

// HealthHandler serves the liveness and readiness checks
type HealthHandler struct {
	db DBPinger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db DBPinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health serves GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Ready serves GET /ready: 200 when the database answers a ping, 503 otherwise
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	stats := h.db.Stats()
	state := &dto.DatabaseState{
		Status:          "up",
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
	}
	if err := h.db.PingContext(ctx); err != nil {
		logger.L(c.Request.Context()).Warn("Readiness check failed", zap.Error(err))
		state.Status = "down"
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Database: state})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: state})
}
