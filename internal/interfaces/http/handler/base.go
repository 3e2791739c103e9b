// Package handler implements the admin API route handlers. Handlers bind and
// validate parameters, call one application service and serialize the
// result; every failure is answered by BaseHandler.HandleError.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/shared"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopadmin/backend/internal/infrastructure/logger"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
	"github.com/shopadmin/backend/internal/interfaces/http/middleware"
	"github.com/shopadmin/backend/internal/interfaces/http/serializer"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID returns the id assigned by the RequestID middleware
func getRequestID(c *gin.Context) string {
	return c.GetString(logger.GinRequestIDKey)
}

// Error sends an error response
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.AbortWithStatusJSON(statusCode, dto.NewErrorResponse(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Authentication required")
}

// HandleError is the single error boundary of the API. Domain errors carry a
// public message and map to 4xx; anything else is logged with the request
// context and answered with a generic 500 that reveals nothing internal.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.CodeFor(domainErr)
		statusCode := dto.GetHTTPStatus(code)
		if statusCode < http.StatusInternalServerError {
			h.Error(c, statusCode, code, domainErr.Message)
			return
		}
	}

	_ = c.Error(err)
	logger.L(c.Request.Context()).Error("Request failed",
		zap.String("route", c.FullPath()),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, dto.InternalErrorMessage)
}

// BindQuery binds and validates query parameters; on failure it writes a 400
// and returns false.
func (h *BaseHandler) BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// BindJSON binds and validates a JSON body; on failure it writes a 400 and
// returns false.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// ParseID parses the :id path parameter; a malformed id is a 400
func (h *BaseHandler) ParseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeValidationFormat, "id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

// Session returns the authenticated session. Routes are registered behind
// RequireSession, so a missing session answers 401.
func (h *BaseHandler) Session(c *gin.Context) (*auth.Session, bool) {
	session := middleware.GetSession(c)
	if session == nil {
		h.Unauthorized(c)
		return nil, false
	}
	return session, true
}

// Record serializes v and sends it with status
func (h *BaseHandler) Record(c *gin.Context, status int, v any, opts ...serializer.Option) {
	rec, err := serializer.Record(v, opts...)
	if err != nil {
		h.HandleError(c, fmt.Errorf("serialize %T: %w", v, err))
		return
	}
	c.JSON(status, rec)
}

// sendList writes one page as a JSON array with the paging headers. An empty
// page is [] rather than null.
func sendList[T any](h *BaseHandler, c *gin.Context, result shared.ListResult[T], opts ...serializer.Option) {
	records, err := serializer.Records(result.Items, opts...)
	if err != nil {
		h.HandleError(c, fmt.Errorf("serialize list: %w", err))
		return
	}
	c.Header(dto.HeaderTotalCount, strconv.FormatInt(result.Total, 10))
	c.Header(dto.HeaderPage, strconv.Itoa(result.Page.Number))
	c.Header(dto.HeaderPageSize, strconv.Itoa(result.Page.Size))
	c.JSON(http.StatusOK, records)
}
