package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopadmin/backend/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(logger.GinRequestIDKey))
	})

	tests := []struct {
		name     string
		supplied string
		keep     bool
	}{
		{"generated when absent", "", false},
		{"caller id kept", "checkout-42.retry_1", true},
		{"unsafe id replaced", "abc\r\nSet-Cookie: x=1", false},
		{"space replaced", "two words", false},
		{"overlong id replaced", strings.Repeat("a", maxRequestIDLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.supplied != "" {
				req.Header[RequestIDHeader] = []string{tt.supplied}
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			id := w.Header().Get(RequestIDHeader)
			require.NotEmpty(t, id)
			assert.Equal(t, id, w.Body.String(), "context and header carry the same id")
			if tt.keep {
				assert.Equal(t, tt.supplied, id)
			} else {
				assert.NotEqual(t, tt.supplied, id)
				assert.Len(t, id, 32)
			}
		})
	}
}

func TestNewRequestID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for range 100 {
		id := newRequestID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestSecureWithConfig(t *testing.T) {
	serve := func(cfg SecurityConfig) http.Header {
		r := gin.New()
		r.Use(SecureWithConfig(cfg))
		r.GET("/api/v1/employees", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil))
		return w.Header()
	}

	t.Run("defaults", func(t *testing.T) {
		h := serve(DefaultSecurityConfig())
		assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
		assert.Equal(t, "no-referrer", h.Get("Referrer-Policy"))
		assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", h.Get("Content-Security-Policy"))
		assert.Equal(t, "no-store", h.Get("Cache-Control"))
		assert.Empty(t, h.Get("Strict-Transport-Security"))
	})

	t.Run("hsts in production", func(t *testing.T) {
		cfg := DefaultSecurityConfig()
		cfg.HSTSEnabled = true
		h := serve(cfg)
		assert.Equal(t, "max-age=31536000; includeSubDomains", h.Get("Strict-Transport-Security"))
	})

	t.Run("everything optional off", func(t *testing.T) {
		h := serve(SecurityConfig{HSTSEnabled: true})
		assert.Empty(t, h.Get("Strict-Transport-Security"), "zero max-age disables hsts")
		assert.Empty(t, h.Get("Content-Security-Policy"))
		assert.Empty(t, h.Get("Cache-Control"))
		assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
	})
}

func TestTimeout(t *testing.T) {
	deadlineOf := func(timeout time.Duration) (time.Time, bool) {
		var deadline time.Time
		var ok bool
		r := gin.New()
		r.Use(Timeout(timeout))
		r.GET("/slow", func(c *gin.Context) {
			deadline, ok = c.Request.Context().Deadline()
			c.Status(http.StatusOK)
		})
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/slow", nil))
		return deadline, ok
	}

	t.Run("handler sees the deadline", func(t *testing.T) {
		start := time.Now()
		deadline, ok := deadlineOf(5 * time.Second)
		require.True(t, ok)
		assert.WithinDuration(t, start.Add(5*time.Second), deadline, time.Second)
	})

	t.Run("zero disables the bound", func(t *testing.T) {
		_, ok := deadlineOf(0)
		assert.False(t, ok)
	})
}
