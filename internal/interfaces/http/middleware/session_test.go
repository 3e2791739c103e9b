package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopadmin/backend/internal/infrastructure/auth"
	"github.com/shopadmin/backend/internal/infrastructure/auth/authtest"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthenticator(t *testing.T) (*auth.Authenticator, *auth.MemoryRevocationStore) {
	t.Helper()
	verifier, err := auth.NewSessionVerifier(authtest.Config())
	require.NoError(t, err)
	store := auth.NewMemoryRevocationStore()
	return auth.NewAuthenticator(verifier, store), store
}

func sessionRouter(authenticator SessionAuthenticator, caps ...auth.Capability) (*gin.Engine, *bool) {
	called := false
	cfg := authtest.Config()
	router := gin.New()
	router.Use(RequestID())
	handlers := []gin.HandlerFunc{RequireSession(SessionConfig{
		Authenticator:    authenticator,
		CookieName:       cfg.CookieName,
		SecureCookieName: cfg.SecureCookieName,
	})}
	if len(caps) > 0 {
		handlers = append(handlers, RequireCapability(caps...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		called = true
		s := GetSession(c)
		c.JSON(http.StatusOK, gin.H{"user_id": s.UserID, "role": s.Role})
	})
	router.GET("/test", handlers...)
	return router, &called
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRequireSession(t *testing.T) {
	authenticator, store := newAuthenticator(t)
	router, _ := sessionRouter(authenticator)

	t.Run("bearer token", func(t *testing.T) {
		token := authtest.Token(t, authtest.Options{Subject: "user-1", Role: "manager"})
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"user-1","role":"manager"}`, w.Body.String())
	})

	t.Run("secure cookie wins over cookie and header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.AddCookie(&http.Cookie{Name: "__Secure-session_token", Value: authtest.Token(t, authtest.Options{Subject: "secure", Role: "admin"})})
		req.AddCookie(&http.Cookie{Name: "session_token", Value: authtest.Token(t, authtest.Options{Subject: "plain", Role: "admin"})})
		req.Header.Set("Authorization", "Bearer "+authtest.Token(t, authtest.Options{Subject: "header", Role: "admin"}))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"secure"`)
	})

	t.Run("plain cookie wins over header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.AddCookie(&http.Cookie{Name: "session_token", Value: authtest.Token(t, authtest.Options{Subject: "plain", Role: "admin"})})
		req.Header.Set("Authorization", "Bearer "+authtest.Token(t, authtest.Options{Subject: "header", Role: "admin"}))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"plain"`)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, dto.ErrCodeUnauthorized, resp.Code)
		assert.NotEmpty(t, resp.RequestID)
	})

	t.Run("non bearer scheme is ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := authtest.Token(t, authtest.Options{
			Role:      "admin",
			IssuedAt:  time.Now().Add(-2 * time.Hour),
			ExpiresAt: time.Now().Add(-time.Hour),
		})
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrCodeTokenExpired, decodeError(t, w).Code)
	})

	t.Run("unknown role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+authtest.Token(t, authtest.Options{Role: "superuser"}))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrCodeUnauthorized, decodeError(t, w).Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		token := authtest.Token(t, authtest.Options{ID: "jti-revoked", Role: "admin"})
		require.NoError(t, store.Revoke(context.Background(), "jti-revoked", time.Hour))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrCodeTokenRevoked, decodeError(t, w).Code)
	})
}

type failingAuthenticator struct{}

func (failingAuthenticator) Authenticate(context.Context, string) (*auth.Session, error) {
	return nil, errors.New("redis: connection refused")
}

func TestRequireSession_StoreFailureFailsClosed(t *testing.T) {
	router, called := sessionRouter(failingAuthenticator{})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer anything")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *called)
	assert.NotContains(t, w.Body.String(), "redis")
}

func TestRequireCapability(t *testing.T) {
	authenticator, _ := newAuthenticator(t)

	tests := []struct {
		name   string
		role   string
		caps   []auth.Capability
		status int
	}{
		{"granted", "accountant", []auth.Capability{auth.CapInvestmentsRead}, http.StatusOK},
		{"any of", "employee", []auth.Capability{auth.CapPayrollRead, auth.CapPayrollReadOwn}, http.StatusOK},
		{"denied", "manager", []auth.Capability{auth.CapInvestmentsRead}, http.StatusForbidden},
		{"employee cannot read orders", "employee", []auth.Capability{auth.CapOrdersRead}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, called := sessionRouter(authenticator, tt.caps...)
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Authorization", "Bearer "+authtest.Token(t, authtest.Options{Role: tt.role}))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.status == http.StatusOK, *called)
			if tt.status == http.StatusForbidden {
				assert.Equal(t, dto.ErrCodeForbidden, decodeError(t, w).Code)
			}
		})
	}
}

func TestRequireCapability_WithoutSession(t *testing.T) {
	router := gin.New()
	router.GET("/test", RequireCapability(auth.CapOrdersRead), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
