package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.NotNil(t, r)
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	r := NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v1"))

	group := NewDomainGroup("test", "/test")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	r.Register(group)
	r.Setup()

	w := serve(engine, http.MethodGet, "/api/v1/test/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestDomainGroup(t *testing.T) {
	t.Run("creates group with name and prefix", func(t *testing.T) {
		g := NewDomainGroup("orders", "/orders")
		assert.Equal(t, "orders", g.Name())
		assert.Equal(t, "/orders", g.Prefix())
	})

	t.Run("registers each method", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		g.GET("/a", func(c *gin.Context) { c.String(http.StatusOK, "a") }).
			POST("/b", func(c *gin.Context) { c.Status(http.StatusCreated) }).
			PATCH("/c", func(c *gin.Context) { c.Status(http.StatusNoContent) })
		g.RegisterRoutes(engine.Group("/api/v1"))

		assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/api/v1/test/a").Code)
		assert.Equal(t, http.StatusCreated, serve(engine, http.MethodPost, "/api/v1/test/b").Code)
		assert.Equal(t, http.StatusNoContent, serve(engine, http.MethodPatch, "/api/v1/test/c").Code)
		assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodDelete, "/api/v1/test/c").Code)
	})

	t.Run("empty path serves the prefix", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("customers", "/customers")
		g.GET("", func(c *gin.Context) { c.String(http.StatusOK, "list") })
		g.RegisterRoutes(engine.Group("/api/v1"))

		w := serve(engine, http.MethodGet, "/api/v1/customers")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "list", w.Body.String())
	})

	t.Run("applies middleware", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		g.Use(func(c *gin.Context) {
			c.Header("X-Test-Middleware", "applied")
			c.Next()
		})
		g.GET("/items", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})
		g.RegisterRoutes(engine.Group("/api/v1"))

		w := serve(engine, http.MethodGet, "/api/v1/test/items")
		assert.Equal(t, "applied", w.Header().Get("X-Test-Middleware"))
	})

	t.Run("creates subgroups", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("payroll", "/payroll")
		g.Group("runs", "/runs").GET("", func(c *gin.Context) {
			c.String(http.StatusOK, "runs")
		})
		g.Group("payslips", "/payslips").GET("", func(c *gin.Context) {
			c.String(http.StatusOK, "payslips")
		})
		g.RegisterRoutes(engine.Group("/api/v1"))

		assert.Equal(t, "runs", serve(engine, http.MethodGet, "/api/v1/payroll/runs").Body.String())
		assert.Equal(t, "payslips", serve(engine, http.MethodGet, "/api/v1/payroll/payslips").Body.String())
	})
}

func TestMultipleDomainGroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	products := NewDomainGroup("products", "/products")
	products.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "products")
	})

	customers := NewDomainGroup("customers", "/customers")
	customers.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "customers")
	})

	r.Register(products).Register(customers)
	r.Setup()

	assert.Equal(t, "products", serve(engine, http.MethodGet, "/api/v1/products").Body.String())
	assert.Equal(t, "customers", serve(engine, http.MethodGet, "/api/v1/customers").Body.String())
}
