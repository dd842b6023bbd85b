package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

func TestRouterSetup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("mounts registrars under the version prefix", func(t *testing.T) {
		engine := gin.New()
		r := NewRouter(engine)

		catalog := NewGroup("/catalog")
		catalog.GET("/products", ping)
		r.Register(catalog).Setup()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("honors a custom API version", func(t *testing.T) {
		engine := gin.New()
		r := NewRouter(engine, WithAPIVersion("v2"))

		g := NewGroup("/carts")
		g.GET("", ping)
		r.Register(g).Setup()

		req := httptest.NewRequest(http.MethodGet, "/api/v2/carts", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("applies group middleware before routes", func(t *testing.T) {
		engine := gin.New()
		r := NewRouter(engine)

		g := NewGroup("/orders")
		g.Use(func(c *gin.Context) {
			c.AbortWithStatus(http.StatusUnauthorized)
		})
		g.GET("", ping)
		r.Register(g).Setup()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("registers nested subgroups", func(t *testing.T) {
		engine := gin.New()
		r := NewRouter(engine)

		g := NewGroup("/catalog")
		variants := g.Group("/products/:id")
		variants.GET("/variants", ping)
		r.Register(g).Setup()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products/abc/variants", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
