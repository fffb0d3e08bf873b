package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-storefront/internal/middleware"
	"go-storefront/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", middleware.RateLimitByIP(0.001, 2), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := []int{}
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// another client has its own bucket
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitByUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	user := "u1"
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetSession(c, session.Session{ID: "s", Token: "t", User: session.User{ID: user}})
	})
	r.GET("/", middleware.RateLimitByUser(0.001, 1), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())

	user = "u2"
	assert.Equal(t, http.StatusOK, do())
}
