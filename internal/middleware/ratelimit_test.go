package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/dayflow-go-api/pkg/config"
)

func limiterFixture(t *testing.T, cfg config.RateLimitConfig) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRateLimiter(client, cfg, nil, nil), server
}

func limitedRouter(handlerFunc gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", handlerFunc, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestRateLimiterRejectsBeyondBudget(t *testing.T) {
	limiter, _ := limiterFixture(t, config.RateLimitConfig{
		Enabled:     true,
		Window:      time.Minute,
		MaxRequests: 3,
	})
	r := limitedRouter(limiter.General())

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	limiter, server := limiterFixture(t, config.RateLimitConfig{
		Enabled:     true,
		Window:      time.Minute,
		MaxRequests: 1,
	})
	r := limitedRouter(limiter.General())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	server.FastForward(time.Minute + time.Second)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterDisabledPassesThrough(t *testing.T) {
	limiter, _ := limiterFixture(t, config.RateLimitConfig{Enabled: false, MaxRequests: 1})
	r := limitedRouter(limiter.General())

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiterAuthBudgetIsSeparate(t *testing.T) {
	limiter, _ := limiterFixture(t, config.RateLimitConfig{
		Enabled:     true,
		Window:      time.Minute,
		MaxRequests: 100,
		AuthWindow:  time.Minute,
		AuthMax:     2,
	})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(limiter.General())
	auth := r.Group("/auth")
	auth.Use(limiter.Auth())
	auth.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// General traffic still flows under its own budget.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
