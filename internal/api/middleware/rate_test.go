package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientLimitersKeepDrainedBucket(t *testing.T) {
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	limiters := newClientLimiters(RateLimitConfig{RPS: 1.0 / 720, Burst: 5}, start)

	limiter := limiters.get("203.0.113.7", start)
	for i := 0; i < 5; i++ {
		require.True(t, limiter.AllowN(start, 1), "request %d", i+1)
	}
	require.False(t, limiter.AllowN(start, 1))

	// Past the 10 minute default TTL but before one token is earned back
	later := start.Add(11 * time.Minute)
	again := limiters.get("203.0.113.7", later)
	assert.Same(t, limiter, again)
	assert.LessOrEqual(t, again.TokensAt(later), 1.0)
	assert.False(t, again.AllowN(later, 1))

	// A full refill later the client may be forgotten
	refilled := start.Add(2 * time.Hour)
	fresh := limiters.get("203.0.113.7", refilled)
	assert.InDelta(t, 5.0, fresh.TokensAt(refilled), 0.001)
}

func TestClientLimitersIdleTTL(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		config RateLimitConfig
		want   time.Duration
	}{
		{"default covers fast refill", RateLimitConfig{RPS: 10, Burst: 20}, 10 * time.Minute},
		{"raised to refill time", RateLimitConfig{RPS: 1.0 / 720, Burst: 5}, time.Hour},
		{"explicit longer ttl kept", RateLimitConfig{RPS: 1, Burst: 1, IdleTTL: 3 * time.Hour}, 3 * time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newClientLimiters(tt.config, now).config.IdleTTL
			assert.InDelta(t, float64(tt.want), float64(got), float64(time.Millisecond))
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimitMiddleware(RateLimitConfig{RPS: 1.0 / 720, Burst: 2}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", "198.51.100.4")
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
