package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"medisync/internal/api/dto/common"
	"medisync/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines configuration for the rate limiter
type RateLimitConfig struct {
	// Requests per second
	RPS float64
	// Burst size (number of requests that can be made in a single burst)
	Burst int
	// IdleTTL drops the limiter of a client that has been quiet this long
	IdleTTL time.Duration
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiters keeps one token bucket per client IP
type clientLimiters struct {
	config RateLimitConfig

	mu      sync.Mutex
	clients map[string]*clientLimiter
	sweptAt time.Time
}

func (l *clientLimiters) get(ip string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.sweptAt) > l.config.IdleTTL {
		for key, cl := range l.clients {
			if now.Sub(cl.lastSeen) > l.config.IdleTTL {
				delete(l.clients, key)
			}
		}
		l.sweptAt = now
	}

	cl, ok := l.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(l.config.RPS), l.config.Burst)}
		l.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

func newClientLimiters(config RateLimitConfig, now time.Time) *clientLimiters {
	if config.IdleTTL <= 0 {
		config.IdleTTL = 10 * time.Minute
	}
	// A client may only be forgotten once its bucket would have refilled
	if refill := refillTime(config); config.IdleTTL < refill {
		config.IdleTTL = refill
	}
	return &clientLimiters{
		config:  config,
		clients: make(map[string]*clientLimiter),
		sweptAt: now,
	}
}

// refillTime is how long an empty bucket takes to hold Burst tokens again
func refillTime(config RateLimitConfig) time.Duration {
	if config.RPS <= 0 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(float64(config.Burst) / config.RPS * float64(time.Second))
}

// RateLimitMiddleware limits each client IP with its own token bucket
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	limiters := newClientLimiters(config, time.Now())

	return func(c *gin.Context) {
		limiter := limiters.get(utils.GetRealIP(c), time.Now())

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				common.NewErrorResponse(common.ErrCodeTooManyRequests, "Rate limit exceeded. Please try again later.", nil))
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Burst))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

		c.Next()
	}
}
