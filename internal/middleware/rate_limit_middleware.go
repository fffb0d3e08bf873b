package middleware

import (
	"net/http"
	"sync"

	"go-storefront/internal/pkg/apperror"
	"go-storefront/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     r,
		burst:    b,
	}
}

func (rl *RateLimiter) GetLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists := rl.limiters[key]; exists {
		return limiter
	}

	limiter := rate.NewLimiter(rl.rate, rl.burst)
	rl.limiters[key] = limiter
	return limiter
}

func (rl *RateLimiter) handler(keyFn func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.GetLimiter(keyFn(c)).Allow() {
			response.Error(c, http.StatusTooManyRequests, apperror.CodeTooManyRequest, "Too many requests, slow down", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimitByIP allows rps requests per second per client IP.
func RateLimitByIP(rps float64, burst int) gin.HandlerFunc {
	return NewRateLimiter(rate.Limit(rps), burst).handler(func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	})
}

// RateLimitByUser keys on the signed-in user and falls back to the IP.
func RateLimitByUser(rps float64, burst int) gin.HandlerFunc {
	return NewRateLimiter(rate.Limit(rps), burst).handler(func(c *gin.Context) string {
		if id := SessionFrom(c).User.ID; id != "" {
			return "user:" + id
		}
		return "ip:" + c.ClientIP()
	})
}
