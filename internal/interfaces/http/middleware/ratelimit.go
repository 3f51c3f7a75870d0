package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"keybuddy/internal/shared/utils"
)

// RateLimiter is an in-memory fixed-window counter keyed by client
// IP. The server runs as a single instance against its SQLite file,
// so no shared store is needed.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	bucket  int64
	counter map[string]int
}

// NewRateLimiter creates a rate limiter allowing limit requests per
// window per client IP.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		counter: make(map[string]int),
	}
}

// Limit returns the Gin middleware enforcing the limit.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	bucket := time.Now().UnixNano() / int64(rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if bucket != rl.bucket {
		rl.bucket = bucket
		rl.counter = make(map[string]int)
	}

	rl.counter[ip]++
	return rl.counter[ip] <= rl.limit
}
