package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type keyedLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	limiters = make(map[string]*keyedLimiter)
	mu       sync.Mutex
)

func getLimiter(key string, r rate.Limit, b int) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	// Evict keys idle for an hour so the map doesn't grow unbounded.
	for k, kl := range limiters {
		if time.Since(kl.lastSeen) > time.Hour {
			delete(limiters, k)
		}
	}

	kl, exists := limiters[key]
	if !exists {
		kl = &keyedLimiter{limiter: rate.NewLimiter(r, b)}
		limiters[key] = kl
	}
	kl.lastSeen = time.Now()
	return kl.limiter
}

func RateLimitMiddleware(r rate.Limit, b int, keyFunc func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFunc(c)
		limiter := getLimiter(key, r, b)

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please slow down :("})
			return
		}

		c.Next()
	}
}
