package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter implementa janela deslizante simples por chave (IP ou usuário).
type RateLimiter struct {
	mu      sync.Mutex
	entries map[string][]time.Time
	limit   int
	window  time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		entries: make(map[string][]time.Time),
		limit:   limit,
		window:  window,
	}

	go rl.evictLoop()

	return rl
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	recent := rl.prune(key, now)

	if len(recent) >= rl.limit {
		rl.entries[key] = recent
		return false
	}

	rl.entries[key] = append(recent, now)
	return true
}

// prune descarta timestamps fora da janela; chamador segura o lock.
func (rl *RateLimiter) prune(key string, now time.Time) []time.Time {
	cutoff := now.Add(-rl.window)
	recent := rl.entries[key][:0]
	for _, t := range rl.entries[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	return recent
}

func (rl *RateLimiter) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key := range rl.entries {
			if recent := rl.prune(key, now); len(recent) == 0 {
				delete(rl.entries, key)
			} else {
				rl.entries[key] = recent
			}
		}
		rl.mu.Unlock()
	}
}

func rateLimitExceeded(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, gin.H{
		"error":   "RATE_LIMIT_EXCEEDED",
		"message": "Muitas requisições. Tente novamente em alguns minutos.",
	})
	c.Abort()
}

func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			rateLimitExceeded(c)
			return
		}
		c.Next()
	}
}

func RateLimitByUser() gin.HandlerFunc {
	limiter := NewRateLimiter(100, time.Minute)

	return func(c *gin.Context) {
		key := c.ClientIP()
		if userID, exists := c.Get("user_id"); exists {
			if id, ok := userID.(string); ok {
				key = id
			}
		}

		if !limiter.Allow(key) {
			rateLimitExceeded(c)
			return
		}
		c.Next()
	}
}
