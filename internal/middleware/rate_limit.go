package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Each IP gets its own limiter; lastSeen drives cleanup of idle entries.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps a limiter per client IP with a shared rate config.
type IPRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor

	reqPerMin int
	burst     int
	ttl       time.Duration
}

// NewIPRateLimiter builds a limiter pool. Idle IPs are evicted after ttl.
func NewIPRateLimiter(reqPerMin, burst int, ttl time.Duration) *IPRateLimiter {
	rl := &IPRateLimiter{
		visitors:  make(map[string]*visitor),
		reqPerMin: reqPerMin,
		burst:     burst,
		ttl:       ttl,
	}
	go rl.cleanupVisitors()
	return rl
}

func (rl *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, ok := rl.visitors[ip]; ok {
		v.lastSeen = time.Now()
		return v.limiter
	}

	rps := float64(rl.reqPerMin) / 60.0
	limiter := rate.NewLimiter(rate.Limit(rps), rl.burst)
	rl.visitors[ip] = &visitor{limiter: limiter, lastSeen: time.Now()}
	return limiter
}

func (rl *IPRateLimiter) cleanupVisitors() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > rl.ttl {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimitByIP rejects requests above the per-IP limit with 429.
func RateLimitByIP(rl *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter := rl.getLimiter(ip)
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   gin.H{"code": "RATE_LIMITED", "message": "Too many requests, try again in a minute"},
			})
			return
		}
		c.Next()
	}
}
