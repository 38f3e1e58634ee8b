package middleware

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	apperrors "annotate-service/app/utils/errors"
)

const (
	visitorTTL      = 3 * time.Minute
	cleanupInterval = time.Minute
)

// RateLimiter limits requests per client IP with a token bucket.
type RateLimiter struct {
	visitors map[string]*Visitor
	mutex    sync.Mutex
	limit    rate.Limit
	burst    int
	done     chan struct{}
	stopOnce sync.Once
}

type Visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows rps requests per second per IP with bursts of burst.
// Stop must be called to release the cleanup goroutine.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*Visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		done:     make(chan struct{}),
	}

	go rl.cleanupVisitors()
	return rl
}

// RateLimit returns the middleware. Health probes are never limited.
func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if strings.HasPrefix(c.Request().URL.Path, "/health") {
				return next(c)
			}

			ip := c.RealIP()
			if !rl.allow(ip) {
				appErr := apperrors.New(apperrors.ErrCodeRateLimitExceeded, "Rate limit exceeded")
				return c.JSON(appErr.StatusCode, map[string]interface{}{
					"error":       appErr.Message,
					"code":        appErr.Code,
					"retry_after": rl.retryAfter(ip),
				})
			}

			return next(c)
		}
	}
}

// Stop ends the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.done) })
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	visitor, exists := rl.visitors[ip]
	if !exists {
		visitor = &Visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = visitor
	}

	visitor.lastSeen = time.Now()
	return visitor.limiter.Allow()
}

// retryAfter returns the seconds until ip gets its next token.
func (rl *RateLimiter) retryAfter(ip string) int {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	visitor, exists := rl.visitors[ip]
	if !exists {
		return 0
	}

	reservation := visitor.limiter.Reserve()
	if !reservation.OK() {
		return 60
	}
	delay := reservation.Delay()
	reservation.Cancel()

	return int(math.Ceil(delay.Seconds()))
}

func (rl *RateLimiter) cleanupVisitors() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.mutex.Lock()
			for ip, visitor := range rl.visitors {
				if time.Since(visitor.lastSeen) > visitorTTL {
					delete(rl.visitors, ip)
				}
			}
			rl.mutex.Unlock()
		}
	}
}
