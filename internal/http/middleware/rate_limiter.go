package middleware

import (
	"fmt"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"user-service/internal/http/handler"
)

const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRetryAfter         = "Retry-After"

	keyPrefixIP = "ip:"
)

// RateLimiter implements token bucket rate limiting per client IP. All
// callers are anonymous or identified only by a bearer token this service
// does not verify, so the remote address is the limiting key.
type RateLimiter struct {
	limiters sync.Map // key -> *rate.Limiter
	rate     rate.Limit
	burst    int
}

// NewRateLimiter creates a new rate limiter
// requestsPerSecond: number of requests allowed per second
// burst: maximum burst size
func NewRateLimiter(requestsPerSecond int, burst int) *RateLimiter {
	return &RateLimiter{
		rate:  rate.Limit(requestsPerSecond),
		burst: burst,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	limiter, exists := rl.limiters.Load(key)
	if !exists {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Store(key, limiter)
	}
	return limiter.(*rate.Limiter)
}

// Allow checks if a request should be allowed for the given key
func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

// Middleware returns an Echo middleware that answers over-limit requests
// with the standard 429 envelope. methods is the path's allowed-methods
// list for the CORS headers on the rejection.
func (rl *RateLimiter) Middleware(methods string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limiter := rl.getLimiter(keyPrefixIP + c.RealIP())

			if !limiter.Allow() {
				c.Response().Header().Set(headerRateLimitLimit, fmt.Sprintf("%d", rl.burst))
				c.Response().Header().Set(headerRateLimitRemaining, "0")
				c.Response().Header().Set(headerRetryAfter, "1")

				return handler.TooManyRequests(c, methods)
			}

			tokens := int(limiter.Tokens())
			c.Response().Header().Set(headerRateLimitLimit, fmt.Sprintf("%d", rl.burst))
			c.Response().Header().Set(headerRateLimitRemaining, fmt.Sprintf("%d", tokens))

			return next(c)
		}
	}
}

// StrictRateLimiter is a more aggressive rate limiter for the login path.
type StrictRateLimiter struct {
	*RateLimiter
}

// NewStrictRateLimiter creates a strict rate limiter for sensitive operations
func NewStrictRateLimiter() *StrictRateLimiter {
	return &StrictRateLimiter{
		RateLimiter: NewRateLimiter(5, 10), // 5 req/sec, burst of 10
	}
}

// GlobalRateLimiter is a lenient rate limiter for general API usage
type GlobalRateLimiter struct {
	*RateLimiter
}

// NewGlobalRateLimiter creates a global rate limiter
func NewGlobalRateLimiter() *GlobalRateLimiter {
	return &GlobalRateLimiter{
		RateLimiter: NewRateLimiter(100, 200), // 100 req/sec, burst of 200
	}
}
